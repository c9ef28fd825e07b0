package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/Ilia01/gjb/internal/app"
	"github.com/Ilia01/gjb/internal/workflow"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := app.Execute(ctx)
	stop()
	if err != nil {
		if details := workflow.Details(err); details != "" {
			fmt.Fprintf(os.Stderr, "\n%s\n", details)
		}
		os.Exit(workflow.ExitCode(err))
	}
}
