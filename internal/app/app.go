package app

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/Ilia01/gjb/internal/logging"
	"github.com/Ilia01/gjb/internal/ui"
)

// Set at build time with -ldflags "-X github.com/Ilia01/gjb/internal/app.Version=...".
var (
	Version = "dev"
	Author  = "Ilia01"
	License = "MIT"
)

const description = "Create Git branches named from your current in-progress Jira issues directly from the terminal"

var (
	rootCmd = &cobra.Command{
		Use:           "gjb",
		Short:         description,
		Long:          description + ".\n\nThe branch is named <ticket-key>/<kebab-cased-summary> and created from the freshly pulled primary branch.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			closer, err := logging.InitLogger(verbose, logFile)
			if err != nil {
				return err
			}
			logCloser = closer
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}

	runInit bool
	runList bool
	cfgFile string
	verbose bool
	logFile string

	logCloser io.Closer

	initHandler = handleInit
	listHandler = handleList
)

// Execute runs the root command. The returned error has already been shown
// on a status line when it comes from the branching flow.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
	return err
}

func init() {
	rootCmd.Version = Version

	rootCmd.Flags().BoolVarP(&runInit, "init", "i", false, "initialize branching workflow")
	rootCmd.Flags().BoolVarP(&runList, "list", "l", false, "list branches (not implemented yet)")
	rootCmd.MarkFlagsMutuallyExclusive("init", "list")

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default ./config.json, then ~/.gjb/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write JSON logs to this file")
}

func run(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	status := ui.NewStatus(out)
	status.Banner()
	status.Header(Version, Author, License, description)

	switch {
	case runInit:
		return initHandler(cmd.Context(), status, out)
	case runList:
		return listHandler(out)
	default:
		return cmd.Help()
	}
}
