package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/Ilia01/gjb/internal/config"
	"github.com/Ilia01/gjb/internal/git"
	"github.com/Ilia01/gjb/internal/jira"
	"github.com/Ilia01/gjb/internal/ui"
	"github.com/Ilia01/gjb/internal/workflow"
)

const listPlaceholder = "Branch listing is not implemented yet."

var (
	jiraFactory = func(baseURL, email, token string) workflow.TicketSource {
		return jira.NewClient(baseURL, email, token)
	}

	gitFactory = func(ctx context.Context) (workflow.Brancher, error) {
		client, err := git.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		slog.Debug("using git worktree", "root", client.Root())
		return client, nil
	}
)

func handleInit(ctx context.Context, status *ui.Status, out io.Writer) error {
	settings, err := loadSettings()
	if err != nil {
		status.Fail("Failed to load configuration!")
		return err
	}

	runner := &workflow.Runner{
		Tickets:       jiraFactory(settings.BaseURL, settings.Mail, settings.Token),
		OpenGit:       gitFactory,
		Reporter:      status,
		Out:           out,
		PrimaryBranch: settings.PrimaryBranch,
	}
	return runner.Run(ctx)
}

func handleList(out io.Writer) error {
	fmt.Fprintln(out, listPlaceholder)
	return nil
}

func loadSettings() (*config.Settings, error) {
	settings, err := config.Load(cfgFile)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			if cfgFile != "" {
				return nil, errors.WithHint(err, "check the path given to --config")
			}
			return nil, errors.WithHintf(err, "create %s with baseUrl, mail, token and primaryBranch",
				strings.Join(config.SearchPaths(), " or "))
		}
		return nil, err
	}
	slog.Debug("loaded config",
		"path", settings.Path,
		"base_url", settings.BaseURL,
		"mail", settings.Mail,
		"token", config.MaskToken(settings.Token),
		"primary_branch", settings.PrimaryBranch,
	)
	return settings, nil
}
