// Package workflow runs the fetch, select, pull and branch steps in order and
// narrates them through a ui.Reporter.
package workflow

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Ilia01/gjb/internal/models"
	"github.com/Ilia01/gjb/internal/tickets"
	"github.com/Ilia01/gjb/internal/ui"
)

type TicketSource interface {
	SearchInProgress(ctx context.Context) ([]models.JiraTicket, error)
}

type Brancher interface {
	PullPrimaryBranch(ctx context.Context, primary string) error
	CreateBranch(ctx context.Context, branch string) error
}

// Runner holds the collaborators of one run. OpenGit is only called once a
// ticket has been selected, so rejected runs never touch the repository.
type Runner struct {
	Tickets       TicketSource
	OpenGit       func(ctx context.Context) (Brancher, error)
	Reporter      ui.Reporter
	Out           io.Writer
	PrimaryBranch string
}

// Run stops at the first error and renders it as a failed status line
// before returning it.
func (r *Runner) Run(ctx context.Context) error {
	err := r.run(ctx)
	if err != nil {
		r.Reporter.Fail(Message(err))
	}
	return err
}

func (r *Runner) run(ctx context.Context) error {
	r.Reporter.SetMessage("Fetching your in-progress tickets...")
	issues, err := r.Tickets.SearchInProgress(ctx)
	if err != nil {
		return newError(KindFetch, "Failed to fetch tickets", err,
			"check baseUrl, mail and token in your gjb config")
	}

	selection := tickets.Select(issues)
	if !selection.OK() {
		return rejection(selection)
	}

	r.Reporter.SetMessage(foundMessage(selection.Found))
	r.Reporter.Succeed()
	for _, ticket := range selection.Tickets {
		fmt.Fprintf(r.Out, "%s:%s\n", ticket.ID, ticket.BranchDescription)
		slog.Debug("selected ticket", "id", ticket.ID, "summary", ticket.Summary, "description", ticket.Description)
	}

	brancher, err := r.OpenGit(ctx)
	if err != nil {
		return newError(KindCheckout, "Failed to checkout to primary branch!", err,
			"run gjb from inside a git working tree")
	}
	for _, ticket := range selection.Tickets {
		if err := r.branch(ctx, brancher, ticket); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) branch(ctx context.Context, brancher Brancher, ticket models.FormattedTicket) error {
	r.Reporter.SetMessage(fmt.Sprintf("Checking out %s and pulling latest changes...", r.PrimaryBranch))
	if err := brancher.PullPrimaryBranch(ctx, r.PrimaryBranch); err != nil {
		return newError(KindCheckout, "Failed to checkout to primary branch!", err,
			fmt.Sprintf("commit or stash local changes and make sure %q tracks a remote branch", r.PrimaryBranch))
	}
	r.Reporter.SetMessage(fmt.Sprintf("Pulled latest %s", r.PrimaryBranch))
	r.Reporter.Succeed()

	name := ticket.BranchName()
	r.Reporter.SetMessage(fmt.Sprintf("Creating branch %s...", name))
	if err := brancher.CreateBranch(ctx, name); err != nil {
		return newError(KindCreateBranch, "Failed to create branch!", err,
			fmt.Sprintf("a branch named %q may already exist", name))
	}
	r.Reporter.SetMessage(fmt.Sprintf("Switched to new branch %s", name))
	r.Reporter.Succeed()
	return nil
}

func rejection(selection tickets.Selection) error {
	switch selection.Rejection {
	case tickets.RejectNoTickets:
		return newError(KindNoTickets, selection.Rejection.String(), nil,
			"move the ticket you are working on to In Progress in Jira")
	default:
		return newError(KindMultipleTickets, selection.Rejection.String(), nil,
			fmt.Sprintf("%d tickets are In Progress; keep only one", selection.Found))
	}
}

func foundMessage(n int) string {
	if n == 1 {
		return "Found 1 in-progress ticket"
	}
	return fmt.Sprintf("Found %d in-progress tickets", n)
}
