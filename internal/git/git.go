package git

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

type Client struct {
	worktree string
}

func NewClient(ctx context.Context) (*Client, error) {
	out, err := runInDir(ctx, "", "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("not in git repository: %w", err)
	}
	return &Client{worktree: strings.TrimSpace(out)}, nil
}

func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	out, err := runInDir(ctx, c.worktree, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	branch := strings.TrimSpace(out)
	if branch == "HEAD" {
		return "", fmt.Errorf("detached HEAD state")
	}
	return branch, nil
}

// PullPrimaryBranch switches to primary and pulls it from its upstream.
// The pull is skipped when the checkout fails.
func (c *Client) PullPrimaryBranch(ctx context.Context, primary string) error {
	if _, err := runInDir(ctx, c.worktree, "checkout", primary); err != nil {
		return fmt.Errorf("checkout %s: %w", primary, err)
	}
	if _, err := runInDir(ctx, c.worktree, "pull"); err != nil {
		return fmt.Errorf("pull %s: %w", primary, err)
	}
	return nil
}

// CreateBranch creates branch from HEAD and switches to it. Nothing is pushed.
func (c *Client) CreateBranch(ctx context.Context, branch string) error {
	_, err := runInDir(ctx, c.worktree, "checkout", "-b", branch)
	return err
}

func (c *Client) Root() string {
	return c.worktree
}

func runInDir(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	if dir != "" {
		cmd.Dir = dir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	slog.Debug("git", "args", args, "dir", dir, "elapsed", time.Since(start), "ok", err == nil)
	if err != nil {
		if stderr.Len() > 0 {
			return "", fmt.Errorf("%s", strings.TrimSpace(stderr.String()))
		}
		return "", err
	}
	return stdout.String(), nil
}
