package jira

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	gojira "github.com/andygrunwald/go-jira"

	"github.com/Ilia01/gjb/internal/models"
)

// InProgressJQL selects the caller's tickets that are being worked on.
const InProgressJQL = "assignee=currentuser() AND status='In Progress'"

const searchLimit = 50

type Client struct {
	baseURL string
	email   string
	token   string
	http    *http.Client
}

func NewClient(baseURL, email, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		email:   email,
		token:   token,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SearchInProgress returns every ticket matched by InProgressJQL. An empty
// result is not an error.
func (c *Client) SearchInProgress(ctx context.Context) ([]models.JiraTicket, error) {
	api, err := c.api()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	slog.Debug("searching jira", "base_url", c.baseURL, "jql", InProgressJQL)

	issues, resp, err := api.Issue.SearchWithContext(ctx, InProgressJQL, &gojira.SearchOptions{
		MaxResults: searchLimit,
		Fields:     []string{"summary", "description"},
	})
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("jira api error (%d): %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("jira request failed: %w", err)
	}

	slog.Debug("jira search finished", "issues", len(issues), "elapsed", time.Since(start))

	tickets := make([]models.JiraTicket, 0, len(issues))
	for _, issue := range issues {
		ticket := models.JiraTicket{Key: issue.Key}
		if issue.Fields != nil {
			ticket.Fields.Summary = issue.Fields.Summary
			ticket.Fields.Description = issue.Fields.Description
		}
		tickets = append(tickets, ticket)
	}
	return tickets, nil
}

func (c *Client) api() (*gojira.Client, error) {
	auth := &gojira.BasicAuthTransport{
		Username:  c.email,
		Password:  c.token,
		Transport: acceptJSON{next: c.http.Transport},
	}
	client, err := gojira.NewClient(&http.Client{Transport: auth, Timeout: c.http.Timeout}, c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("create jira client: %w", err)
	}
	return client, nil
}

type acceptJSON struct {
	next http.RoundTripper
}

func (t acceptJSON) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.next
	if next == nil {
		next = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	clone.Header.Set("Accept", "application/json")
	return next.RoundTrip(clone)
}
