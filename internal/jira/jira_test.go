package jira

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestSearchInProgress(t *testing.T) {
	client := NewClient("https://example.com/", "user@example.com", "token")
	client.http.Transport = roundTripFunc(func(req *http.Request) *http.Response {
		if req.Method != http.MethodGet || req.URL.Path != "/rest/api/2/search" {
			t.Fatalf("unexpected request: %s %s", req.Method, req.URL.Path)
		}
		if jql := req.URL.Query().Get("jql"); jql != InProgressJQL {
			t.Fatalf("unexpected jql: %s", jql)
		}
		if accept := req.Header.Get("Accept"); accept != "application/json" {
			t.Fatalf("unexpected accept header: %s", accept)
		}
		user, pass, ok := req.BasicAuth()
		if !ok || user != "user@example.com" || pass != "token" {
			t.Fatalf("unexpected basic auth: %s %s %v", user, pass, ok)
		}
		body := `{"startAt":0,"maxResults":50,"total":1,"issues":[{"key":"TEST-1","fields":{"summary":"Fix Login Bug","description":"Users cannot log in"}}]}`
		return jsonResponse(http.StatusOK, body)
	})

	tickets, err := client.SearchInProgress(context.Background())
	if err != nil {
		t.Fatalf("SearchInProgress failed: %v", err)
	}
	if len(tickets) != 1 {
		t.Fatalf("unexpected results: %#v", tickets)
	}
	if tickets[0].Key != "TEST-1" || tickets[0].Fields.Summary != "Fix Login Bug" {
		t.Fatalf("unexpected ticket: %#v", tickets[0])
	}
	if tickets[0].Fields.Description != "Users cannot log in" {
		t.Fatalf("unexpected description: %s", tickets[0].Fields.Description)
	}
}

func TestSearchInProgressEmpty(t *testing.T) {
	client := NewClient("https://example.com", "user@example.com", "token")
	client.http.Transport = roundTripFunc(func(req *http.Request) *http.Response {
		return jsonResponse(http.StatusOK, `{"startAt":0,"maxResults":50,"total":0,"issues":[]}`)
	})

	tickets, err := client.SearchInProgress(context.Background())
	if err != nil {
		t.Fatalf("SearchInProgress failed: %v", err)
	}
	if len(tickets) != 0 {
		t.Fatalf("expected no tickets, got %#v", tickets)
	}
}

func TestSearchInProgressMissingDescription(t *testing.T) {
	client := NewClient("https://example.com", "user@example.com", "token")
	client.http.Transport = roundTripFunc(func(req *http.Request) *http.Response {
		return jsonResponse(http.StatusOK, `{"issues":[{"key":"TEST-2","fields":{"summary":"Another"}}]}`)
	})

	tickets, err := client.SearchInProgress(context.Background())
	if err != nil {
		t.Fatalf("SearchInProgress failed: %v", err)
	}
	if len(tickets) != 1 || tickets[0].Fields.Description != "" {
		t.Fatalf("unexpected results: %#v", tickets)
	}
}

func TestSearchInProgressHTTPError(t *testing.T) {
	client := NewClient("https://example.com", "user@example.com", "token")
	client.http.Transport = roundTripFunc(func(req *http.Request) *http.Response {
		return jsonResponse(http.StatusUnauthorized, `{"errorMessages":["Unauthorized"]}`)
	})

	_, err := client.SearchInProgress(context.Background())
	if err == nil {
		t.Fatalf("expected error for 401")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Fatalf("status code missing from error: %v", err)
	}
}

func TestSearchInProgressTransportError(t *testing.T) {
	client := NewClient("https://example.com", "user@example.com", "token")
	boom := errors.New("connection refused")
	client.http.Transport = failingTransport{err: boom}

	_, err := client.SearchInProgress(context.Background())
	if err == nil {
		t.Fatalf("expected transport error")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped transport error, got %v", err)
	}
}

type roundTripFunc func(*http.Request) *http.Response

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

type failingTransport struct {
	err error
}

func (f failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, f.err
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}
