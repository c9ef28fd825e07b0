package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	t.Helper()
	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })
}

func TestInitLoggerQuietByDefault(t *testing.T) {
	restoreDefault(t)
	var stderr bytes.Buffer

	closer, err := initLogger(&stderr, false, "")
	require.NoError(t, err)
	defer closer.Close()

	slog.Debug("hidden")
	slog.Info("hidden too")
	slog.Warn("visible")

	out := stderr.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestInitLoggerDebug(t *testing.T) {
	restoreDefault(t)
	var stderr bytes.Buffer

	closer, err := initLogger(&stderr, true, "")
	require.NoError(t, err)
	defer closer.Close()

	slog.Debug("searching jira", "jql", "status='In Progress'")

	assert.Contains(t, stderr.String(), "searching jira")
}

func TestInitLoggerWritesFile(t *testing.T) {
	restoreDefault(t)
	var stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "gjb.log")

	closer, err := initLogger(&stderr, true, path)
	require.NoError(t, err)

	slog.Debug("git", "args", []string{"checkout", "main"})
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &record))
	assert.Equal(t, "git", record["msg"])
	assert.Contains(t, stderr.String(), "git")
}

func TestInitLoggerBadFile(t *testing.T) {
	restoreDefault(t)
	_, err := initLogger(&bytes.Buffer{}, false, filepath.Join(t.TempDir(), "missing", "gjb.log"))
	assert.Error(t, err)
}

func TestMultiHandlerSkipsDisabled(t *testing.T) {
	var quiet, loud bytes.Buffer
	handler := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(&loud, &slog.HandlerOptions{Level: slog.LevelDebug}),
	}}

	assert.True(t, handler.Enabled(context.Background(), slog.LevelDebug))

	logger := slog.New(handler).With("run", 1).WithGroup("step")
	logger.Info("pulled", "branch", "main")

	assert.Empty(t, quiet.String())
	assert.Contains(t, loud.String(), "step.branch=main")
	assert.Contains(t, loud.String(), "run=1")
}
