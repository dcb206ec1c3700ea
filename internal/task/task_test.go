package task

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTasksTable(t *testing.T) {
	tasks := Tasks()
	require.Len(t, tasks, 5)

	wantArgv := map[string][]string{
		"lint":   {"ruff", "check", "."},
		"format": {"ruff", "format", "."},
		"fix":    {"ruff", "check", ".", "--fix"},
		"add":    {"git", "add", "."},
		"commit": {"cz", "commit"},
	}

	names := make([]string, 0, len(tasks))
	for _, task := range tasks {
		names = append(names, task.Name)
		assert.NotEmpty(t, task.Summary, "task %s has no summary", task.Name)
		assert.Equal(t, wantArgv[task.Name], task.Argv, "task %s", task.Name)
	}
	assert.Equal(t, []string{"lint", "format", "fix", "add", "commit"}, names)

	// only commitizen prompts
	for _, task := range tasks {
		assert.Equal(t, task.Name == "commit", task.Interactive, "task %s", task.Name)
	}
}

func TestRunMissingToolNamesTool(t *testing.T) {
	err := Run(context.Background(), Task{
		Name: "lint",
		Argv: []string{"definitely-not-a-real-tool-xyz", "check", "."},
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "definitely-not-a-real-tool-xyz")
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestRunPassesExitCodeThrough(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "flaky-tool")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nexit 3\n"), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	err := Run(context.Background(), Task{Name: "flaky", Argv: []string{"flaky-tool"}})
	require.Error(t, err)
	assert.Equal(t, 3, ExitCode(err))
}

func TestRunSuccess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "ok-tool")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nexit 0\n"), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	err := Run(context.Background(), Task{Name: "ok", Argv: []string{"ok-tool"}})
	assert.NoError(t, err)
	assert.Equal(t, 0, ExitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("boom")))
}
