// Package task is the dispatch table for the external developer tools the
// CLI fronts. Each task runs exactly one process with a fixed argv and
// surfaces its exit code unchanged.
package task

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Task names one external command.
type Task struct {
	Name        string
	Summary     string
	Argv        []string
	Interactive bool // attach stdin for tools that prompt
}

// Tool returns the executable a task needs on PATH.
func (t Task) Tool() string {
	return t.Argv[0]
}

// Tasks lists every external-tool task, in help order.
func Tasks() []Task {
	return []Task{
		{
			Name:    "lint",
			Summary: "Run ruff check over the repository",
			Argv:    []string{"ruff", "check", "."},
		},
		{
			Name:    "format",
			Summary: "Run ruff format over the repository",
			Argv:    []string{"ruff", "format", "."},
		},
		{
			Name:    "fix",
			Summary: "Run ruff check with autofix",
			Argv:    []string{"ruff", "check", ".", "--fix"},
		},
		{
			Name:    "add",
			Summary: "Stage all changes with git",
			Argv:    []string{"git", "add", "."},
		},
		{
			Name:        "commit",
			Summary:     "Create a conventional commit with commitizen",
			Argv:        []string{"cz", "commit"},
			Interactive: true,
		},
	}
}

// Run executes the task, wiring its output through. The tool must exist
// on PATH before anything is spawned.
func Run(ctx context.Context, t Task) error {
	if _, err := exec.LookPath(t.Tool()); err != nil {
		return fmt.Errorf("required tool %q not found in PATH: %w", t.Tool(), err)
	}

	cmd := exec.CommandContext(ctx, t.Argv[0], t.Argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if t.Interactive {
		cmd.Stdin = os.Stdin
	}
	return cmd.Run()
}

// ExitCode maps an error from Run to the process exit code the CLI
// should finish with.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
