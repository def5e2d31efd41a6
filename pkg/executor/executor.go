package executor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// tailLines is how much of a failed command's output is kept in the error.
// TeX engines report errors on stdout, near the end of a long transcript.
const tailLines = 20

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// Execute runs an external command in the current working directory
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return e.ExecuteInDir(ctx, "", name, args...)
}

// ExecuteInDir runs an external command in a specific working directory
func (e *implExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if detail := tail(stderr.String(), tailLines); detail != "" {
			return "", fmt.Errorf("command '%s' failed: %w\nstderr: %s", name, err, detail)
		}
		if detail := tail(stdout.String(), tailLines); detail != "" {
			return "", fmt.Errorf("command '%s' failed: %w\noutput: %s", name, err, detail)
		}
		return "", fmt.Errorf("command '%s' failed: %w", name, err)
	}

	return stdout.String(), nil
}

// tail returns the last n non-empty lines of s
func tail(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
