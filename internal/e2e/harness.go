// Package e2e provides testing infrastructure for end-to-end CLI tests.
// A Harness runs the real command inside a throwaway repository, with the
// working directory set to the repository root so the argument-free
// invocation is what gets exercised.
package e2e

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/kumo-ai/kumo-skills-catalog/internal/cli"
	"github.com/kumo-ai/kumo-skills-catalog/internal/ui"
)

// Result contains the outcome of running a CLI command.
type Result struct {
	// Stdout contains the captured standard output.
	Stdout string
	// Err is the error returned by the CLI command, if any.
	Err error
	// ExitCode is the inferred exit code (0 for success, 1 for error).
	ExitCode int
}

// Success returns true if the command completed without error.
func (r *Result) Success() bool {
	return r.Err == nil
}

// Harness provides a test harness for running E2E CLI tests.
type Harness struct {
	t    *testing.T
	repo *Fixture
}

// NewHarness creates a harness around an empty repository and changes the
// working directory into it for the rest of the test.
func NewHarness(t *testing.T) *Harness {
	t.Helper()

	root := t.TempDir()
	t.Chdir(root)
	ui.DisableColors()

	return &Harness{
		t:    t,
		repo: NewFixture(t, root),
	}
}

// Repo returns the fixture for the repository under test.
func (h *Harness) Repo() *Fixture {
	return h.repo
}

// Run executes the CLI with the given arguments and captures stdout.
func (h *Harness) Run(args ...string) *Result {
	h.t.Helper()

	args = append([]string{"skillcatalog"}, args...)

	oldStdout := os.Stdout
	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		h.t.Fatalf("failed to create stdout pipe: %v", err)
	}
	os.Stdout = stdoutW

	// Read concurrently so large list output cannot fill the pipe buffer.
	var stdoutBuf bytes.Buffer
	var copyErr error
	copyDone := make(chan struct{})
	go func() {
		defer close(copyDone)
		_, copyErr = io.Copy(&stdoutBuf, stdoutR)
	}()

	cmdErr := cli.Run(context.Background(), args)

	if err := stdoutW.Close(); err != nil {
		h.t.Fatalf("failed to close stdout pipe writer: %v", err)
	}
	os.Stdout = oldStdout

	<-copyDone
	if copyErr != nil {
		h.t.Fatalf("failed to read captured stdout: %v", copyErr)
	}

	exitCode := 0
	if cmdErr != nil {
		exitCode = 1
	}

	return &Result{
		Stdout:   stdoutBuf.String(),
		Err:      cmdErr,
		ExitCode: exitCode,
	}
}
