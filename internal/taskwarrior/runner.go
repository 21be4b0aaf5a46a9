package taskwarrior

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	"taskwarrior_web/internal/domain"
)

const (
	DefaultBin     = "task"
	DefaultTimeout = 5 * time.Second

	// grace period after the kill before pipes are force-closed
	waitDelay = 100 * time.Millisecond
)

// ExportArgs exports every pending task.
var ExportArgs = []string{"status:pending", "export"}

// Runner invokes the export command. Arguments are passed to the executable
// directly, never through a shell.
type Runner struct {
	Bin     string
	Args    []string
	Timeout time.Duration
}

// NewRunner returns a Runner for `<bin> status:pending export`.
func NewRunner(bin string, timeout time.Duration) *Runner {
	if bin == "" {
		bin = DefaultBin
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{
		Bin:     bin,
		Args:    append([]string(nil), ExportArgs...),
		Timeout: timeout,
	}
}

// Export runs the command once and returns its stdout verbatim. Stderr is
// only used for the error detail of a nonzero exit.
func (r *Runner) Export(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.Bin, r.Args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay
	killProcessGroup(cmd)

	// Run always waits for the process, so it is reaped on every path,
	// including the group kill issued when ctx expires.
	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, domain.NewTaskError(domain.ErrTimeout, "`task export` timed out", err)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if sig, ok := terminatingSignal(exitErr.ProcessState); ok {
			return nil, domain.NewTaskError(domain.ErrCrash, fmt.Sprintf("`task export` crashed: %s", sig), err)
		}
		return nil, domain.NewTaskError(domain.ErrNonZeroExit,
			fmt.Sprintf("`task export` failed rc=%d: %s", exitErr.ExitCode(), strings.TrimSpace(stderr.String())), err)
	}

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return nil, domain.NewTaskError(domain.ErrLaunch, fmt.Sprintf("File not found error: %v", err), err)
	}
	return nil, domain.NewTaskError(domain.ErrLaunch, fmt.Sprintf("OS error: %v", err), err)
}
