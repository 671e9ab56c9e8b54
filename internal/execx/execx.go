// Package execx runs external commands with uniform timeout handling.
//
// The System interface is the seam every step and installer goes through, so
// tests can substitute a fake without touching the real machine.
package execx

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/akhil41/zsh-shell-customizer/internal/logging"
)

// DefaultTimeout bounds every external command unless overridden.
const DefaultTimeout = 10 * time.Minute

// System abstracts external command execution and PATH lookups.
type System interface {
	// Run executes a command, streaming stdout/stderr to the user's terminal.
	Run(ctx context.Context, name string, args ...string) error
	// Output executes a command and captures its stdout.
	Output(ctx context.Context, name string, args ...string) (string, error)
	// LookPath resolves a binary on PATH.
	LookPath(name string) (string, error)
}

// RealSystem implements System using os/exec.
type RealSystem struct {
	// Timeout bounds each command; zero means DefaultTimeout.
	Timeout time.Duration
}

func (s RealSystem) timeout() time.Duration {
	if s.Timeout > 0 {
		return s.Timeout
	}
	return DefaultTimeout
}

// Run executes a command with inherited stdio.
func (s RealSystem) Run(ctx context.Context, name string, args ...string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	logger := logging.GetLogger("execx")
	logger.Debug().Str("command", name).Strs("args", args).Msg("running command")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err != nil {
		logger.Debug().Str("command", name).Err(err).Msg("command failed")
	}
	return err
}

// Output executes a command and returns its trimmed stdout.
func (s RealSystem) Output(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	return strings.TrimSpace(string(out)), err
}

// LookPath resolves a binary on PATH.
func (s RealSystem) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
