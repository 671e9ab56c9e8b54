// Package ui prints severity-coded lines to the interactive session and
// mirrors each one into the persistent log.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/akhil41/zsh-shell-customizer/internal/logging"
)

var (
	successPrefix = color.New(color.FgGreen, color.Bold).Sprint("[ok]")
	infoPrefix    = color.New(color.FgCyan).Sprint("[..]")
	warnPrefix    = color.New(color.FgYellow, color.Bold).Sprint("[!!]")
	errorPrefix   = color.New(color.FgRed, color.Bold).Sprint("[xx]")
)

// Console writes user-facing output. Write errors on the interactive stream
// are discarded; failing to display a message must not abort a step.
type Console struct {
	out io.Writer
	log zerolog.Logger
}

// New creates a console writing to out; nil means os.Stdout.
func New(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{out: out, log: logging.GetLogger("ui")}
}

// Successf reports a completed action.
func (c *Console) Successf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.log.Info().Msg(msg)
	_, _ = fmt.Fprintln(c.out, successPrefix, msg)
}

// Infof reports progress.
func (c *Console) Infof(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.log.Info().Msg(msg)
	_, _ = fmt.Fprintln(c.out, infoPrefix, msg)
}

// Warnf reports a non-fatal problem.
func (c *Console) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.log.Warn().Msg(msg)
	_, _ = fmt.Fprintln(c.out, warnPrefix, msg)
}

// Errorf reports a failure.
func (c *Console) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.log.Error().Msg(msg)
	_, _ = fmt.Fprintln(c.out, errorPrefix, msg)
}

// Printf writes without a severity prefix (headers, blank lines).
func (c *Console) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
