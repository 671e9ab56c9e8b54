package steps

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/akhil41/zsh-shell-customizer/internal/messages"
)

// newShellStep installs zsh itself. This is the only mandatory step: nothing
// later makes sense without the shell, so its failure aborts the run.
func newShellStep() Step {
	return Step{
		Name:      messages.StepNameShell,
		Prompt:    messages.StepPromptShell,
		Default:   true,
		Mandatory: true,
		NeedsSudo: true,
		Precondition: func(_ context.Context, c *Context) (bool, error) {
			_, err := c.Sys.LookPath("zsh")
			return err == nil, nil
		},
		Action: func(ctx context.Context, c *Context) error {
			if err := c.Pkg.Install(ctx, "zsh"); err != nil {
				return err
			}
			return offerDefaultShell(ctx, c)
		},
		Verify: func(_ context.Context, c *Context) error {
			if _, err := c.Sys.LookPath("zsh"); err != nil {
				return errors.New(messages.ShellNotOnPathAfterInstall)
			}
			return nil
		},
	}
}

// offerDefaultShell optionally makes zsh the login shell and arranges a
// handoff of the remaining run when the current shell is not zsh. Failures
// here degrade to warnings: zsh is installed either way.
func offerDefaultShell(ctx context.Context, c *Context) error {
	zshPath, err := c.Sys.LookPath("zsh")
	if err != nil {
		// Verification will report this; nothing to offer.
		return nil
	}

	wantDefault, err := c.Prompter.Confirm(messages.StepPromptDefaultShell, true)
	if err != nil {
		return err
	}
	if wantDefault {
		if err := ensureShellAllowed(ctx, c, zshPath); err != nil {
			c.Console.Warnf(messages.ShellChangeFailedFmt, err)
		} else if err := c.Sys.Run(ctx, "chsh", "-s", zshPath); err != nil {
			c.Console.Warnf(messages.ShellChangeFailedFmt, err)
		}
	}

	if c.getenv("SHELL") == zshPath {
		return nil
	}
	handoff, err := c.Prompter.Confirm(messages.StepPromptHandoff, true)
	if err != nil {
		return err
	}
	if handoff {
		c.RequestHandoff()
	}
	return nil
}

// ensureShellAllowed appends zshPath to the login-shell allow-list when it is
// not already listed.
func ensureShellAllowed(ctx context.Context, c *Context, zshPath string) error {
	data, err := os.ReadFile(c.Paths.EtcShells)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == zshPath {
			return nil
		}
	}
	c.Console.Infof(messages.ShellAllowListAppendFmt, zshPath, c.Paths.EtcShells)
	return c.Sys.Run(ctx, "sudo", "sh", "-c", fmt.Sprintf("echo %s >> %s", zshPath, c.Paths.EtcShells))
}
