package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/akhil41/zsh-shell-customizer/internal/messages"
)

// newColorlsStep installs the colorls gem and its aliases. The first alias
// line doubles as the rerun guard, so a second run never re-appends.
func newColorlsStep() Step {
	return Step{
		Name:    messages.StepNameColorls,
		Prompt:  messages.StepPromptColorls,
		Default: false,
		Requires: func(_ context.Context, c *Context) (string, error) {
			if _, err := c.Sys.LookPath("ruby"); err != nil {
				return messages.RuntimeRequiresRuby, nil
			}
			return "", nil
		},
		Precondition: func(_ context.Context, c *Context) (bool, error) {
			return c.Patcher.Contains(ColorlsAliases[0])
		},
		Action: func(ctx context.Context, c *Context) error {
			if err := c.Sys.Run(ctx, "gem", "install", "colorls"); err != nil {
				return fmt.Errorf(messages.ColorlsGemInstallFailedFmt, err)
			}
			guarded, err := c.Patcher.Contains(ColorlsAliases[0])
			if err != nil {
				return err
			}
			if guarded {
				return nil
			}
			for _, line := range ColorlsAliases {
				if _, err := c.Patcher.AppendLineIfAbsent(line); err != nil {
					return err
				}
			}
			return nil
		},
		Verify: func(_ context.Context, c *Context) error {
			for _, line := range ColorlsAliases {
				present, err := c.Patcher.Contains(line)
				if err != nil {
					return err
				}
				if !present {
					return errors.New(messages.ColorlsAliasesMissing)
				}
			}
			return nil
		},
		Rollback: func(_ context.Context, c *Context) error {
			return c.Backup.Restore(c.Paths.Zshrc)
		},
	}
}
