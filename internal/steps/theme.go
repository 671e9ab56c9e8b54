package steps

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/akhil41/zsh-shell-customizer/internal/messages"
)

var themeLineRe = regexp.MustCompile(`(?m)^ZSH_THEME=".*"$`)

// newThemeStep installs the Powerlevel10k prompt theme. It depends on the
// framework's marker directory; when that is absent the runner reports the
// dependency explicitly instead of silently no-opping.
func newThemeStep() Step {
	cloned := false
	return Step{
		Name:    messages.StepNameTheme,
		Prompt:  messages.StepPromptTheme,
		Default: true,
		Requires: func(_ context.Context, c *Context) (string, error) {
			if !dirExists(c.Paths.OhMyZsh) {
				return messages.StepNameFramework, nil
			}
			return "", nil
		},
		Precondition: func(_ context.Context, c *Context) (bool, error) {
			if !dirExists(c.Paths.ThemeDir()) {
				return false, nil
			}
			set, err := c.Patcher.Contains(ThemeLine)
			return set, err
		},
		Action: func(ctx context.Context, c *Context) error {
			if !dirExists(c.Paths.ThemeDir()) {
				if err := c.Sys.Run(ctx, "git", "clone", "--depth=1", p10kRepo, c.Paths.ThemeDir()); err != nil {
					return fmt.Errorf(messages.ThemeCloneFailedFmt, err)
				}
				cloned = true
			}
			_, err := c.Patcher.ReplacePattern(themeLineRe, ThemeLine, ThemeLine)
			return err
		},
		Verify: func(_ context.Context, c *Context) error {
			if !dirExists(c.Paths.ThemeDir()) {
				return fmt.Errorf(messages.ThemeCloneFailedFmt, errors.New("directory missing"))
			}
			set, err := c.Patcher.Contains(ThemeLine)
			if err != nil {
				return err
			}
			if !set {
				return errors.New(messages.ThemeLineMissing)
			}
			return nil
		},
		Rollback: func(_ context.Context, c *Context) error {
			// The zshrc snapshot may belong to an earlier step; restoring it
			// is still correct, it holds the pre-run content.
			_ = c.Backup.Restore(c.Paths.Zshrc)
			if cloned {
				return os.RemoveAll(c.Paths.ThemeDir())
			}
			return nil
		},
	}
}
