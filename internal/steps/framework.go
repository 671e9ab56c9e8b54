package steps

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/akhil41/zsh-shell-customizer/internal/messages"
)

// newFrameworkStep installs Oh My Zsh, the layer plugins and prompt themes
// hang off. The config file is backed up before the remote installer runs,
// because the installer rewrites it.
func newFrameworkStep() Step {
	return Step{
		Name:    messages.StepNameFramework,
		Prompt:  messages.StepPromptFramework,
		Default: true,
		Precondition: func(_ context.Context, c *Context) (bool, error) {
			return dirExists(c.Paths.OhMyZsh), nil
		},
		Action: func(ctx context.Context, c *Context) error {
			if _, _, err := c.Backup.File(c.Paths.Zshrc); err != nil {
				return err
			}
			c.Console.Infof(messages.FrameworkInstallViaCurl)
			return c.Sys.Run(ctx, "sh", "-c",
				fmt.Sprintf("curl -fsSL %s | sh -s -- --unattended", ohMyZshInstallURL))
		},
		Verify: func(_ context.Context, c *Context) error {
			if !dirExists(c.Paths.OhMyZsh) {
				return errors.New(messages.FrameworkMarkerMissing)
			}
			if !fileExists(c.Paths.Zshrc) {
				return errors.New(messages.FrameworkZshrcMissing)
			}
			return nil
		},
		Rollback: func(_ context.Context, c *Context) error {
			// Restore the pre-run config if this run snapshotted it, then
			// drop the marker directory.
			if restoreErr := c.Backup.Restore(c.Paths.Zshrc); restoreErr != nil {
				// No snapshot means the file did not exist before the run.
				_ = os.Remove(c.Paths.Zshrc)
			}
			return os.RemoveAll(c.Paths.OhMyZsh)
		},
	}
}
