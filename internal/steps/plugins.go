package steps

import (
	"context"
	"fmt"
	"os"

	"github.com/akhil41/zsh-shell-customizer/internal/messages"
)

// newPluginsStep clones the zsh plugins and wires them into the plugins=()
// list. Re-running never duplicates a clone or a list entry.
func newPluginsStep() Step {
	var cloned []string
	return Step{
		Name:    messages.StepNamePlugins,
		Prompt:  messages.StepPromptPlugins,
		Default: true,
		Requires: func(_ context.Context, c *Context) (string, error) {
			if !dirExists(c.Paths.OhMyZsh) {
				return messages.StepNameFramework, nil
			}
			return "", nil
		},
		Precondition: func(_ context.Context, c *Context) (bool, error) {
			for _, p := range Plugins {
				if !dirExists(c.Paths.PluginDir(p.Name)) {
					return false, nil
				}
				listed, err := c.Patcher.HasPlugin(p.Name)
				if err != nil || !listed {
					return false, err
				}
			}
			return true, nil
		},
		Action: func(ctx context.Context, c *Context) error {
			for _, p := range Plugins {
				dir := c.Paths.PluginDir(p.Name)
				if !dirExists(dir) {
					if err := c.Sys.Run(ctx, "git", "clone", "--depth=1", p.Repo, dir); err != nil {
						return fmt.Errorf(messages.PluginCloneFailedFmt, p.Name, err)
					}
					cloned = append(cloned, dir)
				}
				if _, err := c.Patcher.AppendPlugin(p.Name); err != nil {
					return err
				}
			}
			return nil
		},
		Verify: func(_ context.Context, c *Context) error {
			for _, p := range Plugins {
				if !dirExists(c.Paths.PluginDir(p.Name)) {
					return fmt.Errorf(messages.PluginDirMissingFmt, p.Name)
				}
				listed, err := c.Patcher.HasPlugin(p.Name)
				if err != nil {
					return err
				}
				if !listed {
					return fmt.Errorf(messages.PluginLineMissingFmt, p.Name)
				}
			}
			return nil
		},
		Rollback: func(_ context.Context, c *Context) error {
			_ = c.Backup.Restore(c.Paths.Zshrc)
			// Only directories this run cloned are removed; pre-existing
			// plugin checkouts belong to the user.
			for _, dir := range cloned {
				if err := os.RemoveAll(dir); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
