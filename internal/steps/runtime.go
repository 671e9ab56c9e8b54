package steps

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/akhil41/zsh-shell-customizer/internal/messages"
	"github.com/akhil41/zsh-shell-customizer/internal/platform"
	"github.com/akhil41/zsh-shell-customizer/internal/version"
)

// newRuntimeStep installs rbenv and the latest stable Ruby. When an
// interpreter already resolves on PATH the whole step is skipped, whatever
// manager put it there.
func newRuntimeStep() Step {
	installedVersion := ""
	return Step{
		Name:    messages.StepNameRuntime,
		Prompt:  messages.StepPromptRuntime,
		Default: false,
		Precondition: func(_ context.Context, c *Context) (bool, error) {
			_, err := c.Sys.LookPath("ruby")
			return err == nil, nil
		},
		Action: func(ctx context.Context, c *Context) error {
			rbenv, err := ensureRbenv(ctx, c)
			if err != nil {
				return err
			}

			// Wire rbenv into the shell config exactly once.
			if _, err := c.Patcher.AppendLineIfAbsent(RbenvPathLine); err != nil {
				return err
			}
			if _, err := c.Patcher.AppendLineIfAbsent(RbenvInitLine); err != nil {
				return err
			}

			listing, err := c.Sys.Output(ctx, rbenv, "install", "-l")
			if err != nil {
				return fmt.Errorf(messages.RuntimeRbenvListFailedFmt, err)
			}
			latest, err := version.LatestStable(listing)
			if err != nil {
				return err
			}

			// -s skips the build when the version is already installed.
			if err := c.Sys.Run(ctx, rbenv, "install", "-s", latest); err != nil {
				return fmt.Errorf(messages.RuntimeInstallFailedFmt, latest, err)
			}
			if err := c.Sys.Run(ctx, rbenv, "global", latest); err != nil {
				return fmt.Errorf(messages.RuntimeGlobalFailedFmt, latest, err)
			}
			installedVersion = latest
			return nil
		},
		Verify: func(ctx context.Context, c *Context) error {
			rbenv, err := rbenvBinary(c)
			if err != nil {
				return err
			}
			global, err := c.Sys.Output(ctx, rbenv, "global")
			if err != nil {
				return err
			}
			if global != installedVersion {
				return fmt.Errorf(messages.RuntimeVerifyGlobalFmt, global, installedVersion)
			}
			return nil
		},
	}
}

// ensureRbenv installs rbenv when missing: via the package manager on macOS,
// via source clone (plus the ruby-build plugin) on Linux.
func ensureRbenv(ctx context.Context, c *Context) (string, error) {
	if path, err := c.Sys.LookPath("rbenv"); err == nil {
		return path, nil
	}

	if c.Platform.OS == platform.OSDarwin {
		if err := c.Pkg.Install(ctx, "rbenv"); err != nil {
			return "", err
		}
		return rbenvBinary(c)
	}

	root := c.Paths.RbenvRoot
	if !dirExists(root) {
		if err := c.Sys.Run(ctx, "git", "clone", "--depth=1", rbenvRepo, root); err != nil {
			return "", err
		}
	}
	buildDir := filepath.Join(root, "plugins", "ruby-build")
	if !dirExists(buildDir) {
		if err := c.Sys.Run(ctx, "git", "clone", "--depth=1", rubyBuildRepo, buildDir); err != nil {
			return "", err
		}
	}
	return filepath.Join(root, "bin", "rbenv"), nil
}

// rbenvBinary resolves rbenv on PATH, falling back to the source-clone
// location used on Linux.
func rbenvBinary(c *Context) (string, error) {
	if path, err := c.Sys.LookPath("rbenv"); err == nil {
		return path, nil
	}
	candidate := filepath.Join(c.Paths.RbenvRoot, "bin", "rbenv")
	if fileExists(candidate) {
		return candidate, nil
	}
	return "", fmt.Errorf(messages.RuntimeRbenvListFailedFmt, fmt.Errorf("%s not found", messages.RuntimeRequiresRbenv))
}
