// Package pkgmgr installs system packages through the probed package manager.
package pkgmgr

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/akhil41/zsh-shell-customizer/internal/execx"
	"github.com/akhil41/zsh-shell-customizer/internal/logging"
	"github.com/akhil41/zsh-shell-customizer/internal/messages"
	"github.com/akhil41/zsh-shell-customizer/internal/platform"
)

// Installer maps package names to install commands for one platform.
type Installer struct {
	manager platform.PackageManager
	sys     execx.System
	log     zerolog.Logger
}

// New creates an installer for the probed platform.
func New(p platform.Platform, sys execx.System) *Installer {
	return &Installer{manager: p.Manager, sys: sys, log: logging.GetLogger("pkgmgr")}
}

// NeedsSudo reports whether installs require elevated privileges.
func (i *Installer) NeedsSudo() bool {
	return i.manager.NeedsSudo
}

// EnsureSudo validates (and caches) elevated credentials up front, so an
// install never stalls on a password prompt mid-action.
func (i *Installer) EnsureSudo(ctx context.Context) error {
	if !i.manager.NeedsSudo {
		return nil
	}
	return i.sys.Run(ctx, "sudo", "-v")
}

// Install installs pkg. A nonzero exit is returned as an error; the caller
// decides whether it is step-scoped or fatal.
func (i *Installer) Install(ctx context.Context, pkg string) error {
	argv := i.manager.InstallCommand(pkg)
	if i.manager.NeedsSudo {
		argv = append([]string{"sudo"}, argv...)
	}
	i.log.Info().Str("package", pkg).Strs("argv", argv).Msg("installing package")
	if err := i.sys.Run(ctx, argv[0], argv[1:]...); err != nil {
		return fmt.Errorf(messages.PkgInstallFailedFmt, pkg, i.manager.Name, err)
	}
	return nil
}
