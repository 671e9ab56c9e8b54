// Package platform detects the host OS family and package manager.
package platform

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/akhil41/zsh-shell-customizer/internal/messages"
)

// Sentinel errors reported by Detect. Both are fatal at probe time.
var (
	ErrUnsupportedPlatform       = errors.New("unsupported platform")
	ErrUnsupportedPackageManager = errors.New("unsupported package manager")
)

// OSFamily identifies a supported operating system family.
type OSFamily string

const (
	OSDarwin OSFamily = "darwin"
	OSLinux  OSFamily = "linux"
)

// PackageManager describes how to install a package on this host.
// Immutable; selected once per process.
type PackageManager struct {
	Name        string
	InstallArgs []string
	NeedsSudo   bool
}

// InstallCommand returns the argv for installing pkg, without any sudo prefix.
func (m PackageManager) InstallCommand(pkg string) []string {
	argv := make([]string, 0, len(m.InstallArgs)+2)
	argv = append(argv, m.Name)
	argv = append(argv, m.InstallArgs...)
	argv = append(argv, pkg)
	return argv
}

// Platform is the result of the environment probe.
type Platform struct {
	OS      OSFamily
	Manager PackageManager
}

// linuxManagers is probed in order; the first binary present on PATH wins.
var linuxManagers = []PackageManager{
	{Name: "apt-get", InstallArgs: []string{"install", "-y"}, NeedsSudo: true},
	{Name: "dnf", InstallArgs: []string{"install", "-y"}, NeedsSudo: true},
	{Name: "yum", InstallArgs: []string{"install", "-y"}, NeedsSudo: true},
	{Name: "pacman", InstallArgs: []string{"-S", "--noconfirm"}, NeedsSudo: true},
	{Name: "zypper", InstallArgs: []string{"install", "-y"}, NeedsSudo: true},
}

var brewManager = PackageManager{Name: "brew", InstallArgs: []string{"install"}}

// LookPathFunc resolves a binary on PATH. Injectable for tests.
type LookPathFunc func(name string) (string, error)

// Detect probes the OS family and package manager for goos.
// On darwin the absence of Homebrew is fatal; on linux the first manager
// found in the fixed probe order is selected.
func Detect(goos string, lookPath LookPathFunc) (Platform, error) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	switch goos {
	case "darwin":
		if _, err := lookPath(brewManager.Name); err != nil {
			return Platform{}, fmt.Errorf("%s: %w", messages.PlatformBrewMissing, ErrUnsupportedPackageManager)
		}
		return Platform{OS: OSDarwin, Manager: brewManager}, nil
	case "linux":
		for _, m := range linuxManagers {
			if _, err := lookPath(m.Name); err == nil {
				return Platform{OS: OSLinux, Manager: m}, nil
			}
		}
		return Platform{}, fmt.Errorf("%s: %w", messages.PlatformNoPackageManager, ErrUnsupportedPackageManager)
	default:
		return Platform{}, fmt.Errorf(messages.PlatformUnsupportedFmt+": %w", goos, ErrUnsupportedPlatform)
	}
}
