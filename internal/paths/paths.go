// Package paths resolves the filesystem locations zshc reads and writes.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	homedir "github.com/mitchellh/go-homedir"
)

// EnvCustomDir overrides the Oh My Zsh custom directory ($ZSH_CUSTOM analog).
const EnvCustomDir = "ZSHC_CUSTOM_DIR"

// Paths holds every location a run touches. Built once at startup and passed
// explicitly; there is no package-level mutable state.
type Paths struct {
	Home         string
	Zshrc        string
	OhMyZsh      string
	CustomDir    string
	FontDir      string
	RbenvRoot    string
	StateDir     string
	LogFile      string
	BackupParent string
	ResumeToken  string
	Manifest     string
	LockFile     string
	EtcShells    string
}

// Resolve builds the path set for the current user and OS.
func Resolve() (Paths, error) {
	home, err := homedir.Dir()
	if err != nil {
		return Paths{}, fmt.Errorf("resolve home directory: %w", err)
	}
	return resolveFor(home, runtime.GOOS, os.Getenv(EnvCustomDir)), nil
}

func resolveFor(home string, goos string, customOverride string) Paths {
	ohMyZsh := filepath.Join(home, ".oh-my-zsh")
	custom := customOverride
	if custom == "" {
		custom = filepath.Join(ohMyZsh, "custom")
	}

	fontDir := filepath.Join(home, ".local", "share", "fonts")
	if goos == "darwin" {
		fontDir = filepath.Join(home, "Library", "Fonts")
	}

	stateDir := filepath.Join(xdg.StateHome, "zshc")

	return Paths{
		Home:         home,
		Zshrc:        filepath.Join(home, ".zshrc"),
		OhMyZsh:      ohMyZsh,
		CustomDir:    custom,
		FontDir:      fontDir,
		RbenvRoot:    filepath.Join(home, ".rbenv"),
		StateDir:     stateDir,
		LogFile:      filepath.Join(stateDir, "zshc.log"),
		BackupParent: filepath.Join(stateDir, "backups"),
		ResumeToken:  filepath.Join(stateDir, "resume.json"),
		Manifest:     filepath.Join(stateDir, "last-run.json"),
		LockFile:     filepath.Join(stateDir, "run.lock"),
		EtcShells:    "/etc/shells",
	}
}

// ApplyCustomDir replaces the custom directory with a configured value. The
// ZSHC_CUSTOM_DIR environment variable wins over the config file, so a dir
// already applied by Resolve stays.
func (p *Paths) ApplyCustomDir(dir string) {
	if dir == "" || os.Getenv(EnvCustomDir) != "" {
		return
	}
	p.CustomDir = dir
}

// ThemeDir returns the Powerlevel10k clone destination.
func (p Paths) ThemeDir() string {
	return filepath.Join(p.CustomDir, "themes", "powerlevel10k")
}

// PluginDir returns the clone destination for a named plugin.
func (p Paths) PluginDir(name string) string {
	return filepath.Join(p.CustomDir, "plugins", name)
}
