// Package steps implements the installation-step protocol: for every feature,
// check-state, confirm, act, verify, and optionally roll back.
package steps

import (
	"context"
	"os"

	"github.com/akhil41/zsh-shell-customizer/internal/backup"
	"github.com/akhil41/zsh-shell-customizer/internal/config"
	"github.com/akhil41/zsh-shell-customizer/internal/execx"
	"github.com/akhil41/zsh-shell-customizer/internal/paths"
	"github.com/akhil41/zsh-shell-customizer/internal/pkgmgr"
	"github.com/akhil41/zsh-shell-customizer/internal/platform"
	"github.com/akhil41/zsh-shell-customizer/internal/prompt"
	"github.com/akhil41/zsh-shell-customizer/internal/ui"
	"github.com/akhil41/zsh-shell-customizer/internal/zshrc"
)

// Outcome classifies how a step ended.
type Outcome string

const (
	// Installed means the action ran and verification passed.
	Installed Outcome = "installed"
	// AlreadyPresent means the precondition was already satisfied.
	AlreadyPresent Outcome = "already-present"
	// Skipped means the user declined or privileges were unavailable.
	Skipped Outcome = "skipped"
	// Failed means the action or verification failed.
	Failed Outcome = "failed"
	// RolledBack means verification failed and the step's changes were restored.
	RolledBack Outcome = "rolled-back"
	// DependencyNotMet means a required prior feature is absent. Distinct
	// from Skipped: the user never got to decide.
	DependencyNotMet Outcome = "dependency-not-met"
)

// Result records one step's outcome for the run manifest.
type Result struct {
	Step    string  `json:"step"`
	Outcome Outcome `json:"outcome"`
	Err     string  `json:"error,omitempty"`
}

// Step describes one unit of install/configure work. Steps are built once
// per run and executed once, in order.
type Step struct {
	Name      string
	Prompt    string
	Default   bool
	Mandatory bool
	NeedsSudo bool

	// Precondition reports whether the feature is already present.
	Precondition func(ctx context.Context, c *Context) (bool, error)
	// Requires reports a missing dependency by name, or "" when satisfied.
	Requires func(ctx context.Context, c *Context) (string, error)
	Action   func(ctx context.Context, c *Context) error
	Verify   func(ctx context.Context, c *Context) error
	// Rollback restores the step's own backups and artifacts. Optional.
	Rollback func(ctx context.Context, c *Context) error
}

// Context carries the run-wide collaborators every step needs. It replaces
// the global mutable state of a typical install script with one explicit
// value, so each step is independently testable.
type Context struct {
	Platform platform.Platform
	Paths    paths.Paths
	Config   config.Config
	Prompter prompt.Prompter
	Sys      execx.System
	Pkg      *pkgmgr.Installer
	Backup   *backup.Facility
	Patcher  *zshrc.Patcher
	Console  *ui.Console

	// Getenv defaults to os.Getenv; injectable for tests.
	Getenv func(string) string

	// FontArchiveURL overrides the font download source; tests point it at
	// a local server.
	FontArchiveURL string

	handoff bool
}

// RequestHandoff asks the runner to stop after the current step so the
// remaining queue can resume under the newly installed shell.
func (c *Context) RequestHandoff() {
	c.handoff = true
}

func (c *Context) getenv(key string) string {
	if c.Getenv != nil {
		return c.Getenv(key)
	}
	return os.Getenv(key)
}

// All returns the full ordered step list for a run.
func All() []Step {
	return []Step{
		newShellStep(),
		newFrameworkStep(),
		newThemeStep(),
		newPluginsStep(),
		newFontStep(),
		newRuntimeStep(),
		newColorlsStep(),
	}
}

// Named filters All to the given names, preserving run order.
// Unknown names are dropped; the caller validates them.
func Named(names []string) []Step {
	want := make(map[string]bool, len(names))
	for _, name := range names {
		want[name] = true
	}
	var out []Step
	for _, s := range All() {
		if want[s.Name] {
			out = append(out, s)
		}
	}
	return out
}

// KnownStep reports whether name is a defined step.
func KnownStep(name string) bool {
	for _, s := range All() {
		if s.Name == name {
			return true
		}
	}
	return false
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
