package steps

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akhil41/zsh-shell-customizer/internal/backup"
	"github.com/akhil41/zsh-shell-customizer/internal/config"
	"github.com/akhil41/zsh-shell-customizer/internal/paths"
	"github.com/akhil41/zsh-shell-customizer/internal/pkgmgr"
	"github.com/akhil41/zsh-shell-customizer/internal/platform"
	"github.com/akhil41/zsh-shell-customizer/internal/prompt"
	"github.com/akhil41/zsh-shell-customizer/internal/testutil"
	"github.com/akhil41/zsh-shell-customizer/internal/ui"
	"github.com/akhil41/zsh-shell-customizer/internal/zshrc"
)

// testEnv bundles a fully wired Context rooted in a temp home directory.
type testEnv struct {
	ctx  *Context
	sys  *testutil.FakeSystem
	home string
	out  *bytes.Buffer
}

func linuxAptPlatform() platform.Platform {
	return platform.Platform{
		OS:      platform.OSLinux,
		Manager: platform.PackageManager{Name: "apt-get", InstallArgs: []string{"install", "-y"}, NeedsSudo: true},
	}
}

// acceptAll answers every prompt affirmatively.
func acceptAll() prompt.Prompter {
	return prompt.Funcs{ConfirmFunc: func(string, bool) (bool, error) { return true, nil }}
}

// declineAll answers every prompt negatively.
func declineAll() prompt.Prompter {
	return prompt.Funcs{ConfirmFunc: func(string, bool) (bool, error) { return false, nil }}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	home := t.TempDir()
	stateDir := filepath.Join(home, ".local", "state", "zshc")

	p := paths.Paths{
		Home:         home,
		Zshrc:        filepath.Join(home, ".zshrc"),
		OhMyZsh:      filepath.Join(home, ".oh-my-zsh"),
		CustomDir:    filepath.Join(home, ".oh-my-zsh", "custom"),
		FontDir:      filepath.Join(home, ".local", "share", "fonts"),
		RbenvRoot:    filepath.Join(home, ".rbenv"),
		StateDir:     stateDir,
		LogFile:      filepath.Join(stateDir, "zshc.log"),
		BackupParent: filepath.Join(stateDir, "backups"),
		ResumeToken:  filepath.Join(stateDir, "resume.json"),
		Manifest:     filepath.Join(stateDir, "last-run.json"),
		LockFile:     filepath.Join(stateDir, "run.lock"),
		EtcShells:    filepath.Join(home, "etc-shells"),
	}

	sys := &testutil.FakeSystem{}
	fac := backup.New(p.BackupParent, nil)
	out := &bytes.Buffer{}
	plat := linuxAptPlatform()

	env := &testEnv{
		sys:  sys,
		home: home,
		out:  out,
		ctx: &Context{
			Platform: plat,
			Paths:    p,
			Config:   config.Default(),
			Prompter: acceptAll(),
			Sys:      sys,
			Pkg:      pkgmgr.New(plat, sys),
			Backup:   fac,
			Patcher:  zshrc.NewPatcher(p.Zshrc, fac),
			Console:  ui.New(out),
			Getenv:   func(string) string { return "" },
		},
	}
	return env
}

func (e *testEnv) writeZshrc(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(e.ctx.Paths.Zshrc, []byte(content), 0o644))
}

func (e *testEnv) readZshrc(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(e.ctx.Paths.Zshrc)
	require.NoError(t, err)
	return string(data)
}

func (e *testEnv) mkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755))
}

func outcomeOf(results []Result, step string) Outcome {
	for _, r := range results {
		if r.Step == step {
			return r.Outcome
		}
	}
	return ""
}
