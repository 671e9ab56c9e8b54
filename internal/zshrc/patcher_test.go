package zshrc

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhil41/zsh-shell-customizer/internal/backup"
)

func newTestPatcher(t *testing.T, content string) (*Patcher, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ".zshrc")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	fac := backup.New(filepath.Join(dir, "backups"), nil)
	return NewPatcher(path, fac), path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestAppendLineIfAbsent(t *testing.T) {
	p, path := newTestPatcher(t, "export EDITOR=vim\n")

	changed, err := p.AppendLineIfAbsent("alias lc='colorls -lA --sd'")
	require.NoError(t, err)
	assert.True(t, changed)

	// Second application is a no-op.
	changed, err = p.AppendLineIfAbsent("alias lc='colorls -lA --sd'")
	require.NoError(t, err)
	assert.False(t, changed)

	content := readFile(t, path)
	assert.Equal(t, 1, strings.Count(content, "alias lc='colorls -lA --sd'"))
}

func TestAppendLineIfAbsent_CreatesFile(t *testing.T) {
	p, path := newTestPatcher(t, "")

	changed, err := p.AppendLineIfAbsent("eval \"$(rbenv init - zsh)\"")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "eval \"$(rbenv init - zsh)\"\n", readFile(t, path))
}

func TestAppendLineIfAbsent_AddsTrailingNewlineFirst(t *testing.T) {
	p, path := newTestPatcher(t, "no trailing newline")

	changed, err := p.AppendLineIfAbsent("alias ls='colorls'")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "no trailing newline\nalias ls='colorls'\n", readFile(t, path))
}

func TestAppendLineIfAbsent_SubstringDoesNotCount(t *testing.T) {
	p, path := newTestPatcher(t, "# alias ls='colorls' (disabled)\n")

	changed, err := p.AppendLineIfAbsent("alias ls='colorls'")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Contains(t, readFile(t, path), "\nalias ls='colorls'\n")
}

func TestReplacePattern_Theme(t *testing.T) {
	p, path := newTestPatcher(t, "ZSH_THEME=\"robbyrussell\"\nplugins=(git)\n")
	re := regexp.MustCompile(`(?m)^ZSH_THEME=".*"$`)

	changed, err := p.ReplacePattern(re, `ZSH_THEME="powerlevel10k/powerlevel10k"`, "")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Contains(t, readFile(t, path), "ZSH_THEME=\"powerlevel10k/powerlevel10k\"\n")

	// Re-applying leaves the file untouched.
	changed, err = p.ReplacePattern(re, `ZSH_THEME="powerlevel10k/powerlevel10k"`, "")
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestReplacePattern_FallbackAppend(t *testing.T) {
	p, path := newTestPatcher(t, "plugins=(git)\n")
	re := regexp.MustCompile(`(?m)^ZSH_THEME=".*"$`)
	line := `ZSH_THEME="powerlevel10k/powerlevel10k"`

	changed, err := p.ReplacePattern(re, line, line)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Contains(t, readFile(t, path), line+"\n")

	changed, err = p.ReplacePattern(re, line, line)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 1, strings.Count(readFile(t, path), line))
}

func TestAppendPlugin(t *testing.T) {
	p, path := newTestPatcher(t, "plugins=(git)\n")

	changed, err := p.AppendPlugin("zsh-autosuggestions")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Contains(t, readFile(t, path), "plugins=(git zsh-autosuggestions)\n")

	// Idempotent under re-run: no duplicate token, no double space.
	changed, err = p.AppendPlugin("zsh-autosuggestions")
	require.NoError(t, err)
	assert.False(t, changed)
	content := readFile(t, path)
	assert.Equal(t, 1, strings.Count(content, "zsh-autosuggestions"))
	assert.NotContains(t, content, "  ")
}

func TestAppendPlugin_EmptyList(t *testing.T) {
	p, path := newTestPatcher(t, "plugins=()\n")

	changed, err := p.AppendPlugin("zsh-syntax-highlighting")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Contains(t, readFile(t, path), "plugins=(zsh-syntax-highlighting)\n")
}

func TestAppendPlugin_NoPluginsLine(t *testing.T) {
	p, path := newTestPatcher(t, "export EDITOR=vim\n")

	changed, err := p.AppendPlugin("git")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Contains(t, readFile(t, path), "plugins=(git)\n")
}

func TestHasPlugin(t *testing.T) {
	p, _ := newTestPatcher(t, "plugins=(git zsh-autosuggestions)\n")

	got, err := p.HasPlugin("zsh-autosuggestions")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = p.HasPlugin("zsh-syntax-highlighting")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestMutationBacksUpFirst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".zshrc")
	require.NoError(t, os.WriteFile(path, []byte("original\n"), 0o644))
	fac := backup.New(filepath.Join(dir, "backups"), nil)
	p := NewPatcher(path, fac)

	_, err := p.AppendLineIfAbsent("added line")
	require.NoError(t, err)

	recs := fac.Records()
	require.Len(t, recs, 1)
	data, err := os.ReadFile(recs[0].Backup)
	require.NoError(t, err)
	assert.Equal(t, "original\n", string(data))

	// A second mutation must not overwrite the first snapshot.
	_, err = p.AppendLineIfAbsent("another line")
	require.NoError(t, err)
	require.Len(t, fac.Records(), 1)
	data, err = os.ReadFile(recs[0].Backup)
	require.NoError(t, err)
	assert.Equal(t, "original\n", string(data))
}
