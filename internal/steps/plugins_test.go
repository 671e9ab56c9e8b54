package steps

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPluginsStepClonesAndRegistersEachPlugin(t *testing.T) {
	env := newTestEnv(t)
	env.mkdir(t, env.ctx.Paths.OhMyZsh)
	env.writeZshrc(t, "plugins=(git)\n")
	s := newPluginsStep()

	require.NoError(t, s.Action(context.Background(), env.ctx))

	for _, p := range Plugins {
		assert.True(t, env.sys.Ran("git clone --depth=1 "+p.Repo+" "+env.ctx.Paths.PluginDir(p.Name)), p.Name)
	}
	assert.Contains(t, env.readZshrc(t), "plugins=(git zsh-autosuggestions zsh-syntax-highlighting)")
}

func TestPluginsStepRerunAddsNothing(t *testing.T) {
	env := newTestEnv(t)
	env.mkdir(t, env.ctx.Paths.OhMyZsh)
	for _, p := range Plugins {
		env.mkdir(t, env.ctx.Paths.PluginDir(p.Name))
	}
	env.writeZshrc(t, "plugins=(git zsh-autosuggestions zsh-syntax-highlighting)\n")
	s := newPluginsStep()

	present, err := s.Precondition(context.Background(), env.ctx)
	require.NoError(t, err)
	assert.True(t, present)

	// Even if forced, the action stays idempotent.
	before := env.readZshrc(t)
	require.NoError(t, s.Action(context.Background(), env.ctx))
	assert.Empty(t, env.sys.Calls)
	assert.Equal(t, before, env.readZshrc(t))
}

func TestPluginsStepPreconditionNeedsBothDirAndListing(t *testing.T) {
	env := newTestEnv(t)
	for _, p := range Plugins {
		env.mkdir(t, env.ctx.Paths.PluginDir(p.Name))
	}
	env.writeZshrc(t, "plugins=(git)\n")
	s := newPluginsStep()

	present, err := s.Precondition(context.Background(), env.ctx)
	require.NoError(t, err)
	assert.False(t, present, "cloned but not listed")
}

func TestPluginsStepVerifyReportsMissingListing(t *testing.T) {
	env := newTestEnv(t)
	for _, p := range Plugins {
		env.mkdir(t, env.ctx.Paths.PluginDir(p.Name))
	}
	env.writeZshrc(t, "plugins=(git zsh-autosuggestions)\n")
	s := newPluginsStep()

	err := s.Verify(context.Background(), env.ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zsh-syntax-highlighting")
}

func TestPluginsStepRollbackRemovesOnlyFreshClones(t *testing.T) {
	env := newTestEnv(t)
	env.mkdir(t, env.ctx.Paths.OhMyZsh)
	// First plugin pre-exists, second gets cloned this run.
	env.mkdir(t, env.ctx.Paths.PluginDir(Plugins[0].Name))
	env.writeZshrc(t, "plugins=(git)\n")
	s := newPluginsStep()
	require.NoError(t, s.Action(context.Background(), env.ctx))
	env.mkdir(t, env.ctx.Paths.PluginDir(Plugins[1].Name))

	require.NoError(t, s.Rollback(context.Background(), env.ctx))
	assert.DirExists(t, env.ctx.Paths.PluginDir(Plugins[0].Name))
	assert.NoDirExists(t, env.ctx.Paths.PluginDir(Plugins[1].Name))
	assert.Equal(t, "plugins=(git)\n", env.readZshrc(t))
}
