package steps

// Upstream sources and the config lines each feature leaves behind. The
// exported values double as probe targets for the summary report.
const (
	ohMyZshInstallURL = "https://raw.githubusercontent.com/ohmyzsh/ohmyzsh/master/tools/install.sh"

	p10kRepo = "https://github.com/romkatv/powerlevel10k.git"
	// ThemeLine is the ZSH_THEME assignment the theme step guarantees.
	ThemeLine = `ZSH_THEME="powerlevel10k/powerlevel10k"`

	rbenvRepo     = "https://github.com/rbenv/rbenv.git"
	rubyBuildRepo = "https://github.com/rbenv/ruby-build.git"

	// RbenvPathLine and RbenvInitLine wire rbenv into the shell config.
	RbenvPathLine = `export PATH="$HOME/.rbenv/bin:$PATH"`
	RbenvInitLine = `eval "$(rbenv init - zsh)"`

	fontArchiveURL = "https://github.com/ryanoasis/nerd-fonts/releases/latest/download/Meslo.zip"
	// FontGlob matches the installed font family in the font directory.
	FontGlob = "MesloLGS*"
	// fontMinArchiveBytes rejects truncated downloads before extraction.
	fontMinArchiveBytes = 1024
)

// ColorlsAliases are appended by the colorls step; the first line doubles as
// the rerun guard.
var ColorlsAliases = []string{
	`alias lc='colorls -lA --sd'`,
	`alias ls='colorls'`,
	`alias la='colorls -al'`,
}

// PluginSpec names a zsh plugin and where to clone it from.
type PluginSpec struct {
	Name string
	Repo string
}

// Plugins lists the zsh plugins the plugins step manages.
var Plugins = []PluginSpec{
	{Name: "zsh-autosuggestions", Repo: "https://github.com/zsh-users/zsh-autosuggestions.git"},
	{Name: "zsh-syntax-highlighting", Repo: "https://github.com/zsh-users/zsh-syntax-highlighting.git"},
}
