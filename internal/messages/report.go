package messages

// Summary report strings.
const (
	ReportHeader = "Setup summary (probed from the current system state):"

	ReportInstalledFmt    = "%s: installed"
	ReportNotInstalledFmt = "%s: not installed"
	ReportPartialFmt      = "%s: partially configured (%s)"

	ReportFeatureShell     = "zsh"
	ReportFeatureFramework = "Oh My Zsh"
	ReportFeatureTheme     = "Powerlevel10k"
	ReportFeaturePlugins   = "zsh plugins"
	ReportFeatureFont      = "MesloLGS Nerd Font"
	ReportFeatureRuntime   = "rbenv + Ruby"
	ReportFeatureColorls   = "colorls"

	ReportStatusOKLabel      = "[ ok ]"
	ReportStatusPartialLabel = "[ !! ]"
	ReportStatusMissingLabel = "[ -- ]"
	ReportLineFmt            = "  %s %s\n"
	ReportNextLineFmt        = "  - %s\n"

	ReportDetailThemeLineUnset    = "theme cloned but ZSH_THEME not set"
	ReportDetailThemeNotCloned    = "ZSH_THEME set but theme checkout missing"
	ReportDetailPluginMissingFmt  = "%s not cloned"
	ReportDetailPluginUnlistedFmt = "%s not in the plugins list"
	ReportDetailRbenvWithoutRuby  = "rbenv present but no ruby on PATH"
	ReportDetailAliasesPartial    = "alias block incomplete"

	ReportNextStepsHeader  = "Next steps:"
	ReportNextRestartShell = "Restart your terminal (or run `exec zsh`) to pick up the new configuration."
	ReportNextP10kConfig   = "Run `p10k configure` inside zsh to tune the Powerlevel10k prompt."
	ReportNextSetFont      = "Set your terminal font to \"MesloLGS NF\" so prompt glyphs render correctly."
	ReportNextDefaultShell = "Your login shell is not zsh; run `chsh -s $(command -v zsh)` to switch."
)
