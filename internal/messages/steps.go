package messages

// Step names, prompts, and step-scoped errors.
const (
	StepNameShell     = "zsh"
	StepNameFramework = "oh-my-zsh"
	StepNameTheme     = "powerlevel10k"
	StepNamePlugins   = "plugins"
	StepNameFont      = "nerd-font"
	StepNameRuntime   = "ruby"
	StepNameColorls   = "colorls"

	StepPromptShell        = "Install zsh?"
	StepPromptDefaultShell = "Set zsh as your default login shell?"
	StepPromptHandoff      = "Continue the remaining setup under zsh now?"
	StepPromptFramework    = "Install Oh My Zsh?"
	StepPromptTheme        = "Install the Powerlevel10k prompt theme?"
	StepPromptPlugins      = "Install zsh-autosuggestions and zsh-syntax-highlighting?"
	StepPromptFont         = "Install the MesloLGS Nerd Font?"
	StepPromptRuntime      = "Install rbenv and the latest stable Ruby?"
	StepPromptColorls      = "Install colorls and its aliases?"
	StepPromptRollbackFmt  = "Verification failed for %s. Roll back its changes?"

	StepAlreadyPresentFmt   = "%s is already installed; skipping"
	StepDeclinedFmt         = "Skipping %s"
	StepInstalledFmt        = "%s installed"
	StepFailedFmt           = "%s failed: %v"
	StepRolledBackFmt       = "%s rolled back"
	StepRollbackFailedFmt   = "rollback of %s failed: %v"
	StepDependencySkipFmt   = "%s requires %s, which is not installed; skipping"
	StepDependencyAbortFmt  = "%s requires %s, which is not installed"
	StepPrivilegeDeniedFmt  = "could not obtain elevated privileges for %s; skipping"
	StepMandatoryFailedFmt  = "mandatory step %s failed: %w"
	StepVerifyFailedFmt     = "verification failed for %s: %w"
	StepSudoCheckFailedFmt  = "sudo credential check failed: %w"
	StepHandoffWritingToken = "Writing resume token before switching shells"

	ShellNotOnPathAfterInstall = "zsh not found on PATH after installation"
	ShellAllowListAppendFmt    = "adding %s to %s"
	ShellChangeFailedFmt       = "could not change the login shell: %v"

	FrameworkMarkerMissing  = "oh-my-zsh directory missing after install"
	FrameworkZshrcMissing   = ".zshrc missing after oh-my-zsh install"
	FrameworkInstallViaCurl = "Running the Oh My Zsh installer"

	ThemeCloneFailedFmt = "clone powerlevel10k: %w"
	ThemeLineMissing    = "ZSH_THEME not set to powerlevel10k after patch"

	PluginCloneFailedFmt  = "clone %s: %w"
	PluginLineMissingFmt  = "plugin %s missing from the plugins list after patch"
	PluginDirMissingFmt   = "plugin directory %s missing after clone"

	FontDownloadFailedFmt    = "download font archive: %w"
	FontDownloadStatusFmt    = "download font archive: unexpected status %s"
	FontArchiveTooSmallFmt   = "font archive is %d bytes (below the %d byte floor); refusing to extract"
	FontArchiveNotZip        = "font archive is not a zip file; refusing to extract"
	FontArchiveNoFontFiles   = "font archive contained no font files"
	FontCacheRefreshWarnFmt  = "font cache refresh failed (non-fatal): %v"
	FontNotPresentAfterCopy  = "no font files present after install"

	RuntimeRbenvListFailedFmt   = "rbenv install -l: %w"
	RuntimeInstallFailedFmt     = "rbenv install %s: %w"
	RuntimeGlobalFailedFmt      = "rbenv global %s: %w"
	RuntimeVerifyGlobalFmt      = "rbenv global reports %q, expected %q"
	RuntimeRequiresRbenv        = "rbenv"
	RuntimeRequiresRuby         = "ruby"

	ColorlsGemInstallFailedFmt = "gem install colorls: %w"
	ColorlsAliasesMissing      = "colorls aliases missing from .zshrc"
)
