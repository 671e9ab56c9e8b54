// Package messages centralizes user-facing strings.
package messages

// CLI command metadata and top-level errors.
const (
	RootUse   = "zshc"
	RootShort = "Interactive zsh environment bootstrapper"
	RootLong  = "zshc detects your OS and package manager, then installs and configures zsh,\nOh My Zsh, Powerlevel10k, plugins, a Nerd Font, rbenv + Ruby, and colorls.\nEvery step asks for confirmation and backs up files before touching them."

	RunUse   = "run"
	RunShort = "Run the interactive bootstrap"

	DoctorUse   = "doctor"
	DoctorShort = "Re-probe installed features and print a status report"

	ResumeUse   = "resume"
	ResumeShort = "Continue a bootstrap handed off to a freshly installed shell"

	RollbackUse   = "rollback"
	RollbackShort = "Restore files backed up by a previous run"

	FlagYes      = "yes"
	FlagYesUsage = "assume the default answer for every prompt"

	FlagDryRun      = "dry-run"
	FlagDryRunUsage = "print planned actions without executing them"

	FlagRollbackRun      = "run"
	FlagRollbackRunUsage = "backup directory timestamp to restore (defaults to the most recent run)"

	VersionTemplate = "zshc version {{.Version}}\n"

	RunWelcomeFmt    = "This will set up your terminal environment (%s, %s).\n"
	RunTopLevelAsk   = "Proceed with the setup?"
	RunCancelled     = "Setup cancelled.\n"
	RunInterrupted   = "Interrupted. Partially completed steps were left in place; re-running is safe.\n"
	RunNonTTYErr     = "standard input is not a terminal; re-run with --yes for non-interactive mode"
	RunDryRunHeader  = "Planned steps (dry run):\n"
	RunDryRunLineFmt = "  %-12s %s\n"

	ResumeNoToken       = "no resume token found; nothing to continue"
	ResumeTokenStaleFmt = "resume token at %s is older than %s; discarding it"
	ResumeContinuingFmt = "Continuing setup under %s (%d steps remaining)\n"

	ManifestWriteWarnFmt = "could not write run manifest: %v"

	RollbackNoBackups      = "no backup directories found; nothing to restore"
	RollbackRunNotFoundFmt = "backup directory for run %s not found under %s"
	RollbackRestoredFmt    = "Restored %d file(s) from %s\n"
)
