package messages

// Internal operation errors and infrastructure strings.
const (
	PlatformUnsupportedFmt        = "unsupported platform %q (only linux and darwin are supported)"
	PlatformNoPackageManager      = "no supported package manager found on PATH"
	PlatformBrewMissing           = "Homebrew is required on macOS but was not found; install it from https://brew.sh first"

	PkgInstallFailedFmt = "install %s via %s: %w"

	BackupCreateDirFmt  = "create backup directory %s: %w"
	BackupCopyFmt       = "back up %s: %w"
	BackupRestoreFmt    = "restore %s from %s: %w"
	BackupNoRecordFmt   = "no backup record for %s in this run"

	PatchReadFmt        = "read %s: %w"
	PatchWriteFmt       = "write %s: %w"

	FsutilTempFileFmt = "create temp file for %s: %w"
	FsutilRenameFmt   = "move %s into place: %w"

	LockOpenFmt    = "open lock %s: %w"
	LockAcquireFmt = "lock %s: %w"
	LockTimeoutFmt = "timed out waiting for lock after %s"

	ConfigLoadFmt          = "load config %s: %w"
	ConfigBadDurationFmt   = "invalid duration %q for %s"
	ConfigBadPolicyFmt     = "invalid dependency_policy %q (want \"skip\" or \"abort\")"

	PromptRequiresTerminal = "interactive prompts require a terminal"

	ResumeTokenDecodeFmt   = "decode resume token %s: %w"
	ResumeTokenSchemaFmt   = "unsupported resume token schema_version %d"
	ResumeTokenWriteFmt    = "write resume token %s: %w"
	ResumeUnknownStepFmt   = "resume token names unknown step %q"
	ResumeExecFailedFmt    = "exec %s: %w"

	ManifestWriteFmt  = "write run manifest %s: %w"
	ManifestReadFmt   = "read run manifest %s: %w"
	ManifestSchemaFmt = "unsupported run manifest schema_version %d"

	VersionNoMatch = "no line matched the N.N.N version pattern"
)
