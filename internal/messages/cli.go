package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "moonctl"
	// RootShort is the short description for the root command.
	RootShort = "Monitor Moon installer"
	RootLong  = "Install the Monitor Moon monitoring agent on this host and register it as a supervised systemd service."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// UninstallUse is the uninstall command name.
	UninstallUse   = "uninstall"
	UninstallShort = "Remove the Monitor Moon agent from this host"
	UninstallLong  = "Stop and deregister the Monitor Moon service and delete its installation directory. Safe to run even when nothing is installed."

	UninstallConfirmPrompt   = "Remove Monitor Moon and all of its files?"
	UninstallConfirmAborted  = "Uninstall cancelled."
	UninstallConfirmErrFmt   = "uninstall confirmation failed: %w"
	UninstallDoneFmt         = "Monitor Moon has been removed from this host.\n"
	UninstallCompletedHeader = "Uninstall complete"

	// StatusOKLabel and friends prefix colored status lines.
	StatusOKLabel     = "[ OK ]"
	StatusWarnLabel   = "[WARN]"
	StatusFailLabel   = "[FAIL]"
	StatusHeaderArrow = "==>"
)
