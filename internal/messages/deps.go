package messages

// Dependency installer messages.
const (
	DepsPresentFmt    = "%s is already installed"
	DepsInstallingFmt = "Installing %s (%s)..."
	DepsInstalledFmt  = "%s installed"

	DepsInstallFailedFmt   = "install dependency %s: %w"
	DepsStillMissingFmt    = "dependency %s is still missing after installing %s"
	DepsLibrariesFmt       = "Installing agent libraries from %s..."
	DepsLibrariesFailedFmt = "install agent libraries from %s: %w"
	DepsLibrariesDone      = "Agent libraries installed"
)
