package messages

// Provisioning orchestrator messages.
const (
	ProvisionHeader = "Installing Monitor Moon"

	StagePrepareRoot  = "prepare install root"
	StageFetch        = "retrieve artifacts"
	StageDependencies = "install dependencies"
	StageSetup        = "first-run configuration"
	StageRegister     = "register service"
	StageStart        = "enable and start service"
	StageUninstaller  = "write uninstall script"

	StageFailedFmt = "%s: %w"

	ProvisionCreateRootFailedFmt = "create install root %s: %w"
	ProvisionRootReadyFmt        = "Install root %s is ready"

	FetchDownloadingFmt  = "Downloading %s..."
	FetchRequestErrFmt   = "fetch %s: build request: %w"
	FetchTransferErrFmt  = "fetch %s: %w"
	FetchBadStatusFmt    = "fetch %s: unexpected status %s"
	FetchWriteErrFmt     = "fetch %s: write %s: %w"
	FetchRetryBudgetUsed = "retry budget exhausted"

	SetupNoTerminal     = "first-run configuration needs an interactive terminal; re-run moonctl from one"
	SetupScriptFailed   = "configuration script exited with an error; the service was not registered"
	SetupScriptExitFmt  = "configuration script %s: %w"
	SetupScriptStartFmt = "Running first-run configuration (%s)..."

	ServiceRenderUnitErrFmt  = "render service unit for %s: %w"
	ServiceWriteUnitErrFmt   = "write service unit %s: %w"
	ServiceRemoveUnitErrFmt  = "remove service unit %s: %w"
	ServiceSystemctlErrFmt   = "systemctl %s %s: %w"
	ServiceReloadErrFmt      = "systemctl daemon-reload: %w"
	ServiceRegisteredFmt     = "Service %s registered"
	ServiceStartedFmt        = "Service %s enabled and started"
	ServiceNotActiveWarnFmt  = "service %s is not reporting active yet; check journalctl -u %s"
	UninstallerWrittenFmt    = "Uninstall script written to %s"
	UninstallerRenderErrFmt  = "render uninstall script: %w"
	UninstallerWriteErrFmt   = "write uninstall script %s: %w"
	ProvisionSummaryHeader   = "Monitor Moon is installed and running"
	ProvisionSummaryService  = "Service:      %s\n"
	ProvisionSummaryRoot     = "Directory:    %s\n"
	ProvisionSummaryRemoval  = "To uninstall: %s\n"
	ProvisionConcurrencyNote = "Do not run two installer instances against the same host at once; runs are not coordinated."
)
