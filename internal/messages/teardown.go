package messages

// Teardown messages. Teardown steps never abort the run; failures surface as warnings.
const (
	TeardownHeader = "Removing Monitor Moon"

	TeardownStopService    = "stop service"
	TeardownDisableService = "disable service"
	TeardownRemoveUnit     = "remove service unit"
	TeardownReload         = "reload service supervisor"
	TeardownRemoveRoot     = "remove install root"

	TeardownStepFailedFmt    = "%s: %v (continuing)"
	TeardownStepDoneFmt      = "%s: done"
	TeardownStepSkippedFmt   = "%s: nothing to do"
	TeardownRootRemovedFmt   = "Removed %s"
	TeardownNothingInstalled = "No Monitor Moon installation found; nothing to remove."
)
