package messages

// Host compatibility probe messages.
const (
	ProbeNeedRoot = "this installer must run as root (try: sudo moonctl)"

	ProbeOSReleaseMissingFmt = "cannot identify this host: %s is missing or unreadable: %v"
	ProbeOSReleaseEmptyFmt   = "cannot identify this host: %s has no ID field"

	ProbeDetectedOSFmt     = "Detected %s (kernel %s)"
	ProbeDetectedOSBareFmt = "Detected %s"
)
