package messages

// Configuration messages.
const (
	ConfigReadFailedFmt    = "read installer config %s: %w"
	ConfigInvalidFmt       = "parse installer config %s: %w"
	ConfigExpandRootFmt    = "expand install root %q: %w"
	ConfigRootNotAbsFmt    = "install root %q must be an absolute path"
	ConfigServiceEmptyFmt  = "installer config %s: service_name must not be empty"
	ConfigBaseURLFmt       = "installer config %s: artifact_base_url %q must be an absolute http(s) URL"
	ConfigRestartDelayFmt  = "installer config %s: restart_delay_seconds must be positive, got %d"
	ConfigPackageEntryFmt  = "installer config %s: host package #%d needs both command and package"
	ConfigOverrideNotedFmt = "Using installer overrides from %s"
)
