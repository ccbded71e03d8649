// Package hostcheck decides whether provisioning may proceed on this host.
// It is the first thing the installer runs and performs no mutations.
package hostcheck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SevinEW/monitorMoon/internal/messages"
)

// OSReleasePath is the well-known host descriptor identifying the distribution.
const OSReleasePath = "/etc/os-release"

// ErrInsufficientPrivilege reports that the process is not running as root.
var ErrInsufficientPrivilege = errors.New(messages.ProbeNeedRoot)

// ErrUnknownHost reports that the OS identity could not be determined.
var ErrUnknownHost = errors.New("unknown host")

// Profile is the read-only result of a successful probe.
type Profile struct {
	// ID is the os-release ID field (e.g. "ubuntu", "debian").
	ID string
	// PrettyName is the os-release PRETTY_NAME field, if present.
	PrettyName string
	// Kernel is the running kernel release, best effort.
	Kernel string
}

// Describe returns the operator-facing one-line host description.
func (p Profile) Describe() string {
	name := p.PrettyName
	if name == "" {
		name = p.ID
	}
	if p.Kernel == "" {
		return fmt.Sprintf(messages.ProbeDetectedOSBareFmt, name)
	}
	return fmt.Sprintf(messages.ProbeDetectedOSFmt, name, p.Kernel)
}

// RequireRoot fails with ErrInsufficientPrivilege unless the process runs as
// root. Both provisioning and teardown call this before any side effect.
func RequireRoot(sys System) error {
	if sys.Geteuid() != 0 {
		return ErrInsufficientPrivilege
	}
	return nil
}

// Probe verifies privilege and host identity, in that order. The privilege
// check comes first so an unprivileged run fails before any other side effect.
func Probe(sys System) (Profile, error) {
	if err := RequireRoot(sys); err != nil {
		return Profile{}, err
	}

	data, err := sys.ReadFile(OSReleasePath)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: "+messages.ProbeOSReleaseMissingFmt, ErrUnknownHost, OSReleasePath, err)
	}
	profile, ok := parseOSRelease(string(data))
	if !ok {
		return Profile{}, fmt.Errorf("%w: "+messages.ProbeOSReleaseEmptyFmt, ErrUnknownHost, OSReleasePath)
	}

	// Kernel release is informational only; a uname failure never blocks install.
	if kernel, err := sys.KernelRelease(); err == nil {
		profile.Kernel = kernel
	}
	return profile, nil
}

// parseOSRelease extracts ID and PRETTY_NAME from os-release key-value lines.
func parseOSRelease(content string) (Profile, bool) {
	var profile Profile
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		switch strings.TrimSpace(key) {
		case "ID":
			profile.ID = value
		case "PRETTY_NAME":
			profile.PrettyName = value
		}
	}
	return profile, profile.ID != ""
}
