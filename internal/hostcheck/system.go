package hostcheck

import (
	"os"

	"golang.org/x/sys/unix"
)

// System abstracts the host inspection calls the prober needs so tests can
// fake privilege and descriptor contents without touching the real host.
type System interface {
	Geteuid() int
	ReadFile(name string) ([]byte, error)
	KernelRelease() (string, error)
}

// RealSystem implements System against the running host.
type RealSystem struct{}

// Geteuid returns the effective user id of the process.
func (RealSystem) Geteuid() int {
	return os.Geteuid()
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// KernelRelease returns the uname release string.
func (RealSystem) KernelRelease() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(uts.Release[:]), nil
}
