package teardown

import "os"

// System abstracts the filesystem operations teardown needs.
type System interface {
	Stat(name string) (os.FileInfo, error)
	RemoveAll(path string) error
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// RemoveAll removes path and any children it contains.
func (RealSystem) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
