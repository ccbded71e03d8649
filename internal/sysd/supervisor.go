package sysd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/SevinEW/monitorMoon/internal/fsutil"
	"github.com/SevinEW/monitorMoon/internal/messages"
)

// Supervisor is the narrow surface this tool needs from the host's service
// supervisor. The service's lifecycle after registration belongs entirely to
// the supervisor, not to this process.
type Supervisor interface {
	// Register writes (or overwrites) the unit definition.
	Register(def Definition) error
	// Deregister removes the unit definition; a missing unit is not an error.
	Deregister(name string) error
	// Registered reports whether a unit definition exists for name.
	Registered(name string) bool
	// Reload re-reads the supervisor's unit index.
	Reload(ctx context.Context) error
	Enable(ctx context.Context, name string) error
	Start(ctx context.Context, name string) error
	Stop(ctx context.Context, name string) error
	Disable(ctx context.Context, name string) error
	// IsActive reports whether the service is currently running.
	IsActive(ctx context.Context, name string) bool
}

// Runner executes supervisor commands on the host.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// RealRunner runs systemctl with output streamed to the operator.
type RealRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the command and blocks until it completes.
func (r RealRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}

// Systemd implements Supervisor by writing unit files and invoking systemctl.
type Systemd struct {
	runner  Runner
	unitDir string
}

// NewSystemd returns a Supervisor over the given runner. unitDir is normally
// UnitDir; tests point it at a scratch directory.
func NewSystemd(runner Runner, unitDir string) *Systemd {
	return &Systemd{runner: runner, unitDir: unitDir}
}

// Register renders the definition and writes the unit file, replacing any
// previous definition with the same name.
func (s *Systemd) Register(def Definition) error {
	content, err := def.Render()
	if err != nil {
		return err
	}
	path := UnitPath(s.unitDir, def.Name)
	if err := fsutil.WriteFileAtomic(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf(messages.ServiceWriteUnitErrFmt, path, err)
	}
	return nil
}

// Deregister deletes the unit file. A unit that is already gone satisfies the
// post-condition, so ErrNotExist is swallowed.
func (s *Systemd) Deregister(name string) error {
	path := UnitPath(s.unitDir, name)
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf(messages.ServiceRemoveUnitErrFmt, path, err)
	}
	return nil
}

// Registered reports whether the unit file exists.
func (s *Systemd) Registered(name string) bool {
	_, err := os.Stat(UnitPath(s.unitDir, name))
	return err == nil
}

// Reload runs systemctl daemon-reload so the unit index reflects the latest
// registered definitions.
func (s *Systemd) Reload(ctx context.Context) error {
	if err := s.runner.Run(ctx, "systemctl", "daemon-reload"); err != nil {
		return fmt.Errorf(messages.ServiceReloadErrFmt, err)
	}
	return nil
}

// Enable marks the service to start on boot.
func (s *Systemd) Enable(ctx context.Context, name string) error {
	return s.systemctl(ctx, "enable", name)
}

// Start starts the service immediately.
func (s *Systemd) Start(ctx context.Context, name string) error {
	return s.systemctl(ctx, "start", name)
}

// Stop stops the service.
func (s *Systemd) Stop(ctx context.Context, name string) error {
	return s.systemctl(ctx, "stop", name)
}

// Disable unmarks the service from starting on boot.
func (s *Systemd) Disable(ctx context.Context, name string) error {
	return s.systemctl(ctx, "disable", name)
}

// IsActive reports whether systemctl considers the service active.
func (s *Systemd) IsActive(ctx context.Context, name string) bool {
	return s.runner.Run(ctx, "systemctl", "is-active", "--quiet", name) == nil
}

func (s *Systemd) systemctl(ctx context.Context, verb string, name string) error {
	if err := s.runner.Run(ctx, "systemctl", verb, name); err != nil {
		return fmt.Errorf(messages.ServiceSystemctlErrFmt, verb, name, err)
	}
	return nil
}
