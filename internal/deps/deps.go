// Package deps ensures the agent's runtime dependencies are present.
// Every dependency follows the same probe, install, re-probe cycle so a rerun
// on a fully provisioned host performs no installs at all.
package deps

import (
	"context"
	"fmt"

	"github.com/SevinEW/monitorMoon/internal/config"
	"github.com/SevinEW/monitorMoon/internal/messages"
	"github.com/SevinEW/monitorMoon/internal/status"
)

// Dependency is one probeable host capability and the apt package providing it.
type Dependency struct {
	Command string
	Package string
}

// InstallError reports a dependency that could not be made available.
// Later dependencies are not attempted once one has definitively failed.
type InstallError struct {
	Name string
	Err  error
}

func (e *InstallError) Error() string {
	return fmt.Errorf(messages.DepsInstallFailedFmt, e.Name, e.Err).Error()
}

func (e *InstallError) Unwrap() error { return e.Err }

// HostSet converts the configured package table into the ordered dependency set.
func HostSet(packages []config.HostPackage) []Dependency {
	set := make([]Dependency, 0, len(packages))
	for _, pkg := range packages {
		set = append(set, Dependency{Command: pkg.Command, Package: pkg.Package})
	}
	return set
}

// Installer drives the host package manager through a Runner.
type Installer struct {
	runner    Runner
	report    *status.Reporter
	refreshed bool
}

// NewInstaller returns an Installer using the given runner for probing and
// package-manager invocations.
func NewInstaller(runner Runner, report *status.Reporter) *Installer {
	return &Installer{runner: runner, report: report}
}

// Ensure walks the dependency set in declared order. Present dependencies are
// left untouched; missing ones are installed and re-probed. The first
// dependency that is still missing after its install aborts the walk.
func (i *Installer) Ensure(ctx context.Context, set []Dependency) error {
	for _, dep := range set {
		if _, err := i.runner.LookPath(dep.Command); err == nil {
			i.report.Success(messages.DepsPresentFmt, dep.Command)
			continue
		}

		i.report.Info(messages.DepsInstallingFmt, dep.Command, dep.Package)
		i.refreshPackageIndex(ctx)
		if err := i.runner.Run(ctx, "apt-get", "install", "-y", dep.Package); err != nil {
			return &InstallError{Name: dep.Command, Err: err}
		}
		if _, err := i.runner.LookPath(dep.Command); err != nil {
			return &InstallError{
				Name: dep.Command,
				Err:  fmt.Errorf(messages.DepsStillMissingFmt, dep.Command, dep.Package),
			}
		}
		i.report.Success(messages.DepsInstalledFmt, dep.Command)
	}
	return nil
}

// InstallLibraries installs the agent's library dependencies as one batch via
// the interpreter's package manager. The interpreter and pip are verified host
// dependencies by the time this runs.
func (i *Installer) InstallLibraries(ctx context.Context, manifestPath string) error {
	i.report.Info(messages.DepsLibrariesFmt, manifestPath)
	if err := i.runner.Run(ctx, "pip3", "install", "-r", manifestPath); err != nil {
		return fmt.Errorf(messages.DepsLibrariesFailedFmt, manifestPath, err)
	}
	i.report.Success(messages.DepsLibrariesDone)
	return nil
}

// refreshPackageIndex runs apt-get update once per Ensure pass, before the
// first install. A stale index is recoverable, so failures only warn.
func (i *Installer) refreshPackageIndex(ctx context.Context) {
	if i.refreshed {
		return
	}
	i.refreshed = true
	if err := i.runner.Run(ctx, "apt-get", "update"); err != nil {
		i.report.Warn("apt-get update: %v (continuing)", err)
	}
}
