// Package provision drives the install state machine: from a bare compatible
// host to a running supervised service. Stages run strictly in order, each
// gated on the success of the previous one, and every stage is safe to re-run.
package provision

import (
	"context"
	"errors"
	"fmt"

	"github.com/SevinEW/monitorMoon/internal/config"
	"github.com/SevinEW/monitorMoon/internal/deps"
	"github.com/SevinEW/monitorMoon/internal/messages"
	"github.com/SevinEW/monitorMoon/internal/status"
	"github.com/SevinEW/monitorMoon/internal/sysd"
)

// interpreterPath is the fixed interpreter used in the service start command.
const interpreterPath = "/usr/bin/python3"

// ErrSetupFailed reports a non-zero exit from the first-run configuration
// script. It is fatal: a misconfigured agent must never be registered for
// supervision, where it would be restarted forever.
var ErrSetupFailed = errors.New(messages.SetupScriptFailed)

// StageError names the stage a provisioning run failed in.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Errorf(messages.StageFailedFmt, e.Stage, e.Err).Error()
}

func (e *StageError) Unwrap() error { return e.Err }

// ArtifactFetcher retrieves named artifacts into the install root.
type ArtifactFetcher interface {
	FetchAll(ctx context.Context, destDir string, names []string) error
}

// DependencyInstaller ensures host and library dependencies are present.
type DependencyInstaller interface {
	Ensure(ctx context.Context, set []deps.Dependency) error
	InstallLibraries(ctx context.Context, manifestPath string) error
}

// SetupRunner invokes the first-run configuration script and reports its exit
// status as an error. The real implementation inherits the operator's terminal.
type SetupRunner interface {
	Run(ctx context.Context, root string, scriptPath string) error
}

// Orchestrator wires the collaborators the state machine calls out to.
// A failure after root creation leaves the root and fetched files in place;
// re-running provisioning (idempotent) or uninstalling is the recovery path.
type Orchestrator struct {
	cfg        config.Config
	sys        System
	fetcher    ArtifactFetcher
	installer  DependencyInstaller
	supervisor sysd.Supervisor
	setup      SetupRunner
	report     *status.Reporter

	definition sysd.Definition
}

// New returns an Orchestrator for the given configuration and collaborators.
func New(cfg config.Config, sys System, fetcher ArtifactFetcher, installer DependencyInstaller, supervisor sysd.Supervisor, setup SetupRunner, report *status.Reporter) *Orchestrator {
	return &Orchestrator{
		cfg:        cfg,
		sys:        sys,
		fetcher:    fetcher,
		installer:  installer,
		supervisor: supervisor,
		setup:      setup,
		report:     report,
	}
}

type stage struct {
	name string
	run  func(ctx context.Context) error
}

// Run executes the provisioning sequence and returns the registered service
// definition. The error, if any, names the stage that failed.
func (o *Orchestrator) Run(ctx context.Context) (sysd.Definition, error) {
	stages := []stage{
		{name: messages.StagePrepareRoot, run: o.prepareRoot},
		{name: messages.StageFetch, run: o.fetchArtifacts},
		{name: messages.StageDependencies, run: o.installDependencies},
		{name: messages.StageSetup, run: o.runSetup},
		{name: messages.StageRegister, run: o.registerService},
		{name: messages.StageStart, run: o.enableAndStart},
		{name: messages.StageUninstaller, run: o.writeUninstaller},
	}
	for _, s := range stages {
		o.report.Header(s.name)
		if err := s.run(ctx); err != nil {
			return sysd.Definition{}, &StageError{Stage: s.name, Err: err}
		}
	}
	return o.definition, nil
}

// prepareRoot creates the install root. An existing root is not an error; it
// is what a re-run on a provisioned host looks like.
func (o *Orchestrator) prepareRoot(context.Context) error {
	if err := o.sys.MkdirAll(o.cfg.InstallRoot, 0o755); err != nil {
		return fmt.Errorf(messages.ProvisionCreateRootFailedFmt, o.cfg.InstallRoot, err)
	}
	o.report.Success(messages.ProvisionRootReadyFmt, o.cfg.InstallRoot)
	return nil
}

func (o *Orchestrator) fetchArtifacts(ctx context.Context) error {
	return o.fetcher.FetchAll(ctx, o.cfg.InstallRoot, o.cfg.ArtifactNames())
}

// installDependencies ensures host executables first, then installs the
// agent's library dependencies as one batch from the fetched manifest.
func (o *Orchestrator) installDependencies(ctx context.Context) error {
	if err := o.installer.Ensure(ctx, deps.HostSet(o.cfg.HostPackages)); err != nil {
		return err
	}
	return o.installer.InstallLibraries(ctx, o.cfg.ArtifactPath(config.ManifestArtifact))
}

// runSetup hands the operator's terminal to the configuration script. Its exit
// status gates everything after it.
func (o *Orchestrator) runSetup(ctx context.Context) error {
	script := o.cfg.ArtifactPath(config.SetupArtifact)
	o.report.Info(messages.SetupScriptStartFmt, script)
	if err := o.setup.Run(ctx, o.cfg.InstallRoot, script); err != nil {
		return fmt.Errorf("%w: "+messages.SetupScriptExitFmt, ErrSetupFailed, script, err)
	}
	return nil
}

// registerService renders the fixed service definition, hands it to the
// supervisor, and reloads the unit index so it takes effect.
func (o *Orchestrator) registerService(ctx context.Context) error {
	o.definition = sysd.Definition{
		Name:                o.cfg.ServiceName,
		Description:         "Monitor Moon server monitoring agent",
		WorkingDirectory:    o.cfg.InstallRoot,
		ExecStart:           interpreterPath + " " + o.cfg.ArtifactPath(config.EntrypointArtifact),
		RestartDelaySeconds: o.cfg.RestartDelaySeconds,
	}
	if err := o.supervisor.Register(o.definition); err != nil {
		return err
	}
	if err := o.supervisor.Reload(ctx); err != nil {
		return err
	}
	o.report.Success(messages.ServiceRegisteredFmt, o.cfg.ServiceName)
	return nil
}

func (o *Orchestrator) enableAndStart(ctx context.Context) error {
	if err := o.supervisor.Enable(ctx, o.cfg.ServiceName); err != nil {
		return err
	}
	if err := o.supervisor.Start(ctx, o.cfg.ServiceName); err != nil {
		return err
	}
	if !o.supervisor.IsActive(ctx, o.cfg.ServiceName) {
		o.report.Warn(messages.ServiceNotActiveWarnFmt, o.cfg.ServiceName, o.cfg.ServiceName)
	}
	o.report.Success(messages.ServiceStartedFmt, o.cfg.ServiceName)
	return nil
}

// writeUninstaller emits the self-contained teardown script so a later removal
// needs neither network access nor this binary.
func (o *Orchestrator) writeUninstaller(context.Context) error {
	content, err := renderUninstallScript(o.cfg)
	if err != nil {
		return err
	}
	path := o.cfg.UninstallScriptPath()
	if err := o.sys.WriteFileAtomic(path, []byte(content), 0o755); err != nil {
		return fmt.Errorf(messages.UninstallerWriteErrFmt, path, err)
	}
	o.report.Success(messages.UninstallerWrittenFmt, path)
	return nil
}
