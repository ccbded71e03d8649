// Package teardown removes a Monitor Moon installation. It is the provisioning
// state machine run in reverse, but maximally forgiving: every step is
// attempted even when an earlier one failed, and already-removed targets count
// as success. That makes it safe on partially-provisioned or clean hosts.
package teardown

import (
	"context"

	"github.com/SevinEW/monitorMoon/internal/config"
	"github.com/SevinEW/monitorMoon/internal/messages"
	"github.com/SevinEW/monitorMoon/internal/status"
	"github.com/SevinEW/monitorMoon/internal/sysd"
)

// Teardown unwinds one installation.
type Teardown struct {
	cfg        config.Config
	sys        System
	supervisor sysd.Supervisor
	report     *status.Reporter
}

// New returns a Teardown for the given configuration and collaborators.
func New(cfg config.Config, sys System, supervisor sysd.Supervisor, report *status.Reporter) *Teardown {
	return &Teardown{cfg: cfg, sys: sys, supervisor: supervisor, report: report}
}

// Run attempts every teardown step in order. Step failures surface as warnings
// and never abort the run; the goal is to leave the host as clean as possible.
// It reports whether anything was actually removed.
func (t *Teardown) Run(ctx context.Context) bool {
	name := t.cfg.ServiceName
	mutated := false

	if t.supervisor.Registered(name) {
		mutated = true
		t.step(messages.TeardownStopService, t.supervisor.Stop(ctx, name))
		t.step(messages.TeardownDisableService, t.supervisor.Disable(ctx, name))
		t.step(messages.TeardownRemoveUnit, t.supervisor.Deregister(name))
		t.step(messages.TeardownReload, t.supervisor.Reload(ctx))
	} else {
		t.skip(messages.TeardownStopService)
		t.skip(messages.TeardownDisableService)
		t.skip(messages.TeardownRemoveUnit)
	}

	if t.rootExists() {
		mutated = true
		if err := t.sys.RemoveAll(t.cfg.InstallRoot); err != nil {
			t.report.Warn(messages.TeardownStepFailedFmt, messages.TeardownRemoveRoot, err)
		} else {
			t.report.Success(messages.TeardownRootRemovedFmt, t.cfg.InstallRoot)
		}
	} else {
		t.skip(messages.TeardownRemoveRoot)
	}

	if !mutated {
		t.report.Info(messages.TeardownNothingInstalled)
	}
	return mutated
}

func (t *Teardown) step(name string, err error) {
	if err != nil {
		t.report.Warn(messages.TeardownStepFailedFmt, name, err)
		return
	}
	t.report.Success(messages.TeardownStepDoneFmt, name)
}

func (t *Teardown) skip(name string) {
	t.report.Info(messages.TeardownStepSkippedFmt, name)
}

func (t *Teardown) rootExists() bool {
	info, err := t.sys.Stat(t.cfg.InstallRoot)
	return err == nil && info.IsDir()
}
