package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/SevinEW/monitorMoon/internal/config"
	"github.com/SevinEW/monitorMoon/internal/deps"
	"github.com/SevinEW/monitorMoon/internal/fetch"
	"github.com/SevinEW/monitorMoon/internal/hostcheck"
	"github.com/SevinEW/monitorMoon/internal/messages"
	"github.com/SevinEW/monitorMoon/internal/provision"
	"github.com/SevinEW/monitorMoon/internal/status"
	"github.com/SevinEW/monitorMoon/internal/sysd"
)

// Seams for tests; the real implementations touch the host.
var (
	loadConfig = config.Load

	probeHost = func() (hostcheck.Profile, error) {
		return hostcheck.Probe(hostcheck.RealSystem{})
	}

	runProvision = func(ctx context.Context, cfg config.Config, report *status.Reporter, stdout io.Writer, stderr io.Writer) (sysd.Definition, error) {
		runner := deps.RealRunner{Stdout: stdout, Stderr: stderr}
		orch := provision.New(
			cfg,
			provision.RealSystem{},
			fetch.New(cfg.ArtifactBaseURL, report),
			deps.NewInstaller(runner, report),
			sysd.NewSystemd(sysd.RealRunner{Stdout: stdout, Stderr: stderr}, sysd.UnitDir),
			provision.InteractiveSetup{},
			report,
		)
		return orch.Run(ctx)
	}
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong + "\n\n" + messages.ProvisionConcurrencyNote,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runInstall,
	}
	cmd.AddCommand(newUninstallCmd())
	return cmd
}

// runInstall performs the whole provisioning sequence: probe, then the staged
// orchestrator. All failures print a marked error line and exit non-zero.
func runInstall(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	report := status.NewReporter(out)

	cfg, overridden, err := loadConfig(config.DefaultOverridePath)
	if err != nil {
		report.Error("%v", err)
		return &SilentExitError{Code: 1}
	}
	if overridden {
		report.Info(messages.ConfigOverrideNotedFmt, config.DefaultOverridePath)
	}

	profile, err := probeHost()
	if err != nil {
		report.Error("%v", err)
		return &SilentExitError{Code: 1}
	}
	report.Header(messages.ProvisionHeader)
	report.Info("%s", profile.Describe())

	def, err := runProvision(cmd.Context(), cfg, report, out, cmd.ErrOrStderr())
	if err != nil {
		report.Error("%v", err)
		return &SilentExitError{Code: 1}
	}

	report.Header(messages.ProvisionSummaryHeader)
	_, _ = fmt.Fprintf(out, messages.ProvisionSummaryService, def.Name)
	_, _ = fmt.Fprintf(out, messages.ProvisionSummaryRoot, def.WorkingDirectory)
	_, _ = fmt.Fprintf(out, messages.ProvisionSummaryRemoval, cfg.UninstallScriptPath())
	return nil
}
