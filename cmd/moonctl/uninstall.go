package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/SevinEW/monitorMoon/internal/config"
	"github.com/SevinEW/monitorMoon/internal/hostcheck"
	"github.com/SevinEW/monitorMoon/internal/messages"
	"github.com/SevinEW/monitorMoon/internal/status"
	"github.com/SevinEW/monitorMoon/internal/sysd"
	"github.com/SevinEW/monitorMoon/internal/teardown"
	"github.com/SevinEW/monitorMoon/internal/terminal"
)

var (
	requireRoot = func() error {
		return hostcheck.RequireRoot(hostcheck.RealSystem{})
	}

	isInteractiveTerminal = terminal.IsInteractive

	runConfirmForm = func(form *huh.Form) error { return form.Run() }

	confirmUninstallFunc = confirmUninstall

	runTeardown = func(ctx context.Context, cfg config.Config, report *status.Reporter, stdout io.Writer, stderr io.Writer) bool {
		supervisor := sysd.NewSystemd(sysd.RealRunner{Stdout: stdout, Stderr: stderr}, sysd.UnitDir)
		return teardown.New(cfg, teardown.RealSystem{}, supervisor, report).Run(ctx)
	}
)

func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.UninstallUse,
		Short: messages.UninstallShort,
		Long:  messages.UninstallLong,
		Args:  cobra.NoArgs,
		RunE:  runUninstall,
	}
}

// runUninstall tears the installation down in-process. When attached to a
// terminal it confirms first; scripted invocations proceed without prompting.
func runUninstall(cmd *cobra.Command, args []string) error {
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

	if err := requireRoot(); err != nil {
		report.Error("%v", err)
		return &SilentExitError{Code: 1}
	}

	if isInteractiveTerminal() {
		proceed, err := confirmUninstallFunc()
		if err != nil {
			return fmt.Errorf(messages.UninstallConfirmErrFmt, err)
		}
		if !proceed {
			_, _ = fmt.Fprintln(out, messages.UninstallConfirmAborted)
			return nil
		}
	}

	report.Header(messages.TeardownHeader)
	if runTeardown(cmd.Context(), cfg, report, out, cmd.ErrOrStderr()) {
		report.Header(messages.UninstallCompletedHeader)
		_, _ = fmt.Fprintf(out, messages.UninstallDoneFmt)
	}
	return nil
}

// confirmUninstall asks the operator before removing anything. Aborting the
// form (ctrl-c / esc) counts as declining, not as an error.
func confirmUninstall() (bool, error) {
	var proceed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(messages.UninstallConfirmPrompt).
			Value(&proceed),
	))
	if err := runConfirmForm(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return proceed, nil
}
