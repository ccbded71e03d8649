package main

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SevinEW/monitorMoon/internal/config"
	"github.com/SevinEW/monitorMoon/internal/status"
)

func stubRoot(t *testing.T, err error) {
	t.Helper()
	prev := requireRoot
	requireRoot = func() error { return err }
	t.Cleanup(func() { requireRoot = prev })
}

func stubInteractive(t *testing.T, interactive bool) {
	t.Helper()
	prev := isInteractiveTerminal
	isInteractiveTerminal = func() bool { return interactive }
	t.Cleanup(func() { isInteractiveTerminal = prev })
}

func stubTeardown(t *testing.T, mutated bool) *int {
	t.Helper()
	calls := 0
	prev := runTeardown
	runTeardown = func(context.Context, config.Config, *status.Reporter, io.Writer, io.Writer) bool {
		calls++
		return mutated
	}
	t.Cleanup(func() { runTeardown = prev })
	return &calls
}

func TestUninstallNonInteractiveSkipsPrompt(t *testing.T) {
	disableColor(t)
	stubConfig(t)
	stubRoot(t, nil)
	stubInteractive(t, false)
	calls := stubTeardown(t, true)

	prompted := false
	prev := confirmUninstallFunc
	confirmUninstallFunc = func() (bool, error) {
		prompted = true
		return true, nil
	}
	t.Cleanup(func() { confirmUninstallFunc = prev })

	out, err := runRootCommand(t, "uninstall")
	require.NoError(t, err)
	assert.False(t, prompted)
	assert.Equal(t, 1, *calls)
	assert.Contains(t, out, "Monitor Moon has been removed")
}

func TestUninstallDeclinedConfirmation(t *testing.T) {
	disableColor(t)
	stubConfig(t)
	stubRoot(t, nil)
	stubInteractive(t, true)
	calls := stubTeardown(t, true)

	prev := confirmUninstallFunc
	confirmUninstallFunc = func() (bool, error) { return false, nil }
	t.Cleanup(func() { confirmUninstallFunc = prev })

	out, err := runRootCommand(t, "uninstall")
	require.NoError(t, err)
	assert.Equal(t, 0, *calls)
	assert.Contains(t, out, "Uninstall cancelled.")
}

func TestUninstallConfirmedRunsTeardown(t *testing.T) {
	disableColor(t)
	stubConfig(t)
	stubRoot(t, nil)
	stubInteractive(t, true)
	calls := stubTeardown(t, true)

	prev := confirmUninstallFunc
	confirmUninstallFunc = func() (bool, error) { return true, nil }
	t.Cleanup(func() { confirmUninstallFunc = prev })

	_, err := runRootCommand(t, "uninstall")
	require.NoError(t, err)
	assert.Equal(t, 1, *calls)
}

func TestUninstallRequiresRoot(t *testing.T) {
	disableColor(t)
	stubConfig(t)
	stubInteractive(t, false)
	calls := stubTeardown(t, true)
	stubRoot(t, assertableError("not root"))

	out, err := runRootCommand(t, "uninstall")
	var silent *SilentExitError
	require.ErrorAs(t, err, &silent)
	assert.Equal(t, 0, *calls)
	assert.Contains(t, out, "[FAIL]")
}

func TestConfirmUninstallTreatsAbortAsDecline(t *testing.T) {
	prev := runConfirmForm
	runConfirmForm = func(*huh.Form) error { return huh.ErrUserAborted }
	t.Cleanup(func() { runConfirmForm = prev })

	proceed, err := confirmUninstall()
	require.NoError(t, err)
	assert.False(t, proceed)
}

type assertableError string

func (e assertableError) Error() string { return string(e) }
