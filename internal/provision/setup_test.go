package provision

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SevinEW/monitorMoon/internal/messages"
)

func TestInteractiveSetupRefusesWithoutTerminal(t *testing.T) {
	prev := isInteractive
	isInteractive = func() bool { return false }
	defer func() { isInteractive = prev }()

	err := InteractiveSetup{}.Run(context.Background(), "/opt/monitorMoon", "/opt/monitorMoon/setup.py")
	require.Error(t, err)
	require.Equal(t, messages.SetupNoTerminal, err.Error())
}
