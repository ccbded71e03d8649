package provision

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/SevinEW/monitorMoon/internal/messages"
	"github.com/SevinEW/monitorMoon/internal/terminal"
)

var isInteractive = terminal.IsInteractive

// InteractiveSetup runs the fetched configuration script with the operator's
// terminal attached, so it can prompt for tokens and server credentials.
type InteractiveSetup struct{}

// Run executes the configuration script from the install root and returns its
// exit status as an error. It refuses to run without an interactive terminal,
// since the script blocks on stdin.
func (InteractiveSetup) Run(ctx context.Context, root string, scriptPath string) error {
	if !isInteractive() {
		return errors.New(messages.SetupNoTerminal)
	}
	cmd := exec.CommandContext(ctx, "python3", scriptPath)
	cmd.Dir = root
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
