package deps

import (
	"context"
	"io"
	"os/exec"
)

// Runner abstracts capability probes and package-manager invocations so the
// installer can be exercised against a fake host in tests.
type Runner interface {
	LookPath(command string) (string, error)
	Run(ctx context.Context, name string, args ...string) error
}

// RealRunner executes commands on the host, streaming their output to the
// operator so long apt runs are visible.
type RealRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// LookPath resolves a command against PATH.
func (RealRunner) LookPath(command string) (string, error) {
	return exec.LookPath(command)
}

// Run executes the command and blocks until it completes.
func (r RealRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}
