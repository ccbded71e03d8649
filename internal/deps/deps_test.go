package deps

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SevinEW/monitorMoon/internal/config"
	"github.com/SevinEW/monitorMoon/internal/status"
)

// fakeRunner simulates a host where installing a package makes its command
// resolvable, unless the package is listed as broken.
type fakeRunner struct {
	present map[string]bool
	// provides maps apt package name to the command it supplies.
	provides map[string]string
	// broken packages install "successfully" but never provide their command.
	broken map[string]bool
	// failInstall packages make apt-get exit non-zero.
	failInstall map[string]bool
	runs        [][]string
}

func (f *fakeRunner) LookPath(command string) (string, error) {
	if f.present[command] {
		return "/usr/bin/" + command, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	f.runs = append(f.runs, append([]string{name}, args...))
	if name == "apt-get" && len(args) == 3 && args[0] == "install" {
		pkg := args[2]
		if f.failInstall[pkg] {
			return errors.New("apt-get exited 100")
		}
		if f.broken[pkg] {
			return nil
		}
		if command, ok := f.provides[pkg]; ok {
			f.present[command] = true
		}
		return nil
	}
	return nil
}

func (f *fakeRunner) installsOf(pkg string) int {
	count := 0
	for _, run := range f.runs {
		if len(run) == 4 && run[0] == "apt-get" && run[1] == "install" && run[3] == pkg {
			count++
		}
	}
	return count
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		present: map[string]bool{},
		provides: map[string]string{
			"python3":     "python3",
			"python3-pip": "pip3",
			"curl":        "curl",
		},
		broken:      map[string]bool{},
		failInstall: map[string]bool{},
	}
}

func testSet() []Dependency {
	return HostSet(config.Default().HostPackages)
}

func TestEnsureInstallsOnlyMissing(t *testing.T) {
	runner := newFakeRunner()
	runner.present["curl"] = true
	inst := NewInstaller(runner, status.NewReporter(io.Discard))

	require.NoError(t, inst.Ensure(context.Background(), testSet()))
	assert.Equal(t, 1, runner.installsOf("python3"))
	assert.Equal(t, 1, runner.installsOf("python3-pip"))
	assert.Equal(t, 0, runner.installsOf("curl"))
}

func TestEnsureIsIdempotent(t *testing.T) {
	runner := newFakeRunner()
	inst := NewInstaller(runner, status.NewReporter(io.Discard))
	require.NoError(t, inst.Ensure(context.Background(), testSet()))

	before := len(runner.runs)
	again := NewInstaller(runner, status.NewReporter(io.Discard))
	require.NoError(t, again.Ensure(context.Background(), testSet()))
	assert.Equal(t, before, len(runner.runs), "second pass must not run the package manager")
}

func TestEnsureStopsAtFirstFailure(t *testing.T) {
	runner := newFakeRunner()
	runner.failInstall["python3"] = true
	inst := NewInstaller(runner, status.NewReporter(io.Discard))

	err := inst.Ensure(context.Background(), testSet())
	var installErr *InstallError
	require.ErrorAs(t, err, &installErr)
	assert.Equal(t, "python3", installErr.Name)
	// pip depends on the interpreter, so it must not be attempted.
	assert.Equal(t, 0, runner.installsOf("python3-pip"))
}

func TestEnsureReprobesAfterInstall(t *testing.T) {
	runner := newFakeRunner()
	runner.broken["python3-pip"] = true
	inst := NewInstaller(runner, status.NewReporter(io.Discard))

	err := inst.Ensure(context.Background(), testSet())
	var installErr *InstallError
	require.ErrorAs(t, err, &installErr)
	assert.Equal(t, "pip3", installErr.Name)
	assert.Contains(t, installErr.Error(), "still missing")
}

func TestEnsureRefreshesIndexOncePerPass(t *testing.T) {
	runner := newFakeRunner()
	inst := NewInstaller(runner, status.NewReporter(io.Discard))
	require.NoError(t, inst.Ensure(context.Background(), testSet()))

	updates := 0
	for _, run := range runner.runs {
		if len(run) == 2 && run[0] == "apt-get" && run[1] == "update" {
			updates++
		}
	}
	assert.Equal(t, 1, updates)
}

func TestEnsureNoRefreshWhenNothingMissing(t *testing.T) {
	runner := newFakeRunner()
	for _, command := range []string{"python3", "pip3", "curl"} {
		runner.present[command] = true
	}
	inst := NewInstaller(runner, status.NewReporter(io.Discard))
	require.NoError(t, inst.Ensure(context.Background(), testSet()))
	assert.Empty(t, runner.runs)
}

func TestInstallLibraries(t *testing.T) {
	runner := newFakeRunner()
	var buf strings.Builder
	inst := NewInstaller(runner, status.NewReporter(&buf))

	require.NoError(t, inst.InstallLibraries(context.Background(), "/opt/monitorMoon/requirements.txt"))
	require.Len(t, runner.runs, 1)
	assert.Equal(t, []string{"pip3", "install", "-r", "/opt/monitorMoon/requirements.txt"}, runner.runs[0])
}

func TestInstallLibrariesFailureIsSurfaced(t *testing.T) {
	runner := newFakeRunner()
	failing := &failingRunner{fakeRunner: runner}
	inst := NewInstaller(failing, status.NewReporter(io.Discard))

	err := inst.InstallLibraries(context.Background(), "/opt/monitorMoon/requirements.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requirements.txt")
}

type failingRunner struct{ *fakeRunner }

func (f *failingRunner) Run(_ context.Context, name string, args ...string) error {
	return errors.New("pip exited 1")
}
