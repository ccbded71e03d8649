package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "/opt/monitorMoon", cfg.InstallRoot)
	assert.Equal(t, "monitorMoon", cfg.ServiceName)
	assert.Equal(t, 10, cfg.RestartDelaySeconds)
	require.Len(t, cfg.HostPackages, 3)
	assert.Equal(t, "python3", cfg.HostPackages[0].Command)
}

func TestLoadMissingOverrideUsesDefaults(t *testing.T) {
	cfg, applied, err := Load(filepath.Join(t.TempDir(), "install.toml"))
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "install.toml")
	content := `
install_root = "/srv/moon"
artifact_base_url = "https://example.com/channel/beta"

[[host_packages]]
command = "python3"
package = "python3"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, applied, err := Load(path)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, "/srv/moon", cfg.InstallRoot)
	assert.Equal(t, "https://example.com/channel/beta", cfg.ArtifactBaseURL)
	// Untouched fields keep their defaults.
	assert.Equal(t, "monitorMoon", cfg.ServiceName)
	assert.Equal(t, 10, cfg.RestartDelaySeconds)
	// An override with its own package table replaces the default set.
	require.Len(t, cfg.HostPackages, 1)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "install.toml")
	require.NoError(t, os.WriteFile(path, []byte("no_such_knob = true\n"), 0o644))

	_, _, err := Load(path)
	require.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "relative root", content: `install_root = "opt/moon"`},
		{name: "empty service name", content: `service_name = " "`},
		{name: "bad base url", content: `artifact_base_url = "ftp://example.com/x"`},
		{name: "zero restart delay", content: `restart_delay_seconds = 0`},
		{
			name: "package entry missing package",
			content: `
[[host_packages]]
command = "curl"
package = ""
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "install.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, _, err := Load(path)
			require.Error(t, err)
		})
	}
}

func TestArtifactPaths(t *testing.T) {
	cfg := Default()
	assert.Equal(t, []string{"monitor.py", "requirements.txt", "setup.py"}, cfg.ArtifactNames())
	assert.Equal(t, "/opt/monitorMoon/monitor.py", cfg.ArtifactPath(EntrypointArtifact))
	assert.Equal(t, "/opt/monitorMoon/uninstall.sh", cfg.UninstallScriptPath())
}
