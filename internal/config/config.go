// Package config holds the installer configuration: the fixed Monitor Moon
// identifiers plus the few knobs that differ between artifact channels.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/SevinEW/monitorMoon/internal/messages"
)

// Artifact names are stable relative names under the artifact base URL and the
// install root. The uninstall script is generated locally, never fetched.
const (
	EntrypointArtifact  = "monitor.py"
	ManifestArtifact    = "requirements.txt"
	SetupArtifact       = "setup.py"
	UninstallScriptName = "uninstall.sh"
)

// DefaultOverridePath is where operators may drop an install.toml to point the
// installer at a different artifact channel or install root.
const DefaultOverridePath = "/etc/monitorMoon/install.toml"

// HostPackage pairs a probeable command with the apt package that provides it.
type HostPackage struct {
	Command string `toml:"command"`
	Package string `toml:"package"`
}

// Config is the full installer configuration. The zero value is not usable;
// start from Default and apply overrides via Load.
type Config struct {
	InstallRoot         string        `toml:"install_root"`
	ServiceName         string        `toml:"service_name"`
	ArtifactBaseURL     string        `toml:"artifact_base_url"`
	RestartDelaySeconds int           `toml:"restart_delay_seconds"`
	HostPackages        []HostPackage `toml:"host_packages"`
}

// Default returns the stock Monitor Moon configuration.
func Default() Config {
	return Config{
		InstallRoot:         "/opt/monitorMoon",
		ServiceName:         "monitorMoon",
		ArtifactBaseURL:     "https://raw.githubusercontent.com/SevinEW/monitorMoon/main",
		RestartDelaySeconds: 10,
		HostPackages: []HostPackage{
			{Command: "python3", Package: "python3"},
			{Command: "pip3", Package: "python3-pip"},
			{Command: "curl", Package: "curl"},
		},
	}
}

// Load returns Default merged with the TOML override at path, if present.
// The returned bool reports whether an override file was applied. A missing
// file is not an error; a malformed or invalid one is.
func Load(path string) (Config, bool, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, false, nil
		}
		return Config{}, false, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}

	decoder := toml.NewDecoder(strings.NewReader(string(data)))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, false, fmt.Errorf(messages.ConfigInvalidFmt, path, err)
	}
	if err := cfg.normalize(path); err != nil {
		return Config{}, false, err
	}
	return cfg, true, nil
}

// normalize expands and validates operator-supplied values.
func (c *Config) normalize(source string) error {
	expanded, err := homedir.Expand(c.InstallRoot)
	if err != nil {
		return fmt.Errorf(messages.ConfigExpandRootFmt, c.InstallRoot, err)
	}
	c.InstallRoot = filepath.Clean(expanded)
	if !filepath.IsAbs(c.InstallRoot) {
		return fmt.Errorf(messages.ConfigRootNotAbsFmt, c.InstallRoot)
	}
	if strings.TrimSpace(c.ServiceName) == "" {
		return fmt.Errorf(messages.ConfigServiceEmptyFmt, source)
	}
	parsed, err := url.Parse(c.ArtifactBaseURL)
	if err != nil || !parsed.IsAbs() || (parsed.Scheme != "https" && parsed.Scheme != "http") {
		return fmt.Errorf(messages.ConfigBaseURLFmt, source, c.ArtifactBaseURL)
	}
	if c.RestartDelaySeconds <= 0 {
		return fmt.Errorf(messages.ConfigRestartDelayFmt, source, c.RestartDelaySeconds)
	}
	for i, pkg := range c.HostPackages {
		if strings.TrimSpace(pkg.Command) == "" || strings.TrimSpace(pkg.Package) == "" {
			return fmt.Errorf(messages.ConfigPackageEntryFmt, source, i+1)
		}
	}
	return nil
}

// ArtifactNames lists the artifacts fetched into the install root, in order.
func (c Config) ArtifactNames() []string {
	return []string{EntrypointArtifact, ManifestArtifact, SetupArtifact}
}

// ArtifactPath returns the on-disk location of a named artifact.
func (c Config) ArtifactPath(name string) string {
	return filepath.Join(c.InstallRoot, name)
}

// UninstallScriptPath returns where the generated teardown script lives.
func (c Config) UninstallScriptPath() string {
	return filepath.Join(c.InstallRoot, UninstallScriptName)
}
