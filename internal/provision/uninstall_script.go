package provision

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/SevinEW/monitorMoon/internal/config"
	"github.com/SevinEW/monitorMoon/internal/messages"
	"github.com/SevinEW/monitorMoon/internal/sysd"
)

// The script embeds the service name and root path as literals so it needs no
// input, network access, or installed moonctl to run later. Every step
// tolerates already-removed targets, mirroring the in-process teardown.
var uninstallScriptTemplate = template.Must(template.New("uninstall").Parse(`#!/usr/bin/env bash
# Generated by moonctl; removes the {{.ServiceName}} installation from this host.
set -u

if [ "$(id -u)" -ne 0 ]; then
    echo "this script must run as root" >&2
    exit 1
fi

systemctl stop {{.ServiceName}} 2>/dev/null || true
systemctl disable {{.ServiceName}} 2>/dev/null || true
rm -f {{.UnitPath}}
systemctl daemon-reload 2>/dev/null || true
rm -rf {{.InstallRoot}}

echo "{{.ServiceName}} removed."
`))

type uninstallScriptData struct {
	ServiceName string
	UnitPath    string
	InstallRoot string
}

// renderUninstallScript produces the self-contained teardown script contents.
func renderUninstallScript(cfg config.Config) (string, error) {
	var buf strings.Builder
	data := uninstallScriptData{
		ServiceName: cfg.ServiceName,
		UnitPath:    sysd.UnitPath(sysd.UnitDir, cfg.ServiceName),
		InstallRoot: cfg.InstallRoot,
	}
	if err := uninstallScriptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf(messages.UninstallerRenderErrFmt, err)
	}
	return buf.String(), nil
}
