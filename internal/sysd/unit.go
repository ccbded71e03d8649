// Package sysd models the host's service supervisor (systemd) as an explicit
// interface so provisioning and teardown can be tested against a fake.
package sysd

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/SevinEW/monitorMoon/internal/messages"
)

// UnitDir is where system-wide service units are registered.
const UnitDir = "/etc/systemd/system"

// Definition describes the supervised service to register. Registering a
// second definition with the same name overwrites the first.
type Definition struct {
	Name                string
	Description         string
	WorkingDirectory    string
	ExecStart           string
	RestartDelaySeconds int
}

var unitTemplate = template.Must(template.New("unit").Parse(`[Unit]
Description={{.Description}}
After=network.target

[Service]
Type=simple
WorkingDirectory={{.WorkingDirectory}}
ExecStart={{.ExecStart}}
Restart=always
RestartSec={{.RestartDelaySeconds}}

[Install]
WantedBy=multi-user.target
`))

// UnitName returns the systemd unit file name for the service.
func (d Definition) UnitName() string {
	return d.Name + ".service"
}

// Render produces the unit file contents.
func (d Definition) Render() (string, error) {
	var buf strings.Builder
	if err := unitTemplate.Execute(&buf, d); err != nil {
		return "", fmt.Errorf(messages.ServiceRenderUnitErrFmt, d.Name, err)
	}
	return buf.String(), nil
}

// UnitPath returns the unit file location under dir.
func UnitPath(dir string, name string) string {
	return filepath.Join(dir, name+".service")
}
