package sysd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionRender(t *testing.T) {
	def := Definition{
		Name:                "monitorMoon",
		Description:         "Monitor Moon server monitoring agent",
		WorkingDirectory:    "/opt/monitorMoon",
		ExecStart:           "/usr/bin/python3 /opt/monitorMoon/monitor.py",
		RestartDelaySeconds: 10,
	}

	content, err := def.Render()
	require.NoError(t, err)

	assert.Contains(t, content, "[Unit]")
	assert.Contains(t, content, "Description=Monitor Moon server monitoring agent")
	assert.Contains(t, content, "After=network.target")
	assert.Contains(t, content, "Type=simple")
	assert.Contains(t, content, "WorkingDirectory=/opt/monitorMoon")
	assert.Contains(t, content, "ExecStart=/usr/bin/python3 /opt/monitorMoon/monitor.py")
	assert.Contains(t, content, "Restart=always")
	assert.Contains(t, content, "RestartSec=10")
	assert.Contains(t, content, "WantedBy=multi-user.target")
}

func TestUnitNaming(t *testing.T) {
	def := Definition{Name: "monitorMoon"}
	assert.Equal(t, "monitorMoon.service", def.UnitName())
	assert.Equal(t, "/etc/systemd/system/monitorMoon.service", UnitPath(UnitDir, "monitorMoon"))
}
