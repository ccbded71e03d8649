// Package status renders the installer's colored progress lines.
package status

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/SevinEW/monitorMoon/internal/messages"
)

// Reporter writes labeled status lines to a single output stream.
// All installer output funnels through one Reporter so tests can capture it.
type Reporter struct {
	out io.Writer
}

// NewReporter returns a Reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Header prints a cyan section header for the next phase of work.
func (r *Reporter) Header(text string) {
	_, _ = fmt.Fprintf(r.out, "%s %s\n", color.CyanString(messages.StatusHeaderArrow), color.New(color.Bold).Sprint(text))
}

// Info prints an unlabeled informational line.
func (r *Reporter) Info(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, "    "+format+"\n", args...)
}

// Success prints a green OK line.
func (r *Reporter) Success(format string, args ...any) {
	r.line(color.GreenString(messages.StatusOKLabel), format, args...)
}

// Warn prints a yellow warning line.
func (r *Reporter) Warn(format string, args ...any) {
	r.line(color.YellowString(messages.StatusWarnLabel), format, args...)
}

// Error prints a red failure line.
func (r *Reporter) Error(format string, args ...any) {
	r.line(color.RedString(messages.StatusFailLabel), format, args...)
}

func (r *Reporter) line(label string, format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, "%s %s\n", label, fmt.Sprintf(format, args...))
}
