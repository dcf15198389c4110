// Package ui writes cargo-brew's own messages (info, warnings, fatal
// errors) to the informational stream, styled on colour terminals and
// plain otherwise. The build tool's progress output never passes through
// here; it goes straight to stdout.
package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/cargo-brew/pkg/ui/styles"
)

// Reporter prints prefixed user-facing messages
type Reporter struct {
	out    io.Writer
	styled bool
}

// NewReporter creates a reporter writing to out. FormatAuto resolves to
// FormatTerminal only when out is a colour-capable terminal.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{out: out, styled: format.Resolve(out) == FormatTerminal}
}

// Info prints "info: msg"
func (r *Reporter) Info(msg string) {
	r.line("Info", "info:", msg)
}

// Warn prints "warning: msg"
func (r *Reporter) Warn(msg string) {
	r.line("Warning", "warning:", msg)
}

// Error prints "error: msg"
func (r *Reporter) Error(msg string) {
	r.line("Error", "error:", msg)
}

func (r *Reporter) line(style, prefix, msg string) {
	if r.styled {
		prefix = styles.GetStyle(style).Render(prefix)
	}
	_, _ = fmt.Fprintf(r.out, "%s %s\n", prefix, msg)
}

// Activity shows a spinner with msg on terminals until the returned
// function is called. On plain output it prints nothing.
func (r *Reporter) Activity(msg string) func() {
	if !r.styled {
		return func() {}
	}

	spinner, err := pterm.DefaultSpinner.
		WithWriter(r.out).
		WithRemoveWhenDone(true).
		Start(msg)
	if err != nil {
		return func() {}
	}
	return func() {
		_ = spinner.Stop()
	}
}
