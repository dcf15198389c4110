package ui

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/cargo-brew/pkg/errors"
)

// Format selects how the reporter renders its messages. Its values are the
// ones accepted by the ui.format setting.
type Format string

const (
	// FormatAuto styles output only when writing to a colour terminal
	FormatAuto Format = "auto"
	// FormatTerminal always styles output
	FormatTerminal Format = "term"
	// FormatText never styles output
	FormatText Format = "text"
)

var formatAliases = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
}

// ParseFormat reads a ui.format value. Unknown values yield FormatAuto
// together with an INVALID_INPUT error so callers can warn and carry on.
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown output format %q", s).
		WithDetail("accepted", "auto, term, text")
}

// fder is satisfied by *os.File and anything else backed by a descriptor
type fder interface {
	Fd() uintptr
}

// Resolve turns FormatAuto into a concrete format for out. Styling needs
// a descriptor that is a terminal, a colour profile above ASCII and an
// unset NO_COLOR.
func (f Format) Resolve(out io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	file, ok := out.(fder)
	if !ok {
		return FormatText
	}
	fd := file.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}
	if termenv.NewOutput(out).ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
