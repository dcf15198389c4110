package ui_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/cargo-brew/pkg/ui"
	"github.com/stretchr/testify/assert"
)

func TestReporterPlain(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewReporter(&buf, ui.FormatAuto)

	r.Info("this should only happen the first time you install a crate")
	r.Warn("keg widget could not be unlinked")
	r.Error("`cargo install` failed: boom")

	assert.Equal(t,
		"info: this should only happen the first time you install a crate\n"+
			"warning: keg widget could not be unlinked\n"+
			"error: `cargo install` failed: boom\n",
		buf.String())
}

func TestReporterTerminalKeepsMessage(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewReporter(&buf, ui.FormatTerminal)

	r.Warn("could not move binary")

	assert.Contains(t, buf.String(), "warning:")
	assert.Contains(t, buf.String(), "could not move binary")
}

func TestActivityPlainIsSilent(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewReporter(&buf, ui.FormatText)

	stop := r.Activity("probing")
	stop()

	assert.Empty(t, buf.String())
}
