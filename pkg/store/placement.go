package store

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/cargo-brew/pkg/errors"
	"github.com/arthur-debert/cargo-brew/pkg/filesystem"
	"github.com/arthur-debert/cargo-brew/pkg/logging"
	"github.com/arthur-debert/cargo-brew/pkg/types"
)

// Warner receives non-fatal per-file problems
type Warner interface {
	Warn(msg string)
}

// Report describes what a placement moved
type Report struct {
	Destination string
	Moved       []string
	Skipped     []string
}

// Placement relocates staged binaries into the store
type Placement struct {
	fs     filesystem.FS
	warner Warner
}

// NewPlacement creates a placement over fs reporting warnings to w
func NewPlacement(fs filesystem.FS, w Warner) *Placement {
	return &Placement{fs: fs, warner: w}
}

// Destination returns <root>/<name>/<version>/bin
func Destination(root string, id types.Identity) string {
	return filepath.Join(id.KegPath(root), "bin")
}

// Place creates the destination directory and moves every entry of
// stagingBin into it. Failing to create the destination or to list
// stagingBin is fatal; an entry that cannot be read or moved is reported
// as a warning and skipped.
func (p *Placement) Place(root string, id types.Identity, stagingBin string) (*Report, error) {
	logger := logging.GetLogger("store.placement")

	dest := Destination(root, id)
	if err := p.fs.MkdirAll(dest, 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "could not create directories in Cellar").
			WithDetail("path", dest)
	}

	entries, err := p.fs.ReadDir(stagingBin)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirRead, "could not open '%s'", stagingBin)
	}

	report := &Report{Destination: dest}
	for _, entry := range entries {
		if _, err := entry.Info(); err != nil {
			logger.Debug().Err(err).Str("entry", entry.Name()).Msg("Skipping unreadable entry")
			p.warner.Warn(fmt.Sprintf("could not read directory entry: %v", err))
			report.Skipped = append(report.Skipped, entry.Name())
			continue
		}

		oldPath := filepath.Join(stagingBin, entry.Name())
		newPath := filepath.Join(dest, entry.Name())
		if err := p.fs.Rename(oldPath, newPath); err != nil {
			logger.Debug().Err(err).Str("from", oldPath).Str("to", newPath).Msg("Skipping unmovable entry")
			p.warner.Warn(fmt.Sprintf("could not move binary '%s' to '%s': %v", oldPath, newPath, err))
			report.Skipped = append(report.Skipped, entry.Name())
			continue
		}

		logger.Debug().Str("from", oldPath).Str("to", newPath).Msg("Moved binary")
		report.Moved = append(report.Moved, entry.Name())
	}

	logger.Info().
		Str("destination", dest).
		Int("moved", len(report.Moved)).
		Int("skipped", len(report.Skipped)).
		Msg("Placement finished")
	return report, nil
}
