// Package staging allocates the isolated directory the build tool installs
// into before binaries are relocated into the package store.
//
// Staging directories are never removed. Each one carries a random suffix,
// so concurrent or repeated runs cannot collide.
package staging

import (
	"path/filepath"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/arthur-debert/cargo-brew/pkg/errors"
	"github.com/arthur-debert/cargo-brew/pkg/filesystem"
	"github.com/arthur-debert/cargo-brew/pkg/logging"
)

// BinDirName is the subdirectory the build tool places binaries in
const BinDirName = "bin"

// Area is one allocated staging directory
type Area struct {
	Path string
}

// BinDir returns <staging>/bin
func (a Area) BinDir() string {
	return filepath.Join(a.Path, BinDirName)
}

// Manager creates staging areas
type Manager struct {
	fs      filesystem.FS
	tempDir string
	prefix  string
	suffix  func() string
}

// NewManager creates a manager allocating <tempDir>/<prefix>-<random>
func NewManager(fs filesystem.FS, tempDir, prefix string) *Manager {
	return &Manager{
		fs:      fs,
		tempDir: tempDir,
		prefix:  prefix,
		suffix:  uuid.NewString,
	}
}

// WithSuffix replaces the random suffix source
func (m *Manager) WithSuffix(suffix func() string) *Manager {
	m.suffix = suffix
	return m
}

// Create makes a new staging directory. The directory must not exist
// beforehand; both a creation failure and a path that is not valid UTF-8
// are fatal for the run.
func (m *Manager) Create() (Area, error) {
	logger := logging.GetLogger("staging")

	path := filepath.Join(m.tempDir, m.prefix+"-"+m.suffix())
	if !utf8.ValidString(path) {
		return Area{}, errors.Newf(errors.ErrInvalidPath, "non-unicode temporary directory %q", path)
	}

	if err := m.fs.Mkdir(path, 0755); err != nil {
		return Area{}, errors.Wrap(err, errors.ErrStagingCreate, "could not create temporary directory").
			WithDetail("path", path)
	}

	logger.Debug().Str("path", path).Msg("Created staging directory")
	return Area{Path: path}, nil
}
