package types

import "path/filepath"

// HeadVersion is the placeholder version used when the installed
// package's version could not be read. It carries no version information.
const HeadVersion = "HEAD"

// Identity is the (name, version) pair of the package that was installed.
// It is discovered during the run, never supplied by the caller.
type Identity struct {
	Name    string
	Version string
}

// String renders the identity as "name vversion"
func (i Identity) String() string {
	return i.Name + " v" + i.Version
}

// KegPath returns <storeRoot>/<name>/<version>
func (i Identity) KegPath(storeRoot string) string {
	return filepath.Join(storeRoot, i.Name, i.Version)
}
