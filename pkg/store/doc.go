// Package store locates the package manager's store and places staged
// binaries into it under <root>/<name>/<version>/bin.
package store
