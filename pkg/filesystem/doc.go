// Package filesystem provides the filesystem abstraction used for
// staging and store placement.
//
// The OS implementation is used in production; the afero implementation
// backs tests with an in-memory filesystem.
package filesystem
