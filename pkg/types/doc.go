// Package types defines the values shared between the install pipeline's
// steps.
package types
