// Package testutil provides utilities for testing cargo-brew components.
//
// Key components:
//   - TestEnvironment: a temp dir and filesystem pair with cleanup
//   - StageBinaries: lays out what a finished cargo install leaves behind
//
// Usage guidelines:
//   - Most tests should use EnvMemoryOnly for speed and isolation
//   - Use EnvIsolated only where a real OS path is needed, such as the exec runner
//   - All test data should be defined inline, not in external files
package testutil
