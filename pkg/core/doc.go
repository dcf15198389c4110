// Package core runs the install pipeline that bridges `cargo install` and
// the Homebrew Cellar:
//
//  1. start the store query (`brew --cellar`) in the background
//  2. create a staging directory and point --root at it
//  3. run the install into the staging directory, streaming its progress
//  4. run the same install again and read the package identity from the
//     collision it reports
//  5. join the store query and move the staged binaries into
//     <cellar>/<name>/<version>/bin
//  6. unlink the previous keg (allowed to fail) and link the new one
//
// Each run is independent and keeps no state. The staging directory is
// left in place on every path.
package core
