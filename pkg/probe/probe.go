// Package probe discovers the name and version of the package the build
// tool just installed.
//
// The install subcommand has no way to report what it installed, so the
// prober installs the same target a second time into the same root. That
// attempt must collide with the first one, and the collision diagnostic
// names the package:
//
//	binary `rg` already exists in destination as part of `ripgrep v14.1.0`
//
// If the build tool ever gains a dry-run or metadata query, Probe is the
// only piece that needs replacing.
package probe

import (
	"context"
	"regexp"

	"github.com/arthur-debert/cargo-brew/pkg/errors"
	"github.com/arthur-debert/cargo-brew/pkg/logging"
	"github.com/arthur-debert/cargo-brew/pkg/runner"
	"github.com/arthur-debert/cargo-brew/pkg/types"
)

var (
	// `name vX.Y.Z
	versionedPattern = regexp.MustCompile("`(\\S+) v([0-9.]+)")
	// `name v<anything>; the version is not parsable but the token is still the package
	unversionedPattern = regexp.MustCompile("`(\\S+) v")
	// `name, used when nothing in the text is followed by a version marker
	namePattern = regexp.MustCompile("`([^`\\s]+)")
)

// ParseIdentity extracts the package identity from a collision diagnostic.
// A backtick-quoted name followed by " v<digits and dots>" yields that
// version. A quoted name followed by " v" and an unparsable version yields
// HeadVersion, and takes precedence over earlier quoted tokens such as the
// binary name. Only when no quoted token is followed by " v" does the first
// quoted token win, again with HeadVersion. Text without any backtick-quoted
// token is an error.
func ParseIdentity(diagnostic string) (types.Identity, error) {
	if m := versionedPattern.FindStringSubmatch(diagnostic); m != nil {
		return types.Identity{Name: m[1], Version: m[2]}, nil
	}
	if m := unversionedPattern.FindStringSubmatch(diagnostic); m != nil {
		return types.Identity{Name: m[1], Version: types.HeadVersion}, nil
	}
	if m := namePattern.FindStringSubmatch(diagnostic); m != nil {
		return types.Identity{Name: m[1], Version: types.HeadVersion}, nil
	}
	return types.Identity{}, errors.New(errors.ErrParseIdentity, "could not determine crate name").
		WithDetail("diagnostic", diagnostic)
}

// Prober re-runs the install invocation to provoke the collision
type Prober struct {
	runner     runner.Runner
	tool       string
	subcommand string
}

// NewProber creates a prober invoking `<tool> <subcommand> args...`
func NewProber(r runner.Runner, tool, subcommand string) *Prober {
	return &Prober{runner: r, tool: tool, subcommand: subcommand}
}

// Probe runs the exact install invocation again, without forwarding its
// output, and parses the identity from its diagnostic. The second install
// succeeding means the collision assumption no longer holds, which is fatal.
func (p *Prober) Probe(ctx context.Context, args []string) (types.Identity, error) {
	logger := logging.GetLogger("probe")
	label := runner.Label(p.tool, p.subcommand)

	res, err := p.runner.Run(ctx, runner.Command{
		Name: p.tool,
		Args: append([]string{p.subcommand}, args...),
	})
	if err != nil {
		return types.Identity{}, runner.SpawnError(label, err)
	}
	if res.Success() {
		return types.Identity{}, errors.Newf(errors.ErrInconsistent, "second `%s` succeeded", label)
	}

	id, err := ParseIdentity(string(res.Stderr))
	if err != nil {
		logger.Debug().Str("stderr", res.StderrText()).Msg("Collision diagnostic did not name a package")
		return types.Identity{}, err
	}

	logger.Info().Str("name", id.Name).Str("version", id.Version).Msg("Identified installed package")
	return id, nil
}
