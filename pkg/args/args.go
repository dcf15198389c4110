// Package args rewrites the invoking command line into the argument list
// forwarded to the build tool's install subcommand.
package args

import "strings"

// RootFlag is the build tool's destination-root override
const RootFlag = "--root"

// skipLeading is the number of leading tokens that are not install
// arguments: the executable name and the subcommand token.
const skipLeading = 2

// RewriteRoot returns the install arguments of argv with every
// destination-root override removed and --root=<stagingPath> appended.
//
// "--root <value>" drops both tokens. Any other token starting with
// "--root" ("--root=<value>", or a flag merely sharing the prefix) is
// dropped as well, so the appended override is the only one left and,
// being last, the one the build tool honours. argv is not modified.
func RewriteRoot(argv []string, stagingPath string) []string {
	rewritten := make([]string, 0, len(argv))

	var tokens []string
	if len(argv) > skipLeading {
		tokens = argv[skipLeading:]
	}

	skip := false
	for _, token := range tokens {
		switch {
		case skip:
			skip = false
		case token == RootFlag:
			skip = true
		case strings.HasPrefix(token, RootFlag):
		default:
			rewritten = append(rewritten, token)
		}
	}

	return append(rewritten, RootFlag+"="+stagingPath)
}
