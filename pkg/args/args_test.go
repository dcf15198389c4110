package args

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const staging = "/tmp/cargo-brew-1234"

func countRootOverrides(args []string) int {
	n := 0
	for _, a := range args {
		if strings.HasPrefix(a, RootFlag) {
			n++
		}
	}
	return n
}

func TestRewriteRoot(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want []string
	}{
		{
			name: "no_override_appends_staging",
			argv: []string{"cargo-brew", "brew", "ripgrep"},
			want: []string{"ripgrep", "--root=" + staging},
		},
		{
			name: "separate_value_form",
			argv: []string{"cargo-brew", "brew", "--root", "/usr/local", "ripgrep"},
			want: []string{"ripgrep", "--root=" + staging},
		},
		{
			name: "inline_value_form",
			argv: []string{"cargo-brew", "brew", "ripgrep", "--root=/usr/local", "--force"},
			want: []string{"ripgrep", "--force", "--root=" + staging},
		},
		{
			name: "both_forms_repeated",
			argv: []string{"cargo-brew", "brew", "--root=/a", "--git", "https://example.com/x.git", "--root", "/b"},
			want: []string{"--git", "https://example.com/x.git", "--root=" + staging},
		},
		{
			name: "prefix_sharing_flag_is_dropped",
			argv: []string{"cargo-brew", "brew", "--rootless", "widget"},
			want: []string{"widget", "--root=" + staging},
		},
		{
			name: "trailing_root_without_value",
			argv: []string{"cargo-brew", "brew", "widget", "--root"},
			want: []string{"widget", "--root=" + staging},
		},
		{
			name: "value_after_root_is_dropped_unconditionally",
			argv: []string{"cargo-brew", "brew", "--root", "--force", "widget"},
			want: []string{"widget", "--root=" + staging},
		},
		{
			name: "only_program_and_subcommand",
			argv: []string{"cargo-brew", "brew"},
			want: []string{"--root=" + staging},
		},
		{
			name: "empty_argv",
			argv: nil,
			want: []string{"--root=" + staging},
		},
		{
			name: "leading_tokens_are_discarded_even_if_they_look_like_flags",
			argv: []string{"--root", "brew", "widget"},
			want: []string{"widget", "--root=" + staging},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RewriteRoot(tt.argv, staging)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, 1, countRootOverrides(got))
			assert.Equal(t, "--root="+staging, got[len(got)-1])
		})
	}
}

func TestRewriteRootDoesNotMutateInput(t *testing.T) {
	argv := []string{"cargo-brew", "brew", "--root", "/usr/local", "widget"}
	original := append([]string(nil), argv...)

	_ = RewriteRoot(argv, staging)

	assert.Equal(t, original, argv)
}
