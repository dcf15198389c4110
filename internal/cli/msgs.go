package cli

// Command descriptions
const (
	MsgRootShort = "Install cargo binaries into the Homebrew Cellar"
	MsgRootLong  = `cargo-brew runs ` + "`cargo install`" + ` into a temporary root, moves the
resulting binaries into the Homebrew Cellar under <cellar>/<crate>/<version>/bin
and links them with ` + "`brew link`" + `, so crates are managed like any other keg.

Run it through cargo:

  cargo brew ripgrep

Configuration comes from CARGO_BREW_* environment variables only; see
` + "`cargo-brew config`" + ` for the available keys.`

	MsgBrewShort = "Install a crate into the Homebrew Cellar"
	MsgBrewLong  = `Takes the same arguments as ` + "`cargo install`" + `. Any --root option is
replaced by a temporary staging root; the installed binaries are moved into
the Cellar and the keg is relinked.`
	MsgBrewExample = `  cargo brew ripgrep
  cargo brew --git https://github.com/sharkdp/fd fd-find
  cargo brew --version 0.9.0 widget`

	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgConfigShort     = "Print the effective configuration as TOML"
	MsgManShort        = "Generate man pages into a directory"
	MsgCompletionShort = "Generate shell completion script"
)
