package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/cargo-brew/internal/version"
	"github.com/arthur-debert/cargo-brew/pkg/config"
	"github.com/arthur-debert/cargo-brew/pkg/core"
	"github.com/arthur-debert/cargo-brew/pkg/filesystem"
	"github.com/arthur-debert/cargo-brew/pkg/logging"
	"github.com/arthur-debert/cargo-brew/pkg/runner"
	"github.com/arthur-debert/cargo-brew/pkg/ui"
)

// Deps are the process-level collaborators the commands run against
type Deps struct {
	Runner runner.Runner
	FS     filesystem.FS
}

// DefaultDeps runs real processes against the OS filesystem
func DefaultDeps() Deps {
	return Deps{
		Runner: runner.NewExecRunner(),
		FS:     filesystem.NewOS(),
	}
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(DefaultDeps())
}

func newRootCmd(deps Deps) *cobra.Command {
	var (
		verbosity int
		cfg       *config.Config
	)

	rootCmd := &cobra.Command{
		Use:     "cargo-brew",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// brew disables flag parsing, so -v only reaches the other commands
			overrides := map[string]interface{}{}
			if verbosity > 0 {
				overrides["log.verbosity"] = verbosity
			}
			loaded, err := config.LoadWithOverrides(overrides)
			if err != nil {
				return err
			}
			cfg = loaded

			logging.SetupLogger(logging.Options{
				Verbosity: cfg.Log.Verbosity,
				File:      cfg.Log.File,
				Out:       cmd.ErrOrStderr(),
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	current := func() *config.Config { return cfg }
	rootCmd.AddCommand(newBrewCmd(deps, current))
	rootCmd.AddCommand(newConfigCmd(current))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	initTemplateFormatting(rootCmd)
	return rootCmd
}

func newBrewCmd(deps Deps, cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:                "brew [cargo install args...]",
		Short:              MsgBrewShort,
		Long:               MsgBrewLong,
		Example:            MsgBrewExample,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cfg()
			logger := logging.GetLogger("cli.brew")

			format, err := ui.ParseFormat(c.UI.Format)
			if err != nil {
				logger.Warn().Err(err).Msg("Falling back to automatic output format")
			}
			reporter := ui.NewReporter(cmd.ErrOrStderr(), format)

			argv := append([]string{cmd.Root().Name(), cmd.Name()}, args...)
			result, err := core.InstallPackage(cmd.Context(), core.InstallOptions{
				Argv:          argv,
				TempDir:       c.Staging.TempDir,
				StagingPrefix: c.Staging.Prefix,
				Tools: core.Tools{
					Cargo:      c.Tools.Cargo,
					Install:    c.Commands.Install,
					Brew:       c.Tools.Brew,
					StoreQuery: c.Commands.StoreQuery,
					Deactivate: c.Commands.Deactivate,
					Activate:   c.Commands.Activate,
				},
				Runner:   deps.Runner,
				FS:       deps.FS,
				Stdout:   cmd.OutOrStdout(),
				Reporter: reporter,
			})
			if err != nil {
				return err
			}

			logger.Info().
				Str("package", result.Identity.String()).
				Str("staging", result.StagingDir).
				Msg("Brew command finished")
			return nil
		},
	}
}

func newConfigCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := config.Dump(cfg())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cargo-brew version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man <dir>",
		Short:  MsgManShort,
		Args:   cobra.ExactArgs(1),
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(args[0], 0755); err != nil {
				return err
			}
			header := &doc.GenManHeader{
				Title:   "CARGO-BREW",
				Section: "1",
			}
			return doc.GenManTree(cmd.Root(), header, args[0])
		},
	}
}
