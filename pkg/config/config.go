package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	toml2 "github.com/pelletier/go-toml/v2"

	brewerrors "github.com/arthur-debert/cargo-brew/pkg/errors"
)

// EnvPrefix is the prefix of environment variables overriding configuration keys
const EnvPrefix = "CARGO_BREW_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config is the resolved configuration of one run
type Config struct {
	Tools    Tools    `koanf:"tools" toml:"tools"`
	Commands Commands `koanf:"commands" toml:"commands"`
	Staging  Staging  `koanf:"staging" toml:"staging"`
	Log      Log      `koanf:"log" toml:"log"`
	UI       UI       `koanf:"ui" toml:"ui"`
}

// Tools names the collaborator executables
type Tools struct {
	Cargo string `koanf:"cargo" toml:"cargo"`
	Brew  string `koanf:"brew" toml:"brew"`
}

// Commands names the collaborator subcommands
type Commands struct {
	Install    string `koanf:"install" toml:"install"`
	StoreQuery string `koanf:"storequery" toml:"storequery"`
	Deactivate string `koanf:"deactivate" toml:"deactivate"`
	Activate   string `koanf:"activate" toml:"activate"`
}

// Staging controls where the staging directory is allocated
type Staging struct {
	Prefix  string `koanf:"prefix" toml:"prefix"`
	TempDir string `koanf:"tempdir" toml:"tempdir"`
}

// Log controls logger setup
type Log struct {
	Verbosity int  `koanf:"verbosity" toml:"verbosity"`
	File      bool `koanf:"file" toml:"file"`
}

// UI controls terminal output
type UI struct {
	Format string `koanf:"format" toml:"format"`
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load resolves the configuration from the embedded defaults and
// CARGO_BREW_* environment variables. There is no configuration file.
func Load() (*Config, error) {
	return LoadWithOverrides(nil)
}

// LoadWithOverrides is Load with a final layer of dotted keys, such as
// "log.verbosity", taking precedence over the environment
func LoadWithOverrides(overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, brewerrors.Wrap(err, brewerrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, brewerrors.Wrap(err, brewerrors.ErrConfigLoad, "failed to load env vars")
	}

	// 3. Command-line overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, brewerrors.Wrap(err, brewerrors.ErrConfigLoad, "failed to load overrides")
		}
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, brewerrors.Wrap(err, brewerrors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	// 5. Post-process
	if err := postProcessConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps CARGO_BREW_LOG_VERBOSITY to log.verbosity
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

func postProcessConfig(cfg *Config) error {
	if cfg.Tools.Cargo == "" || cfg.Tools.Brew == "" {
		return brewerrors.New(brewerrors.ErrConfigLoad, "tool executables must not be empty")
	}
	if cfg.Staging.Prefix == "" {
		return brewerrors.New(brewerrors.ErrConfigLoad, "staging prefix must not be empty")
	}
	if strings.ContainsRune(cfg.Staging.Prefix, os.PathSeparator) {
		return brewerrors.Newf(brewerrors.ErrConfigLoad, "staging prefix %q must not contain a path separator", cfg.Staging.Prefix)
	}
	if cfg.Staging.TempDir == "" {
		cfg.Staging.TempDir = os.TempDir()
	}
	if cfg.Log.Verbosity < 0 {
		cfg.Log.Verbosity = 0
	}
	return nil
}

// Dump renders cfg as TOML
func Dump(cfg *Config) (string, error) {
	data, err := toml2.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to render configuration: %w", err)
	}
	return string(data), nil
}
