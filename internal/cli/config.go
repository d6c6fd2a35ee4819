package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/taxo/pkg/errors"
	"github.com/matzehuels/taxo/pkg/pipeline"
)

// defaultConfigFile is the config file looked up in the working
// directory when --config is not given.
const defaultConfigFile = "taxo.toml"

// Config holds the optional taxo.toml settings. Flags take precedence
// over config values; config values take precedence over built-in
// defaults.
type Config struct {
	// Output is the directory artifact files are written to.
	Output string `toml:"output"`

	// Formats lists the artifacts to render (pre, post, json, dot, svg).
	Formats []string `toml:"formats"`

	// NoCache disables the artifact cache.
	NoCache bool `toml:"no_cache"`
}

// loadConfig reads a taxo.toml file. With an explicit path, a missing
// or malformed file is an error. With an empty path, the default file
// is optional: absence yields the zero config.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if err := pipeline.ValidateFormats(cfg.Formats); err != nil {
		return cfg, err
	}
	return cfg, nil
}
