package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Philipp01105/tracelog/core"
	"github.com/Philipp01105/tracelog/logger"
)

// Environment variables consulted by MergeEnv.
const (
	EnvError   = "TRACELOG_ERROR"
	EnvWarning = "TRACELOG_WARNING"
	EnvInfo    = "TRACELOG_INFO"
	EnvVerbose = "TRACELOG_VERBOSE"
	EnvFormat  = "TRACELOG_FORMAT"
	EnvFile    = "TRACELOG_FILE"
)

// Config holds the runtime settings of a Logger in file form. The
// enable flags are pointers so that an omitted key keeps the built-in
// default of enabled rather than reading as false.
type Config struct {
	Error   *bool  `yaml:"error" toml:"error"`
	Warning *bool  `yaml:"warning" toml:"warning"`
	Info    *bool  `yaml:"info" toml:"info"`
	Verbose uint32 `yaml:"verbose" toml:"verbose"`
	Format  string `yaml:"format" toml:"format"`
	File    string `yaml:"file" toml:"file"`
}

// Load reads a configuration file. The format is chosen by extension,
// .yaml and .yml parse as YAML and everything else parses as TOML.
func Load(path string) (Config, error) {
	var cfg Config

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "parsing %s", path)
		}
	default:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "parsing %s", path)
		}
	}

	return cfg, nil
}

// MergeEnv returns a copy of the config with TRACELOG_* environment
// overrides applied on top. Set variables win even when empty, so
// TRACELOG_FILE= routes back to stderr. Unparseable boolean or verbose
// values are ignored.
func (c Config) MergeEnv() Config {
	if v, ok := lookupBool(EnvError); ok {
		c.Error = &v
	}
	if v, ok := lookupBool(EnvWarning); ok {
		c.Warning = &v
	}
	if v, ok := lookupBool(EnvInfo); ok {
		c.Info = &v
	}
	if raw, ok := os.LookupEnv(EnvVerbose); ok {
		if n, err := strconv.ParseUint(raw, 10, 32); err == nil {
			c.Verbose = uint32(n)
		}
	}
	if raw, ok := os.LookupEnv(EnvFormat); ok {
		c.Format = raw
	}
	if raw, ok := os.LookupEnv(EnvFile); ok {
		c.File = raw
	}
	return c
}

func lookupBool(key string) (bool, bool) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

// Validate reports whether the config can be applied. An empty format
// is valid and stands for the default layout.
func (c Config) Validate() error {
	if c.Format == "" {
		return nil
	}
	_, err := core.ParseFormat(c.Format)
	return err
}

// Apply makes the Logger match the config. Omitted enable flags fall
// back to enabled, an omitted format falls back to the default layout
// and an empty file routes records to stderr.
func (c Config) Apply(l *logger.Logger) error {
	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "applying config")
	}

	format := core.DefaultFormat
	if c.Format != "" {
		format, _ = core.ParseFormat(c.Format)
	}

	l.SetEnabled(core.ErrorLevel, c.Error == nil || *c.Error)
	l.SetEnabled(core.WarningLevel, c.Warning == nil || *c.Warning)
	l.SetEnabled(core.InfoLevel, c.Info == nil || *c.Info)
	l.SetVerboseLevel(c.Verbose)
	l.SetFormat(format)
	l.SetFile(c.File)
	return nil
}
