// Package config is for app wide settings that are unmarshalled
// from Viper (see: /internal/cli)
package config

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. DBGWALK_MIN_COUNT.
const EnvPrefix = "DBGWALK"

// ErrInvalid marks a configuration the commands cannot run with.
var ErrInvalid = errors.New("invalid configuration")

// Formats the output writers accept.
var Formats = []string{"text", "tsv", "json", "jsonl", "fasta", "yaml"}

// Config is the root-level settings struct and is a mix of settings
// available in a config file, the environment and the command line
type Config struct {
	// k-mer length
	K int `mapstructure:"k"`
	// counting workers; 0 uses every CPU
	Threads int `mapstructure:"threads"`
	// FASTA window size for counting; 0 reads whole records
	ChunkSize int `mapstructure:"chunk-size"`

	// badger directory holding the count table
	Store string `mapstructure:"store"`
	// count snapshot file
	Snapshot string `mapstructure:"snapshot"`
	// FASTA files counted on the fly when no store or snapshot is given
	Reads []string `mapstructure:"reads"`

	// reject k-mers seen fewer times than this while assembling
	MinCount uint64 `mapstructure:"min-count"`
	// contig length cap; 0 means none
	MaxLength int `mapstructure:"max-length"`
	// walk without a visited set
	Looping bool `mapstructure:"looping"`

	// output format, one of Formats
	Output string `mapstructure:"output"`
	// print a header row in tabular formats
	Header bool `mapstructure:"header"`
}

// SetDefaults registers every key with its default, which also makes the
// keys visible to AutomaticEnv during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("k", 21)
	v.SetDefault("threads", 0)
	v.SetDefault("chunk-size", 1<<20)
	v.SetDefault("store", "")
	v.SetDefault("snapshot", "")
	v.SetDefault("reads", []string{})
	v.SetDefault("min-count", 1)
	v.SetDefault("max-length", 0)
	v.SetDefault("looping", false)
	v.SetDefault("output", "text")
	v.SetDefault("header", true)
}

// New returns a viper instance with defaults and DBGWALK_* environment
// overrides.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile merges settings from a config file (any format viper reads).
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config %q", path)
	}
	return nil
}

// Load unmarshals v and validates the result.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "unable to decode config")
	}
	if c.Threads <= 0 {
		c.Threads = runtime.NumCPU()
	}
	return c, c.Validate()
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	switch {
	case c.K < 1 || c.K > 32:
		return errors.Wrapf(ErrInvalid, "k must be in 1..32, got %d", c.K)
	case c.Threads < 0:
		return errors.Wrapf(ErrInvalid, "threads must be >= 0, got %d", c.Threads)
	case c.ChunkSize < 0:
		return errors.Wrapf(ErrInvalid, "chunk-size must be >= 0, got %d", c.ChunkSize)
	case c.MaxLength < 0:
		return errors.Wrapf(ErrInvalid, "max-length must be >= 0, got %d", c.MaxLength)
	}
	for _, f := range Formats {
		if c.Output == f {
			return nil
		}
	}
	return errors.Wrapf(ErrInvalid, "unknown output %q (want one of %s)", c.Output, strings.Join(Formats, ", "))
}
