package cli

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	perrors "github.com/nathaniel-may/biscuit-packing/pkg/errors"
)

// Config holds file-provided defaults for the run commands. Zero values mean
// "not set".
type Config struct {
	Runs        uint64   `toml:"runs"`
	Workers     int      `toml:"workers"`
	Formats     []string `toml:"formats"`
	OutputDir   string   `toml:"output_dir"`
	Scale       float64  `toml:"scale"`
	Schedule    string   `toml:"schedule"`
	Temperature float64  `toml:"temperature"`
	CacheTTL    Duration `toml:"cache_ttl"`
	CacheURL    string   `toml:"cache_url"`
	NoCache     bool     `toml:"no_cache"`

	// path the config was read from; empty when no file was found.
	path string
}

// Duration is a time.Duration written as a Go duration string ("720h").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// loadConfig reads the config file. With an empty path the default location
// is tried and a missing file yields an empty config; an explicit path must
// exist. Unknown keys are rejected so that typos do not go unnoticed.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return &Config{}, nil
		}
		path = p
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, perrors.Wrap(perrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, perrors.New(perrors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	cfg.path = path
	return &cfg, nil
}

// apply copies config values into f for every flag the user did not set.
func (cfg *Config) apply(cmd *cobra.Command, f *runFlags) {
	unset := func(name string) bool {
		return !cmd.Flags().Changed(name)
	}

	if cfg.Runs > 0 && unset("runs") {
		f.runs = cfg.Runs
	}
	if cfg.Workers > 0 && unset("workers") {
		f.workers = cfg.Workers
	}
	if len(cfg.Formats) > 0 && unset("format") {
		f.formats = strings.Join(cfg.Formats, ",")
	}
	if cfg.OutputDir != "" && unset("output-dir") {
		f.outputDir = cfg.OutputDir
	}
	if cfg.Scale > 0 && unset("scale") {
		f.scale = cfg.Scale
	}
	if cfg.Schedule != "" && unset("schedule") {
		f.schedule = cfg.Schedule
	}
	if cfg.Temperature > 0 && unset("temperature") {
		f.temperature = cfg.Temperature
	}
	if cfg.CacheTTL.Duration > 0 && unset("cache-ttl") {
		f.cacheTTL = cfg.CacheTTL.Duration
	}
	if cfg.CacheURL != "" && unset("cache-url") {
		f.cacheURL = cfg.CacheURL
	}
	if cfg.NoCache && unset("no-cache") {
		f.noCache = true
	}
}
