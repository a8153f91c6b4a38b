package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tmd/pkg/cache"
	"github.com/matzehuels/tmd/pkg/errors"
	"github.com/matzehuels/tmd/pkg/pipeline"
)

// configFileName is the name of the config file inside the config directory.
const configFileName = "config.toml"

// Config is the optional TOML configuration. Zero values leave the pipeline
// defaults in place; command-line flags override everything.
type Config struct {
	Axes      string    `toml:"axes"`
	Weights   []float64 `toml:"weights"`
	Normalize bool      `toml:"normalize"`
	ZeroTime  float64   `toml:"zero_time"`
	Time      float64   `toml:"time"`
	Plane     string    `toml:"plane"`
	Component int       `toml:"component"`

	Cache CacheConfig `toml:"cache"`
}

// CacheConfig selects and tunes the cache backend.
type CacheConfig struct {
	Dir       string `toml:"dir"`
	RedisAddr string `toml:"redis_addr"`
	RedisDB   int    `toml:"redis_db"`
	TTL       string `toml:"ttl"`
}

// ttl returns the configured entry lifetime, defaulting to cache.TTLReport.
func (c CacheConfig) ttl() (time.Duration, error) {
	if c.TTL == "" {
		return cache.TTLReport, nil
	}
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cache.ttl %q", c.TTL)
	}
	return d, nil
}

// loadConfig reads the config file at path. With an empty path the default
// location is tried and a missing file yields the zero Config.
func loadConfig(path string) (Config, error) {
	var cfg Config
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFileName)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if _, err := cfg.Cache.ttl(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// apply copies configured values into opts.
func (c Config) apply(opts *pipeline.Options) {
	if c.Axes != "" {
		opts.Axes = c.Axes
	}
	if c.Weights != nil {
		opts.Weights = c.Weights
	}
	opts.Normalize = c.Normalize
	opts.ZeroTime = c.ZeroTime
	opts.Time = c.Time
	if c.Plane != "" {
		opts.Plane = c.Plane
	}
	opts.Component = c.Component
}
