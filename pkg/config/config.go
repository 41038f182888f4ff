// Package config loads gridboard configuration from TOML.
//
// Configuration covers the grid engine defaults (breakpoint tiers, item
// sizing), the autosave debounce, and the preferences store backend. All
// fields have working defaults, so a missing config file is not an error.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/gridboard/gridboard/pkg/errors"
	"github.com/gridboard/gridboard/pkg/grid"
)

// Backend names for the preferences store.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config is the root configuration.
type Config struct {
	Theme    string         `toml:"theme"`
	Grid     GridConfig     `toml:"grid"`
	Autosave AutosaveConfig `toml:"autosave"`
	Store    StoreConfig    `toml:"store"`
}

// GridConfig configures the layout engine.
type GridConfig struct {
	MinItemWidth int               `toml:"min_item_width"`
	MaxColumns   int               `toml:"max_columns"`
	Breakpoints  []grid.Breakpoint `toml:"breakpoints"`
}

// AutosaveConfig configures the debounce window.
type AutosaveConfig struct {
	DelayMS int `toml:"delay_ms"`
}

// Delay returns the debounce window as a duration.
func (a AutosaveConfig) Delay() time.Duration {
	return time.Duration(a.DelayMS) * time.Millisecond
}

// StoreConfig selects and configures the preferences backend.
type StoreConfig struct {
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"` // file backend; empty means the default config dir
	Redis   RedisConfig `toml:"redis"`
	Mongo   MongoConfig `toml:"mongo"`
}

// RedisConfig holds redis backend settings.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTLHours int    `toml:"ttl_hours"`
}

// MongoConfig holds mongo backend settings.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Default returns the working default configuration.
func Default() Config {
	return Config{
		Theme: "dark",
		Grid: GridConfig{
			MinItemWidth: 200,
			Breakpoints:  grid.DefaultBreakpoints,
		},
		Autosave: AutosaveConfig{DelayMS: 1000},
		Store: StoreConfig{
			Backend: BackendFile,
			Redis:   RedisConfig{Addr: "localhost:6379"},
			Mongo:   MongoConfig{URI: "mongodb://localhost:27017"},
		},
	}
}

// Load reads a TOML config file over the defaults. A missing file returns
// the defaults unchanged; a malformed file or invalid settings fail with
// INVALID_CONFIG.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings the engine depends on.
func (c Config) Validate() error {
	if len(c.Grid.Breakpoints) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "at least one breakpoint is required")
	}
	for i := 1; i < len(c.Grid.Breakpoints); i++ {
		prev, curr := c.Grid.Breakpoints[i-1], c.Grid.Breakpoints[i]
		if curr.MinWidth <= prev.MinWidth {
			return errors.New(errors.ErrCodeInvalidConfig,
				"breakpoint %q min_width %d must exceed %q min_width %d",
				curr.Name, curr.MinWidth, prev.Name, prev.MinWidth)
		}
	}
	switch c.Store.Backend {
	case BackendMemory, BackendFile, BackendRedis, BackendMongo:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown store backend %q", c.Store.Backend)
	}
	if c.Autosave.DelayMS < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "autosave delay must not be negative")
	}
	return nil
}

// GridSettings converts the config into the engine's layout settings.
func (c Config) GridSettings() grid.Config {
	return grid.Config{
		Breakpoints:  c.Grid.Breakpoints,
		MinItemWidth: c.Grid.MinItemWidth,
		MaxColumns:   c.Grid.MaxColumns,
	}
}
