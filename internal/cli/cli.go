// Package cli implements the gridboard command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gridboard/gridboard/pkg/buildinfo"
	"github.com/gridboard/gridboard/pkg/config"
	"github.com/gridboard/gridboard/pkg/prefs"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "gridboard"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Gridboard lays out dashboard components on an adaptive grid",
		Long:         `Gridboard is a layout engine for dashboard-style interfaces: it resolves responsive breakpoints, flows components onto a column grid, resolves collisions, and persists per-user customizations.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/gridboard/config.toml)")

	// Register all subcommands
	root.AddCommand(c.templateCommand())
	root.AddCommand(c.optimizeCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.customizeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config and Store Factories
// =============================================================================

// loadConfig reads the TOML config, falling back to defaults when no file
// exists at the resolved path.
func (c *CLI) loadConfig() (config.Config, error) {
	path := c.configPath
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return config.Default(), nil
		}
		path = filepath.Join(dir, "config.toml")
	}
	return config.Load(path)
}

// newStore builds the preferences store selected by the config.
func newStore(ctx context.Context, cfg config.Config) (prefs.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return prefs.NewMemoryStore(), nil
	case config.BackendRedis:
		store, err := prefs.NewRedisStore(ctx, prefs.RedisConfig{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
			TTL:      time.Duration(cfg.Store.Redis.TTLHours) * time.Hour,
		})
		if err != nil {
			return nil, err
		}
		return prefs.WithRetry(store, 0, 0), nil
	case config.BackendMongo:
		store, err := prefs.NewMongoStore(ctx, prefs.MongoConfig{
			URI:        cfg.Store.Mongo.URI,
			Database:   cfg.Store.Mongo.Database,
			Collection: cfg.Store.Mongo.Collection,
		})
		if err != nil {
			return nil, err
		}
		return prefs.WithRetry(store, 0, 0), nil
	default:
		return prefs.NewFileStore(cfg.Store.Dir)
	}
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/gridboard/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
