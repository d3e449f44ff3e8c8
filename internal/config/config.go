// Package config handles loading board.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/todoboard/internal/kv"
	"github.com/amonks/todoboard/internal/paths"
	"github.com/amonks/todoboard/todo"
)

// ProjectFile is the name of the per-directory config file.
const ProjectFile = "board.toml"

// Environment variables that override file configuration.
const (
	EnvStorage  = "BOARD_STORAGE"
	EnvPath     = "BOARD_PATH"
	EnvLogLevel = "BOARD_LOG_LEVEL"
)

// Config represents the board.toml configuration file.
type Config struct {
	Storage Storage `toml:"storage"`
	Display Display `toml:"display"`
	Log     Log     `toml:"log"`
}

// Storage selects where the board is persisted.
type Storage struct {
	// Backend is one of "file", "sqlite", or "memory".
	Backend string `toml:"backend"`

	// Path is the state directory for the file backend or the database file
	// for sqlite. Relative paths resolve against the project directory.
	Path string `toml:"path"`

	// Key is the slot name the todos are stored under.
	Key string `toml:"key"`
}

// Display contains presentation settings.
type Display struct {
	// TimeFormat is a Go time layout for createDate and completedDate.
	TimeFormat string `toml:"time-format"`

	// Width is the board width in columns; 0 means the terminal width.
	Width int `toml:"width"`
}

// Log configures diagnostic output.
type Log struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// Load loads configuration from the global config file and dir/board.toml,
// applies environment overrides, and fills defaults.
func Load(dir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, ProjectFile))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	merged.applyEnv(os.LookupEnv)
	if err := merged.resolve(dir); err != nil {
		return nil, err
	}
	return merged, nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: unknown key %q", path, undecoded[0].String())
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Storage.Backend = mergeString(projectMeta.IsDefined("storage", "backend"), projectCfg.Storage.Backend, globalCfg.Storage.Backend)
	merged.Storage.Path = mergeString(projectMeta.IsDefined("storage", "path"), projectCfg.Storage.Path, globalCfg.Storage.Path)
	merged.Storage.Key = mergeString(projectMeta.IsDefined("storage", "key"), projectCfg.Storage.Key, globalCfg.Storage.Key)
	merged.Display.TimeFormat = mergeString(projectMeta.IsDefined("display", "time-format"), projectCfg.Display.TimeFormat, globalCfg.Display.TimeFormat)
	merged.Log.Level = mergeString(projectMeta.IsDefined("log", "level"), projectCfg.Log.Level, globalCfg.Log.Level)
	if projectMeta.IsDefined("display", "width") {
		merged.Display.Width = projectCfg.Display.Width
	} else if globalMeta.IsDefined("display", "width") {
		merged.Display.Width = globalCfg.Display.Width
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if value, ok := lookup(EnvStorage); ok && strings.TrimSpace(value) != "" {
		c.Storage.Backend = strings.TrimSpace(value)
	}
	if value, ok := lookup(EnvPath); ok && strings.TrimSpace(value) != "" {
		c.Storage.Path = strings.TrimSpace(value)
	}
	if value, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Log.Level = strings.TrimSpace(value)
	}
}

// resolve validates the config and fills defaults. Relative storage paths
// are resolved against dir.
func (c *Config) resolve(dir string) error {
	c.Storage.Backend = strings.ToLower(c.Storage.Backend)
	if c.Storage.Backend == "" {
		c.Storage.Backend = kv.BackendFile
	}
	if !slices.Contains(kv.Backends(), c.Storage.Backend) {
		return fmt.Errorf("%w: %q (want %s)", kv.ErrUnknownBackend, c.Storage.Backend, strings.Join(kv.Backends(), ", "))
	}

	if c.Storage.Key == "" {
		c.Storage.Key = todo.DefaultKey
	}
	if c.Display.TimeFormat == "" {
		c.Display.TimeFormat = todo.DefaultTimeFormat
	}
	if c.Display.Width < 0 {
		return fmt.Errorf("display width must not be negative, got %d", c.Display.Width)
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}

	return c.resolveStoragePath(dir)
}

func (c *Config) resolveStoragePath(dir string) error {
	path := c.Storage.Path
	if path == "" {
		var err error
		switch c.Storage.Backend {
		case kv.BackendSQLite:
			path, err = paths.DefaultDatabasePath()
		case kv.BackendFile:
			path, err = paths.DefaultStateDir()
		}
		if err != nil {
			return err
		}
		c.Storage.Path = path
		return nil
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := paths.HomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	c.Storage.Path = filepath.Clean(path)
	return nil
}

// SetStorage overrides the backend and path, as the CLI flags do, and
// re-resolves the storage path.
func (c *Config) SetStorage(dir, backend, path string) error {
	if backend != "" {
		c.Storage.Backend = backend
		if path == "" {
			c.Storage.Path = ""
		}
	}
	if path != "" {
		c.Storage.Path = path
	}
	return c.resolve(dir)
}
