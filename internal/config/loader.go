package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the file looked up in the config directory.
const ConfigFileName = "config.toml"

// Environment variable names.
const (
	EnvConfig     = "RPICK_CONFIG"
	EnvTheme      = "RPICK_THEME"
	EnvLogFile    = "RPICK_LOG_FILE"
	EnvLogLevel   = "RPICK_LOG_LEVEL"
	EnvShowHidden = "RPICK_SHOW_HIDDEN"
)

// Loader resolves configuration with priority defaults < file < env.
type Loader struct {
	configPath string
	getenv     func(string) string
	configDir  func() (string, error)
}

// NewLoader returns a Loader. An empty configPath means RPICK_CONFIG or the
// default location under the user config directory.
func NewLoader(configPath string) *Loader {
	return &Loader{
		configPath: configPath,
		getenv:     os.Getenv,
		configDir:  os.UserConfigDir,
	}
}

// Load reads, merges and validates the configuration.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	fileCfg, err := l.loadFile()
	if err != nil {
		return nil, err
	}
	if fileCfg != nil {
		mergeFileConfig(cfg, fileCfg)
	}

	l.applyEnvVars(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the config file Load reads, or "" when none can be determined.
func (l *Loader) Path() string {
	if l.configPath != "" {
		return l.configPath
	}
	if v := l.getenv(EnvConfig); v != "" {
		return v
	}
	dir, err := l.configDir()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, "rpick", ConfigFileName)
}

// loadFile returns nil when the config file does not exist.
func (l *Loader) loadFile() (*FileConfig, error) {
	path := l.Path()
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg FileConfig
	if err := toml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("invalid TOML in %s: %w", path, err)
	}
	return &fileCfg, nil
}

func (l *Loader) applyEnvVars(cfg *Config) {
	if v := l.getenv(EnvTheme); v != "" {
		cfg.UI.Theme = v
	}
	if v := l.getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	if v := l.getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := l.getenv(EnvShowHidden); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UI.ShowHidden = b
		}
	}
}
