// Package config loads rpick settings from defaults, a TOML file and the
// environment.
package config

import "github.com/kk-code-lab/rpick/internal/preview"

// Preview Enter behaviours.
const (
	PreviewEnterPromote = "promote"
	PreviewEnterDescend = "descend"
)

// Config is the fully resolved configuration.
type Config struct {
	UI      UIConfig
	Preview PreviewConfig
	Log     LogConfig
}

// UIConfig controls the listing and layout.
type UIConfig struct {
	Theme         string
	BrowsePercent int
	ShowHidden    bool
	Ignore        []string
}

// PreviewConfig controls file previews.
type PreviewConfig struct {
	MaxBytes int64
	TabWidth int
	Enter    string
}

// LogConfig selects the debug log destination.
type LogConfig struct {
	File  string
	Level string
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme:         preview.DefaultTheme,
			BrowsePercent: 30,
			ShowHidden:    true,
		},
		Preview: PreviewConfig{
			MaxBytes: preview.DefaultMaxBytes,
			TabWidth: 4,
			Enter:    PreviewEnterPromote,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
