package config

// FileConfig is the raw config.toml contents. Pointer fields distinguish
// "not set" from zero values.
type FileConfig struct {
	UI      FileUIConfig      `toml:"ui"`
	Preview FilePreviewConfig `toml:"preview"`
	Log     FileLogConfig     `toml:"log"`
}

// FileUIConfig is the TOML form of UIConfig.
type FileUIConfig struct {
	Theme         *string  `toml:"theme"`
	BrowsePercent *int     `toml:"browse_percent"`
	ShowHidden    *bool    `toml:"show_hidden"`
	Ignore        []string `toml:"ignore"`
}

// FilePreviewConfig is the TOML form of PreviewConfig.
type FilePreviewConfig struct {
	MaxBytes *int64  `toml:"max_bytes"`
	TabWidth *int    `toml:"tab_width"`
	Enter    *string `toml:"enter"`
}

// FileLogConfig is the TOML form of LogConfig.
type FileLogConfig struct {
	File  *string `toml:"file"`
	Level *string `toml:"level"`
}

func mergeFileConfig(cfg *Config, file *FileConfig) {
	if file.UI.Theme != nil {
		cfg.UI.Theme = *file.UI.Theme
	}
	if file.UI.BrowsePercent != nil {
		cfg.UI.BrowsePercent = *file.UI.BrowsePercent
	}
	if file.UI.ShowHidden != nil {
		cfg.UI.ShowHidden = *file.UI.ShowHidden
	}
	if file.UI.Ignore != nil {
		cfg.UI.Ignore = append([]string(nil), file.UI.Ignore...)
	}

	if file.Preview.MaxBytes != nil {
		cfg.Preview.MaxBytes = *file.Preview.MaxBytes
	}
	if file.Preview.TabWidth != nil {
		cfg.Preview.TabWidth = *file.Preview.TabWidth
	}
	if file.Preview.Enter != nil {
		cfg.Preview.Enter = *file.Preview.Enter
	}

	if file.Log.File != nil {
		cfg.Log.File = *file.Log.File
	}
	if file.Log.Level != nil {
		cfg.Log.Level = *file.Log.Level
	}
}
