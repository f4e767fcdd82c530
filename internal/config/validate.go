package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"github.com/kk-code-lab/rpick/internal/preview"
	"github.com/sirupsen/logrus"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate reports every problem in cfg at once.
func Validate(cfg *Config) error {
	var errs []string

	if !preview.HasTheme(cfg.UI.Theme) {
		errs = append(errs, fmt.Sprintf("unknown theme %q", cfg.UI.Theme))
	}
	if cfg.UI.BrowsePercent < 10 || cfg.UI.BrowsePercent > 90 {
		errs = append(errs, fmt.Sprintf("browse_percent must be between 10 and 90, got %d", cfg.UI.BrowsePercent))
	}
	for _, pattern := range cfg.UI.Ignore {
		if _, err := glob.Compile(pattern); err != nil {
			errs = append(errs, fmt.Sprintf("invalid ignore pattern %q: %v", pattern, err))
		}
	}

	if cfg.Preview.MaxBytes <= 0 {
		errs = append(errs, "preview max_bytes must be positive")
	}
	if cfg.Preview.TabWidth <= 0 {
		errs = append(errs, "preview tab_width must be positive")
	}
	switch cfg.Preview.Enter {
	case PreviewEnterPromote, PreviewEnterDescend:
	default:
		errs = append(errs, fmt.Sprintf("preview enter must be %q or %q, got %q",
			PreviewEnterPromote, PreviewEnterDescend, cfg.Preview.Enter))
	}

	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("invalid log level %q", cfg.Log.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(errs, "; "))
	}
	return nil
}
