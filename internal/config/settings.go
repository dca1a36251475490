package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/pagekit/internal/domain/page"
	"github.com/alexisbeaulieu97/pagekit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/pagekit/internal/ports"
	pkerrors "github.com/alexisbeaulieu97/pagekit/pkg/errors"
)

// EnvPrefix prefixes environment variables that override settings, e.g. PAGEKIT_LOG_LEVEL.
const EnvPrefix = "PAGEKIT"

const appDirName = "pagekit"

// FAQEntry is one configured question/answer pair.
type FAQEntry struct {
	Question string `mapstructure:"question" validate:"required"`
	Answer   string `mapstructure:"answer" validate:"required"`
}

// Settings holds everything pagekit reads at startup.
type Settings struct {
	PreferencesPath string        `mapstructure:"preferences_path" validate:"required"`
	LogLevel        string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFile         string        `mapstructure:"log_file"`
	PulseDelay      time.Duration `mapstructure:"pulse_delay" validate:"gt=0"`
	SuccessDisplay  time.Duration `mapstructure:"success_display" validate:"gt=0"`
	FAQ             []FAQEntry    `mapstructure:"faq" validate:"dive"`

	// Source is the config file the settings were read from, empty when only defaults applied.
	Source string `mapstructure:"-"`
}

// PageFAQ converts the configured entries for the page session.
func (s *Settings) PageFAQ() []page.FAQEntry {
	entries := make([]page.FAQEntry, len(s.FAQ))
	for i, entry := range s.FAQ {
		entries[i] = page.FAQEntry{Question: entry.Question, Answer: entry.Answer}
	}
	return entries
}

// Dir returns pagekit's directory under the user's config dir.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// Load reads settings from path, or from the default config file when path is
// empty and that file exists, applies PAGEKIT_* environment overrides and
// validates the result.
func Load(ctx context.Context, path string, logger ports.Logger) (*Settings, error) {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	logger = logger.With("layer", "infrastructure", "component", "config")

	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("preferences_path", filepath.Join(dir, "preferences.yaml"))
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", filepath.Join(dir, "pagekit.log"))
	v.SetDefault("pulse_delay", page.DefaultPulseDelay)
	v.SetDefault("success_display", page.DefaultSuccessDisplay)

	source := path
	if source == "" {
		candidate := filepath.Join(dir, "config.yaml")
		if _, statErr := os.Stat(candidate); statErr == nil {
			source = candidate
		} else if !errors.Is(statErr, os.ErrNotExist) {
			logger.Warn(ctx, "default config file not readable", "path", candidate, "error", statErr)
		}
	}

	if source != "" {
		v.SetConfigFile(source)
		if err := v.ReadInConfig(); err != nil {
			return nil, pkerrors.NewParseError(source, extractLine(err), err)
		}
		logger.Debug(ctx, "config file read", "path", source)
	} else {
		logger.Debug(ctx, "no config file, using defaults")
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, pkerrors.NewParseError(source, 0, err)
	}
	settings.Source = source
	settings.LogLevel = strings.ToLower(strings.TrimSpace(settings.LogLevel))

	if len(settings.FAQ) == 0 {
		settings.FAQ = DefaultFAQ()
	}

	if err := Validate(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}
