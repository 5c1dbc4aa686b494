package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	ConfigName = "flashcards"
	EnvPrefix  = "FLASHCARDS"
)

// Config holds all configuration for the application
type Config struct {
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Window  WindowConfig  `mapstructure:"window" validate:"required"`
	Study   StudyConfig   `mapstructure:"study"`
}

// StorageConfig locates the flashcard set documents
type StorageConfig struct {
	Dir    string `mapstructure:"dir" validate:"required"`
	Suffix string `mapstructure:"suffix" validate:"required,startswith=.,excludesall=/\\"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

type WindowConfig struct {
	Width  float32 `mapstructure:"width" validate:"min=320"`
	Height float32 `mapstructure:"height" validate:"min=240"`
}

// StudyConfig tunes study sessions. A zero seed means the shuffle is seeded from the clock.
type StudyConfig struct {
	Seed uint64 `mapstructure:"seed"`
}

var validate = validator.New()

// Load reads configuration from an optional config file and environment variables.
// Extra search paths are consulted before the defaults.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")

	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, ConfigName))
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tags on cfg.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validation failed: %w", err)
		}
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			msgs = append(msgs, fmt.Sprintf("Field: %s, Tag: %s, Param: %s", e.Namespace(), e.Tag(), e.Param()))
		}
		return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.dir", ".")
	v.SetDefault("storage.suffix", ".txt")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("window.width", 640)
	v.SetDefault("window.height", 480)

	v.SetDefault("study.seed", 0)
}
