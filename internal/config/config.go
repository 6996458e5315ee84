package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all settings, populated from environment variables and an
// optional .env file.
type Config struct {
	DataDir   string `env:"WEATHERMAN_DATA_DIR" validate:"required"`
	LogLevel  string `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFormat string `env:"LOG_FORMAT" validate:"oneof=json text"`

	// Color is auto, always or never. Auto colors only when stdout is a terminal.
	Color string `env:"WEATHERMAN_COLOR" validate:"oneof=auto always never"`

	// ZeroAsAbsent treats a reading of 0 as a gap, matching historical reports.
	ZeroAsAbsent bool `env:"WEATHERMAN_ZERO_AS_ABSENT"`

	// CacheSize bounds how many parsed files are kept for reuse within a run.
	CacheSize int `env:"WEATHERMAN_CACHE_SIZE" validate:"gt=0"`

	// MetricsTextfile, when set, receives a Prometheus textfile dump after the run.
	MetricsTextfile string `env:"METRICS_TEXTFILE"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// Load reads configuration from the environment, applying defaults where unset.
// A .env file in the working directory is loaded first when present; variables
// already set in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	zeroAsAbsent, err := parseBool("WEATHERMAN_ZERO_AS_ABSENT", true)
	if err != nil {
		return nil, err
	}
	cacheSize, err := parseInt("WEATHERMAN_CACHE_SIZE", 24)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataDir:         envOrDefault("WEATHERMAN_DATA_DIR", "weatherfiles"),
		LogLevel:        strings.ToLower(envOrDefault("LOG_LEVEL", "warn")),
		LogFormat:       strings.ToLower(envOrDefault("LOG_FORMAT", "text")),
		Color:           strings.ToLower(envOrDefault("WEATHERMAN_COLOR", "auto")),
		ZeroAsAbsent:    zeroAsAbsent,
		CacheSize:       cacheSize,
		MetricsTextfile: os.Getenv("METRICS_TEXTFILE"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and names the offending variables.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("invalid %s: %q fails %s", fe.Field(), fmt.Sprint(fe.Value()), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseBool(key string, def bool) (bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func parseInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
