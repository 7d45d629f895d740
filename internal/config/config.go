// Package config loads service settings from an optional YAML file and the
// environment. Environment variables use the upper-cased key, e.g. PORT or
// JWT_SECRET.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"MiniLibrary/internal/library"
)

type Config struct {
	Port     string `mapstructure:"port" validate:"required,numeric"`
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`

	// JWTSecret enables editor-only writes when set.
	JWTSecret string `mapstructure:"jwt_secret" validate:"omitempty,min=32"`

	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
	MetricsToken   string `mapstructure:"metrics_token"`

	WriteLimitPerMin int `mapstructure:"write_limit_per_min" validate:"gte=0"`

	Seed     bool                        `mapstructure:"seed"`
	Products []library.NewProductRequest `mapstructure:"products"`
}

func Defaults() Config {
	return Config{
		Port:             "8082",
		LogLevel:         "info",
		MetricsEnabled:   true,
		WriteLimitPerMin: 60,
		Seed:             true,
	}
}

// Load reads path when non-empty, then overlays the environment.
func Load(v *viper.Viper, path string) (Config, error) {
	d := Defaults()
	v.SetDefault("port", d.Port)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("jwt_secret", d.JWTSecret)
	v.SetDefault("metrics_enabled", d.MetricsEnabled)
	v.SetDefault("metrics_token", d.MetricsToken)
	v.SetDefault("write_limit_per_min", d.WriteLimitPerMin)
	v.SetDefault("seed", d.Seed)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field(), friendlyMessage(e)))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "numeric":
		return "must be numeric"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "oneof":
		return "must be one of: " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	default:
		return "is invalid"
	}
}
