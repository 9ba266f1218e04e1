package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the runtime configuration. Every field has a default so the
// server starts with no environment at all.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Logging LoggingConfig `mapstructure:"log"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Port string `mapstructure:"port"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console | json
}

type CORSConfig struct {
	AllowOrigins string `mapstructure:"allow_origins"`
}

// Addr is the listen address for fiber.App.Listen.
func (c AppConfig) Addr() string {
	return ":" + c.Port
}

// Load reads an optional .env and then the process environment
// (APP_PORT, LOG_LEVEL, CORS_ALLOW_ORIGINS, ...).
func Load() (*Config, error) {
	// โหลดค่า Environment Variables จากไฟล์ .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}
	return FromViper(viper.New())
}

// FromViper binds env lookups onto v, applies defaults and validates.
func FromViper(v *viper.Viper) (*Config, error) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "Mergington High School API")
	v.SetDefault("app.port", "8000")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("cors.allow_origins", "*")
}

func validateConfig(cfg *Config) error {
	cfg.App.Port = strings.TrimPrefix(strings.TrimSpace(cfg.App.Port), ":")
	if cfg.App.Port == "" {
		return fmt.Errorf("app.port must not be empty")
	}
	switch cfg.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", cfg.Logging.Format)
	}
	return nil
}
