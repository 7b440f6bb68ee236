package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. CAR_RENTAL_LOG_LEVEL
const EnvPrefix = "CAR_RENTAL"

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig represents logger configuration
type LogConfig struct {
	// Empty File means console logging
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// OutputConfig controls how commands print results
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

var validate = validator.New()

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("output.format", FormatText)
}

// Load loads configuration from file, .env and environment variables.
// A missing config file is not an error when configPath is empty.
func Load(configPath string) (*Config, error) {
	// Optional .env file
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.car-rental")
		v.AddConfigPath("/etc/car-rental")
	}

	// Read environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.normalize()

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s must be one of [%s], got %q", fieldKey(fe.Namespace()), fe.Param(), fe.Value())
		}
		return err
	}
	return nil
}

// fieldKey maps "Config.Log.Level" to the config key "log.level"
func fieldKey(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToLower(strings.Join(parts, "."))
}

// IsJSON returns true when results should be printed as JSON
func (o OutputConfig) IsJSON() bool {
	return o.Format == FormatJSON
}
