package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/flexprice/shipdiscount/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Configuration struct {
	Logging  LoggingConfig  `validate:"required"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Events   EventsConfig   `mapstructure:"events"`
	Input    InputConfig    `mapstructure:"input"`
	Shipping ShippingConfig `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type CacheConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type EventsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Topic   string `mapstructure:"topic" validate:"required_if=Enabled true"`
}

type InputConfig struct {
	File string `mapstructure:"file"`
}

// ShippingConfig carries the raw, not yet casted, shipping data. Rule and plan
// entries are decoded and validated by the schema package.
type ShippingConfig struct {
	Categories      CategoriesConfig         `mapstructure:"categories" validate:"required"`
	Plans           []map[string]interface{} `mapstructure:"plans" validate:"required,min=1"`
	DiscountRules   []map[string]interface{} `mapstructure:"discount_rules"`
	CorrectionRules []map[string]interface{} `mapstructure:"correction_rules"`
}

// CategoriesConfig lists the allowed values of categorical fields
type CategoriesConfig struct {
	Carrier     []string `mapstructure:"carrier" validate:"required,min=1,dive,required"`
	PackageSize []string `mapstructure:"package_size" validate:"required,min=1,dive,required"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	// Modify config paths to ensure config.yaml is found
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/shipdiscount")

	// Set up environment variables support
	v.SetEnvPrefix("SHIPDISCOUNT")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()
	setDefaults(v)

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
		// No file: built-in shipping data, environment still applies to the scalar settings
		cfg := GetDefaultConfig()
		cfg.Logging.Level = types.LogLevel(v.GetString("logging.level"))
		cfg.Cache.Enabled = v.GetBool("cache.enabled")
		cfg.Events.Enabled = v.GetBool("events.enabled")
		cfg.Events.Topic = v.GetString("events.topic")
		cfg.Input.File = v.GetString("input.file")
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return decode(v)
}

// NewConfigFromFile loads the configuration from an explicit file path
func NewConfigFromFile(path string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("SHIPDISCOUNT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return decode(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("cache.enabled", true)
	v.SetDefault("events.enabled", false)
	v.SetDefault("events.topic", "shipping.transaction.processed")
	v.SetDefault("input.file", "")
}

func decode(v *viper.Viper) (*Configuration, error) {
	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	return c.Logging.Level.Validate()
}

// GetDefaultConfig returns a default configuration for local development
// This is useful for running scripts or other non-web applications
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Logging: LoggingConfig{Level: types.LogLevelInfo},
		Cache:   CacheConfig{Enabled: true},
		Events:  EventsConfig{Enabled: false, Topic: "shipping.transaction.processed"},
		Shipping: ShippingConfig{
			Categories: CategoriesConfig{
				Carrier:     []string{"LP", "MR"},
				PackageSize: []string{"S", "M", "L"},
			},
			Plans: []map[string]interface{}{
				{"carrier": "LP", "package_size": "S", "price": "1.50"},
				{"carrier": "LP", "package_size": "M", "price": "4.90"},
				{"carrier": "LP", "package_size": "L", "price": "6.90"},
				{"carrier": "MR", "package_size": "S", "price": "2"},
				{"carrier": "MR", "package_size": "M", "price": "3"},
				{"carrier": "MR", "package_size": "L", "price": "4"},
			},
			DiscountRules: []map[string]interface{}{
				{
					"name":   "MatchLowestPackagePrice",
					"params": map[string]interface{}{"package_size": "S"},
				},
				{
					"name": "EveryNShipmentIsFreeXTimesInAMonth",
					"params": map[string]interface{}{
						"n":            3,
						"x_times":      1,
						"carrier":      "LP",
						"package_size": "L",
					},
				},
			},
			CorrectionRules: []map[string]interface{}{
				{
					"name":   "MonthlyAccumulatedDiscountLimiter",
					"params": map[string]interface{}{"limit": "10"},
				},
			},
		},
	}
}
