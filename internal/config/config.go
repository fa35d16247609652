// Package config loads application configuration from file and env.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API     APIConfig
	Catalog CatalogConfig
	UI      UIConfig
}

// APIConfig holds shop backend settings.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// CatalogConfig holds the offline catalog settings used when no backend
// is configured.
type CatalogConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Currency   string
	NotForSale string `mapstructure:"not_for_sale"`
}

// Load reads configuration from file and env. Env var overrides use
// prefix LAREK_, e.g. LAREK_API_BASE_URL.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("api.base_url", "")
	v.SetDefault("api.timeout_seconds", 10)
	v.SetDefault("catalog.path", "")
	v.SetDefault("ui.currency", "syn")
	v.SetDefault("ui.not_for_sale", "Priceless")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("LAREK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "larek"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LAREK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
