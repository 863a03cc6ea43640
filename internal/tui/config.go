package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds capture client configuration.
type Config struct {
	API APIConfig
}

// APIConfig holds connection settings for the persistence service.
type APIConfig struct {
	BaseURL string
}

// LoadConfig reads configuration from file and env. Env var overrides use
// prefix CAPTURA_. An empty base URL falls back to the local default at the
// client layer.
func LoadConfig() (Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", "")

	v.SetConfigType("toml")
	if cfgPath := os.Getenv("CAPTURA_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "captura"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CAPTURA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// a missing config file is fine; only real parse errors bubble up
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if _, statErr := os.Stat(v.ConfigFileUsed()); statErr == nil {
				return Config{}, err
			}
		}
	}

	return Config{
		API: APIConfig{BaseURL: v.GetString("api.base_url")},
	}, nil
}
