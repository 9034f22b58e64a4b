package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/haytac/emojify/internal/logging"
)

// DatasetConfig selects where the emoji dataset comes from.
type DatasetConfig struct {
	Source string `mapstructure:"source"` // builtin, file, sqlite, gomoji
	Path   string `mapstructure:"path"`   // file or sqlite location
}

// ServerConfig holds the HTTP rendering service settings.
type ServerConfig struct {
	Addr          string  `mapstructure:"addr"`
	RatePerSecond float64 `mapstructure:"rate_per_second"`
	RateBurst     int     `mapstructure:"rate_burst"`
	SanitizeHTML  bool    `mapstructure:"sanitize_html"`
}

// AppConfig holds the application configuration.
type AppConfig struct {
	IconSize    int            `mapstructure:"icon_size"`
	Dataset     DatasetConfig  `mapstructure:"dataset"`
	Server      ServerConfig   `mapstructure:"server"`
	Log         logging.Config `mapstructure:"log"`
	MetricsPort string         `mapstructure:"metrics_port"`
}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*AppConfig, error) {
	var cfg AppConfig

	viper.SetDefault("icon_size", 16)
	viper.SetDefault("dataset.source", "builtin")
	viper.SetDefault("dataset.path", "")
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.rate_per_second", 50.0)
	viper.SetDefault("server.rate_burst", 100)
	viper.SetDefault("server.sanitize_html", false)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.console", true)
	viper.SetDefault("log.time_format", time.RFC3339)
	viper.SetDefault("metrics_port", "")

	if configPath != "" {
		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.emojify")
		viper.AddConfigPath("/etc/emojify/")
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	viper.SetEnvPrefix("EMOJIFY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
