package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App       App       `mapstructure:"app"`
	NewsAPI   NewsAPI   `mapstructure:"newsapi"`
	Assistant Assistant `mapstructure:"assistant"`
	Feed      Feed      `mapstructure:"feed"`
	Ticker    Ticker    `mapstructure:"ticker"`
	Server    Server    `mapstructure:"server"`
}

// App holds general application configuration.
type App struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// NewsAPI holds news provider configuration.
type NewsAPI struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Assistant holds chat assistant configuration.
type Assistant struct {
	SearchPageSize int `mapstructure:"search_page_size"`
}

// Feed holds news feed configuration.
type Feed struct {
	PageSize    int `mapstructure:"page_size"`    // Articles requested per refresh
	MaxArticles int `mapstructure:"max_articles"` // Normalized batch truncation
}

// Ticker holds simulated market ticker configuration.
type Ticker struct {
	Interval time.Duration `mapstructure:"interval"`
}

// ServerCORS holds CORS settings for the HTTP API.
type ServerCORS struct {
	Enabled        bool     `mapstructure:"enabled"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Server holds HTTP server configuration.
type Server struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	CORS         ServerCORS    `mapstructure:"cors"`
}

var globalConfig *Config

// Load loads the configuration from file, environment and defaults.
func Load(configFile string) (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".marketbrief")
		viper.SetConfigType("yaml")
	}

	setDefaults()
	bindEnvironmentVariables()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	globalConfig = config
	return config, nil
}

// Get returns the global configuration, loading it if necessary.
func Get() *Config {
	if globalConfig == nil {
		config, err := Load("")
		if err != nil {
			panic(fmt.Sprintf("Failed to load configuration: %v", err))
		}
		return config
	}
	return globalConfig
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.log_level", "info")

	viper.SetDefault("newsapi.base_url", "https://newsapi.org/v2/everything")
	viper.SetDefault("newsapi.timeout", "15s")

	viper.SetDefault("assistant.search_page_size", 10)

	viper.SetDefault("feed.page_size", 20)
	viper.SetDefault("feed.max_articles", 15)

	viper.SetDefault("ticker.interval", "30s")

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "15s")
	viper.SetDefault("server.cors.enabled", true)
	viper.SetDefault("server.cors.allowed_origins", []string{"*"})
}

// bindEnvironmentVariables sets up flexible environment variable binding.
func bindEnvironmentVariables() {
	// News API key - support multiple formats
	bindEnvKeys("newsapi.api_key", []string{
		"MARKETBRIEF_NEWS_API_KEY",
		"NEWSAPI_API_KEY",
		"NEWS_API_KEY",
	})
}

// bindEnvKeys binds the first defined environment variable to a config key.
func bindEnvKeys(configKey string, envKeys []string) {
	for _, envKey := range envKeys {
		if value := os.Getenv(envKey); value != "" {
			viper.Set(configKey, value)
			return
		}
	}
	// Fall back to viper's own binding so later exports still work
	for _, envKey := range envKeys {
		_ = viper.BindEnv(configKey, envKey)
	}
}
