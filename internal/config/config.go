package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Engine   EngineConfig
	Mock     MockConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// EngineConfig tunes caching and fetch scheduling.
type EngineConfig struct {
	CacheTTL       time.Duration `mapstructure:"cache_ttl"`
	DebounceWindow time.Duration `mapstructure:"debounce_window"`
	FetchTimeout   time.Duration `mapstructure:"fetch_timeout"`
}

// MockConfig tunes the synthetic data backend.
type MockConfig struct {
	MinLatency  time.Duration `mapstructure:"min_latency"`
	MaxLatency  time.Duration `mapstructure:"max_latency"`
	FailureRate float64       `mapstructure:"failure_rate"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StartupWidgets []string `mapstructure:"startup_widgets"`
}

// Load reads configuration from file and env. Env var overrides use prefix JASKBOARD_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "jaskboard", "jaskboard.db"))
	v.SetDefault("engine.cache_ttl", "5m")
	v.SetDefault("engine.debounce_window", "300ms")
	v.SetDefault("engine.fetch_timeout", "10s")
	v.SetDefault("mock.min_latency", "1s")
	v.SetDefault("mock.max_latency", "1500ms")
	v.SetDefault("mock.failure_rate", 0.10)
	v.SetDefault("ui.startup_widgets", []string{"weather", "clock"})

	v.SetConfigType("toml")

	cfgPath := os.Getenv("JASKBOARD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "jaskboard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JASKBOARD")
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
