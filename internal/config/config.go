package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	NoColor  bool   `mapstructure:"no_color"`
}

// DefaultLogLevel is used when log_level is unset or invalid
const DefaultLogLevel = "warn"

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("log_level", DefaultLogLevel)
	viper.SetDefault("no_color", false)

	viper.SetConfigName("untt")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "untt"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("UNTT")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetLogLevel returns the zap level name for diagnostics
func GetLogLevel() string {
	return C.LogLevel
}

// GetNoColor returns whether terminal styling is disabled
func GetNoColor() bool {
	return C.NoColor
}

