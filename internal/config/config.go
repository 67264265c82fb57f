package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/julianstephens/missionlog/internal/constants"
)

var userHomeDirFunc = os.UserHomeDir

// Config holds the resolved application settings.
type Config struct {
	// DB is the SQLite file path or a PostgreSQL connection string.
	// Empty means unresolved; main consults the keyring, then the default path.
	DB string `mapstructure:"db"`

	// Addr is the listen address for the web server.
	Addr string `mapstructure:"addr"`

	// Debug enables verbose logging.
	Debug bool `mapstructure:"debug"`
}

// Dir returns the application config directory (~/.config/missionlog).
func Dir() (string, error) {
	home, err := userHomeDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user home dir: %w", err)
	}
	return filepath.Join(home, ".config", constants.AppName), nil
}

// ExpandHome replaces a leading ~ with the user home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := userHomeDirFunc()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Load resolves settings in increasing precedence: built-in defaults, an
// optional config.yaml in the config directory, a .env file in the working
// directory, and MISSIONLOG_* environment variables. Command-line flags are
// applied on top by the caller.
func Load() (Config, error) {
	// .env values become plain environment variables; godotenv never
	// overrides variables that are already set
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	v := viper.New()
	v.SetDefault("db", "")
	v.SetDefault("addr", constants.DefaultAddr)
	v.SetDefault("debug", false)

	if dir, err := Dir(); err == nil {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(strings.ToUpper(constants.AppName))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return cfg, nil
}
