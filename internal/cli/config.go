package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	apperrors "github.com/jgrunert/amaze/pkg/errors"
	"github.com/jgrunert/amaze/pkg/pipeline"
	"github.com/jgrunert/amaze/pkg/render"
)

// Config holds user preferences loaded from the TOML config file at
// ~/.config/amaze/config.toml. All fields are optional; flags override
// config, config overrides built-in defaults.
//
// Example:
//
//	algorithm = "prim"
//	width = 31
//	height = 31
//	theme = "midnight"
//
//	[themes.midnight]
//	path_color = "#ff00ff"
//
//	[server]
//	addr = ":8080"
//	redis_addr = "localhost:6379"
type Config struct {
	Algorithm string `toml:"algorithm"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Theme     string `toml:"theme"`
	CacheDir  string `toml:"cache_dir"`

	// Themes holds per-theme overrides merged onto the builtin themes.
	Themes map[string]render.Theme `toml:"themes"`

	Server ServerConfig `toml:"server"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr          string `toml:"addr"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// DefaultConfig returns the built-in defaults used when no config file
// exists.
func DefaultConfig() Config {
	return Config{
		Algorithm: pipeline.DefaultAlgorithm,
		Width:     pipeline.DefaultWidth,
		Height:    pipeline.DefaultHeight,
		Theme:     render.DefaultTheme,
		Server: ServerConfig{
			Addr:          ":8080",
			MongoDatabase: appName,
		},
	}
}

// LoadConfig reads the config file at path and merges it over the defaults.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	return cfg, nil
}

// defaultConfigPath returns the XDG config file location.
func defaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// themeOverride returns the configured overrides for the named theme, or a
// zero theme when none are configured.
func (c Config) themeOverride(name string) render.Theme {
	return c.Themes[name]
}
