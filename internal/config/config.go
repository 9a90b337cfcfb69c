// Package config loads game and server settings from defaults, an
// optional tombs.yaml and TOMBS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"tombs/internal/session"
)

// Config is the fully resolved configuration.
type Config struct {
	Map    MapConfig    `mapstructure:"map"`
	Rooms  RoomsConfig  `mapstructure:"rooms"`
	FOV    FOVConfig    `mapstructure:"fov"`
	Save   SaveConfig   `mapstructure:"save"`
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
	// Seed fixes the dungeon random source; 0 seeds from the clock.
	Seed int64 `mapstructure:"seed"`
}

type MapConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type RoomsConfig struct {
	Max     int `mapstructure:"max"`
	MinSize int `mapstructure:"min_size"`
	MaxSize int `mapstructure:"max_size"`
}

type FOVConfig struct {
	Radius int `mapstructure:"radius"`
}

type SaveConfig struct {
	Dir  string `mapstructure:"dir"`
	File string `mapstructure:"file"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File receives the log during interactive play; empty means
	// tombs.log in the save directory.
	File string `mapstructure:"file"`
}

type ServerConfig struct {
	Port    int    `mapstructure:"port"`
	HostKey string `mapstructure:"host_key"`
}

// New returns a viper instance carrying every default and reading TOMBS_*
// environment overrides (map.width becomes TOMBS_MAP_WIDTH).
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("tombs")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("map.width", 80)
	v.SetDefault("map.height", 43)
	v.SetDefault("rooms.max", 30)
	v.SetDefault("rooms.min_size", 6)
	v.SetDefault("rooms.max_size", 10)
	v.SetDefault("fov.radius", 10)
	v.SetDefault("save.dir", "")
	v.SetDefault("save.file", session.DefaultSaveName)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("server.port", 2222)
	v.SetDefault("server.host_key", "server_host_key")
	v.SetDefault("seed", 0)
}

// Load reads the config file, if any, and returns the validated result.
// An explicit file must exist; otherwise tombs.yaml is looked up in the
// user config directory and the working directory and may be absent.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("tombs")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "tombs"))
		}
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if c.Save.Dir == "" {
		dir, err := session.DataDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve save dir: %w", err)
		}
		c.Save.Dir = dir
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(c.Save.Dir, "tombs.log")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the generator or server cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Map.Width <= 0 || c.Map.Height <= 0:
		return fmt.Errorf("config: map size %dx%d must be positive", c.Map.Width, c.Map.Height)
	case c.Rooms.MinSize < 2 || c.Rooms.MinSize > c.Rooms.MaxSize:
		return fmt.Errorf("config: room size range [%d,%d] is invalid", c.Rooms.MinSize, c.Rooms.MaxSize)
	case c.Rooms.MaxSize >= c.Map.Width || c.Rooms.MaxSize >= c.Map.Height:
		return fmt.Errorf("config: rooms up to %d do not fit a %dx%d map", c.Rooms.MaxSize, c.Map.Width, c.Map.Height)
	case c.Rooms.Max < 1:
		return fmt.Errorf("config: rooms.max must be at least 1, got %d", c.Rooms.Max)
	case c.FOV.Radius <= 0:
		return fmt.Errorf("config: fov.radius must be positive, got %d", c.FOV.Radius)
	case c.Save.File == "" || filepath.Base(c.Save.File) != c.Save.File:
		return fmt.Errorf("config: save.file %q must be a plain file name", c.Save.File)
	case c.Server.Port <= 0 || c.Server.Port > 65535:
		return fmt.Errorf("config: server.port %d out of range", c.Server.Port)
	}
	return nil
}

// SavePath is the save file used for local play.
func (c Config) SavePath() string {
	return filepath.Join(c.Save.Dir, c.Save.File)
}
