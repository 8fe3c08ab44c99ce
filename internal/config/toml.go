package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Environment overrides.
const (
	EnvDB      = "HEALTHPREDICT_DB"
	EnvKB      = "HEALTHPREDICT_KB"
	EnvSession = "HEALTHPREDICT_SESSION"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Store   StoreConfig   `toml:"store"`
	KB      KBConfig      `toml:"kb"`
	Session SessionConfig `toml:"session"`
	Report  ReportConfig  `toml:"report"`
}

// StoreConfig maps database settings.
type StoreConfig struct {
	Path *string `toml:"path"`
}

// KBConfig maps knowledge base settings. An empty path selects the built-in catalog.
type KBConfig struct {
	Path *string `toml:"path"`
}

// SessionConfig maps the default session name.
type SessionConfig struct {
	Name *string `toml:"name"`
}

// ReportConfig maps report rendering settings.
type ReportConfig struct {
	Color *bool `toml:"color"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Overrides are values given on the command line; empty means unset.
type Overrides struct {
	DBPath  string
	KBPath  string
	Session string
}

// Settings are the effective values after resolution.
type Settings struct {
	DBPath  string
	KBPath  string
	Session string
	Color   bool
}

// Resolve applies flag > environment > file > default precedence.
func Resolve(o Overrides, fc FileConfig) Settings {
	s := Settings{
		DBPath:  pick(o.DBPath, os.Getenv(EnvDB), fc.Store.Path, DefaultDBPath()),
		KBPath:  pick(o.KBPath, os.Getenv(EnvKB), fc.KB.Path, ""),
		Session: pick(o.Session, os.Getenv(EnvSession), fc.Session.Name, "default"),
		Color:   true,
	}
	if fc.Report.Color != nil {
		s.Color = *fc.Report.Color
	}
	return s
}

func pick(flag, env string, file *string, def string) string {
	switch {
	case flag != "":
		return flag
	case env != "":
		return env
	case file != nil && *file != "":
		return *file
	default:
		return def
	}
}
