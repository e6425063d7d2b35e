package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the content of the configuration file.
type Config struct {
	Currency string `toml:"currency"`  // single currency of the inventory
	LogLevel string `toml:"log_level"` // zap level: debug, info, warn, error
	Seed     string `toml:"seed"`      // JSONL file of groceries loaded at startup
	Cookbook string `toml:"cookbook"`  // TOML cookbook, the built-in one if empty
}

func defaultConfig() Config {
	return Config{
		Currency: "EUR",
		LogLevel: "info",
	}
}

// defaultConfigPath returns ~/.config/pantry/config.toml, or "" if there is no home.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pantry", "config.toml")
}

// LoadConfig reads the configuration file at path, over the defaults.
//
// A missing file is not an error when path is the default one.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("cannot read config %q: %w", path, err)
	}

	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("cannot parse config %q: %w", path, err)
	}

	if file.Currency != "" {
		cfg.Currency = file.Currency
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	// relative files are relative to the config file.
	if file.Seed != "" {
		cfg.Seed = resolve(path, file.Seed)
	}
	if file.Cookbook != "" {
		cfg.Cookbook = resolve(path, file.Cookbook)
	}
	return cfg, nil
}

func resolve(configPath, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(filepath.Dir(configPath), file)
}
