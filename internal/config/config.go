package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/matheuskafuri/folio/internal/shell"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// LogOff disables logging when used as Log.File.
const LogOff = "off"

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type Config struct {
	Title        string    `yaml:"title"`
	Author       string    `yaml:"author,omitempty"`
	Theme        string    `yaml:"theme"`
	StartSection string    `yaml:"start_section"`
	Content      string    `yaml:"content,omitempty"`
	Log          LogConfig `yaml:"log"`
}

// Section resolves StartSection. validate has already rejected bad values.
func (c *Config) Section() shell.SectionID {
	id, err := shell.ParseSectionID(c.StartSection)
	if err != nil {
		return shell.Home
	}
	return id
}

// LogPath returns the log file to write, or "" when logging is off.
func (c *Config) LogPath() string {
	switch c.Log.File {
	case LogOff:
		return ""
	case "":
		return DefaultLogPath()
	}
	return c.Log.File
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "folio", "config.yaml")
}

func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, "folio", "folio.log")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path, or the XDG default when path is empty.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return cfg, nil
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

var (
	validThemes = map[string]bool{"dark": true, "light": true, "auto": true}
	validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

func validate(cfg *Config) error {
	if !validThemes[cfg.Theme] {
		return fmt.Errorf("unknown theme %q (valid: dark, light, auto)", cfg.Theme)
	}
	if _, err := shell.ParseSectionID(cfg.StartSection); err != nil {
		return fmt.Errorf("start_section: %w", err)
	}
	if !validLevels[cfg.Log.Level] {
		return fmt.Errorf("log.level: unknown level %q (valid: debug, info, warn, error)", cfg.Log.Level)
	}
	return nil
}
