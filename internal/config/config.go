package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the global smoovgarden configuration.
type Config struct {
	Settings SettingsConfig `toml:"settings"`
}

// SettingsConfig holds global settings.
type SettingsConfig struct {
	TipsPath   string `toml:"tips_path,omitempty"`
	Hemisphere string `toml:"hemisphere,omitempty"`
	Format     string `toml:"format"`
	LogLevel   string `toml:"log_level"`
	LogFormat  string `toml:"log_format"`
}

// DefaultDir returns the default config directory (~/.smoovgarden).
// If SMOOVGARDEN_DIR is set, uses that path instead.
func DefaultDir() (string, error) {
	if d := os.Getenv("SMOOVGARDEN_DIR"); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".smoovgarden"), nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads config from the default path, applying defaults.
// If the file doesn't exist, returns a config with defaults.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads config from the given path, applying defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Save writes config to the default path.
func (c *Config) Save() error {
	path, err := DefaultPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes config to the given path, creating directories as needed.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// TipsPath returns the expanded tips file path.
// Priority: SMOOVGARDEN_TIPS env var > tips_path setting > <config dir>/tips.yaml.
func (c *Config) TipsPath() (string, error) {
	if p := os.Getenv("SMOOVGARDEN_TIPS"); p != "" {
		return ExpandPath(p)
	}
	if c.Settings.TipsPath != "" {
		return ExpandPath(c.Settings.TipsPath)
	}
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tips.yaml"), nil
}

func (c *Config) applyDefaults() {
	if c.Settings.Format == "" {
		c.Settings.Format = "text"
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = "info"
	}
	if c.Settings.LogFormat == "" {
		c.Settings.LogFormat = "text"
	}
}
