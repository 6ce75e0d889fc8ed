package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/rook-computer/postermaker/internal/render"
	"github.com/rook-computer/postermaker/internal/theme"
)

const (
	appName = "postermaker"

	EnvListenAddr = "POSTERMAKER_LISTEN"
	EnvDevMode    = "POSTERMAKER_DEV"

	DefaultListenAddr = ":8080"
)

type Config struct {
	// HTTP listen address for serve
	Listen string `yaml:"listen,omitempty" json:"listen,omitempty"`
	// Permissive CORS for local UI development
	Dev bool `yaml:"dev,omitempty" json:"dev,omitempty"`
	// TrueType files for the bold and regular faces
	Fonts render.FontConfig `yaml:"fonts,omitempty" json:"fonts,omitempty"`
	// Line under the title; empty keeps the built-in text
	Subtitle string `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	// Footer text; empty keeps the built-in text
	Footer string `yaml:"footer,omitempty" json:"footer,omitempty"`
	// Draw a QR code of the footer text
	FooterQR bool `yaml:"footerQR,omitempty" json:"footerQR,omitempty"`
	// Theme preselected in the web form
	DefaultTheme string `yaml:"defaultTheme,omitempty" json:"defaultTheme,omitempty"`
}

func Default() *Config {
	return &Config{Listen: DefaultListenAddr, DefaultTheme: theme.Default}
}

// Load loads the configuration from the config file.
// It searches for config files in the following order:
// 1. $XDG_CONFIG_HOME/postermaker/config-{profile}.yml
// 2. $XDG_CONFIG_HOME/postermaker/config.yml
// It returns the path that was loaded, or "" when no file exists and the
// defaults are used.
func Load(profile string) (*Config, string, error) {
	dir, err := configPath()
	if err != nil {
		return nil, "", err
	}
	var basePaths []string
	if profile != "" {
		basePaths = append(basePaths, filepath.Join(dir, fmt.Sprintf("config-%s", profile)))
	}
	basePaths = append(basePaths, filepath.Join(dir, "config"))
	for _, basePath := range basePaths {
		for _, ext := range []string{".yml", ".yaml"} {
			p := basePath + ext
			if _, err := os.Stat(p); err != nil {
				continue
			}
			cfg, err := LoadFile(p)
			if err != nil {
				return nil, "", err
			}
			return cfg, p, nil
		}
	}
	return Default(), "", nil
}

// LoadFile reads one YAML file on top of the defaults.
func LoadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}
	if cfg.Listen == "" {
		cfg.Listen = DefaultListenAddr
	}
	if _, ok := theme.Lookup(cfg.DefaultTheme); !ok {
		cfg.DefaultTheme = theme.Default
	}
	return cfg, nil
}

// ApplyEnv overrides the listen address and dev mode from the environment.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvListenAddr); v != "" {
		c.Listen = v
	}
	if raw := os.Getenv(EnvDevMode); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s must be a boolean (got %q): %w", EnvDevMode, raw, err)
		}
		c.Dev = parsed
	}
	return nil
}

// configPath returns the path to the configuration directory.
func configPath() (string, error) {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}
