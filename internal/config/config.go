package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ThemeFileEnv names a YAML file whose theme section is merged over the config
const ThemeFileEnv = "TASKFLOW_THEME_FILE"

// DotEnvFile is loaded into the environment before env overrides are read
var DotEnvFile = ".env"

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings   `yaml:"key_mappings"`
	ColorScheme ColorScheme   `yaml:"theme"`
	Latency     LatencyConfig `yaml:"latency"`

	// SeedFile replaces the built-in sample data when set
	SeedFile string `yaml:"seed_file" env:"TASKFLOW_SEED_FILE"`
	LogLevel string `yaml:"log_level" env:"TASKFLOW_LOG_LEVEL"`
}

// LatencyConfig controls the simulated store round-trips
type LatencyConfig struct {
	Enabled bool    `yaml:"enabled" env:"TASKFLOW_LATENCY_ENABLED"`
	Scale   float64 `yaml:"scale" env:"TASKFLOW_LATENCY_SCALE"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
		Latency: LatencyConfig{
			Enabled: true,
			Scale:   1,
		},
		LogLevel: "info",
	}
}

// EffectiveLatencyScale returns the delay multiplier, 0 when disabled
func (c *Config) EffectiveLatencyScale() float64 {
	if !c.Latency.Enabled || c.Latency.Scale < 0 {
		return 0
	}
	return c.Latency.Scale
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Fall back to defaults plus environment
		configPath = ""
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path, then applies the theme file, .env and
// environment overrides. An empty or missing path yields defaults.
func LoadFile(path string) (*Config, error) {
	config := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			// Theme colors come from the chosen preset, not the default one
			config.ColorScheme = ColorScheme{}
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	// Load theme from TASKFLOW_THEME_FILE if set
	loadThemeFile(config)

	if err := loadEnv(config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return config, nil
}

// loadThemeFile loads and merges theme from the TASKFLOW_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// loadEnv reads .env (if present) and overlays TASKFLOW_* variables
func loadEnv(config *Config) error {
	if DotEnvFile != "" {
		if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
		}
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	return nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "taskflow", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "taskflow", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
