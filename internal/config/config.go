// Package config loads and saves sicasm's TOML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents the assembler's persisted configuration.
type Config struct {
	// Output file names, relative to the output directory (§6).
	Output struct {
		Intermediate  string `toml:"intermediate"`
		Pass1         string `toml:"pass1"`
		SymbolTable   string `toml:"symbol_table"`
		Pass2         string `toml:"pass2"`
		ObjectProgram string `toml:"object_program"`
	} `toml:"output"`

	// Listing column widths, 4/6 hex digits by default. The listing and
	// record renderers use fixed 4- and 6-digit widths and do not read
	// these values.
	Listing struct {
		AddressDigits int `toml:"address_digits"`
		RecordDigits  int `toml:"record_digits"`
	} `toml:"listing"`

	// Display settings. The TUI listing browser does not read this value;
	// it always renders in color.
	Display struct {
		ColorOutput bool `toml:"color_output"`
	} `toml:"display"`
}

// DefaultConfig returns the §6 default configuration.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Output.Intermediate = filepath.Join("Output", "intermediate.txt")
	cfg.Output.Pass1 = "out_pass1.txt"
	cfg.Output.SymbolTable = "symbTable.txt"
	cfg.Output.Pass2 = "out_pass2.txt"
	cfg.Output.ObjectProgram = "HTME.txt"

	cfg.Listing.AddressDigits = 4
	cfg.Listing.RecordDigits = 6

	cfg.Display.ColorOutput = true

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "sicasm")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "sicasm")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file. A missing file is
// not an error: the defaults are returned instead.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
