package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full option surface of a run. Query and Root come from the
// command line only; the remaining fields may be seeded from an optional
// TOML defaults file and overridden by explicit flags.
type Config struct {
	Query string `toml:"-"`
	Root  string `toml:"-"`

	Num           int  `toml:"num"`
	FilesOnly     bool `toml:"files_only"`
	DirsOnly      bool `toml:"dirs_only"`
	CaseSensitive bool `toml:"case_sensitive"`
	Parallel      bool `toml:"parallel"`
	Long          bool `toml:"long"`

	Verbose bool `toml:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Root:     ".",
		Num:      10,
		Parallel: true,
	}
}

// DefaultConfigPath returns the location of the user defaults file.
func DefaultConfigPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "pathsift", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "pathsift", "config.toml"), nil
}

// Load reads the defaults file at path, falling back to DefaultConfigPath
// when path is empty. A missing file is not an error; the built-in defaults
// are returned. A file that exists but does not parse is a configuration
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	resolved := path
	if resolved == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return cfg, err
		}
		resolved = defaultPath
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := toml.NewDecoder(file).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", resolved, err)
	}
	return cfg, nil
}

// Validate rejects option combinations the pipeline cannot honor.
func (c *Config) Validate() error {
	if c.Num < 0 {
		return fmt.Errorf("num must be non-negative, got %d", c.Num)
	}
	if c.Root == "" {
		return errors.New("root directory must not be empty")
	}
	return nil
}
