package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/polish"
)

// DefaultConfigFile is the configuration file read when no --config flag is
// given, if it exists.
const DefaultConfigFile = ".polish.yaml"

// Config holds the settings of the polish command.
type Config struct {
	// Prompt is the prompt shown in interactive mode.
	Prompt string `yaml:"prompt"`
	// Digits is the number of significant digits in results.
	Digits int `yaml:"digits"`
	// MaxDepth limits the depth of parsed trees. Zero is unlimited.
	MaxDepth int `yaml:"max_depth"`
	// Color enables colored output.
	Color bool `yaml:"color"`
	// History is the interactive history file. A relative path is relative
	// to the home directory. Empty disables history.
	History string `yaml:"history"`
}

// DefaultConfig returns the settings used when nothing else is configured.
func DefaultConfig() Config {
	return Config{
		Prompt:  "input expression: ",
		Digits:  polish.DefaultDigits,
		Color:   true,
		History: ".polish_history",
	}
}

// LoadConfig reads a configuration file over the defaults. If path is empty,
// DefaultConfigFile is read if it exists, and the defaults are returned
// otherwise.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		path = DefaultConfigFile
	}

	f, err := os.Open(path)
	if err != nil {
		return config, fmt.Errorf("reading config: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file.
			return config, nil
		}
		return config, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return config, nil
}

// WriteConfig writes a configuration file, replacing any existing one.
func WriteConfig(path string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0o644)
}

// historyPath resolves the history file. The result is empty if history is
// disabled or the home directory is unknown.
func (c Config) historyPath() string {
	if c.History == "" || filepath.IsAbs(c.History) {
		return c.History
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, c.History)
}
