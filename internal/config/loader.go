package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".docent.yml"

// fileConfig is the YAML structure of the configuration file. Every field
// is optional; zero values leave the corresponding Config default in place.
type fileConfig struct {
	BaseURL      string        `yaml:"baseURL,omitempty"`
	Timeout      time.Duration `yaml:"timeout,omitempty"`
	UserAgent    string        `yaml:"userAgent,omitempty"`
	Model        string        `yaml:"model,omitempty"`
	Temperature  *float64      `yaml:"temperature,omitempty"`
	FuzzyCutoff  *float64      `yaml:"fuzzyCutoff,omitempty"`
	MaxTables    int           `yaml:"maxTables,omitempty"`
	HistoryDir   string        `yaml:"historyDir,omitempty"`
	Directory    string        `yaml:"directory,omitempty"`
	Instructions string        `yaml:"instructions,omitempty"`
}

// LoadConfigFile applies settings from a YAML file on top of cfg.
// If the file does not exist, it returns ErrConfigNotFound; callers decide
// whether that matters based on whether the path was explicit.
func LoadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return ErrConfigNotFound
		}
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}

	if fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if fc.Timeout != 0 {
		cfg.Timeout = fc.Timeout
	}
	if fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if fc.Model != "" {
		cfg.Model = fc.Model
	}
	if fc.Temperature != nil {
		cfg.Temperature = *fc.Temperature
	}
	if fc.FuzzyCutoff != nil {
		cfg.FuzzyCutoff = *fc.FuzzyCutoff
	}
	if fc.MaxTables != 0 {
		cfg.MaxTables = fc.MaxTables
	}
	if fc.HistoryDir != "" {
		cfg.HistoryDir = fc.HistoryDir
	}
	if fc.Directory != "" {
		cfg.DirectoryPath = fc.Directory
	}
	if fc.Instructions != "" {
		cfg.Instructions = fc.Instructions
	}
	return nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .docent.yml in the current directory
// 3. Look for .docent.yml in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
