package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	appDirName     = "sheet-manager-tui"
	configFileName = "config.yaml"
)

// Config holds user preferences read from config.yaml
type Config struct {
	VimMode        bool   `yaml:"vimMode"`
	CellWrap       bool   `yaml:"cellWrap"`
	ColumnWidth    int    `yaml:"columnWidth"`
	ExportDir      string `yaml:"exportDir,omitempty"`
	ExportFileName string `yaml:"exportFileName"`
	SeedDemoData   bool   `yaml:"seedDemoData"`
	StampSubmitted bool   `yaml:"stampSubmitted"`
	MaxRecentFiles int    `yaml:"maxRecentFiles"`
	LogLevel       string `yaml:"logLevel"`
	CopyFormat     string `yaml:"copyFormat"`
}

// DefaultConfig returns default configuration values
func DefaultConfig() Config {
	return Config{
		VimMode:        true,
		CellWrap:       false,
		ColumnWidth:    18,
		ExportFileName: "spreadsheet.csv",
		SeedDemoData:   true,
		StampSubmitted: false,
		MaxRecentFiles: 10,
		LogLevel:       "info",
		CopyFormat:     "csv",
	}
}

// GetConfigDir returns the XDG config directory for sheet-manager-tui
func GetConfigDir() (string, error) {
	var configDir string

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		configDir = filepath.Join(xdgHome, appDirName)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config", appDirName)
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", err
	}

	return configDir, nil
}

// LoadConfig loads configuration from disk, returns default if file doesn't exist.
// Keys missing from the file keep their default value.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configDir, err := GetConfigDir()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(filepath.Join(configDir, configFileName))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config.yaml: %w", err)
	}
	return cfg.sanitized(), nil
}

// SaveConfig saves configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, configFileName), data, 0o600)
}

// ConfigExists reports whether config.yaml is present in the config dir
func ConfigExists() bool {
	configDir, err := GetConfigDir()
	if err != nil {
		return false
	}
	_, err = os.Stat(filepath.Join(configDir, configFileName))
	return err == nil
}

func (c Config) sanitized() Config {
	def := DefaultConfig()
	if c.ColumnWidth < 4 {
		c.ColumnWidth = def.ColumnWidth
	}
	if c.ExportFileName == "" {
		c.ExportFileName = def.ExportFileName
	}
	if c.MaxRecentFiles <= 0 {
		c.MaxRecentFiles = def.MaxRecentFiles
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	switch c.CopyFormat {
	case "csv", "tsv", "json":
	default:
		c.CopyFormat = def.CopyFormat
	}
	return c
}

// State represents persistent application state
type State struct {
	LastImportPath string    `json:"lastImportPath,omitempty"`
	LastExportDir  string    `json:"lastExportDir,omitempty"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

// LoadState loads state from disk
func LoadState() (State, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return State{}, err
	}

	statePath := filepath.Join(configDir, "state.json")

	if _, err := os.Stat(statePath); os.IsNotExist(err) {
		return State{LastUpdated: time.Now()}, nil
	}

	data, err := os.ReadFile(statePath)
	if err != nil {
		return State{}, err
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, err
	}

	return state, nil
}

// SaveState saves state to disk
func SaveState(state State) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	state.LastUpdated = time.Now()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, "state.json"), data, 0o600)
}
