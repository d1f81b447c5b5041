package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// RecentFiles lists the CSV files most recently imported or exported
type RecentFiles struct {
	Files []RecentFile `json:"files"`
}

// RecentFile is one entry of RecentFiles
type RecentFile struct {
	Path     string    `json:"path"`
	Action   string    `json:"action"`
	UsedAt   time.Time `json:"usedAt"`
	UseCount int       `json:"useCount"`
}

const (
	ActionImport = "import"
	ActionExport = "export"
)

// LoadRecentFiles loads the recent files list from disk
func LoadRecentFiles() (RecentFiles, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return RecentFiles{}, err
	}
	path := filepath.Join(configDir, "recent.json")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return RecentFiles{Files: []RecentFile{}}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return RecentFiles{}, err
	}
	var recent RecentFiles
	if err := json.Unmarshal(data, &recent); err != nil {
		return RecentFiles{}, err
	}
	if recent.Files == nil {
		recent.Files = []RecentFile{}
	}
	return recent, nil
}

// SaveRecentFiles saves the recent files list to disk
func SaveRecentFiles(recent RecentFiles) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(recent, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(configDir, "recent.json"), data, 0o600)
}

// AddRecentFile moves path to the front of the list and keeps at most maxEntries
func AddRecentFile(recent RecentFiles, path, action string, maxEntries int) RecentFiles {
	path = strings.TrimSpace(path)
	if path == "" {
		return recent
	}

	record := RecentFile{Path: path, Action: action, UsedAt: time.Now(), UseCount: 1}
	rest := make([]RecentFile, 0, len(recent.Files)+1)
	for _, f := range recent.Files {
		if f.Path == path {
			record.UseCount = f.UseCount + 1
			continue
		}
		rest = append(rest, f)
	}

	recent.Files = append([]RecentFile{record}, rest...)
	if maxEntries > 0 && len(recent.Files) > maxEntries {
		recent.Files = recent.Files[:maxEntries]
	}
	return recent
}

// PathsFor returns the paths last used for action, most recent first
func (r RecentFiles) PathsFor(action string) []string {
	out := make([]string, 0, len(r.Files))
	for _, f := range r.Files {
		if f.Action == action {
			out = append(out, f.Path)
		}
	}
	return out
}
