package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempConfigHome(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	return filepath.Join(tmpDir, appDirName)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		expected interface{}
		actual   interface{}
	}{
		{"VimMode", true, cfg.VimMode},
		{"CellWrap", false, cfg.CellWrap},
		{"ColumnWidth", 18, cfg.ColumnWidth},
		{"ExportFileName", "spreadsheet.csv", cfg.ExportFileName},
		{"SeedDemoData", true, cfg.SeedDemoData},
		{"StampSubmitted", false, cfg.StampSubmitted},
		{"MaxRecentFiles", 10, cfg.MaxRecentFiles},
		{"LogLevel", "info", cfg.LogLevel},
		{"CopyFormat", "csv", cfg.CopyFormat},
	}

	for _, tt := range tests {
		if tt.expected != tt.actual {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.expected, tt.actual)
		}
	}
}

func TestGetConfigDirWithXDGEnv(t *testing.T) {
	expected := useTempConfigHome(t)

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir with XDG failed: %v", err)
	}

	if dir != expected {
		t.Errorf("Expected %s, got %s", expected, dir)
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Fatalf("Config directory was not created: %s", dir)
	}
}

func TestGetConfigDirFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir failed: %v", err)
	}

	expected := filepath.Join(home, ".config", appDirName)
	if dir != expected {
		t.Errorf("Expected %s, got %s", expected, dir)
	}
}

func TestLoadAndSaveConfig(t *testing.T) {
	useTempConfigHome(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Loaded config doesn't match default")
	}
	if ConfigExists() {
		t.Errorf("Expected no config.yaml before save")
	}

	cfg.CellWrap = true
	cfg.CopyFormat = "tsv"
	cfg.ColumnWidth = 30
	cfg.ExportDir = "/tmp/out"
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	if !ConfigExists() {
		t.Errorf("Expected config.yaml after save")
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig after save failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("Expected %+v, got %+v", cfg, loaded)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	dir := useTempConfigHome(t)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	yamlText := "cellWrap: true\ncolumnWidth: 2\ncopyFormat: yaml\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlText), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if !cfg.CellWrap {
		t.Errorf("Expected cellWrap from file")
	}
	if cfg.ColumnWidth != 18 {
		t.Errorf("Expected too-small width to fall back to 18, got %d", cfg.ColumnWidth)
	}
	if cfg.CopyFormat != "csv" {
		t.Errorf("Expected unknown copy format to fall back to csv, got %s", cfg.CopyFormat)
	}
	if !cfg.SeedDemoData || cfg.ExportFileName != "spreadsheet.csv" {
		t.Errorf("Expected defaults for missing keys, got %+v", cfg)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := useTempConfigHome(t)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("cellWrap: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if !strings.Contains(err.Error(), "config.yaml") {
		t.Errorf("Expected error to name the file, got %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Expected defaults on parse error")
	}
}

func TestLoadAndSaveState(t *testing.T) {
	useTempConfigHome(t)

	state, err := LoadState()
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if state.LastImportPath != "" {
		t.Errorf("Expected empty LastImportPath, got %s", state.LastImportPath)
	}

	state.LastImportPath = "/data/jobs.csv"
	state.LastExportDir = "/data/out"
	if err := SaveState(state); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	loaded, err := LoadState()
	if err != nil {
		t.Fatalf("LoadState after save failed: %v", err)
	}
	if loaded.LastImportPath != "/data/jobs.csv" {
		t.Errorf("Expected LastImportPath '/data/jobs.csv', got %s", loaded.LastImportPath)
	}
	if loaded.LastExportDir != "/data/out" {
		t.Errorf("Expected LastExportDir '/data/out', got %s", loaded.LastExportDir)
	}
	if loaded.LastUpdated.IsZero() {
		t.Errorf("Expected LastUpdated to be stamped")
	}
}
