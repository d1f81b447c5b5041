package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/user/sheet-manager-tui/pkg/config"
	"github.com/user/sheet-manager-tui/pkg/csvcodec"
	"github.com/user/sheet-manager-tui/pkg/models"
	"github.com/user/sheet-manager-tui/pkg/registry"
	"github.com/user/sheet-manager-tui/pkg/store"
	"github.com/user/sheet-manager-tui/pkg/ui"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose logging")
	importPath := flag.String("import", "", "CSV file to open at startup")
	noDemo := flag.Bool("no-demo", false, "Start with an empty sheet")
	flag.Parse()

	// Phase 1: Bootstrap
	cfg, cfgErr := config.LoadConfig()
	state, err := config.LoadState()
	if err != nil {
		state = config.State{}
	}

	logFile := setupLogging(cfg, *verbose)
	if logFile != nil {
		defer logFile.Close()
	}
	if cfgErr != nil {
		log.WithError(cfgErr).Warn("using default configuration")
	} else if !config.ConfigExists() {
		if err := config.SaveConfig(cfg); err != nil {
			log.WithError(err).Warn("failed to write default config.yaml")
		}
	}
	if err != nil {
		log.WithError(err).Warn("failed to load state")
	}

	st := store.New(models.DefaultColumns)
	if cfg.StampSubmitted {
		st.SetRowDefaults(func(fields models.Fields) {
			fields[models.ColumnSubmitted] = time.Now().Format(registry.DateLayout)
		})
	}

	appState := models.AppState{
		LastImportPath: state.LastImportPath,
		UIState: models.UIState{
			CellWrap: cfg.CellWrap,
		},
	}

	switch {
	case *importPath != "":
		records, headers, err := csvcodec.ReadFile(*importPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		st.ReplaceAll(records, headers)
		appState.LastImportPath = *importPath
		log.WithFields(log.Fields{"path": *importPath, "rows": st.Len()}).Info("csv loaded at startup")
	case cfg.SeedDemoData && !*noDemo:
		ui.LoadDemoData(st)
	}
	appState.IsReady = true

	// Phase 2: Wire the app
	app := ui.NewApp(&appState, st)
	app.SetLogger(log.StandardLogger())
	app.SetVimMode(cfg.VimMode)
	app.SetColumnWidth(cfg.ColumnWidth)
	if err := app.SetCopyFormat(cfg.CopyFormat); err != nil {
		log.WithError(err).Warn("keeping default copy format")
	}
	app.SetExportTarget(exportDir(cfg, state), cfg.ExportFileName)

	recent, err := config.LoadRecentFiles()
	if err != nil {
		log.WithError(err).Warn("failed to load recent files")
		recent = config.RecentFiles{}
	}
	app.SetRecentFiles(recent.PathsFor(config.ActionImport))
	app.SetRecentFilesPersistFn(func(path, action string) error {
		recent = config.AddRecentFile(recent, path, action, cfg.MaxRecentFiles)
		return config.SaveRecentFiles(recent)
	})
	app.SetStatePersistFn(func(lastImportPath, dir string) error {
		state.LastImportPath = lastImportPath
		state.LastExportDir = dir
		return config.SaveState(state)
	})

	// Phase 3: Start TUI
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		fmt.Printf("Error running app: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends log output to a file in the config dir, since the TUI
// owns the terminal
func setupLogging(cfg config.Config, verbose bool) *os.File {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	configDir, err := config.GetConfigDir()
	if err != nil {
		log.SetOutput(os.Stderr)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(configDir, "sheet-manager.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil
	}
	log.SetOutput(f)
	return f
}

// exportDir picks the configured directory, then the last one used, then the
// working directory
func exportDir(cfg config.Config, state config.State) string {
	switch {
	case cfg.ExportDir != "":
		return cfg.ExportDir
	case state.LastExportDir != "":
		return state.LastExportDir
	default:
		return "."
	}
}
