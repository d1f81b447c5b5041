package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/bubbletea"

	"github.com/user/sheet-manager-tui/pkg/csvcodec"
	"github.com/user/sheet-manager-tui/pkg/models"
	"github.com/user/sheet-manager-tui/pkg/store"
)

// TestIntegrationFullWorkflow tests the complete user workflow
func TestIntegrationFullWorkflow(t *testing.T) {
	// STEP 1: Initialize app with demo data
	t.Log("STEP 1: Initialize application")
	st := store.NewWithIDs(models.DefaultColumns, sequentialIDs())
	LoadDemoData(st)
	app := NewApp(&models.AppState{IsReady: true}, st)
	app.clipboard.write = func(string) error { return nil }
	exportDir := t.TempDir()
	app.SetExportTarget(exportDir, "")
	app.Update(tea.WindowSizeMsg{Width: 140, Height: 35})

	demoCount := len(DemoRecords())
	if st.Len() != demoCount {
		t.Fatalf("Expected %d demo rows, got %d", demoCount, st.Len())
	}
	t.Log("✓ App initialized successfully")

	// STEP 2: Add a column and a row
	t.Log("\nSTEP 2: Add a column and a row")
	press(app, keyRune('c'))
	press(app, runes("notes")...)
	press(app, enterKey)
	id := app.AddRow()
	if !st.HasColumn("notes") || st.Len() != demoCount+1 {
		t.Fatalf("Expected notes column and %d rows", demoCount+1)
	}
	t.Log("✓ Column and row added")

	// STEP 3: Fill the new row through the editor
	t.Log("\nSTEP 3: Edit the new row")
	press(app, keyRune('g'))
	press(app, keyRune('G'))
	if app.state.UIState.CursorRowID != id {
		t.Fatalf("Cursor should be on the new row, got %s", app.state.UIState.CursorRowID)
	}
	app.state.UIState.CursorCol = 0
	press(app, enterKey)
	press(app, runes("Repave lot")...)
	press(app, enterKey)
	if got := storeValue(t, app, id, "job"); got != "Repave lot" {
		t.Fatalf("Expected edited job, got %q", got)
	}
	t.Log("✓ Row edited")

	// STEP 4: Search and sort do not change the store
	t.Log("\nSTEP 4: Search and sort")
	press(app, keyRune('/'))
	press(app, runes("repave")...)
	press(app, enterKey)
	press(app, keyRune('s'))
	if len(app.ViewRows()) != 1 {
		t.Fatalf("Expected 1 matching row, got %d", len(app.ViewRows()))
	}
	if st.Len() != demoCount+1 {
		t.Fatal("Search must not remove rows from the store")
	}
	t.Log("✓ View derived without touching the store")

	// STEP 5: Hide a column and export
	t.Log("\nSTEP 5: Export")
	app.ToggleColumnVisible("url")
	path, err := app.ExportToFile()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if filepath.Dir(path) != exportDir {
		t.Errorf("Expected export in %s, got %s", exportDir, path)
	}
	t.Log("✓ Exported to", path)

	// STEP 6: Re-import the export into a fresh app
	t.Log("\nSTEP 6: Re-import")
	other := newTestApp(t, nil)
	other.Update(other.ImportFromFile(path)())
	if other.Store().Len() != demoCount+1 {
		t.Fatalf("Expected %d imported rows, got %d", demoCount+1, other.Store().Len())
	}
	if other.Store().HasColumn("url") {
		t.Error("Hidden column should not come back")
	}
	if !other.Store().HasColumn("notes") {
		t.Error("Dynamic column should survive the round trip")
	}
	rows := other.Store().Rows()
	if rows[len(rows)-1].Get("job") != "Repave lot" {
		t.Errorf("Expected last row to be the added one, got %q", rows[len(rows)-1].Get("job"))
	}
	t.Log("✓ Round trip complete")
}

// TestIntegrationImportReplacesSheet checks an import while a search, sort and
// editor are active
func TestIntegrationImportReplacesSheet(t *testing.T) {
	app := newTestApp(t, jobRecords())
	app.Search("alpha")
	press(app, keyRune('s'))
	press(app, enterKey)
	if app.state.UIState.ActiveModal != modalEdit {
		t.Fatalf("Expected editor open, got %s", app.state.UIState.ActiveModal)
	}

	path := filepath.Join(t.TempDir(), "new.csv")
	content := csvcodec.Encode([]string{"job", "owner"}, []models.Row{
		{Fields: models.Fields{"job": "Alpha two", "owner": "Sam"}},
		{Fields: models.Fields{"job": "Other", "owner": "Ann"}},
	})
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	app.Update(app.ImportFromFile(path)())

	if app.state.UIState.ActiveModal != modalNone || app.editor.IsOpen() {
		t.Error("Import should close the editor")
	}
	if app.state.UIState.SearchTerm != "alpha" {
		t.Error("Search term should survive an import")
	}
	if rows := app.ViewRows(); len(rows) != 1 || rows[0].Get("owner") != "Sam" {
		t.Errorf("Expected search applied to imported rows, got %v", rows)
	}
	if s := app.state.UIState.Sort; s.Column != "job" {
		t.Errorf("Sort on a surviving column should be kept, got %+v", s)
	}
}
