package config

import "testing"

func TestAddRecentFile(t *testing.T) {
	tests := []struct {
		name          string
		initial       RecentFiles
		path          string
		maxEntries    int
		expectedPaths []string
		expectedCount int
	}{
		{
			name:          "add to empty list",
			initial:       RecentFiles{Files: []RecentFile{}},
			path:          "/data/a.csv",
			maxEntries:    10,
			expectedPaths: []string{"/data/a.csv"},
			expectedCount: 1,
		},
		{
			name: "duplicate moves to front",
			initial: RecentFiles{Files: []RecentFile{
				{Path: "/data/b.csv", UseCount: 1},
				{Path: "/data/a.csv", UseCount: 3},
			}},
			path:          "/data/a.csv",
			maxEntries:    10,
			expectedPaths: []string{"/data/a.csv", "/data/b.csv"},
			expectedCount: 4,
		},
		{
			name: "trim to max entries",
			initial: RecentFiles{Files: []RecentFile{
				{Path: "/data/a.csv", UseCount: 1},
				{Path: "/data/b.csv", UseCount: 1},
			}},
			path:          "/data/c.csv",
			maxEntries:    2,
			expectedPaths: []string{"/data/c.csv", "/data/a.csv"},
			expectedCount: 1,
		},
		{
			name:          "blank path ignored",
			initial:       RecentFiles{Files: []RecentFile{{Path: "/data/a.csv", UseCount: 2}}},
			path:          "   ",
			maxEntries:    10,
			expectedPaths: []string{"/data/a.csv"},
			expectedCount: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AddRecentFile(tt.initial, tt.path, ActionImport, tt.maxEntries)

			got := result.PathsFor(ActionImport)
			if len(got) != len(tt.expectedPaths) {
				t.Fatalf("Expected %v, got %v", tt.expectedPaths, got)
			}
			for i := range got {
				if got[i] != tt.expectedPaths[i] {
					t.Errorf("Expected %v, got %v", tt.expectedPaths, got)
					break
				}
			}
			if result.Files[0].UseCount != tt.expectedCount {
				t.Errorf("Expected first use count %d, got %d", tt.expectedCount, result.Files[0].UseCount)
			}
		})
	}
}

func TestLoadAndSaveRecentFiles(t *testing.T) {
	useTempConfigHome(t)

	recent, err := LoadRecentFiles()
	if err != nil {
		t.Fatalf("LoadRecentFiles failed: %v", err)
	}
	if len(recent.Files) != 0 {
		t.Errorf("Expected empty list, got %d files", len(recent.Files))
	}

	recent = AddRecentFile(recent, "/data/a.csv", ActionImport, 10)
	recent = AddRecentFile(recent, "/data/spreadsheet.csv", ActionExport, 10)
	if err := SaveRecentFiles(recent); err != nil {
		t.Fatalf("SaveRecentFiles failed: %v", err)
	}

	loaded, err := LoadRecentFiles()
	if err != nil {
		t.Fatalf("LoadRecentFiles after save failed: %v", err)
	}
	if len(loaded.Files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(loaded.Files))
	}
	if loaded.Files[0].Path != "/data/spreadsheet.csv" || loaded.Files[0].Action != ActionExport {
		t.Errorf("Unexpected first entry: %+v", loaded.Files[0])
	}
}

func TestRecentPathsFor(t *testing.T) {
	recent := RecentFiles{}
	recent = AddRecentFile(recent, "/data/in.csv", ActionImport, 10)
	recent = AddRecentFile(recent, "/out/spreadsheet.csv", ActionExport, 10)
	recent = AddRecentFile(recent, "/data/other.csv", ActionImport, 10)

	imports := recent.PathsFor(ActionImport)
	if len(imports) != 2 || imports[0] != "/data/other.csv" || imports[1] != "/data/in.csv" {
		t.Errorf("Unexpected import paths: %v", imports)
	}
	if exports := recent.PathsFor(ActionExport); len(exports) != 1 {
		t.Errorf("Expected 1 export path, got %v", exports)
	}
}
