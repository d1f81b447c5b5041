package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"github.com/user/sheet-manager-tui/pkg/csvcodec"
	"github.com/user/sheet-manager-tui/pkg/models"
	"github.com/user/sheet-manager-tui/pkg/registry"
	"github.com/user/sheet-manager-tui/pkg/store"
	"github.com/user/sheet-manager-tui/pkg/view"
)

const (
	modalNone      = "none"
	modalSearch    = "search"
	modalEdit      = "edit"
	modalAddColumn = "addColumn"
	modalColumns   = "columns"
	modalImport    = "import"
	modalExport    = "export"
	modalHelp      = "help"
	modalStats     = "stats"
	modalMessages  = "messages"
)

const statusDuration = 6 * time.Second

// App represents the main TUI application
type App struct {
	state     *models.AppState
	store     *store.Store
	view      []models.Row
	width     int
	height    int
	keys      keyMap
	help      help.Model
	grid      *Grid
	editor    *CellEditor
	picker    *ColumnPicker
	exporter  *Exporter
	clipboard *ClipboardManager
	helpModal *HelpModal
	status    *StatusLog
	summaries []*SummaryBuilder
	prompt    textinput.Model
	vimMode   bool
	logger    log.FieldLogger

	recentFiles     []string
	recentCursor    int
	persistRecentFn func(path, action string) error
	persistStateFn  func(lastImportPath, exportDir string) error
}

type importResultMsg struct {
	path    string
	records []models.Fields
	headers []string
	err     error
}

// NewApp creates a new TUI application over st
func NewApp(appState *models.AppState, st *store.Store) *App {
	if appState.UIState.ActiveModal == "" {
		appState.UIState.ActiveModal = modalNone
	}

	discard := log.New()
	discard.SetOutput(io.Discard)

	prompt := textinput.New()
	prompt.CharLimit = 4096

	grid := NewGrid(18)
	grid.SetWrap(appState.UIState.CellWrap)

	a := &App{
		state:     appState,
		store:     st,
		width:     120,
		height:    40,
		keys:      newKeyMap(true),
		help:      help.New(),
		grid:      grid,
		editor:    NewCellEditor(),
		picker:    NewColumnPicker(),
		exporter:  NewExporter(appState.ExportDir, csvcodec.DefaultFileName),
		clipboard: NewClipboardManager(),
		helpModal: NewHelpModal(),
		status:    NewStatusLog(),
		summaries: []*SummaryBuilder{NewSummaryBuilder(models.ColumnStatus), NewSummaryBuilder(models.ColumnPriority)},
		prompt:    prompt,
		vimMode:   true,
		logger:    discard,
	}
	a.helpModal.SetBindings(a.help.FullHelpView(a.keys.FullHelp()))
	a.refreshView()
	return a
}

// SetLogger sets where the app logs imports, exports and sheet changes
func (a *App) SetLogger(logger log.FieldLogger) {
	if logger != nil {
		a.logger = logger
	}
}

// SetVimMode enables or disables vim-style navigation keys.
func (a *App) SetVimMode(enabled bool) {
	a.vimMode = enabled
	a.keys = newKeyMap(enabled)
	a.helpModal.SetBindings(a.help.FullHelpView(a.keys.FullHelp()))
}

// SetCopyFormat sets the format used when copying a whole row
func (a *App) SetCopyFormat(format string) error {
	return a.clipboard.SetCopyFormat(format)
}

// SetColumnWidth sets the width of every grid column
func (a *App) SetColumnWidth(width int) {
	wrap := a.grid.Wrap()
	a.grid = NewGrid(width)
	a.grid.SetWrap(wrap)
}

// SetExportTarget sets the export directory and CSV file name
func (a *App) SetExportTarget(dir, fileName string) {
	a.exporter = NewExporter(dir, fileName)
	a.state.ExportDir = dir
}

// SetRecentFiles sets the CSV paths offered by the import prompt (most recent first)
func (a *App) SetRecentFiles(paths []string) {
	a.recentFiles = append([]string{}, paths...)
}

// SetRecentFilesPersistFn sets the callback run after a successful import or export
func (a *App) SetRecentFilesPersistFn(fn func(path, action string) error) {
	a.persistRecentFn = fn
}

// SetStatePersistFn sets the callback that saves the last import path and export dir
func (a *App) SetStatePersistFn(fn func(lastImportPath, exportDir string) error) {
	a.persistStateFn = fn
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles events and state mutations
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case importResultMsg:
		a.applyImport(msg)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyPress(msg)
	}

	// cursor blink and other textinput messages
	var cmd tea.Cmd
	switch a.state.UIState.ActiveModal {
	case modalSearch, modalAddColumn, modalImport:
		a.prompt, cmd = a.prompt.Update(msg)
	case modalEdit:
		cmd = a.editor.UpdateInput(msg)
	}
	return a, cmd
}

// Search sets the search term and rebuilds the view
func (a *App) Search(term string) {
	a.state.UIState.SearchTerm = term
	a.refreshView()
}

// AddRow appends a default row and moves the cursor to it when it is shown
func (a *App) AddRow() models.RowID {
	id := a.store.AddRow()
	a.refreshView()
	if idx := view.IndexOf(a.view, id); idx >= 0 {
		a.setCursorRow(idx)
	}
	a.logger.WithField("row", id).Debug("row added")
	return id
}

// AddColumn adds a column named name. Blank and existing names are ignored.
func (a *App) AddColumn(name string) bool {
	name = strings.TrimSpace(name)
	if !a.store.AddColumn(name) {
		return false
	}
	a.refreshView()
	a.state.UIState.CursorCol = len(a.store.Columns()) - 1
	a.logger.WithField("column", name).Info("column added")
	return true
}

// ToggleColumnVisible shows or hides a column and returns its new visibility
func (a *App) ToggleColumnVisible(name string) bool {
	visible := a.store.ToggleColumn(name)
	if !visible && a.state.UIState.Sort.Column == name {
		a.state.UIState.Sort = models.SortState{}
	}
	a.refreshView()
	a.logger.WithFields(log.Fields{"column": name, "visible": visible}).Debug("column toggled")
	return visible
}

// ImportFromFile reads and decodes path off the update loop. The sheet is
// replaced when the result arrives; on failure it is left untouched.
func (a *App) ImportFromFile(path string) tea.Cmd {
	path = expandHome(strings.TrimSpace(path))
	return func() tea.Msg {
		records, headers, err := csvcodec.ReadFile(path)
		return importResultMsg{path: path, records: records, headers: headers, err: err}
	}
}

func (a *App) applyImport(msg importResultMsg) {
	if msg.err != nil {
		a.state.LastError = msg.err
		a.status.Error(importErrorText(msg.path, msg.err), statusDuration)
		a.logger.WithError(msg.err).WithField("path", msg.path).Warn("import failed")
		return
	}

	if a.state.UIState.ActiveModal == modalEdit {
		a.editor.Close()
		a.state.UIState.ActiveModal = modalNone
	}

	a.store.ReplaceAll(msg.records, msg.headers)
	a.state.LastImportPath = msg.path
	a.state.UIState.CursorRow = 0
	a.state.UIState.CursorCol = 0
	a.state.UIState.CursorRowID = ""
	if !a.store.HasColumn(a.state.UIState.Sort.Column) {
		a.state.UIState.Sort = models.SortState{}
	}
	a.refreshView()

	a.status.Info(fmt.Sprintf("Imported %d rows, %d columns from %s", a.store.Len(), len(a.store.Columns()), filepath.Base(msg.path)), statusDuration)
	a.logger.WithFields(log.Fields{"path": msg.path, "rows": a.store.Len(), "columns": len(a.store.Columns())}).Info("csv imported")
	a.remember(msg.path, "import")
}

func importErrorText(path string, err error) string {
	if errors.Is(err, csvcodec.ErrEmptyInput) {
		return "Import skipped: " + filepath.Base(path) + " is empty"
	}
	return "Import failed: " + err.Error()
}

// ExportToFile writes the whole sheet, active columns only, as CSV
func (a *App) ExportToFile() (string, error) {
	return a.ExportAs(FormatCSV)
}

// ExportAs writes the whole sheet in format. The search and sort do not apply.
func (a *App) ExportAs(format ExportFormat) (string, error) {
	path, err := a.exporter.Export(format, a.store.Columns(), a.store.Rows())
	if err != nil {
		a.state.LastError = err
		a.logger.WithError(err).WithField("format", format).Warn("export failed")
		return "", err
	}
	a.logger.WithFields(log.Fields{"path": path, "format": format, "rows": a.store.Len()}).Info("sheet exported")
	a.remember(path, "export")
	return path, nil
}

// CellWrapEnabled reports whether cells wrap instead of truncating
func (a *App) CellWrapEnabled() bool {
	return a.state.UIState.CellWrap
}

// ToggleCellWrap flips cell wrapping
func (a *App) ToggleCellWrap() {
	a.state.UIState.CellWrap = !a.state.UIState.CellWrap
	a.grid.SetWrap(a.state.UIState.CellWrap)
}

// Store returns the record store backing the grid
func (a *App) Store() *store.Store {
	return a.store
}

// ViewRows returns the rows currently displayed, in display order
func (a *App) ViewRows() []models.Row {
	return append([]models.Row(nil), a.view...)
}

func (a *App) remember(path, action string) {
	if action == "import" {
		a.recentFiles = prependUnique(a.recentFiles, path)
	}
	if a.persistRecentFn != nil {
		if err := a.persistRecentFn(path, action); err != nil {
			a.logger.WithError(err).Warn("failed to save recent files")
		}
	}
	if a.persistStateFn != nil {
		if err := a.persistStateFn(a.state.LastImportPath, a.exporter.Dir()); err != nil {
			a.logger.WithError(err).Warn("failed to save state")
		}
	}
}

// refreshView rebuilds the displayed rows and keeps the cursor on the same
// row when it is still shown
func (a *App) refreshView() {
	ui := &a.state.UIState
	a.view = view.Build(a.store.Rows(), ui.SearchTerm, ui.Sort)

	if idx := view.IndexOf(a.view, ui.CursorRowID); ui.CursorRowID != "" && idx >= 0 {
		ui.CursorRow = idx
	} else {
		ui.CursorRow = clampInt(ui.CursorRow, 0, len(a.view)-1)
	}
	if len(a.view) == 0 {
		ui.CursorRow = 0
		ui.CursorRowID = ""
	} else {
		ui.CursorRowID = a.view[ui.CursorRow].ID
	}
	ui.CursorCol = clampInt(ui.CursorCol, 0, len(a.store.Columns())-1)
}

func (a *App) setCursorRow(idx int) {
	if len(a.view) == 0 {
		return
	}
	idx = clampInt(idx, 0, len(a.view)-1)
	a.state.UIState.CursorRow = idx
	a.state.UIState.CursorRowID = a.view[idx].ID
}

func (a *App) moveCursorCol(delta int) {
	a.state.UIState.CursorCol = clampInt(a.state.UIState.CursorCol+delta, 0, len(a.store.Columns())-1)
}

func (a *App) currentRow() *models.Row {
	if len(a.view) == 0 {
		return nil
	}
	row := a.view[a.state.UIState.CursorRow]
	return &row
}

func (a *App) currentColumn() string {
	columns := a.store.Columns()
	if len(columns) == 0 {
		return ""
	}
	return columns[a.state.UIState.CursorCol]
}

// handleKeyPress processes keyboard input
func (a *App) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.quit) {
		return a, tea.Quit
	}

	switch a.state.UIState.ActiveModal {
	case modalSearch:
		return a.handleSearchInput(msg)
	case modalAddColumn:
		return a.handleAddColumnInput(msg)
	case modalImport:
		return a.handleImportInput(msg)
	case modalExport:
		return a.handleExportInput(msg)
	case modalColumns:
		return a.handleColumnPickerInput(msg)
	case modalEdit:
		return a.handleEditorInput(msg)
	case modalHelp:
		switch msg.String() {
		case "esc", "?", "q":
			a.helpModal.SetVisible(false)
			a.state.UIState.ActiveModal = modalNone
		}
		return a, nil
	case modalStats:
		switch msg.String() {
		case "esc", "t", "q":
			a.state.UIState.ActiveModal = modalNone
		}
		return a, nil
	case modalMessages:
		switch msg.String() {
		case "esc", "m", "q":
			a.state.UIState.ActiveModal = modalNone
		case "c":
			a.status.Clear()
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.up):
		a.setCursorRow(a.state.UIState.CursorRow - 1)
	case key.Matches(msg, a.keys.down):
		a.setCursorRow(a.state.UIState.CursorRow + 1)
	case key.Matches(msg, a.keys.left):
		a.moveCursorCol(-1)
	case key.Matches(msg, a.keys.right):
		a.moveCursorCol(1)
	case key.Matches(msg, a.keys.top):
		a.setCursorRow(0)
	case key.Matches(msg, a.keys.bottom):
		a.setCursorRow(len(a.view) - 1)
	case key.Matches(msg, a.keys.search):
		return a, a.openPrompt(modalSearch, "Search: ", "", a.state.UIState.SearchTerm)
	case key.Matches(msg, a.keys.clearSearch):
		if a.state.UIState.SearchTerm != "" {
			a.Search("")
		}
	case key.Matches(msg, a.keys.addRow):
		id := a.AddRow()
		if row, ok := a.store.Row(id); ok && !view.Matches(row, a.state.UIState.SearchTerm) {
			a.status.Info("Added row (hidden by search)", statusDuration)
		} else {
			a.status.Info("Added row", statusDuration)
		}
	case key.Matches(msg, a.keys.addColumn):
		return a, a.openPrompt(modalAddColumn, "New column: ", "column name", "")
	case key.Matches(msg, a.keys.columns):
		a.picker.Sync(a.store.KnownColumns(), a.store.Columns())
		a.state.UIState.ActiveModal = modalColumns
	case key.Matches(msg, a.keys.importCSV):
		a.recentCursor = -1
		return a, a.openPrompt(modalImport, "Import CSV: ", "path/to/file.csv", a.state.LastImportPath)
	case key.Matches(msg, a.keys.export):
		a.state.UIState.ActiveModal = modalExport
	case key.Matches(msg, a.keys.wrap):
		a.ToggleCellWrap()
	case key.Matches(msg, a.keys.sort):
		if col := a.currentColumn(); col != "" {
			a.state.UIState.Sort = view.NextSort(a.state.UIState.Sort, col)
			a.refreshView()
		}
	case key.Matches(msg, a.keys.edit):
		return a, a.openEditor()
	case key.Matches(msg, a.keys.copyCell):
		a.copyCurrentCell()
	case key.Matches(msg, a.keys.copyRow):
		a.copyCurrentRow()
	case key.Matches(msg, a.keys.stats):
		a.state.UIState.ActiveModal = modalStats
	case key.Matches(msg, a.keys.messages):
		a.state.UIState.ActiveModal = modalMessages
	case key.Matches(msg, a.keys.help):
		a.helpModal.SetVisible(true)
		a.state.UIState.ActiveModal = modalHelp
	}
	return a, nil
}

func (a *App) openPrompt(modal, label, placeholder, value string) tea.Cmd {
	a.prompt.Prompt = label
	a.prompt.Placeholder = placeholder
	a.prompt.SetValue(value)
	a.prompt.CursorEnd()
	a.state.UIState.ActiveModal = modal
	return a.prompt.Focus()
}

func (a *App) closePrompt() {
	a.prompt.Blur()
	a.state.UIState.ActiveModal = modalNone
}

// handleSearchInput filters live as the term changes
func (a *App) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.closePrompt()
		return a, nil
	case "esc":
		a.closePrompt()
		a.Search("")
		return a, nil
	}

	var cmd tea.Cmd
	a.prompt, cmd = a.prompt.Update(msg)
	if a.prompt.Value() != a.state.UIState.SearchTerm {
		a.Search(a.prompt.Value())
	}
	return a, cmd
}

func (a *App) handleAddColumnInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(a.prompt.Value())
		a.closePrompt()
		if a.AddColumn(name) {
			a.status.Info("Added column "+name, statusDuration)
		}
		return a, nil
	case "esc":
		a.closePrompt()
		return a, nil
	}

	var cmd tea.Cmd
	a.prompt, cmd = a.prompt.Update(msg)
	return a, cmd
}

func (a *App) handleImportInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		path := strings.TrimSpace(a.prompt.Value())
		a.closePrompt()
		if path == "" {
			return a, nil
		}
		a.status.Info("Importing "+filepath.Base(path)+"...", statusDuration)
		return a, a.ImportFromFile(path)
	case "esc":
		a.closePrompt()
		return a, nil
	case "up", "ctrl+p":
		a.cycleRecentFile(1)
		return a, nil
	case "down", "ctrl+n":
		a.cycleRecentFile(-1)
		return a, nil
	}

	var cmd tea.Cmd
	a.prompt, cmd = a.prompt.Update(msg)
	return a, cmd
}

func (a *App) cycleRecentFile(delta int) {
	if len(a.recentFiles) == 0 {
		return
	}
	a.recentCursor = clampInt(a.recentCursor+delta, 0, len(a.recentFiles)-1)
	a.prompt.SetValue(a.recentFiles[a.recentCursor])
	a.prompt.CursorEnd()
}

func (a *App) handleExportInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var format ExportFormat
	switch msg.String() {
	case "esc", "x":
		a.state.UIState.ActiveModal = modalNone
		return a, nil
	case "1":
		format = FormatCSV
	case "2":
		format = FormatJSON
	case "3":
		format = FormatJSONL
	case "4":
		format = FormatSQLite
	default:
		return a, nil
	}

	a.state.UIState.ActiveModal = modalNone
	path, err := a.ExportAs(format)
	if err != nil {
		a.status.Error("Export failed: "+err.Error(), statusDuration)
		return a, nil
	}
	a.status.Info(fmt.Sprintf("Exported %s: %s", strings.ToUpper(string(format)), path), statusDuration)
	return a, nil
}

func (a *App) handleColumnPickerInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "v", "q":
		a.state.UIState.ActiveModal = modalNone
	case "j", "down":
		a.picker.MoveDown()
	case "k", "up":
		a.picker.MoveUp()
	case " ", "enter":
		if col := a.picker.Current(); col != "" {
			a.ToggleColumnVisible(col)
			a.picker.Sync(a.store.KnownColumns(), a.store.Columns())
		}
	}
	return a, nil
}

func (a *App) openEditor() tea.Cmd {
	row := a.currentRow()
	col := a.currentColumn()
	if row == nil || col == "" {
		return nil
	}
	a.state.UIState.ActiveModal = modalEdit
	return a.editor.Open(row.ID, col, row.Get(col))
}

// handleEditorInput writes every accepted change straight to the store,
// addressed by row identity so the active search and sort cannot misdirect it
func (a *App) handleEditorInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		a.editor.Close()
		a.state.UIState.ActiveModal = modalNone
		return a, nil
	}

	value, changed, cmd := a.editor.HandleKey(msg)
	if !changed {
		return a, cmd
	}

	rowID, col := a.editor.Target()
	if err := a.store.SetCell(rowID, col, value); err != nil {
		a.state.LastError = err
		a.status.Error("Edit failed: "+err.Error(), statusDuration)
		a.logger.WithError(err).WithField("row", rowID).Warn("edit failed")
		return a, cmd
	}
	a.refreshView()
	return a, cmd
}

func (a *App) copyCurrentCell() {
	row := a.currentRow()
	col := a.currentColumn()
	if row == nil || col == "" {
		return
	}
	if _, err := a.clipboard.CopyCell(row.Get(col)); err != nil {
		a.status.Error(err.Error(), statusDuration)
		return
	}
	a.status.Info("Copied cell", statusDuration)
}

func (a *App) copyCurrentRow() {
	content, err := a.clipboard.CopyRowDefault(a.currentRow(), a.store.Columns())
	if err != nil {
		a.status.Error(err.Error(), statusDuration)
		return
	}
	a.status.Info(fmt.Sprintf("Copied row as %s (%d chars)", a.clipboard.GetCopyFormat(), len(content)), statusDuration)
}

// View renders the UI
func (a *App) View() string {
	if !a.state.IsReady {
		return "Loading...\n"
	}

	topBar := a.renderTopBar()
	toolbar := a.renderToolbar()
	footer := a.renderStatusPanel()

	overhead := strings.Count(topBar, "\n") + strings.Count(toolbar, "\n") + strings.Count(footer, "\n")
	gridHeight := maxInt(4, a.height-overhead-1)

	var result strings.Builder
	result.WriteString(topBar)
	result.WriteString(toolbar)
	result.WriteString(a.grid.Render(GridFrame{
		Rows:      a.view,
		Columns:   a.store.Columns(),
		Sort:      a.state.UIState.Sort,
		CursorRow: a.state.UIState.CursorRow,
		CursorCol: a.state.UIState.CursorCol,
		Width:     a.width,
		Height:    gridHeight,
		Empty:     a.emptyMessage(),
	}))
	base := result.String()
	if pad := a.height - strings.Count(base, "\n") - strings.Count(footer, "\n"); pad > 0 {
		base += strings.Repeat("\n", pad)
	}
	output := base + footer

	popupWidth := minInt(64, maxInt(30, a.width-8))
	switch a.state.UIState.ActiveModal {
	case modalAddColumn:
		output = placeOverlay(output, popupBox("Add column", a.prompt.View(), popupWidth), a.width, a.height)
	case modalImport:
		output = placeOverlay(output, popupBox("Import CSV", a.renderImportBody(), popupWidth), a.width, a.height)
	case modalExport:
		output = placeOverlay(output, popupBox("Export sheet", a.renderExportBody(), popupWidth), a.width, a.height)
	case modalColumns:
		output = placeOverlay(output, popupBox(a.picker.Title(), a.picker.Render(), 0), a.width, a.height)
	case modalEdit:
		output = placeOverlay(output, popupBox(a.editor.Title(), a.editor.Render(), popupWidth), a.width, a.height)
	case modalStats:
		output = placeOverlay(output, popupBox("Summary", a.renderStatsBody(), popupWidth), a.width, a.height)
	case modalMessages:
		output = placeOverlay(output, popupBox("Messages", a.renderMessagesBody(popupWidth-4), popupWidth), a.width, a.height)
	case modalHelp:
		output = placeOverlay(output, a.helpModal.Render(a.width, a.height), a.width, a.height)
	}
	return output
}

func (a *App) emptyMessage() string {
	if a.state.UIState.SearchTerm != "" {
		return fmt.Sprintf("No rows match %q. Press esc to clear the search.", a.state.UIState.SearchTerm)
	}
	return "No rows yet. Press a to add one or i to import a CSV file."
}

func (a *App) renderTopBar() string {
	left := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("27")).Padding(0, 1).Render("Sheet Manager")

	wrap := "off"
	if a.state.UIState.CellWrap {
		wrap = "on"
	}
	sortLabel := "none"
	if s := a.state.UIState.Sort; s.Active() {
		sortLabel = HeaderLabel(s.Column, s)
	}
	keys := "std"
	if a.vimMode {
		keys = "vim"
	}
	rightText := fmt.Sprintf("rows:%d/%d  cols:%d  sort:%s  wrap:%s  keys:%s",
		len(a.view), a.store.Len(), len(a.store.Columns()), sortLabel, wrap, keys)
	if a.status.HasErrors() {
		rightText = "⚠ m for details  " + rightText
	}
	right := lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("31")).Padding(0, 1).Render(rightText)
	fill := maxInt(0, a.width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", fill) + right + "\n"
}

func (a *App) renderToolbar() string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	if a.state.UIState.ActiveModal == modalSearch {
		return a.prompt.View() + "\n"
	}
	left := label.Render("Search: / to filter rows")
	if term := a.state.UIState.SearchTerm; term != "" {
		left = label.Render("Search: ") + term + label.Render("  (/ edit, esc clear)")
	}
	status := a.summaries[0]
	if !a.store.HasColumn(status.Column()) {
		return left + "\n"
	}
	right := status.RenderCompact(status.BuildDistribution(a.view))
	fill := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if right == "" || fill < 2 {
		return left + "\n"
	}
	return left + strings.Repeat(" ", fill) + right + "\n"
}

func (a *App) renderStatsBody() string {
	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render(
		fmt.Sprintf("%d of %d rows shown", len(a.view), a.store.Len())))
	sb.WriteString("\n")
	for _, summary := range a.summaries {
		sb.WriteString("\n")
		sb.WriteString(headerStyle.Render(registry.Lookup(summary.Column()).Header))
		sb.WriteString("\n")
		sb.WriteString(summary.RenderDistributionBar(summary.BuildDistribution(a.view), 24))
	}
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render("esc close"))
	return sb.String()
}

func (a *App) renderStatusPanel() string {
	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Render(strings.Repeat("━", maxInt(1, a.width))))
	sb.WriteString("\n")
	if line := a.status.RenderLine(a.width - 2); line != "" {
		sb.WriteString(" " + line + "\n")
	}
	sb.WriteString(a.help.ShortHelpView(a.keys.ShortHelp()))
	sb.WriteString("\n")
	return sb.String()
}

func (a *App) renderImportBody() string {
	var sb strings.Builder
	sb.WriteString(a.prompt.View())
	sb.WriteString("\n")
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	if len(a.recentFiles) > 0 {
		sb.WriteString(dim.Render("Recent (↑/↓):"))
		sb.WriteString("\n")
		for i, path := range a.recentFiles {
			if i >= 5 {
				break
			}
			marker := "  "
			if i == a.recentCursor {
				marker = "› "
			}
			sb.WriteString(marker + truncateLine(path, 56) + "\n")
		}
	}
	sb.WriteString(dim.Render("Replaces every row and column. enter import • esc cancel"))
	return sb.String()
}

func (a *App) renderMessagesBody(width int) string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	body := a.status.RenderList(width, maxInt(3, a.height-10))
	if body == "" {
		body = "No messages yet\n"
	}
	return body + dim.Render("c clear • esc close")
}

func (a *App) renderExportBody() string {
	var sb strings.Builder
	columns := a.store.Columns()
	rows := a.store.Rows()
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	overwrites := false
	for i, format := range ExportFormats {
		path := a.exporter.PathFor(format)
		mark := " "
		if a.exporter.FileExists(path) {
			mark = "*"
			overwrites = true
		}
		sb.WriteString(fmt.Sprintf("%d  %-6s  ~%-8s %s%s\n",
			i+1, strings.ToUpper(string(format)), a.exporter.HumanSize(columns, rows, format), mark, truncateLine(path, 40)))
	}
	if overwrites {
		sb.WriteString(dim.Render("* file exists and will be replaced") + "\n")
	}
	if last := a.exporter.GetLastExportPath(); last != "" {
		sb.WriteString(dim.Render("Last export: "+truncateLine(last, 50)) + "\n")
	}
	sb.WriteString(dim.Render(
		fmt.Sprintf("%d rows × %d columns, search and sort ignored • esc cancel", len(rows), len(columns))))
	return sb.String()
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func prependUnique(list []string, item string) []string {
	out := make([]string, 0, len(list)+1)
	out = append(out, item)
	for _, v := range list {
		if v != item {
			out = append(out, v)
		}
	}
	return out
}
