package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the grid bindings. Modal input is matched by key string.
type keyMap struct {
	up          key.Binding
	down        key.Binding
	left        key.Binding
	right       key.Binding
	top         key.Binding
	bottom      key.Binding
	search      key.Binding
	addRow      key.Binding
	addColumn   key.Binding
	columns     key.Binding
	importCSV   key.Binding
	export      key.Binding
	wrap        key.Binding
	sort        key.Binding
	edit        key.Binding
	copyCell    key.Binding
	copyRow     key.Binding
	stats       key.Binding
	messages    key.Binding
	help        key.Binding
	clearSearch key.Binding
	quit        key.Binding
}

func newKeyMap(vimMode bool) keyMap {
	up, down, left, right := []string{"up"}, []string{"down"}, []string{"left"}, []string{"right"}
	if vimMode {
		up = append(up, "k")
		down = append(down, "j")
		left = append(left, "h")
		right = append(right, "l")
	}
	return keyMap{
		up:     key.NewBinding(key.WithKeys(up...), key.WithHelp("↑", "up")),
		down:   key.NewBinding(key.WithKeys(down...), key.WithHelp("↓", "down")),
		left:   key.NewBinding(key.WithKeys(append(left, "shift+tab")...), key.WithHelp("←", "prev column")),
		right:  key.NewBinding(key.WithKeys(append(right, "tab")...), key.WithHelp("→", "next column")),
		top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first row")),
		bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last row")),
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		addRow: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add row"),
		),
		addColumn: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "add column"),
		),
		columns: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "columns"),
		),
		importCSV: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "import"),
		),
		export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export"),
		),
		wrap: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "wrap"),
		),
		sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "edit"),
		),
		copyCell: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy cell"),
		),
		copyRow: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "copy row"),
		),
		stats: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "stats"),
		),
		messages: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "messages"),
		),
		help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		clearSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.search, k.addRow, k.addColumn, k.columns, k.importCSV, k.export, k.wrap, k.edit, k.help, k.quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.left, k.right, k.top, k.bottom},
		{k.search, k.clearSearch, k.sort, k.wrap},
		{k.addRow, k.addColumn, k.columns, k.edit},
		{k.importCSV, k.export, k.copyCell, k.copyRow},
		{k.stats, k.messages, k.help, k.quit},
	}
}
