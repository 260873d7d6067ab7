package grid

// ClipboardProvider is where CopySelectedRow writes. The GLFW window and
// golang.design/x/clipboard both satisfy it through the backends.
type ClipboardProvider interface {
	// SetText copies text to the system clipboard.
	SetText(text string)
}

// CopySelectedRow copies the selected row to the clipboard as tab-separated
// values. It reports false when nothing is selected or no clipboard is configured.
func (g *Grid) CopySelectedRow() bool {
	if g.clipboard == nil || g.state.SelectedRow == NoRow {
		return false
	}
	g.clipboard.SetText(g.SelectedRowText())
	return true
}

// SetClipboard replaces the clipboard provider, e.g. once a window exists.
func (g *Grid) SetClipboard(cp ClipboardProvider) {
	g.clipboard = cp
}
