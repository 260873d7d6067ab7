package grid

import "log/slog"

// Option configures a Grid.
type Option func(*Grid)

// WithLogger routes the grid's logs to logger instead of the package default.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Grid) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithFonts sets the fonts used for cells and for the header and footer.
// A nil font keeps the default bitmap font.
func WithFonts(cell, header Font) Option {
	return func(g *Grid) {
		if cell != nil {
			g.font = cell
		}
		if header != nil {
			g.headerFont = header
		}
	}
}

// WithRowSelected registers the callback fired whenever the selected row
// changes. It receives NoRow when the selection is cleared.
func WithRowSelected(fn func(row int)) Option {
	return func(g *Grid) { g.onRowSelected = fn }
}

// WithScrollbarsChanged registers the callback fired by Idle when the
// required scrollbars change.
func WithScrollbarsChanged(fn func(vertical, horizontal bool)) Option {
	return func(g *Grid) { g.onScrollbars = fn }
}

// WithClipboard enables CopySelectedRow.
func WithClipboard(cp ClipboardProvider) Option {
	return func(g *Grid) { g.clipboard = cp }
}
