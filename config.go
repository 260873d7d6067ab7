package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("grid: invalid config")

// Config is the display configuration of a Grid. Sizes are in pixels, or in
// terminal cells when the grid is hosted by backend/term.
type Config struct {
	PageSize int

	RowHeight            float32
	HeaderHeight         float32
	FooterHeight         float32
	RowSeparatorWidth    float32
	ColumnSeparatorWidth float32
	FooterSeparatorWidth float32
	CellLeftPadding      float32
	DefaultColumnWidth   float32
	// ScrollbarWidth is the thickness of the scrollbars drawn over the
	// body. Zero hides them.
	ScrollbarWidth float32

	// Width is the container width column slack is distributed over.
	Width float32

	Fit      FitCriterion
	Theme    ThemeMode
	Palettes Palettes
}

// DefaultConfig returns the stock desk configuration.
func DefaultConfig() Config {
	return Config{
		PageSize:             5,
		RowHeight:            20,
		HeaderHeight:         30,
		FooterHeight:         50,
		RowSeparatorWidth:    1,
		ColumnSeparatorWidth: 0,
		FooterSeparatorWidth: 1,
		CellLeftPadding:      6,
		DefaultColumnWidth:   250,
		ScrollbarWidth:       10,
		Fit:                  FitHeaderAndContent,
		Theme:                ThemeLight,
		Palettes:             DefaultPalettes(),
	}
}

// Validate checks the invariants the grid relies on.
func (c Config) Validate() error {
	switch {
	case c.PageSize <= 0:
		return fmt.Errorf("%w: page size %d must be positive", ErrInvalidConfig, c.PageSize)
	case c.RowHeight <= 0:
		return fmt.Errorf("%w: row height %v must be positive", ErrInvalidConfig, c.RowHeight)
	case c.HeaderHeight < 0 || c.FooterHeight < 0:
		return fmt.Errorf("%w: header and footer heights must not be negative", ErrInvalidConfig)
	case c.RowSeparatorWidth < 0 || c.ColumnSeparatorWidth < 0 || c.FooterSeparatorWidth < 0:
		return fmt.Errorf("%w: separator widths must not be negative", ErrInvalidConfig)
	case c.CellLeftPadding < 0 || c.DefaultColumnWidth < 0 || c.Width < 0 || c.ScrollbarWidth < 0:
		return fmt.Errorf("%w: padding and widths must not be negative", ErrInvalidConfig)
	case c.Fit < FitDefault || c.Fit > FitHeaderAndContent:
		return fmt.Errorf("%w: fit criterion %v", ErrInvalidConfig, c.Fit)
	case c.Theme != ThemeLight && c.Theme != ThemeDark:
		return fmt.Errorf("%w: theme %v", ErrInvalidConfig, c.Theme)
	}
	return nil
}

func (c Config) layoutOptions() LayoutOptions {
	return LayoutOptions{
		DefaultWidth:   c.DefaultColumnWidth,
		LeftPadding:    c.CellLeftPadding,
		AvailableWidth: c.Width,
	}
}

// Metrics is the resolved geometry shared by the renderer and the
// interaction controller.
type Metrics struct {
	cfg    Config
	widths []float32
	starts []float32
}

func newMetrics(cfg Config, widths []float32) *Metrics {
	m := &Metrics{cfg: cfg}
	m.setWidths(widths)
	return m
}

func (m *Metrics) setWidths(widths []float32) {
	m.widths = append(m.widths[:0], widths...)
	m.starts = columnStarts(m.widths, m.cfg.ColumnSeparatorWidth)
}

// Widths returns a copy of the column widths.
func (m *Metrics) Widths() []float32 { return append([]float32(nil), m.widths...) }

// RowPitch is the vertical distance between the tops of consecutive rows.
func (m *Metrics) RowPitch() float32 { return m.cfg.RowHeight + m.cfg.RowSeparatorWidth }

// ContentWidth is the sum of column widths and column separators.
func (m *Metrics) ContentWidth() float32 { return m.starts[len(m.starts)-1] }

// PageHeight is the height of all row slots of one page.
func (m *Metrics) PageHeight() float32 { return float32(m.cfg.PageSize) * m.RowPitch() }

// BodyHeight is the scrollable body height: the page plus the footer separator.
func (m *Metrics) BodyHeight() float32 { return m.PageHeight() + m.cfg.FooterSeparatorWidth }

// ColumnRect returns the horizontal extent of column col.
func (m *Metrics) ColumnRect(col int) (x, w float32) {
	return m.starts[col], m.widths[col]
}

// SlotTop returns the y of the separator strip of page slot slot.
func (m *Metrics) SlotTop(slot int) float32 { return float32(slot) * m.RowPitch() }
