// Package term hosts a grid in a terminal through Bubble Tea.
//
// One grid unit is one terminal cell: rows are a cell tall and text is
// measured in cells with go-runewidth, so wide runes take two columns.
package term

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/go-theft-auto/grid"
)

// ErrControlRune is returned by CellFont for text that would move the
// terminal cursor, such as tabs and newlines.
var ErrControlRune = errors.New("term: control rune in cell text")

// CellFont measures text in terminal cells.
type CellFont struct{}

var _ grid.Font = CellFont{}

// MeasureText implements grid.Font.
func (CellFont) MeasureText(text string) (float32, error) {
	for _, r := range text {
		if unicode.IsControl(r) {
			return 0, fmt.Errorf("%w: %q", ErrControlRune, r)
		}
	}
	return float32(runewidth.StringWidth(text)), nil
}

// LineHeight implements grid.Font.
func (CellFont) LineHeight() float32 { return 1 }

// CellConfig converts a pixel configuration to terminal cells. Page size,
// fit criterion, theme and palettes carry over; sizes are replaced with
// one-cell rows and strips.
func CellConfig(base grid.Config) grid.Config {
	cfg := base
	cfg.RowHeight = 1
	cfg.HeaderHeight = 1
	cfg.FooterHeight = 1
	cfg.RowSeparatorWidth = 0
	cfg.ColumnSeparatorWidth = 0
	cfg.FooterSeparatorWidth = 0
	cfg.CellLeftPadding = 1
	cfg.DefaultColumnWidth = 16
	cfg.ScrollbarWidth = 1
	cfg.Width = 0
	return cfg
}
