package grid

import (
	"fmt"
	"math"
	"strings"
)

// FitCriterion selects how column widths are derived from the model.
type FitCriterion int

const (
	// FitDefault gives every column the configured default width.
	FitDefault FitCriterion = iota
	// FitHeaderLabel sizes each column to its header label.
	FitHeaderLabel
	// FitColumnContent sizes each column to its widest cell.
	FitColumnContent
	// FitHeaderAndContent takes the wider of the two above.
	FitHeaderAndContent
)

func (c FitCriterion) String() string {
	switch c {
	case FitDefault:
		return "default"
	case FitHeaderLabel:
		return "header"
	case FitColumnContent:
		return "content"
	case FitHeaderAndContent:
		return "header_and_content"
	default:
		return fmt.Sprintf("FitCriterion(%d)", int(c))
	}
}

// ParseFitCriterion parses the names produced by FitCriterion.String.
func ParseFitCriterion(s string) (FitCriterion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default", "":
		return FitDefault, nil
	case "header":
		return FitHeaderLabel, nil
	case "content":
		return FitColumnContent, nil
	case "header_and_content", "header-and-content":
		return FitHeaderAndContent, nil
	default:
		return FitDefault, fmt.Errorf("grid: unknown fit criterion %q", s)
	}
}

// LayoutOptions carries the configuration the width computation depends on.
type LayoutOptions struct {
	DefaultWidth   float32 // used by FitDefault
	LeftPadding    float32 // added to every measured width
	AvailableWidth float32 // container width; slack is spread over the columns
}

// LayoutError reports a string the font could not measure.
type LayoutError struct {
	Column int
	Text   string
	Header bool
	Err    error
}

func (e *LayoutError) Error() string {
	where := "cell"
	if e.Header {
		where = "header"
	}
	return fmt.Sprintf("grid: measure %s text %q in column %d: %v", where, e.Text, e.Column, e.Err)
}

func (e *LayoutError) Unwrap() error { return e.Err }

// ComputeWidths returns one width per column of m.
//
// Measured widths include opts.LeftPadding, except for FitColumnContent on a
// model without rows, which yields zero for every column. When the widths sum
// to less than opts.AvailableWidth, each column grows by an equal whole-pixel
// share of the difference; the remainder of the division is dropped.
func ComputeWidths(m *Model, font, headerFont Font, criterion FitCriterion, opts LayoutOptions) ([]float32, error) {
	n := m.NumColumns()
	widths := make([]float32, n)
	if n == 0 {
		return widths, nil
	}

	switch criterion {
	case FitDefault:
		for i := range widths {
			widths[i] = opts.DefaultWidth
		}
	case FitHeaderLabel:
		if err := fitHeaders(widths, m, headerFont, opts.LeftPadding); err != nil {
			return nil, err
		}
	case FitColumnContent:
		if err := fitContent(widths, m, font, opts.LeftPadding); err != nil {
			return nil, err
		}
	case FitHeaderAndContent:
		if err := fitHeaders(widths, m, headerFont, opts.LeftPadding); err != nil {
			return nil, err
		}
		content := make([]float32, n)
		if err := fitContent(content, m, font, opts.LeftPadding); err != nil {
			return nil, err
		}
		for i := range widths {
			widths[i] = maxf(widths[i], content[i])
		}
	default:
		return nil, fmt.Errorf("grid: compute widths: %v", criterion)
	}

	distributeSlack(widths, opts.AvailableWidth)
	return widths, nil
}

func fitHeaders(widths []float32, m *Model, font Font, pad float32) error {
	for col, label := range m.Columns() {
		w, err := font.MeasureText(label)
		if err != nil {
			return &LayoutError{Column: col, Text: label, Header: true, Err: err}
		}
		widths[col] = w + pad
	}
	return nil
}

// fitContent leaves widths at zero when the model has no rows.
func fitContent(widths []float32, m *Model, font Font, pad float32) error {
	for row := 0; row < m.NumRows(); row++ {
		for col, text := range m.Row(row) {
			w, err := font.MeasureText(text)
			if err != nil {
				return &LayoutError{Column: col, Text: text, Err: err}
			}
			widths[col] = maxf(widths[col], w+pad)
		}
	}
	return nil
}

func distributeSlack(widths []float32, available float32) {
	var sum float32
	for _, w := range widths {
		sum += w
	}
	slack := available - sum
	if slack <= 0 || len(widths) == 0 {
		return
	}
	share := float32(math.Floor(float64(slack) / float64(len(widths))))
	for i := range widths {
		widths[i] += share
	}
}

// columnStarts returns the x offset of every column plus the total content
// width as the final element.
func columnStarts(widths []float32, separator float32) []float32 {
	starts := make([]float32, len(widths)+1)
	var x float32
	for i, w := range widths {
		starts[i] = x
		x += w + separator
	}
	starts[len(widths)] = x
	return starts
}

func sameWidths(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
