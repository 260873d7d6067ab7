// Package xlsx loads a grid model from an Excel workbook.
//
// The workbook's main sheet is the first one whose A1 cell holds the
// configured marker (the patient list starts with a "Nome" column). Its first
// non-empty row becomes the column labels and every following non-empty row
// a data row, trimmed and padded or truncated to the column count.
package xlsx

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/go-theft-auto/grid"
)

// DefaultMarker is the A1 value identifying the patient list sheet.
const DefaultMarker = "Nome"

var (
	// ErrMainSheetNotFound is returned when no sheet carries the marker.
	ErrMainSheetNotFound = errors.New("xlsx: main sheet not found")

	// ErrEmptySheet is returned when the chosen sheet has no header row.
	ErrEmptySheet = errors.New("xlsx: empty sheet")
)

// Options selects the sheet to load.
type Options struct {
	// Sheet names the sheet explicitly and skips marker detection.
	Sheet string
	// Marker is the A1 value of the main sheet. Empty selects the first
	// sheet with any data.
	Marker string
	// RawCellValues reads unformatted values instead of Excel's display text.
	RawCellValues bool
}

// DefaultOptions looks for the patient list marker.
func DefaultOptions() Options {
	return Options{Marker: DefaultMarker}
}

// ReadFile opens the workbook at path and loads its main sheet.
func ReadFile(path string, opts Options) (m *grid.Model, err error) {
	f, e := excelize.OpenFile(path)
	if e != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, e)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	m, err = load(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Read loads the main sheet of a workbook streamed from r.
func Read(r io.Reader, opts Options) (m *grid.Model, err error) {
	f, e := excelize.OpenReader(r)
	if e != nil {
		return nil, fmt.Errorf("open workbook: %w", e)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return load(f, opts)
}

func load(f *excelize.File, opts Options) (*grid.Model, error) {
	sheet, err := chooseSheet(f, opts)
	if err != nil {
		return nil, err
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: opts.RawCellValues})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return buildModel(rows, sheet)
}

func chooseSheet(f *excelize.File, opts Options) (string, error) {
	if opts.Sheet != "" {
		idx, err := f.GetSheetIndex(opts.Sheet)
		if err != nil {
			return "", err
		}
		if idx < 0 {
			return "", excelize.ErrSheetNotExist{SheetName: opts.Sheet}
		}
		return opts.Sheet, nil
	}
	return FindMainSheet(f, opts.Marker)
}

// FindMainSheet returns the first sheet whose A1 cell equals marker, or the
// first sheet holding any value when marker is empty.
func FindMainSheet(f *excelize.File, marker string) (string, error) {
	for _, sheet := range f.GetSheetList() {
		if marker == "" {
			rows, err := f.GetRows(sheet)
			if err != nil {
				return "", err
			}
			if len(dropEmptyRows(rows)) > 0 {
				return sheet, nil
			}
			continue
		}

		a1, err := f.GetCellValue(sheet, "A1")
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(a1) == marker {
			return sheet, nil
		}
	}
	if marker == "" {
		return "", ErrMainSheetNotFound
	}
	return "", fmt.Errorf("%w: no sheet starts with %q", ErrMainSheetNotFound, marker)
}

func buildModel(rows [][]string, sheet string) (*grid.Model, error) {
	rows = dropEmptyRows(rows)
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q: %w", sheet, ErrEmptySheet)
	}

	columns := trimCells(rows[0])
	for len(columns) > 0 && columns[len(columns)-1] == "" {
		columns = columns[:len(columns)-1]
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("sheet %q: %w", sheet, ErrEmptySheet)
	}

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		data = append(data, fitRow(trimCells(row), len(columns)))
	}
	return grid.NewModel(columns, data)
}

func trimCells(row []string) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = strings.TrimSpace(v)
	}
	return out
}

// fitRow pads row with empty cells or cuts it to n cells.
func fitRow(row []string, n int) []string {
	if len(row) >= n {
		return row[:n]
	}
	return append(row, make([]string, n-len(row))...)
}

func dropEmptyRows(rows [][]string) [][]string {
	out := rows[:0:0]
	for _, row := range rows {
		for _, v := range row {
			if strings.TrimSpace(v) != "" {
				out = append(out, row)
				break
			}
		}
	}
	return out
}
