package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrRowLength is returned when a row does not have one value per column.
	ErrRowLength = errors.New("grid: row length does not match column count")

	// ErrRowIndexOutOfRange is returned when a row index does not name an existing row.
	ErrRowIndexOutOfRange = errors.New("grid: row index out of range")
)

// Model is the dataset shown by a Grid: ordered column labels and rows of
// cell text. Every row has exactly one value per column.
//
// Slices returned by Columns and Row are owned by the model and must not be modified.
type Model struct {
	columns []string
	rows    [][]string
}

// NewModel copies columns and rows into a new model.
func NewModel(columns []string, rows [][]string) (*Model, error) {
	m := &Model{
		columns: append([]string(nil), columns...),
		rows:    make([][]string, 0, len(rows)),
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), len(columns), ErrRowLength)
		}
		m.rows = append(m.rows, append([]string(nil), row...))
	}
	return m, nil
}

// Columns returns the column labels.
func (m *Model) Columns() []string { return m.columns }

// NumColumns returns the number of columns.
func (m *Model) NumColumns() int { return len(m.columns) }

// NumRows returns the number of rows.
func (m *Model) NumRows() int { return len(m.rows) }

// Row returns the values of row i, or nil when i is out of range.
func (m *Model) Row(i int) []string {
	if i < 0 || i >= len(m.rows) {
		return nil
	}
	return m.rows[i]
}

// Cell returns the value at (row, col), or "" when out of range.
func (m *Model) Cell(row, col int) string {
	r := m.Row(row)
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// AppendRow adds a row at the end.
func (m *Model) AppendRow(values []string) error {
	if len(values) != len(m.columns) {
		return fmt.Errorf("append row: %d values, want %d: %w", len(values), len(m.columns), ErrRowLength)
	}
	m.rows = append(m.rows, append([]string(nil), values...))
	return nil
}

// ReplaceRow overwrites the values of an existing row.
func (m *Model) ReplaceRow(index int, values []string) error {
	if index < 0 || index >= len(m.rows) {
		return fmt.Errorf("replace row %d of %d: %w", index, len(m.rows), ErrRowIndexOutOfRange)
	}
	if len(values) != len(m.columns) {
		return fmt.Errorf("replace row %d: %d values, want %d: %w", index, len(values), len(m.columns), ErrRowLength)
	}
	m.rows[index] = append([]string(nil), values...)
	return nil
}

// truncate drops rows past n. Used to roll back a rejected append.
func (m *Model) truncate(n int) {
	if n >= 0 && n < len(m.rows) {
		m.rows = m.rows[:n]
	}
}

// restoreRow puts back a row slice captured before ReplaceRow.
func (m *Model) restoreRow(index int, values []string) {
	if index >= 0 && index < len(m.rows) {
		m.rows[index] = values
	}
}
