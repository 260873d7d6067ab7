package grid

// NoRow marks the absence of a hovered or selected row.
const NoRow = -1

// NoColumn is returned by column hit tests that land past the last column.
const NoColumn = -1

// ViewState is everything about a grid that changes with user interaction.
// Only Paginator and Controller mutate it.
type ViewState struct {
	CurrentPage int
	HoveredRow  int
	SelectedRow int

	// Scroll positions as fractions of the body content size, in [0, 1].
	ScrollFractionX float32
	ScrollFractionY float32
}

// NewViewState returns the state of a freshly loaded grid.
func NewViewState() ViewState {
	return ViewState{HoveredRow: NoRow, SelectedRow: NoRow}
}

func (s *ViewState) clearPointer() {
	s.HoveredRow = NoRow
	s.SelectedRow = NoRow
}
