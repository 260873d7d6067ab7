package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/grid"
)

func TestPaginatorLastPageIndex(t *testing.T) {
	tests := []struct {
		rows, pageSize, want int
	}{
		{23, 5, 4},
		{0, 5, 0},
		{5, 5, 0},
		{6, 5, 1},
		{10, 5, 1},
		{1, 1, 0},
	}
	for _, tt := range tests {
		state := grid.NewViewState()
		p := grid.NewPaginator(tt.pageSize, tt.rows, &state)
		assert.Equal(t, tt.want, p.LastPageIndex(), "rows=%d pageSize=%d", tt.rows, tt.pageSize)
		assert.Equal(t, tt.want+1, p.PageCount())
	}
}

func TestPaginatorBoundariesAreNoOps(t *testing.T) {
	state := grid.NewViewState()
	p := grid.NewPaginator(5, 23, &state)

	state.HoveredRow, state.SelectedRow = 1, 2
	assert.False(t, p.Previous())
	assert.Equal(t, 0, p.CurrentPage())
	assert.Equal(t, 1, state.HoveredRow, "no-op must not touch hover")
	assert.Equal(t, 2, state.SelectedRow)

	p.Last()
	assert.Equal(t, 4, p.CurrentPage())
	state.SelectedRow = 21
	assert.False(t, p.Next())
	assert.Equal(t, 4, p.CurrentPage())
	assert.Equal(t, 21, state.SelectedRow)
}

func TestPaginatorNavigationClearsPointerState(t *testing.T) {
	state := grid.NewViewState()
	p := grid.NewPaginator(5, 23, &state)

	steps := []struct {
		name string
		move func()
		page int
	}{
		{"next", func() { p.Next() }, 1},
		{"previous", func() { p.Previous() }, 0},
		{"last", p.Last, 4},
		{"first", p.First, 0},
		{"first again", p.First, 0},
	}
	for _, s := range steps {
		state.HoveredRow, state.SelectedRow = 3, 4
		s.move()
		assert.Equal(t, s.page, p.CurrentPage(), s.name)
		assert.Equal(t, grid.NoRow, state.HoveredRow, s.name)
		assert.Equal(t, grid.NoRow, state.SelectedRow, s.name)
	}
}

func TestPaginatorVisibleRowRange(t *testing.T) {
	state := grid.NewViewState()
	p := grid.NewPaginator(2, 3, &state)

	start, end := p.VisibleRowRange()
	assert.Equal(t, [2]int{0, 2}, [2]int{start, end})

	p.Last()
	start, end = p.VisibleRowRange()
	assert.Equal(t, [2]int{2, 3}, [2]int{start, end})
	assert.True(t, p.OnCurrentPage(2))
	assert.False(t, p.OnCurrentPage(1))
	assert.Equal(t, "2 / 2", p.PageLabel())

	page, slot := p.PageOf(2)
	assert.Equal(t, 1, page)
	assert.Equal(t, 0, slot)
}

func TestPaginatorSetRowCountClamps(t *testing.T) {
	state := grid.NewViewState()
	p := grid.NewPaginator(5, 23, &state)
	p.Last()

	p.SetRowCount(7)
	assert.Equal(t, 1, p.CurrentPage())

	p.SetRowCount(0)
	assert.Equal(t, 0, p.CurrentPage())
	start, end := p.VisibleRowRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
	assert.Equal(t, "1 / 1", p.PageLabel())
}
