package grid

import (
	"log/slog"
	"math"
	"sort"
)

// Cell is a logical cell address.
type Cell struct {
	Row    int // absolute row
	Column int
}

// Controller turns body-local pointer events into hover and selection
// changes and asks the renderer to redraw only the rows whose highlight changed.
//
// At most one row is hovered and at most one row is selected. A selected row
// keeps its selected background while hovered.
type Controller struct {
	state    *ViewState
	pager    *Paginator
	render   *Renderer
	metrics  *Metrics
	logger   *slog.Logger
	selected func(row int)
}

func newController(state *ViewState, pager *Paginator, render *Renderer, metrics *Metrics, logger *slog.Logger) *Controller {
	return &Controller{state: state, pager: pager, render: render, metrics: metrics, logger: logger}
}

// ScrollOffsets returns the horizontal and vertical pixel scroll of the body.
func (c *Controller) ScrollOffsets() (h, v float32) {
	return c.metrics.ContentWidth() * c.state.ScrollFractionX, c.metrics.BodyHeight() * c.state.ScrollFractionY
}

// HitTestRow returns the page slot under body-local y, counting whole row
// pitches from the top of the body content. The separator line at the top of
// a slot belongs to that slot. Points above the content return NoRow.
func (c *Controller) HitTestRow(y float32) int {
	_, v := c.ScrollOffsets()
	target := y + v
	if target < 0 {
		return NoRow
	}
	return int(math.Floor(float64(target / c.metrics.RowPitch())))
}

// HitTestColumn returns the column under body-local x, or NoColumn past the
// last column. A column's trailing separator belongs to that column.
func (c *Controller) HitTestColumn(x float32) int {
	h, _ := c.ScrollOffsets()
	target := x + h
	starts := c.metrics.starts
	n := len(starts) - 1
	if target < 0 || n == 0 || target >= starts[n] {
		return NoColumn
	}
	// First column starting after target, minus one.
	return sort.Search(n, func(i int) bool { return starts[i+1] > target })
}

// targetRow resolves y to an absolute row holding data on the current page.
func (c *Controller) targetRow(y float32) (int, bool) {
	slot := c.HitTestRow(y)
	if slot == NoRow || slot >= c.pager.PageSize() {
		return NoRow, false
	}
	start, end := c.pager.VisibleRowRange()
	abs := start + slot
	if abs >= end {
		return NoRow, false
	}
	return abs, true
}

// CellAt returns the cell under body-local (x, y), if any.
func (c *Controller) CellAt(x, y float32) (Cell, bool) {
	row, ok := c.targetRow(y)
	if !ok {
		return Cell{}, false
	}
	col := c.HitTestColumn(x)
	if col == NoColumn {
		return Cell{}, false
	}
	return Cell{Row: row, Column: col}, true
}

// OnPointerMove updates the hovered row. Points over the filler region of a
// short page are ignored.
func (c *Controller) OnPointerMove(x, y float32) {
	target, ok := c.targetRow(y)
	if !ok {
		return
	}
	prev := c.state.HoveredRow
	if target == prev {
		return
	}

	if target == c.state.SelectedRow {
		if prev != NoRow {
			c.render.DrawRow(prev, BackgroundDefault)
		}
	} else {
		c.render.DrawRow(target, BackgroundHover)
		if prev != NoRow && prev != c.state.SelectedRow {
			c.render.DrawRow(prev, BackgroundDefault)
		}
	}
	c.state.HoveredRow = target
	c.logger.Debug("hover", "row", target, "column", c.HitTestColumn(x))
}

// OnPointerLeave clears the hover highlight.
func (c *Controller) OnPointerLeave() {
	prev := c.state.HoveredRow
	if prev == NoRow {
		return
	}
	if prev != c.state.SelectedRow {
		c.render.DrawRow(prev, BackgroundDefault)
	}
	c.state.HoveredRow = NoRow
}

// OnClick selects the row under the pointer, moves the selection to it, or
// toggles it off when it is already selected. Clicks on filler are ignored.
func (c *Controller) OnClick(x, y float32) {
	target, ok := c.targetRow(y)
	if !ok {
		return
	}

	switch old := c.state.SelectedRow; {
	case old == NoRow:
		c.render.DrawRow(target, BackgroundSelected)
		c.state.SelectedRow = target
	case old != target:
		c.render.DrawRow(old, BackgroundDefault)
		c.render.DrawRow(target, BackgroundSelected)
		c.state.SelectedRow = target
	default:
		c.render.DrawRow(target, BackgroundHover)
		c.state.SelectedRow = NoRow
	}

	// The pointer is over target now, even without a preceding move event.
	if prev := c.state.HoveredRow; prev != NoRow && prev != target && prev != c.state.SelectedRow {
		c.render.DrawRow(prev, BackgroundDefault)
	}
	c.state.HoveredRow = target

	c.logger.Debug("click", "row", target, "selected", c.state.SelectedRow)
	c.emitSelected()
}

func (c *Controller) emitSelected() {
	if c.selected != nil {
		c.selected(c.state.SelectedRow)
	}
}

// background returns the highlight row abs should be drawn with given the
// current view state.
func (c *Controller) background(abs int) Background {
	switch abs {
	case c.state.SelectedRow:
		return BackgroundSelected
	case c.state.HoveredRow:
		return BackgroundHover
	default:
		return BackgroundDefault
	}
}
