package grid

import "fmt"

// Paginator maps rows onto fixed-size pages and owns page navigation.
// Every navigation that changes the page clears hover and selection.
type Paginator struct {
	pageSize int
	rowCount int
	state    *ViewState
}

// NewPaginator returns a paginator over rowCount rows writing to state.
// pageSize must be positive.
func NewPaginator(pageSize, rowCount int, state *ViewState) *Paginator {
	if pageSize <= 0 {
		pageSize = 1
	}
	p := &Paginator{pageSize: pageSize, state: state}
	p.SetRowCount(rowCount)
	return p
}

// PageSize returns the number of row slots per page.
func (p *Paginator) PageSize() int { return p.pageSize }

// RowCount returns the number of rows being paginated.
func (p *Paginator) RowCount() int { return p.rowCount }

// CurrentPage returns the 0-based current page.
func (p *Paginator) CurrentPage() int { return p.state.CurrentPage }

// LastPageIndex returns the index of the last page; 0 for an empty model.
func (p *Paginator) LastPageIndex() int {
	if p.rowCount == 0 {
		return 0
	}
	return (p.rowCount+p.pageSize-1)/p.pageSize - 1
}

// PageCount returns the number of pages; an empty model still has one.
func (p *Paginator) PageCount() int {
	return p.LastPageIndex() + 1
}

// SetRowCount tracks a model size change, pulling the current page back
// inside the valid range when the model shrank.
func (p *Paginator) SetRowCount(n int) {
	if n < 0 {
		n = 0
	}
	p.rowCount = n
	if last := p.LastPageIndex(); p.state.CurrentPage > last {
		p.state.CurrentPage = last
	}
	if p.state.CurrentPage < 0 {
		p.state.CurrentPage = 0
	}
}

// Next moves one page forward. It reports false and changes nothing on the last page.
func (p *Paginator) Next() bool {
	if p.state.CurrentPage >= p.LastPageIndex() {
		return false
	}
	p.goTo(p.state.CurrentPage + 1)
	return true
}

// Previous moves one page back. It reports false and changes nothing on page 0.
func (p *Paginator) Previous() bool {
	if p.state.CurrentPage <= 0 {
		return false
	}
	p.goTo(p.state.CurrentPage - 1)
	return true
}

// First jumps to page 0.
func (p *Paginator) First() { p.goTo(0) }

// Last jumps to the last page.
func (p *Paginator) Last() { p.goTo(p.LastPageIndex()) }

func (p *Paginator) goTo(page int) {
	p.state.CurrentPage = page
	p.state.clearPointer()
}

// VisibleRowRange returns the half-open range of absolute rows on the current page.
func (p *Paginator) VisibleRowRange() (start, end int) {
	start = p.state.CurrentPage * p.pageSize
	end = min(start+p.pageSize, p.rowCount)
	if end < start {
		end = start
	}
	return start, end
}

// PageOf returns the page holding absolute row abs and its slot within the page.
func (p *Paginator) PageOf(abs int) (page, slot int) {
	return abs / p.pageSize, abs % p.pageSize
}

// OnCurrentPage reports whether absolute row abs is shown on the current page.
func (p *Paginator) OnCurrentPage(abs int) bool {
	start, end := p.VisibleRowRange()
	return abs >= start && abs < end
}

// PageLabel renders the 1-based page indicator shown in the footer.
func (p *Paginator) PageLabel() string {
	return fmt.Sprintf("%d / %d", p.state.CurrentPage+1, p.PageCount())
}
