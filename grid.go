package grid

import (
	"fmt"
	"log/slog"
	"strings"
)

// Grid is a paginated data grid with hover and single-row selection.
//
// A Grid is not safe for concurrent use; the host delivers every call from
// its UI thread.
type Grid struct {
	cfg        Config
	model      *Model
	state      ViewState
	pager      *Paginator
	metrics    *Metrics
	render     *Renderer
	ctl        *Controller
	font       Font
	headerFont Font
	logger     *slog.Logger
	clipboard  ClipboardProvider

	onRowSelected func(row int)
	onScrollbars  func(vertical, horizontal bool)

	viewportW, viewportH float32
	resizePending        bool
	showV, showH         bool
	drag                 *scrollDrag
	lastPointer          Vec2
	pointerKnown         bool
}

// New builds a grid over model and draws it.
// It fails with ErrInvalidConfig or a *LayoutError.
func New(model *Model, cfg Config, opts ...Option) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if model == nil {
		model = &Model{}
	}

	g := &Grid{
		cfg:    cfg,
		model:  model,
		state:  NewViewState(),
		logger: defaultLogger,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.font == nil {
		g.font = NewFixedFont(1)
	}
	if g.headerFont == nil {
		g.headerFont = g.font
	}

	widths, err := g.computeWidths(model)
	if err != nil {
		return nil, err
	}

	g.metrics = newMetrics(cfg, widths)
	g.pager = NewPaginator(cfg.PageSize, model.NumRows(), &g.state)
	g.render = newRenderer(model, g.metrics, cfg.Palettes.Select(cfg.Theme), g.font, g.headerFont, g.logger)
	g.ctl = newController(&g.state, g.pager, g.render, g.metrics, g.logger)
	g.ctl.selected = g.emitSelected

	g.redrawAll()
	return g, nil
}

func (g *Grid) computeWidths(m *Model) ([]float32, error) {
	return ComputeWidths(m, g.font, g.headerFont, g.cfg.Fit, g.cfg.layoutOptions())
}

func (g *Grid) emitSelected(row int) {
	if g.onRowSelected != nil {
		g.onRowSelected(row)
	}
}

// redrawAll repaints header, visible page and footer from the current state.
func (g *Grid) redrawAll() {
	g.render.DrawHeader()
	g.redrawPage()
}

func (g *Grid) redrawPage() {
	start, end := g.pager.VisibleRowRange()
	g.render.DrawPage(start, end, g.ctl.background)
	g.drawFooter()
}

func (g *Grid) drawFooter() {
	g.render.DrawFooter(g.visibleWidth(), g.PageLabel())
}

// Model returns the dataset being shown.
func (g *Grid) Model() *Model { return g.model }

// Config returns the configuration the grid was built with.
func (g *Grid) Config() Config { return g.cfg }

// State returns a copy of the view state.
func (g *Grid) State() ViewState { return g.state }

// Paginator exposes page arithmetic. Use the Grid navigation methods to
// change pages so the view is redrawn.
func (g *Grid) Paginator() *Paginator { return g.pager }

// Controller exposes the hit tests of the body.
func (g *Grid) Controller() *Controller { return g.ctl }

// Renderer exposes the retained surfaces.
func (g *Grid) Renderer() *Renderer { return g.render }

// Metrics returns the resolved geometry.
func (g *Grid) Metrics() *Metrics { return g.metrics }

// Widths returns the current column widths.
func (g *Grid) Widths() []float32 { return g.metrics.Widths() }

// Theme returns the active theme mode.
func (g *Grid) Theme() ThemeMode { return g.cfg.Theme }

// Palette returns the palette of the active theme.
func (g *Grid) Palette() Palette { return g.cfg.Palettes.Select(g.cfg.Theme) }

// PageLabel returns the footer page indicator, e.g. "2 / 5".
func (g *Grid) PageLabel() string { return g.pager.PageLabel() }

// SelectedRowText returns the selected row's values joined by tabs.
func (g *Grid) SelectedRowText() string {
	return strings.Join(g.model.Row(g.state.SelectedRow), "\t")
}

// SwitchTheme repaints everything with the palette of mode. Hover and
// selection are kept.
func (g *Grid) SwitchTheme(mode ThemeMode) {
	g.cfg.Theme = mode
	g.render.setPalette(g.cfg.Palettes.Select(mode))
	g.redrawAll()
	g.logger.Debug("switch theme", "mode", mode)
}

// SetFitCriterion recomputes the column widths with criterion.
func (g *Grid) SetFitCriterion(criterion FitCriterion) error {
	prev := g.cfg.Fit
	g.cfg.Fit = criterion
	widths, err := g.computeWidths(g.model)
	if err != nil {
		g.cfg.Fit = prev
		return err
	}
	g.applyWidths(widths)
	return nil
}

// applyWidths installs new widths and repaints.
func (g *Grid) applyWidths(widths []float32) {
	g.metrics.setWidths(widths)
	g.redrawAll()
	g.markResize()
}

// UpdateDataFrame replaces the model and resets the view to the first page
// with nothing hovered or selected. On a layout error the previous model stays.
func (g *Grid) UpdateDataFrame(model *Model) error {
	if model == nil {
		model = &Model{}
	}
	widths, err := g.computeWidths(model)
	if err != nil {
		return err
	}

	hadSelection := g.state.SelectedRow != NoRow
	g.model = model
	g.render.setModel(model)
	g.state = NewViewState()
	g.drag = nil
	g.pager.SetRowCount(model.NumRows())
	g.metrics.setWidths(widths)
	g.redrawAll()
	g.markResize()

	if hadSelection {
		g.emitSelected(NoRow)
	}
	g.logger.Debug("update data frame", "rows", model.NumRows(), "columns", model.NumColumns())
	return nil
}

// AppendRow adds a row to the model and shows it if it lands on the current page.
func (g *Grid) AppendRow(values []string) error {
	n := g.model.NumRows()
	if err := g.model.AppendRow(values); err != nil {
		return err
	}
	widths, err := g.computeWidths(g.model)
	if err != nil {
		g.model.truncate(n)
		return err
	}
	g.pager.SetRowCount(g.model.NumRows())
	g.refreshRow(n, widths)
	return nil
}

// ReplaceRow overwrites row index and redraws it if visible.
// An index outside the model fails with ErrRowIndexOutOfRange.
func (g *Grid) ReplaceRow(index int, values []string) error {
	old := g.model.Row(index)
	if err := g.model.ReplaceRow(index, values); err != nil {
		return err
	}
	widths, err := g.computeWidths(g.model)
	if err != nil {
		g.model.restoreRow(index, old)
		return err
	}
	g.refreshRow(index, widths)
	return nil
}

// refreshRow repaints after a single-row mutation: the whole view when the
// column widths moved, otherwise just the row, the filler and the footer.
func (g *Grid) refreshRow(abs int, widths []float32) {
	if !sameWidths(widths, g.metrics.widths) {
		g.applyWidths(widths)
		return
	}
	if g.pager.OnCurrentPage(abs) {
		g.render.DrawRow(abs, g.ctl.background(abs))
		start, end := g.pager.VisibleRowRange()
		g.render.DrawEmptySpace(end - start)
	}
	g.drawFooter()
}

// NextPage shows the next page. It reports false on the last page.
func (g *Grid) NextPage() bool {
	sel := g.state.SelectedRow
	if !g.pager.Next() {
		return false
	}
	g.afterNavigate(sel)
	return true
}

// PreviousPage shows the previous page. It reports false on the first page.
func (g *Grid) PreviousPage() bool {
	sel := g.state.SelectedRow
	if !g.pager.Previous() {
		return false
	}
	g.afterNavigate(sel)
	return true
}

// FirstPage shows the first page.
func (g *Grid) FirstPage() {
	sel := g.state.SelectedRow
	g.pager.First()
	g.afterNavigate(sel)
}

// LastPage shows the last page.
func (g *Grid) LastPage() {
	sel := g.state.SelectedRow
	g.pager.Last()
	g.afterNavigate(sel)
}

func (g *Grid) afterNavigate(prevSelected int) {
	g.redrawPage()
	if prevSelected != NoRow {
		g.emitSelected(NoRow)
	}
	g.logger.Debug("navigate", "page", g.state.CurrentPage)
}

// ClearSelection deselects the selected row, if any.
func (g *Grid) ClearSelection() {
	sel := g.state.SelectedRow
	if sel == NoRow {
		return
	}
	g.state.SelectedRow = NoRow
	g.render.DrawRow(sel, g.ctl.background(sel))
	g.emitSelected(NoRow)
}

// OnPointerMove forwards a body-local pointer move to the controller.
func (g *Grid) OnPointerMove(x, y float32) { g.ctl.OnPointerMove(x, y) }

// OnPointerLeave forwards the pointer leaving the body.
func (g *Grid) OnPointerLeave() { g.ctl.OnPointerLeave() }

// OnClick forwards a body-local click to the controller.
func (g *Grid) OnClick(x, y float32) { g.ctl.OnClick(x, y) }

// PointerMove handles a pointer move in widget-local coordinates.
func (g *Grid) PointerMove(x, y float32) {
	r := g.Regions()
	p := Vec2{X: x, Y: y}
	if !r.Body.Contains(p) {
		g.ctl.OnPointerLeave()
		return
	}
	if _, ok := g.ScrollbarAt(x, y); ok {
		g.ctl.OnPointerLeave()
		return
	}
	g.ctl.OnPointerMove(x-r.Body.X, y-r.Body.Y)
}

// PointerLeave handles the pointer leaving the widget.
func (g *Grid) PointerLeave() {
	g.pointerKnown = false
	g.ctl.OnPointerLeave()
}

// Click handles a primary click in widget-local coordinates: scrollbars
// over the body, rows in the body, navigation buttons in the footer.
func (g *Grid) Click(x, y float32) {
	if g.pressScrollbar(x, y) {
		return
	}
	r := g.Regions()
	p := Vec2{X: x, Y: y}
	switch {
	case r.Body.Contains(p):
		g.ctl.OnClick(x-r.Body.X, y-r.Body.Y)
	case r.Footer.Contains(p):
		if b, ok := g.FooterButtonAt(x-r.Footer.X, y-r.Footer.Y); ok {
			g.Press(b)
		}
	}
}

// FooterButtonAt returns the navigation button under footer-local (x, y).
func (g *Grid) FooterButtonAt(x, y float32) (FooterButton, bool) {
	fl := footerLayout(g.visibleWidth(), g.cfg.FooterHeight, g.headerFont, g.PageLabel())
	for i, b := range fl.Buttons {
		if b.Contains(Vec2{X: x, Y: y}) {
			return FooterButton(i), true
		}
	}
	return 0, false
}

// Press activates a footer navigation button.
func (g *Grid) Press(b FooterButton) {
	switch b {
	case ButtonFirst:
		g.FirstPage()
	case ButtonPrevious:
		g.PreviousPage()
	case ButtonNext:
		g.NextPage()
	case ButtonLast:
		g.LastPage()
	}
}

// CellAt returns the cell under widget-local (x, y).
func (g *Grid) CellAt(x, y float32) (Cell, bool) {
	r := g.Regions()
	if !r.Body.Contains(Vec2{X: x, Y: y}) {
		return Cell{}, false
	}
	return g.ctl.CellAt(x-r.Body.X, y-r.Body.Y)
}

// String summarizes the grid for logs.
func (g *Grid) String() string {
	return fmt.Sprintf("grid(%d rows, %d columns, page %s)", g.model.NumRows(), g.model.NumColumns(), g.PageLabel())
}
