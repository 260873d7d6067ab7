package grid

import (
	"log/slog"
)

// Renderer draws the grid onto three retained surfaces: the header strip,
// the scrollable body and the footer. Body drawables are tagged by absolute
// row so a single row can be redrawn without touching its neighbours.
//
// Body coordinates start at the top-left of the first row slot of the page.
type Renderer struct {
	header *Surface
	body   *Surface
	footer *Surface

	model      *Model
	metrics    *Metrics
	palette    Palette
	font       Font
	headerFont Font
	logger     *slog.Logger

	pageStart int // absolute index of the first row slot
}

func newRenderer(model *Model, metrics *Metrics, palette Palette, font, headerFont Font, logger *slog.Logger) *Renderer {
	return &Renderer{
		header:     NewSurface(),
		body:       NewSurface(),
		footer:     NewSurface(),
		model:      model,
		metrics:    metrics,
		palette:    palette,
		font:       font,
		headerFont: headerFont,
		logger:     logger,
	}
}

// Header returns the header surface.
func (r *Renderer) Header() *Surface { return r.header }

// Body returns the body surface.
func (r *Renderer) Body() *Surface { return r.body }

// Footer returns the footer surface.
func (r *Renderer) Footer() *Surface { return r.footer }

// DrawRow replaces the drawables of absolute row abs. Rows that are not on
// the page being shown are only erased.
func (r *Renderer) DrawRow(abs int, kind Background) {
	tag := RowTag(abs)
	r.body.Delete(tag)

	slot := abs - r.pageStart
	if abs < 0 || abs >= r.model.NumRows() || slot < 0 || slot >= r.metrics.cfg.PageSize {
		return
	}

	m := r.metrics
	top := m.SlotTop(slot)
	width := m.ContentWidth()
	sep := m.cfg.RowSeparatorWidth

	r.body.AddRect(tag, Rect{X: 0, Y: top, W: width, H: sep}, r.palette.Separator)
	r.body.AddRect(tag, Rect{X: 0, Y: top + sep, W: width, H: m.cfg.RowHeight}, r.palette.RowColor(kind, abs))
	r.drawColumnSeparators(r.body, tag, top+sep, m.cfg.RowHeight)

	mid := top + sep + m.cfg.RowHeight/2
	row := r.model.Row(abs)
	for col := range m.widths {
		x, w := m.ColumnRect(col)
		text := r.fitText(row[col], w-m.cfg.CellLeftPadding, r.font)
		r.addText(r.body, tag, x+m.cfg.CellLeftPadding, mid, text, r.font)
	}

	r.logger.Debug("draw row", "row", abs, "background", kind)
}

// DrawHeader redraws the header strip: a separator line above and below a
// background band carrying the column labels.
func (r *Renderer) DrawHeader() {
	r.header.Delete(headerTag)

	m := r.metrics
	width := m.ContentWidth()
	sep := m.cfg.RowSeparatorWidth
	h := m.cfg.HeaderHeight

	r.header.AddRect(headerTag, Rect{X: 0, Y: 0, W: width, H: h}, r.palette.Background)
	r.header.AddRect(headerTag, Rect{X: 0, Y: 0, W: width, H: sep}, r.palette.Separator)
	r.header.AddRect(headerTag, Rect{X: 0, Y: h - sep, W: width, H: sep}, r.palette.Separator)
	r.drawColumnSeparators(r.header, headerTag, sep, h-2*sep)

	for col, label := range r.model.Columns() {
		x, w := m.ColumnRect(col)
		text := r.fitText(label, w-m.cfg.CellLeftPadding, r.headerFont)
		r.addText(r.header, headerTag, x+m.cfg.CellLeftPadding, h/2, text, r.headerFont)
	}
}

func (r *Renderer) drawColumnSeparators(s *Surface, tag Tag, y, h float32) {
	m := r.metrics
	cs := m.cfg.ColumnSeparatorWidth
	if cs <= 0 {
		return
	}
	for col := range m.widths {
		x, w := m.ColumnRect(col)
		s.AddRect(tag, Rect{X: x + w, Y: y, W: cs, H: h}, r.palette.Separator)
	}
}

// DrawEmptySpace paints the slots from slot fromSlot to the end of the page
// with the background color, keeping the body height constant on a short
// last page.
func (r *Renderer) DrawEmptySpace(fromSlot int) {
	r.body.Delete(fillerTag)

	m := r.metrics
	if fromSlot < 0 {
		fromSlot = 0
	}
	if fromSlot >= m.cfg.PageSize {
		return
	}
	top := m.SlotTop(fromSlot)
	r.body.AddRect(fillerTag, Rect{X: 0, Y: top, W: m.ContentWidth(), H: m.PageHeight() - top}, r.palette.Background)
}

// DrawFooterSeparator draws the line closing the last row slot.
func (r *Renderer) DrawFooterSeparator() {
	tag := Tag{Kind: TagFooter}
	r.body.Delete(tag)

	m := r.metrics
	r.body.AddRect(tag, Rect{X: 0, Y: m.PageHeight(), W: m.ContentWidth(), H: m.cfg.FooterSeparatorWidth}, r.palette.Separator)
}

// DrawPage redraws the whole body for the rows [start, end) with the
// backgrounds chosen by bg.
func (r *Renderer) DrawPage(start, end int, bg func(abs int) Background) {
	r.body.Clear()
	r.pageStart = start
	for abs := start; abs < end; abs++ {
		r.DrawRow(abs, bg(abs))
	}
	r.DrawEmptySpace(end - start)
	r.DrawFooterSeparator()
	r.logger.Debug("draw page", "start", start, "end", end)
}

// DrawFooter redraws the footer strip with the page label and the four
// navigation buttons laid out by footerLayout.
func (r *Renderer) DrawFooter(width float32, label string) {
	r.footer.Delete(footerTag)

	h := r.metrics.cfg.FooterHeight
	if h <= 0 {
		return
	}
	r.footer.AddRect(footerTag, Rect{X: 0, Y: 0, W: width, H: h}, r.palette.Background)

	fl := footerLayout(width, h, r.headerFont, label)
	for i, b := range fl.Buttons {
		r.footer.AddRect(footerTag, b, r.palette.Row)
		glyph := footerButtonLabels[i]
		gw, err := r.headerFont.MeasureText(glyph)
		if err != nil {
			continue
		}
		r.addText(r.footer, footerTag, b.X+(b.W-gw)/2, b.Y+b.H/2, glyph, r.headerFont)
	}
	r.addText(r.footer, footerTag, fl.Label.X, fl.Label.Y+fl.Label.H/2, label, r.headerFont)
}

// fitText greedily drops trailing runes until text fits in width.
// Layout already validated every full string, so a measurement failure here
// only affects the truncated prefixes; such cells are drawn empty.
func (r *Renderer) fitText(text string, width float32, font Font) string {
	if text == "" {
		return ""
	}
	if w, err := font.MeasureText(text); err == nil && w <= width {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		w, err := font.MeasureText(string(runes))
		if err != nil {
			r.logger.Warn("measure cell text", "text", text, "err", err)
			return ""
		}
		if w <= width {
			break
		}
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}

// FooterButton names the navigation buttons of the footer.
type FooterButton int

const (
	ButtonFirst FooterButton = iota
	ButtonPrevious
	ButtonNext
	ButtonLast
	footerButtonCount
)

var footerButtonLabels = [footerButtonCount]string{"<<", "<", ">", ">>"}

// FooterLayout is the geometry of the footer, relative to its top-left corner.
type FooterLayout struct {
	Buttons [footerButtonCount]Rect
	Label   Rect
}

// footerLayout centers "<< < label > >>" horizontally in a strip of the
// given size.
func footerLayout(width, height float32, font Font, label string) FooterLayout {
	lh := font.LineHeight()
	bh := minf(height, maxf(lh*2, height*0.6))
	gw, _ := font.MeasureText(footerButtonLabels[ButtonLast])
	bw := maxf(bh*1.5, gw+lh)
	gap := minf(bh/3, lh)

	lw, err := font.MeasureText(label)
	if err != nil {
		lw = 0
	}
	total := 4*bw + 4*gap + lw
	x := maxf(0, (width-total)/2)
	y := (height - bh) / 2

	var fl FooterLayout
	fl.Buttons[ButtonFirst] = Rect{X: x, Y: y, W: bw, H: bh}
	fl.Buttons[ButtonPrevious] = Rect{X: x + bw + gap, Y: y, W: bw, H: bh}
	lx := x + 2*(bw+gap)
	fl.Label = Rect{X: lx, Y: y, W: lw, H: bh}
	nx := lx + lw + gap
	fl.Buttons[ButtonNext] = Rect{X: nx, Y: y, W: bw, H: bh}
	fl.Buttons[ButtonLast] = Rect{X: nx + bw + gap, Y: y, W: bw, H: bh}
	return fl
}

// addText adds text in the palette's text color, logging text the font
// cannot measure.
func (r *Renderer) addText(s *Surface, tag Tag, x, y float32, text string, font Font) {
	if err := s.AddText(tag, x, y, text, r.palette.Text, font); err != nil {
		r.logger.Warn("measure text", "text", text, "err", err)
	}
}

func (r *Renderer) setPalette(p Palette) { r.palette = p }

func (r *Renderer) setModel(m *Model) { r.model = m }
