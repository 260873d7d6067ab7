package grid

// Regions are the widget-local rectangles of the three grid areas.
type Regions struct {
	Header Rect
	Body   Rect
	Footer Rect
}

// Size returns the total widget size.
func (r Regions) Size() Vec2 {
	return Vec2{X: r.Header.W, Y: r.Footer.Y + r.Footer.H}
}

// Regions lays the header, body viewport and footer out top to bottom.
// Before the first OnContainerResize the body shows the full page.
func (g *Grid) Regions() Regions {
	w := g.visibleWidth()
	hh := g.cfg.HeaderHeight
	bh := g.bodyViewportHeight()
	return Regions{
		Header: Rect{X: 0, Y: 0, W: w, H: hh},
		Body:   Rect{X: 0, Y: hh, W: w, H: bh},
		Footer: Rect{X: 0, Y: hh + bh, W: w, H: g.cfg.FooterHeight},
	}
}

func (g *Grid) visibleWidth() float32 {
	content := g.metrics.ContentWidth()
	if g.viewportW > 0 {
		return minf(content, g.viewportW)
	}
	return content
}

func (g *Grid) bodyViewportHeight() float32 {
	full := g.metrics.BodyHeight()
	if g.viewportH > 0 {
		return clampf(g.availableBodyHeight(), 0, full)
	}
	return full
}

func (g *Grid) availableBodyHeight() float32 {
	return g.viewportH - g.cfg.HeaderHeight - g.cfg.FooterHeight
}

// OnContainerResize records the size of the container the grid is placed
// in. The scrollbar recomputation is deferred to the next Idle call, so a
// burst of resize events during a window drag costs one recomputation.
func (g *Grid) OnContainerResize(width, height float32) {
	g.viewportW = maxf(0, width)
	g.viewportH = maxf(0, height)
	g.markResize()
}

func (g *Grid) markResize() {
	if g.viewportW > 0 || g.viewportH > 0 {
		g.resizePending = true
	}
}

// ResizePending reports whether Idle has deferred work.
func (g *Grid) ResizePending() bool { return g.resizePending }

// Idle runs deferred work. Hosts call it once their event queue drains.
// It reports whether anything was recomputed.
func (g *Grid) Idle() bool {
	if !g.resizePending {
		return false
	}
	g.resizePending = false

	v := g.availableBodyHeight() < g.metrics.PageHeight()
	h := g.viewportW < g.metrics.ContentWidth()
	g.state.ScrollFractionX, g.state.ScrollFractionY = g.clampScroll(g.state.ScrollFractionX, g.state.ScrollFractionY)
	g.drawFooter()

	if v != g.showV || h != g.showH {
		g.showV, g.showH = v, h
		g.logger.Debug("scrollbars", "vertical", v, "horizontal", h)
		if g.onScrollbars != nil {
			g.onScrollbars(v, h)
		}
	}
	return true
}

// Scrollbars reports which scrollbars the last Idle pass asked for.
func (g *Grid) Scrollbars() (vertical, horizontal bool) {
	return g.showV, g.showH
}

// SetScrollFractions scrolls the body. Fractions are of the body content
// size and are clamped to the scrollable range.
func (g *Grid) SetScrollFractions(x, y float32) {
	g.state.ScrollFractionX, g.state.ScrollFractionY = g.clampScroll(x, y)
}

// ScrollBy scrolls the body by a pixel delta.
func (g *Grid) ScrollBy(dx, dy float32) {
	h, v := g.ctl.ScrollOffsets()
	var fx, fy float32
	if cw := g.metrics.ContentWidth(); cw > 0 {
		fx = (h + dx) / cw
	}
	if bh := g.metrics.BodyHeight(); bh > 0 {
		fy = (v + dy) / bh
	}
	g.SetScrollFractions(fx, fy)
}

// ScrollOffsets returns the current horizontal and vertical scroll in pixels.
func (g *Grid) ScrollOffsets() (h, v float32) { return g.ctl.ScrollOffsets() }

func (g *Grid) clampScroll(x, y float32) (float32, float32) {
	maxX, maxY := float32(0), float32(0)
	if cw := g.metrics.ContentWidth(); cw > 0 {
		maxX = maxf(0, 1-g.visibleWidth()/cw)
	}
	if bh := g.metrics.BodyHeight(); bh > 0 {
		maxY = maxf(0, 1-g.bodyViewportHeight()/bh)
	}
	return clampf(x, 0, maxX), clampf(y, 0, maxY)
}
