package grid

// ScrollAxis is the direction a scrollbar scrolls the body.
type ScrollAxis int

const (
	AxisVertical ScrollAxis = iota
	AxisHorizontal
)

func (a ScrollAxis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Scrollbar is the track and thumb of one scrollbar in widget-local
// coordinates. Bars overlay the trailing edges of the body region.
type Scrollbar struct {
	Axis  ScrollAxis
	Track Rect
	Thumb Rect
}

// scrollDrag is a thumb drag in progress.
type scrollDrag struct {
	axis      ScrollAxis
	start     float32 // pointer position along axis at the press
	startFrac float32
}

// Scrollbar returns the geometry of the bar along axis. It reports false
// when the last Idle pass hid the bar or Config.ScrollbarWidth is zero.
func (g *Grid) Scrollbar(axis ScrollAxis) (Scrollbar, bool) {
	sw := g.cfg.ScrollbarWidth
	if sw <= 0 {
		return Scrollbar{}, false
	}
	body := g.Regions().Body
	thickV, thickH := minf(sw, body.W), minf(sw, body.H)

	sb := Scrollbar{Axis: axis}
	var visible, content, frac float32
	switch axis {
	case AxisVertical:
		if !g.showV {
			return Scrollbar{}, false
		}
		h := body.H
		if g.showH {
			h -= thickH
		}
		sb.Track = Rect{X: body.X + body.W - thickV, Y: body.Y, W: thickV, H: h}
		visible, content, frac = body.H, g.metrics.BodyHeight(), g.state.ScrollFractionY
	case AxisHorizontal:
		if !g.showH {
			return Scrollbar{}, false
		}
		w := body.W
		if g.showV {
			w -= thickV
		}
		sb.Track = Rect{X: body.X, Y: body.Y + body.H - thickH, W: w, H: thickH}
		visible, content, frac = body.W, g.metrics.ContentWidth(), g.state.ScrollFractionX
	default:
		return Scrollbar{}, false
	}
	if sb.Track.Empty() {
		return Scrollbar{}, false
	}

	sb.Thumb = sb.Track
	if axis == AxisVertical {
		pos, size := thumbSpan(sb.Track.H, sw, visible, content, frac)
		sb.Thumb.Y += pos
		sb.Thumb.H = size
	} else {
		pos, size := thumbSpan(sb.Track.W, sw, visible, content, frac)
		sb.Thumb.X += pos
		sb.Thumb.W = size
	}
	return sb, true
}

// VisibleScrollbars returns the bars hosts should draw, vertical first.
func (g *Grid) VisibleScrollbars() []Scrollbar {
	var bars []Scrollbar
	for _, axis := range []ScrollAxis{AxisVertical, AxisHorizontal} {
		if sb, ok := g.Scrollbar(axis); ok {
			bars = append(bars, sb)
		}
	}
	return bars
}

// ScrollbarAt returns the bar under widget-local (x, y).
func (g *Grid) ScrollbarAt(x, y float32) (Scrollbar, bool) {
	p := Vec2{X: x, Y: y}
	for _, sb := range g.VisibleScrollbars() {
		if sb.Track.Contains(p) {
			return sb, true
		}
	}
	return Scrollbar{}, false
}

// thumbSpan returns the offset and length of a thumb in a track of length
// length. Thumbs are at least two bar widths long when the track allows.
func thumbSpan(length, barWidth, visible, content, frac float32) (pos, size float32) {
	if content <= 0 || visible >= content {
		return 0, length
	}
	size = minf(length, maxf(length*visible/content, 2*barWidth))
	if maxFrac := 1 - visible/content; maxFrac > 0 {
		pos = (length - size) * clampf(frac/maxFrac, 0, 1)
	}
	return pos, size
}

// scrollRange returns the visible and content extents along axis.
func (g *Grid) scrollRange(axis ScrollAxis) (visible, content float32) {
	if axis == AxisVertical {
		return g.bodyViewportHeight(), g.metrics.BodyHeight()
	}
	return g.visibleWidth(), g.metrics.ContentWidth()
}

func (g *Grid) setAxisFraction(axis ScrollAxis, frac float32) {
	if axis == AxisVertical {
		g.SetScrollFractions(g.state.ScrollFractionX, frac)
		return
	}
	g.SetScrollFractions(frac, g.state.ScrollFractionY)
}

func (g *Grid) axisFraction(axis ScrollAxis) float32 {
	if axis == AxisVertical {
		return g.state.ScrollFractionY
	}
	return g.state.ScrollFractionX
}

func along(axis ScrollAxis, x, y float32) float32 {
	if axis == AxisVertical {
		return y
	}
	return x
}

// pressScrollbar handles a primary press at widget-local (x, y). A press on
// a thumb starts a drag, a press on the track pages toward the pointer. It
// reports whether a bar took the press.
func (g *Grid) pressScrollbar(x, y float32) bool {
	sb, ok := g.ScrollbarAt(x, y)
	if !ok {
		return false
	}
	p := along(sb.Axis, x, y)
	if sb.Thumb.Contains(Vec2{X: x, Y: y}) {
		g.drag = &scrollDrag{axis: sb.Axis, start: p, startFrac: g.axisFraction(sb.Axis)}
		return true
	}

	visible, content := g.scrollRange(sb.Axis)
	if content <= 0 {
		return true
	}
	step := visible / content
	if p < along(sb.Axis, sb.Thumb.X, sb.Thumb.Y) {
		step = -step
	}
	g.setAxisFraction(sb.Axis, g.axisFraction(sb.Axis)+step)
	return true
}

// DragScrollbar moves the dragged thumb to follow the pointer at
// widget-local (x, y). It reports false when no drag is in progress.
func (g *Grid) DragScrollbar(x, y float32) bool {
	if g.drag == nil {
		return false
	}
	sb, ok := g.Scrollbar(g.drag.axis)
	if !ok {
		g.drag = nil
		return false
	}

	free := sb.Track.H - sb.Thumb.H
	if sb.Axis == AxisHorizontal {
		free = sb.Track.W - sb.Thumb.W
	}
	visible, content := g.scrollRange(sb.Axis)
	if free <= 0 || content <= 0 {
		return true
	}
	maxFrac := maxf(0, 1-visible/content)
	delta := along(sb.Axis, x, y) - g.drag.start
	g.setAxisFraction(sb.Axis, g.drag.startFrac+delta*maxFrac/free)
	return true
}

// ReleaseScrollbar ends a thumb drag.
func (g *Grid) ReleaseScrollbar() { g.drag = nil }

// DraggingScrollbar reports whether a thumb drag is in progress.
func (g *Grid) DraggingScrollbar() bool { return g.drag != nil }
