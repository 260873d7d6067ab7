package grid

// Backend draws flattened frames. backend/opengl implements it.
type Backend interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// BuildDrawList appends the grid, placed with its top-left corner at origin,
// to dl. Header and body are shifted by the scroll offsets and clipped to
// their regions, and visible scrollbars are drawn over the body. Glyphs are
// drawn with fontTexture.
func (g *Grid) BuildDrawList(dl *DrawList, origin Vec2, fontTexture uint32) {
	r := g.Regions()
	h, v := g.ScrollOffsets()

	emitSurface(dl, g.render.Header(), r.Header.Offset(origin.X, origin.Y), origin.X-h, origin.Y, fontTexture)
	emitSurface(dl, g.render.Body(), r.Body.Offset(origin.X, origin.Y), origin.X-h, origin.Y+r.Body.Y-v, fontTexture)
	emitSurface(dl, g.render.Footer(), r.Footer.Offset(origin.X, origin.Y), origin.X, origin.Y+r.Footer.Y, fontTexture)

	bars := g.VisibleScrollbars()
	if len(bars) == 0 {
		return
	}
	pal := g.Palette()
	dl.PushClipRect(r.Body.Offset(origin.X, origin.Y))
	for _, sb := range bars {
		dl.AddRect(sb.Track.Offset(origin.X, origin.Y), pal.ScrollTrack)
		dl.AddRect(sb.Thumb.Offset(origin.X, origin.Y), pal.ScrollThumb)
	}
	dl.PopClipRect()
}

func emitSurface(dl *DrawList, s *Surface, clip Rect, dx, dy float32, fontTexture uint32) {
	if clip.Empty() {
		return
	}
	dl.PushClipRect(clip)
	s.Walk(func(_ Tag, it Item) {
		switch it.Kind {
		case ItemRect:
			dl.SetTexture(0)
			dl.AddRect(it.Bounds.Offset(dx, dy), it.Color)
		case ItemText:
			dl.SetTexture(fontTexture)
			cw, ch := glyphCell(it.Font, it.Text)
			dl.AddText(it.Bounds.X+dx, it.TextTop()+dy, it.Text, it.Color, cw, ch)
		}
	})
	dl.SetTexture(0)
	dl.PopClipRect()
}

// RenderFrame flattens the grid into a pooled DrawList and hands it to b.
func (g *Grid) RenderFrame(b Backend, origin Vec2) error {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	g.BuildDrawList(dl, origin, b.FontTextureID())
	return b.Render(dl)
}

// HandleInput applies one frame of input to a grid placed at origin:
// pointer moves and clicks, scrollbar drags, wheel scrolling,
// PageUp/PageDown/Home/End navigation, Escape to deselect and Ctrl+C to
// copy the selected row.
func (g *Grid) HandleInput(in *InputState, origin Vec2) {
	p := Vec2{X: in.MouseX, Y: in.MouseY}.Sub(origin)

	if g.DraggingScrollbar() {
		if in.MouseDown(MouseButtonLeft) {
			g.DragScrollbar(p.X, p.Y)
		} else {
			g.ReleaseScrollbar()
		}
	}

	r := g.Regions()
	inside := Rect{W: r.Header.W, H: r.Size().Y}.Contains(p)

	switch {
	case !inside && g.pointerKnown:
		g.PointerLeave()
	case inside && (!g.pointerKnown || p != g.lastPointer):
		g.PointerMove(p.X, p.Y)
		g.lastPointer = p
		g.pointerKnown = true
	}

	if inside && in.MouseClicked(MouseButtonLeft) {
		g.Click(p.X, p.Y)
	}

	if inside && (in.MouseWheelX != 0 || in.MouseWheelY != 0) {
		step := g.metrics.RowPitch()
		g.ScrollBy(-in.MouseWheelX*step, -in.MouseWheelY*step)
		// Content moved under a still pointer.
		g.PointerMove(p.X, p.Y)
	}

	switch {
	case in.KeyPressed(KeyPageDown):
		g.NextPage()
	case in.KeyPressed(KeyPageUp):
		g.PreviousPage()
	case in.KeyPressed(KeyHome):
		g.FirstPage()
	case in.KeyPressed(KeyEnd):
		g.LastPage()
	case in.KeyPressed(KeyEscape):
		g.ClearSelection()
	case in.ModCtrl && in.KeyPressed(KeyC):
		g.CopySelectedRow()
	}
}
