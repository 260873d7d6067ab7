package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/grid"
)

// newScrolledGrid shows 60x30px of the 82x43px example body with 4px bars.
func newScrolledGrid(t *testing.T) (*grid.Grid, *selectionLog) {
	t.Helper()
	cfg := testConfig()
	cfg.ScrollbarWidth = 4
	log := &selectionLog{}
	g, err := grid.New(exampleModel(t), cfg,
		grid.WithFonts(stubFont{}, stubFont{}),
		grid.WithRowSelected(log.record),
	)
	require.NoError(t, err)

	g.OnContainerResize(60, cfg.HeaderHeight+cfg.FooterHeight+30)
	g.Idle()
	return g, log
}

func TestScrollbarsHiddenUntilIdle(t *testing.T) {
	g, _ := newExampleGrid(t)
	cfg := g.Config()

	g.OnContainerResize(60, cfg.HeaderHeight+cfg.FooterHeight+30)
	assert.Empty(t, g.VisibleScrollbars())

	g.Idle()
	assert.Len(t, g.VisibleScrollbars(), 2)

	cfg.ScrollbarWidth = 0
	g2, err := grid.New(exampleModel(t), cfg, grid.WithFonts(stubFont{}, stubFont{}))
	require.NoError(t, err)
	g2.OnContainerResize(60, cfg.HeaderHeight+cfg.FooterHeight+30)
	g2.Idle()
	v, h := g2.Scrollbars()
	assert.True(t, v)
	assert.True(t, h)
	assert.Empty(t, g2.VisibleScrollbars(), "zero width draws no bars")
}

func TestScrollbarGeometry(t *testing.T) {
	g, _ := newScrolledGrid(t)

	v, ok := g.Scrollbar(grid.AxisVertical)
	require.True(t, ok)
	assert.Equal(t, grid.Rect{X: 56, Y: 30, W: 4, H: 26}, v.Track, "stops above the horizontal bar")
	assert.Equal(t, v.Track.Y, v.Thumb.Y)
	assert.InDelta(t, 26*30.0/43, v.Thumb.H, 0.001)

	h, ok := g.Scrollbar(grid.AxisHorizontal)
	require.True(t, ok)
	assert.Equal(t, grid.Rect{X: 0, Y: 56, W: 56, H: 4}, h.Track)
	assert.Equal(t, h.Track.X, h.Thumb.X)
	assert.InDelta(t, 56*60.0/82, h.Thumb.W, 0.001)

	g.SetScrollFractions(1, 1)
	v, _ = g.Scrollbar(grid.AxisVertical)
	h, _ = g.Scrollbar(grid.AxisHorizontal)
	assert.InDelta(t, 56, v.Thumb.Y+v.Thumb.H, 0.001, "fully scrolled thumbs end with the track")
	assert.InDelta(t, 56, h.Thumb.X+h.Thumb.W, 0.001)
}

func TestScrollbarThumbMinimumLength(t *testing.T) {
	g, _ := newExampleGrid(t)
	cfg := g.Config()

	// 10px bars on a 12px body: the thumb is clamped to the track
	g.OnContainerResize(500, cfg.HeaderHeight+cfg.FooterHeight+12)
	g.Idle()
	v, ok := g.Scrollbar(grid.AxisVertical)
	require.True(t, ok)
	assert.Equal(t, v.Track, v.Thumb)
	_, ok = g.Scrollbar(grid.AxisHorizontal)
	assert.False(t, ok)
}

func TestScrollbarThumbDrag(t *testing.T) {
	g, log := newScrolledGrid(t)
	maxFrac := float32(13.0 / 43)
	free := 26 - 26*30.0/43

	g.Click(58, 35)
	require.True(t, g.DraggingScrollbar())
	assert.Empty(t, log.events, "a press on the thumb selects nothing")

	assert.True(t, g.DragScrollbar(58, float32(35+free/2)))
	assert.InDelta(t, maxFrac/2, g.State().ScrollFractionY, 0.0001)

	g.DragScrollbar(58, 500)
	assert.InDelta(t, maxFrac, g.State().ScrollFractionY, 0.0001)
	assert.Zero(t, g.State().ScrollFractionX)

	g.ReleaseScrollbar()
	assert.False(t, g.DraggingScrollbar())
	assert.False(t, g.DragScrollbar(58, 35))
}

func TestScrollbarTrackPages(t *testing.T) {
	g, _ := newScrolledGrid(t)

	// below the thumb
	g.Click(58, 54)
	assert.False(t, g.DraggingScrollbar())
	assert.InDelta(t, 13.0/43, g.State().ScrollFractionY, 0.0001)

	// left of the horizontal thumb once it sits at the end
	g.SetScrollFractions(1, g.State().ScrollFractionY)
	h, _ := g.Scrollbar(grid.AxisHorizontal)
	require.Greater(t, h.Thumb.X, float32(5))
	g.Click(5, 58)
	assert.False(t, g.DraggingScrollbar())
	assert.Zero(t, g.State().ScrollFractionX)
}

func TestPointerOverScrollbarClearsHover(t *testing.T) {
	g, _ := newScrolledGrid(t)

	g.PointerMove(5, 35)
	require.Equal(t, 0, g.State().HoveredRow)

	g.PointerMove(58, 35)
	assert.Equal(t, grid.NoRow, g.State().HoveredRow)
}

func TestBuildDrawListDrawsScrollbars(t *testing.T) {
	g, _ := newScrolledGrid(t)
	pal := g.Palette()

	dl := grid.AcquireDrawList()
	defer grid.ReleaseDrawList(dl)
	g.BuildDrawList(dl, grid.Vec2{X: 10, Y: 10}, 7)

	colors := map[uint32]int{}
	for i := 0; i < len(dl.VtxBuffer); i += 4 {
		colors[dl.VtxBuffer[i].Color]++
	}
	assert.Equal(t, 2, colors[pal.ScrollTrack])
	assert.Equal(t, 2, colors[pal.ScrollThumb])

	last := dl.VtxBuffer[len(dl.VtxBuffer)-4]
	h, _ := g.Scrollbar(grid.AxisHorizontal)
	assert.Equal(t, pal.ScrollThumb, last.Color)
	assert.InDelta(t, 10+h.Thumb.X, float64(last.Pos[0]), 0.001)
	assert.InDelta(t, 10+h.Thumb.Y, float64(last.Pos[1]), 0.001)
}

func TestHandleInputDragsThumb(t *testing.T) {
	g, _ := newScrolledGrid(t)
	origin := grid.Vec2{X: 10, Y: 10}

	in := grid.NewInputState()
	in.SetMousePos(68, 45)
	in.SetMouseButton(grid.MouseButtonLeft, true)
	g.HandleInput(in, origin)
	require.True(t, g.DraggingScrollbar())

	in.Reset()
	in.SetMousePos(68, 400)
	g.HandleInput(in, origin)
	assert.InDelta(t, 13.0/43, g.State().ScrollFractionY, 0.0001)

	in.Reset()
	in.SetMouseButton(grid.MouseButtonLeft, false)
	g.HandleInput(in, origin)
	assert.False(t, g.DraggingScrollbar())
}
