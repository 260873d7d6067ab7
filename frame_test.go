package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/grid"
)

func TestDrawListBatchesByTexture(t *testing.T) {
	dl := grid.AcquireDrawList()
	defer grid.ReleaseDrawList(dl)

	dl.AddRect(grid.Rect{W: 10, H: 10}, grid.ColorBlack)
	dl.SetTexture(5)
	dl.AddText(0, 0, "ab", grid.ColorWhite, 8, 8)
	dl.SetTexture(0)
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 2, "the trailing empty command is dropped")
	assert.Equal(t, uint32(0), dl.CmdBuffer[0].TextureID)
	assert.Equal(t, uint32(6), dl.CmdBuffer[0].ElemCount)
	assert.Equal(t, uint32(5), dl.CmdBuffer[1].TextureID)
	assert.Equal(t, uint32(12), dl.CmdBuffer[1].ElemCount)
	assert.Equal(t, uint32(4), dl.CmdBuffer[1].VertexOffset)
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}, dl.IdxBuffer[6:])
	assert.Len(t, dl.VtxBuffer, 12)
}

func TestDrawListSkipsInvisible(t *testing.T) {
	dl := grid.AcquireDrawList()
	defer grid.ReleaseDrawList(dl)

	dl.AddRect(grid.Rect{W: 10, H: 10}, grid.ColorTransparent)
	dl.AddRect(grid.Rect{W: 0, H: 10}, grid.ColorBlack)
	dl.AddText(0, 0, "hidden", grid.ColorTransparent, 8, 8)
	dl.Finalize()

	assert.Empty(t, dl.VtxBuffer)
	assert.Empty(t, dl.CmdBuffer)
}

func TestDrawListClipRect(t *testing.T) {
	dl := grid.AcquireDrawList()
	defer grid.ReleaseDrawList(dl)

	dl.PushClipRect(grid.Rect{X: 1, Y: 2, W: 3, H: 4})
	dl.AddRect(grid.Rect{W: 10, H: 10}, grid.ColorBlack)
	dl.PopClipRect()
	dl.AddRect(grid.Rect{W: 10, H: 10}, grid.ColorBlack)
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 2)
	assert.Equal(t, [4]float32{1, 2, 4, 6}, dl.CmdBuffer[0].ClipRect)
	assert.NotEqual(t, dl.CmdBuffer[0].ClipRect, dl.CmdBuffer[1].ClipRect)
}

func TestDrawListAtlasCoordinates(t *testing.T) {
	dl := grid.AcquireDrawList()
	defer grid.ReleaseDrawList(dl)

	// 'A' is glyph 33: column 1, row 2 of the atlas
	dl.AddText(0, 0, "A", grid.ColorWhite, 8, 8)
	require.Len(t, dl.VtxBuffer, 4)
	assert.Equal(t, [2]float32{8.0 / 128, 16.0 / 48}, dl.VtxBuffer[0].TexCoord)
	assert.Equal(t, [2]float32{16.0 / 128, 24.0 / 48}, dl.VtxBuffer[2].TexCoord)
}

func TestAcquireDrawListIsCleared(t *testing.T) {
	dl := grid.AcquireDrawList()
	dl.AddRect(grid.Rect{W: 1, H: 1}, grid.ColorBlack)
	grid.ReleaseDrawList(dl)

	again := grid.AcquireDrawList()
	defer grid.ReleaseDrawList(again)
	assert.Empty(t, again.VtxBuffer)
	assert.Empty(t, again.CmdBuffer)
}

func TestRenderFrame(t *testing.T) {
	g, _ := newExampleGrid(t)
	b := &recordingBackend{}

	require.NoError(t, g.RenderFrame(b, grid.Vec2{X: 10, Y: 10}))
	assert.Equal(t, 1, b.renders)
	assert.NotZero(t, b.commands)
	// header 10 quads, body 14, footer 16
	assert.Equal(t, 40*4, b.vertices)
}

func TestBuildDrawListUsesFontTexture(t *testing.T) {
	g, _ := newExampleGrid(t)
	dl := grid.AcquireDrawList()
	defer grid.ReleaseDrawList(dl)

	g.BuildDrawList(dl, grid.Vec2{}, 9)
	dl.Finalize()

	textures := map[uint32]bool{}
	for _, cmd := range dl.CmdBuffer {
		textures[cmd.TextureID] = true
	}
	assert.Equal(t, map[uint32]bool{0: true, 9: true}, textures)
}

func TestHandleInputPointerAndKeys(t *testing.T) {
	cb := &recordingClipboard{}
	g, log := newExampleGrid(t, grid.WithClipboard(cb))
	origin := grid.Vec2{X: 100, Y: 50}
	bodyY := origin.Y + g.Regions().Body.Y

	in := grid.NewInputState()
	in.SetMousePos(origin.X+5, bodyY+slotY(1))
	g.HandleInput(in, origin)
	assert.Equal(t, 1, g.State().HoveredRow)

	in.Reset()
	in.SetMouseButton(grid.MouseButtonLeft, true)
	g.HandleInput(in, origin)
	assert.Equal(t, 1, g.State().SelectedRow)

	in.Reset()
	in.SetMouseButton(grid.MouseButtonLeft, false)
	in.ModCtrl = true
	in.SetKey(grid.KeyC, true)
	g.HandleInput(in, origin)
	assert.Equal(t, "Bo\t41", cb.text)

	in.Reset()
	in.ModCtrl = false
	in.SetKey(grid.KeyC, false)
	in.SetKey(grid.KeyEscape, true)
	g.HandleInput(in, origin)
	assert.Equal(t, grid.NoRow, g.State().SelectedRow)

	in.Reset()
	in.SetKey(grid.KeyEscape, false)
	in.SetKey(grid.KeyPageDown, true)
	g.HandleInput(in, origin)
	assert.Equal(t, 1, g.State().CurrentPage)

	in.Reset()
	in.SetKey(grid.KeyPageDown, false)
	in.SetKey(grid.KeyHome, true)
	g.HandleInput(in, origin)
	assert.Equal(t, 0, g.State().CurrentPage)

	in.Reset()
	in.SetMousePos(0, 0)
	g.HandleInput(in, origin)
	assert.Equal(t, grid.NoRow, g.State().HoveredRow)

	assert.Equal(t, []int{1, grid.NoRow}, log.events)
}

func TestHandleInputWheelScrollsAndRehovers(t *testing.T) {
	g, _ := newExampleGrid(t)
	cfg := g.Config()

	// room for one row of the page
	g.OnContainerResize(500, cfg.HeaderHeight+cfg.FooterHeight+21)
	g.Idle()
	v, _ := g.Scrollbars()
	require.True(t, v)

	in := grid.NewInputState()
	in.SetMousePos(5, cfg.HeaderHeight+slotY(0))
	g.HandleInput(in, grid.Vec2{})
	assert.Equal(t, 0, g.State().HoveredRow)

	in.Reset()
	in.AddMouseWheel(0, -1)
	g.HandleInput(in, grid.Vec2{})

	_, off := g.ScrollOffsets()
	assert.InDelta(t, 21, off, 0.01)
	assert.Equal(t, 1, g.State().HoveredRow)
}

func TestInputStateTransitions(t *testing.T) {
	in := grid.NewInputState()

	in.SetKey(grid.KeyEnd, true)
	assert.True(t, in.KeyPressed(grid.KeyEnd))
	assert.True(t, in.KeyDown(grid.KeyEnd))

	in.Reset()
	in.SetKey(grid.KeyEnd, true)
	assert.False(t, in.KeyPressed(grid.KeyEnd), "held keys press once")
	assert.True(t, in.KeyDown(grid.KeyEnd))

	in.SetMouseButton(grid.MouseButtonRight, true)
	in.SetMouseButton(grid.MouseButtonRight, false)
	assert.True(t, in.MouseClicked(grid.MouseButtonRight))
	assert.True(t, in.MouseReleased(grid.MouseButtonRight))
	assert.False(t, in.MouseDown(grid.MouseButtonRight))

	in.SetKey(grid.KeyNone, true)
	assert.False(t, in.KeyPressed(grid.KeyNone))
	assert.False(t, in.MouseClicked(grid.MouseButton(9)))
}

func TestAtlasPixels(t *testing.T) {
	pix := grid.AtlasPixels()
	require.Len(t, pix, grid.AtlasWidth*grid.AtlasHeight)

	// '!' is glyph 1; its top row is 0x18, the two middle pixels
	assert.Equal(t, byte(0xFF), pix[8+3])
	assert.Equal(t, byte(0xFF), pix[8+4])
	assert.Zero(t, pix[8+2])

	// the space glyph is blank
	for y := 0; y < grid.GlyphHeight; y++ {
		for x := 0; x < grid.GlyphWidth; x++ {
			assert.Zero(t, pix[y*grid.AtlasWidth+x])
		}
	}
}
