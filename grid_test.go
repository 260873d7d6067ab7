package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/grid"
)

var fillerTag = grid.Tag{Kind: grid.TagFiller}

func TestExampleScenario(t *testing.T) {
	g, log := newExampleGrid(t)
	body := g.Renderer().Body()

	start, end := g.Paginator().VisibleRowRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)
	assert.NotEmpty(t, body.Items(grid.RowTag(0)))
	assert.NotEmpty(t, body.Items(grid.RowTag(1)))
	assert.Empty(t, body.Items(fillerTag), "a full page has no filler")

	g.LastPage()
	assert.Equal(t, 1, g.State().CurrentPage)
	assert.Empty(t, body.Items(grid.RowTag(0)))
	assert.NotEmpty(t, body.Items(grid.RowTag(2)))

	filler := body.Items(fillerTag)
	require.Len(t, filler, 1)
	assert.Equal(t, grid.Rect{X: 0, Y: 21, W: 82, H: 21}, filler[0].Bounds)
	assert.Equal(t, g.Palette().Background, filler[0].Color)

	g.OnClick(5, slotY(1))
	assert.Equal(t, grid.NoRow, g.State().SelectedRow)
	assert.Empty(t, log.events)

	g.OnPointerMove(5, slotY(1))
	assert.Equal(t, grid.NoRow, g.State().HoveredRow)
}

func TestClickTogglesSelection(t *testing.T) {
	g, log := newExampleGrid(t)
	pal := g.Palette()

	g.OnClick(5, slotY(1))
	assert.Equal(t, 1, g.State().SelectedRow)
	assert.Equal(t, pal.Selected, rowFill(t, g, 1))

	g.OnClick(5, slotY(0))
	assert.Equal(t, 0, g.State().SelectedRow)
	assert.Equal(t, pal.Selected, rowFill(t, g, 0))
	assert.Equal(t, pal.AltRow, rowFill(t, g, 1))

	g.OnClick(5, slotY(0))
	assert.Equal(t, grid.NoRow, g.State().SelectedRow)
	assert.Equal(t, pal.Hover, rowFill(t, g, 0), "pointer is still over the row")

	assert.Equal(t, []int{1, 0, grid.NoRow}, log.events)
}

func TestHoverRedrawsOnlyAffectedRows(t *testing.T) {
	m, err := grid.NewModel([]string{"N"}, [][]string{{"a"}, {"b"}, {"c"}, {"d"}, {"e"}})
	require.NoError(t, err)
	cfg := testConfig()
	cfg.PageSize = 5
	g, err := grid.New(m, cfg, grid.WithFonts(stubFont{}, stubFont{}))
	require.NoError(t, err)

	body := g.Renderer().Body()
	revisions := func() []uint64 {
		out := make([]uint64, 5)
		for i := range out {
			out[i] = body.Revision(grid.RowTag(i))
		}
		return out
	}

	before := revisions()
	g.OnPointerMove(5, slotY(2))
	after := revisions()
	for i := range before {
		if i == 2 {
			assert.NotEqual(t, before[i], after[i])
		} else {
			assert.Equal(t, before[i], after[i], "row %d touched", i)
		}
	}

	before = after
	g.OnPointerMove(5, slotY(3))
	after = revisions()
	assert.NotEqual(t, before[2], after[2])
	assert.NotEqual(t, before[3], after[3])
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, before[1], after[1])
	assert.Equal(t, before[4], after[4])

	before = after
	g.OnPointerMove(8, slotY(3)+3)
	assert.Equal(t, before, revisions(), "same row, nothing to redraw")
}

func TestHoverKeepsSelectedBackground(t *testing.T) {
	g, _ := newExampleGrid(t)
	pal := g.Palette()

	g.OnClick(5, slotY(0))
	g.OnPointerMove(5, slotY(1))
	assert.Equal(t, pal.Hover, rowFill(t, g, 1))

	g.OnPointerMove(5, slotY(0))
	assert.Equal(t, 0, g.State().HoveredRow)
	assert.Equal(t, pal.Selected, rowFill(t, g, 0))
	assert.Equal(t, pal.AltRow, rowFill(t, g, 1))

	g.OnPointerLeave()
	assert.Equal(t, grid.NoRow, g.State().HoveredRow)
	assert.Equal(t, pal.Selected, rowFill(t, g, 0))
}

func TestPointerLeaveRestoresDefault(t *testing.T) {
	g, _ := newExampleGrid(t)
	g.OnPointerMove(5, slotY(0))
	assert.Equal(t, g.Palette().Hover, rowFill(t, g, 0))

	g.OnPointerLeave()
	assert.Equal(t, g.Palette().Row, rowFill(t, g, 0))
	assert.Equal(t, grid.NoRow, g.State().HoveredRow)
}

func TestDrawRowIsIdempotent(t *testing.T) {
	g, _ := newExampleGrid(t)
	r := g.Renderer()

	r.DrawRow(1, grid.BackgroundDefault)
	first := append([]grid.Item(nil), r.Body().Items(grid.RowTag(1))...)
	r.DrawRow(1, grid.BackgroundDefault)
	assert.Equal(t, first, r.Body().Items(grid.RowTag(1)))
	assert.Equal(t, first, append([]grid.Item(nil), r.Body().Items(grid.RowTag(1))...))
}

func TestRowGeometry(t *testing.T) {
	g, _ := newExampleGrid(t)
	items := g.Renderer().Body().Items(grid.RowTag(1))
	require.Len(t, items, 4)

	pal := g.Palette()
	assert.Equal(t, grid.Rect{X: 0, Y: 21, W: 82, H: 1}, items[0].Bounds)
	assert.Equal(t, pal.Separator, items[0].Color)
	assert.Equal(t, grid.Rect{X: 0, Y: 22, W: 82, H: 20}, items[1].Bounds)
	assert.Equal(t, pal.AltRow, items[1].Color)

	assert.Equal(t, "Bo", items[2].Text)
	assert.Equal(t, float32(6), items[2].Bounds.X)
	assert.Equal(t, float32(32), items[2].Bounds.Y)
	assert.Equal(t, "41", items[3].Text)
	assert.Equal(t, float32(52), items[3].Bounds.X)
}

func TestDefaultBackgroundAlternatesOnAbsoluteRow(t *testing.T) {
	m, err := grid.NewModel([]string{"N"}, [][]string{{"a"}, {"b"}, {"c"}, {"d"}, {"e"}})
	require.NoError(t, err)
	cfg := testConfig()
	cfg.PageSize = 3
	g, err := grid.New(m, cfg, grid.WithFonts(stubFont{}, stubFont{}))
	require.NoError(t, err)
	pal := g.Palette()

	g.NextPage()
	assert.Equal(t, pal.AltRow, rowFill(t, g, 3), "slot 0 of page 1 is odd row 3")
	assert.Equal(t, pal.Row, rowFill(t, g, 4))
}

func TestCellTextIsTruncatedToColumn(t *testing.T) {
	m, err := grid.NewModel([]string{"Name"}, [][]string{{"Annabel"}})
	require.NoError(t, err)
	cfg := testConfig()
	cfg.Fit = grid.FitDefault
	cfg.DefaultColumnWidth = 36
	g, err := grid.New(m, cfg, grid.WithFonts(stubFont{}, stubFont{}))
	require.NoError(t, err)

	items := g.Renderer().Body().Items(grid.RowTag(0))
	require.Len(t, items, 3)
	assert.Equal(t, "Ann", items[2].Text)

	header := g.Renderer().Header().Items(grid.Tag{Kind: grid.TagHeader})
	assert.Equal(t, "Nam", header[len(header)-1].Text)
}

func TestHitTestRowBoundaries(t *testing.T) {
	g, _ := newExampleGrid(t)
	c := g.Controller()

	assert.Equal(t, 0, c.HitTestRow(0))
	assert.Equal(t, 0, c.HitTestRow(20.5))
	assert.Equal(t, 1, c.HitTestRow(21), "a row's top separator belongs to that row")
	assert.Equal(t, 1, c.HitTestRow(41.9))
	assert.Equal(t, 2, c.HitTestRow(42))
	assert.Equal(t, grid.NoRow, c.HitTestRow(-1))
}

func TestHitTestRowMonotonic(t *testing.T) {
	g, _ := newExampleGrid(t)
	c := g.Controller()

	prev := c.HitTestRow(0)
	for y := float32(0); y < 200; y += 0.5 {
		row := c.HitTestRow(y)
		assert.GreaterOrEqual(t, row, prev, "y=%v", y)
		prev = row
	}
	for y := float32(0); y < 150; y += 3 {
		assert.Equal(t, c.HitTestRow(y)+1, c.HitTestRow(y+21), "y=%v", y)
	}
}

func TestHitTestRowHonoursScroll(t *testing.T) {
	cfg := testConfig()
	cfg.RowHeight = 16
	cfg.RowSeparatorWidth = 0
	cfg.FooterSeparatorWidth = 0
	g, err := grid.New(exampleModel(t), cfg, grid.WithFonts(stubFont{}, stubFont{}))
	require.NoError(t, err)

	// 16px of body visible out of 32px of content
	g.OnContainerResize(500, cfg.HeaderHeight+cfg.FooterHeight+16)
	g.SetScrollFractions(0, 0.5)

	_, v := g.ScrollOffsets()
	assert.Equal(t, float32(16), v)
	assert.Equal(t, 1, g.Controller().HitTestRow(0))

	g.SetScrollFractions(0, 5)
	assert.Equal(t, float32(0.5), g.State().ScrollFractionY, "clamped to the scrollable range")
}

func TestHitTestColumn(t *testing.T) {
	g, _ := newExampleGrid(t)
	c := g.Controller()

	assert.Equal(t, 0, c.HitTestColumn(0))
	assert.Equal(t, 0, c.HitTestColumn(45.9))
	assert.Equal(t, 1, c.HitTestColumn(46))
	assert.Equal(t, 1, c.HitTestColumn(81))
	assert.Equal(t, grid.NoColumn, c.HitTestColumn(82))
	assert.Equal(t, grid.NoColumn, c.HitTestColumn(-3))

	cell, ok := c.CellAt(50, slotY(1))
	require.True(t, ok)
	assert.Equal(t, grid.Cell{Row: 1, Column: 1}, cell)
}

func TestNavigationClearsSelectionAndNotifies(t *testing.T) {
	g, log := newExampleGrid(t)

	g.OnClick(5, slotY(1))
	g.OnPointerMove(5, slotY(0))
	require.True(t, g.NextPage())

	st := g.State()
	assert.Equal(t, 1, st.CurrentPage)
	assert.Equal(t, grid.NoRow, st.HoveredRow)
	assert.Equal(t, grid.NoRow, st.SelectedRow)
	assert.Equal(t, []int{1, grid.NoRow}, log.events)

	assert.False(t, g.NextPage())
	assert.Equal(t, 1, g.State().CurrentPage)

	g.FirstPage()
	assert.Equal(t, 0, g.State().CurrentPage)
	assert.Len(t, log.events, 2, "nothing was selected")
	assert.False(t, g.PreviousPage())
}

func TestSwitchThemeKeepsViewState(t *testing.T) {
	g, _ := newExampleGrid(t)
	g.OnClick(5, slotY(0))
	g.OnPointerMove(5, slotY(1))
	before := g.State()

	g.SwitchTheme(grid.ThemeDark)

	dark := grid.DefaultPalettes().Dark
	assert.Equal(t, before, g.State())
	assert.Equal(t, grid.ThemeDark, g.Theme())
	assert.Equal(t, dark.Selected, rowFill(t, g, 0))
	assert.Equal(t, dark.Hover, rowFill(t, g, 1))

	header := g.Renderer().Header().Items(grid.Tag{Kind: grid.TagHeader})
	require.NotEmpty(t, header)
	assert.Equal(t, dark.Background, header[0].Color)
}

func TestResizeIsDeferredToIdle(t *testing.T) {
	type bars struct{ v, h bool }
	var got []bars
	g, _ := newExampleGrid(t, grid.WithScrollbarsChanged(func(v, h bool) { got = append(got, bars{v, h}) }))

	for w := float32(10); w < 60; w += 10 {
		g.OnContainerResize(w, 60)
	}
	assert.Empty(t, got)
	assert.True(t, g.ResizePending())

	assert.True(t, g.Idle())
	assert.False(t, g.Idle())
	require.Len(t, got, 1)
	assert.Equal(t, bars{true, true}, got[0])

	g.OnContainerResize(1000, 1000)
	g.Idle()
	v, h := g.Scrollbars()
	assert.False(t, v)
	assert.False(t, h)
	assert.Len(t, got, 2)

	// same visibility, no notification
	g.OnContainerResize(900, 900)
	g.Idle()
	assert.Len(t, got, 2)
}

func TestScrollbarThresholds(t *testing.T) {
	g, _ := newExampleGrid(t)
	cfg := g.Config()
	chrome := cfg.HeaderHeight + cfg.FooterHeight

	// page is 2*21 = 42px tall and 82px wide
	g.OnContainerResize(82, chrome+42)
	g.Idle()
	v, h := g.Scrollbars()
	assert.False(t, v)
	assert.False(t, h)

	g.OnContainerResize(81, chrome+41)
	g.Idle()
	v, h = g.Scrollbars()
	assert.True(t, v)
	assert.True(t, h)
}

func TestUpdateDataFrameResetsView(t *testing.T) {
	g, log := newExampleGrid(t)
	g.LastPage()
	g.OnClick(5, slotY(0))
	require.Equal(t, 2, g.State().SelectedRow)

	m, err := grid.NewModel([]string{"Patient"}, [][]string{{"Dee"}})
	require.NoError(t, err)
	require.NoError(t, g.UpdateDataFrame(m))

	assert.Equal(t, grid.NewViewState(), g.State())
	assert.Same(t, m, g.Model())
	assert.Equal(t, []float32{76}, g.Widths())
	assert.Equal(t, []int{2, grid.NoRow}, log.events)
	assert.NotEmpty(t, g.Renderer().Body().Items(grid.RowTag(0)))
	assert.NotEmpty(t, g.Renderer().Body().Items(fillerTag))

	bad, err := grid.NewModel([]string{"☃"}, nil)
	require.NoError(t, err)
	var le *grid.LayoutError
	assert.ErrorAs(t, g.UpdateDataFrame(bad), &le)
	assert.Same(t, m, g.Model())
}

func TestAppendRowFillsShortPage(t *testing.T) {
	g, _ := newExampleGrid(t)
	g.LastPage()
	require.NotEmpty(t, g.Renderer().Body().Items(fillerTag))

	require.NoError(t, g.AppendRow([]string{"Di", "52"}))
	assert.Equal(t, 4, g.Model().NumRows())
	assert.NotEmpty(t, g.Renderer().Body().Items(grid.RowTag(3)))
	assert.Empty(t, g.Renderer().Body().Items(fillerTag))

	require.NoError(t, g.AppendRow([]string{"Ed", "7"}))
	assert.Equal(t, "2 / 3", g.PageLabel())
	assert.Empty(t, g.Renderer().Body().Items(grid.RowTag(4)), "row 4 is on the next page")

	assert.ErrorIs(t, g.AppendRow([]string{"short"}), grid.ErrRowLength)
	err := g.AppendRow([]string{"☃", "1"})
	var le *grid.LayoutError
	assert.ErrorAs(t, err, &le)
	assert.Equal(t, 5, g.Model().NumRows(), "rejected row is rolled back")
}

func TestAppendRowWideningColumnsRedrawsAll(t *testing.T) {
	g, _ := newExampleGrid(t)
	require.NoError(t, g.AppendRow([]string{"Bartholomew", "8"}))
	assert.Equal(t, []float32{116, 36}, g.Widths())

	items := g.Renderer().Body().Items(grid.RowTag(0))
	assert.Equal(t, float32(152), items[1].Bounds.W)
}

func TestReplaceRow(t *testing.T) {
	g, _ := newExampleGrid(t)

	require.NoError(t, g.ReplaceRow(1, []string{"Bea", "42"}))
	items := g.Renderer().Body().Items(grid.RowTag(1))
	assert.Equal(t, "Bea", items[2].Text)

	assert.ErrorIs(t, g.ReplaceRow(3, []string{"X", "1"}), grid.ErrRowIndexOutOfRange)
	assert.ErrorIs(t, g.ReplaceRow(-1, []string{"X", "1"}), grid.ErrRowIndexOutOfRange)

	var le *grid.LayoutError
	assert.ErrorAs(t, g.ReplaceRow(0, []string{"☃", "1"}), &le)
	assert.Equal(t, []string{"Ann", "30"}, g.Model().Row(0))
}

func TestNewRejectsBadInput(t *testing.T) {
	cfg := testConfig()
	cfg.PageSize = 0
	_, err := grid.New(exampleModel(t), cfg)
	assert.ErrorIs(t, err, grid.ErrInvalidConfig)

	m, err := grid.NewModel([]string{"☃"}, nil)
	require.NoError(t, err)
	_, err = grid.New(m, testConfig(), grid.WithFonts(stubFont{}, nil))
	var le *grid.LayoutError
	assert.ErrorAs(t, err, &le)
}

func TestZeroColumnsRendersEmptyHeader(t *testing.T) {
	m, err := grid.NewModel(nil, nil)
	require.NoError(t, err)
	g, err := grid.New(m, testConfig(), grid.WithFonts(stubFont{}, stubFont{}))
	require.NoError(t, err)

	assert.Empty(t, g.Widths())
	assert.Zero(t, g.Renderer().Header().Len())
	g.OnClick(0, slotY(0))
	assert.Equal(t, grid.NoRow, g.State().SelectedRow)
}

func TestCopySelectedRow(t *testing.T) {
	cb := &recordingClipboard{}
	g, _ := newExampleGrid(t, grid.WithClipboard(cb))

	assert.False(t, g.CopySelectedRow())
	g.OnClick(5, slotY(1))
	assert.True(t, g.CopySelectedRow())
	assert.Equal(t, "Bo\t41", cb.text)
}

func TestFooterButtons(t *testing.T) {
	cfg := testConfig()
	cfg.Fit = grid.FitDefault
	cfg.DefaultColumnWidth = 200
	g, err := grid.New(exampleModel(t), cfg, grid.WithFonts(stubFont{}, stubFont{}))
	require.NoError(t, err)
	r := g.Regions()
	require.Equal(t, float32(400), r.Footer.W)

	clickButton := func(want grid.FooterButton) {
		t.Helper()
		for x := float32(0); x < r.Footer.W; x++ {
			y := r.Footer.H / 2
			if b, ok := g.FooterButtonAt(x, y); ok && b == want {
				g.Click(x, r.Footer.Y+y)
				return
			}
		}
		t.Fatalf("button %d not found", want)
	}

	clickButton(grid.ButtonNext)
	assert.Equal(t, 1, g.State().CurrentPage)
	clickButton(grid.ButtonFirst)
	assert.Equal(t, 0, g.State().CurrentPage)
	clickButton(grid.ButtonLast)
	assert.Equal(t, 1, g.State().CurrentPage)
	clickButton(grid.ButtonPrevious)
	assert.Equal(t, 0, g.State().CurrentPage)
}

func TestWidgetCoordinates(t *testing.T) {
	g, log := newExampleGrid(t)
	r := g.Regions()
	assert.Equal(t, grid.Rect{X: 0, Y: 30, W: 82, H: 43}, r.Body)

	g.PointerMove(5, r.Body.Y+slotY(1))
	assert.Equal(t, 1, g.State().HoveredRow)

	g.PointerMove(5, 10) // header
	assert.Equal(t, grid.NoRow, g.State().HoveredRow)

	g.Click(5, r.Body.Y+slotY(0))
	assert.Equal(t, []int{0}, log.events)

	cell, ok := g.CellAt(60, r.Body.Y+slotY(0))
	require.True(t, ok)
	assert.Equal(t, grid.Cell{Row: 0, Column: 1}, cell)
}
