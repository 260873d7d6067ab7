package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/grid"
)

var errUnmeasurable = errors.New("unmeasurable")

// stubFont advances 10px per rune and refuses the snowman.
type stubFont struct{}

func (stubFont) MeasureText(text string) (float32, error) {
	n := 0
	for _, r := range text {
		if r == '☃' {
			return 0, errUnmeasurable
		}
		n++
	}
	return float32(n) * 10, nil
}

func (stubFont) LineHeight() float32 { return 10 }

// testConfig is the example configuration: two rows per page, 21px row pitch.
func testConfig() grid.Config {
	cfg := grid.DefaultConfig()
	cfg.PageSize = 2
	cfg.RowHeight = 20
	cfg.RowSeparatorWidth = 1
	cfg.HeaderHeight = 30
	cfg.FooterHeight = 50
	cfg.FooterSeparatorWidth = 1
	cfg.CellLeftPadding = 6
	cfg.Width = 0
	cfg.Fit = grid.FitHeaderAndContent
	return cfg
}

func exampleModel(t *testing.T) *grid.Model {
	t.Helper()
	m, err := grid.NewModel(
		[]string{"Name", "Age"},
		[][]string{{"Ann", "30"}, {"Bo", "41"}, {"Cy", "19"}},
	)
	require.NoError(t, err)
	return m
}

type selectionLog struct {
	events []int
}

func (l *selectionLog) record(row int) { l.events = append(l.events, row) }

func newExampleGrid(t *testing.T, opts ...grid.Option) (*grid.Grid, *selectionLog) {
	t.Helper()
	log := &selectionLog{}
	opts = append([]grid.Option{
		grid.WithFonts(stubFont{}, stubFont{}),
		grid.WithRowSelected(log.record),
	}, opts...)
	g, err := grid.New(exampleModel(t), testConfig(), opts...)
	require.NoError(t, err)
	return g, log
}

// slotY returns a body-local y inside page slot slot of the test config.
func slotY(slot int) float32 { return float32(slot)*21 + 10 }

// rowFill returns the background color a row is currently drawn with.
func rowFill(t *testing.T, g *grid.Grid, abs int) uint32 {
	t.Helper()
	items := g.Renderer().Body().Items(grid.RowTag(abs))
	require.GreaterOrEqual(t, len(items), 2, "row %d not drawn", abs)
	return items[1].Color
}

type recordingClipboard struct {
	text string
}

func (c *recordingClipboard) SetText(text string) { c.text = text }

type recordingBackend struct {
	renders  int
	commands int
	vertices int
}

func (b *recordingBackend) Render(dl *grid.DrawList) error {
	dl.Finalize()
	b.renders++
	b.commands = len(dl.CmdBuffer)
	b.vertices = len(dl.VtxBuffer)
	return nil
}

func (b *recordingBackend) FontTextureID() uint32 { return 7 }

func (b *recordingBackend) Resize(width, height int) {}
