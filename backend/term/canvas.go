package term

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/go-theft-auto/grid"
)

// cell is one terminal cell. ch is 0 for the second column of a wide rune.
type cell struct {
	ch     rune
	fg, bg uint32
}

// Canvas rasterizes the retained grid surfaces into terminal cells and
// renders them as lipgloss-styled lines.
type Canvas struct {
	w, h   int
	cells  []cell
	styles map[[2]uint32]lipgloss.Style
}

// NewCanvas returns an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{styles: make(map[[2]uint32]lipgloss.Style)}
}

// Size returns the canvas size in cells.
func (c *Canvas) Size() (w, h int) { return c.w, c.h }

// Paint rasterizes g with its top-left corner at cell (0, 0). Header and body
// are shifted by the scroll offsets and clipped to their regions, and
// visible scrollbars cover the body edges, as grid.BuildDrawList does for
// the GL backend.
func (c *Canvas) Paint(g *grid.Grid) {
	r := g.Regions()
	size := r.Size()
	pal := g.Palette()
	c.reset(ceil(size.X), ceil(size.Y), pal.Text, pal.Background)

	h, v := g.ScrollOffsets()
	rd := g.Renderer()
	c.paint(rd.Header(), r.Header, -h, 0)
	c.paint(rd.Body(), r.Body, -h, r.Body.Y-v)
	c.paint(rd.Footer(), r.Footer, 0, r.Footer.Y)

	for _, sb := range g.VisibleScrollbars() {
		c.fill(sb.Track, r.Body, pal.ScrollTrack)
		c.fill(sb.Thumb, r.Body, pal.ScrollThumb)
	}
}

// fill paints the cells of b inside clip with background color.
func (c *Canvas) fill(b, clip grid.Rect, color uint32) {
	x0, y0 := max(0, round(clip.X), round(b.X)), max(0, round(clip.Y), round(b.Y))
	x1 := min(c.w, round(clip.X+clip.W), round(b.X+b.W))
	y1 := min(c.h, round(clip.Y+clip.H), round(b.Y+b.H))
	for y := y0; y < y1; y++ {
		row := c.cells[y*c.w : (y+1)*c.w]
		for x := x0; x < x1; x++ {
			row[x] = cell{ch: ' ', fg: row[x].fg, bg: color}
		}
		// orphaned second column of a covered wide rune
		if x0 < x1 && x1 < c.w && row[x1].ch == 0 {
			row[x1].ch = ' '
		}
	}
}

func (c *Canvas) reset(w, h int, fg, bg uint32) {
	c.w, c.h = w, h
	if cap(c.cells) < w*h {
		c.cells = make([]cell, w*h)
	}
	c.cells = c.cells[:w*h]
	for i := range c.cells {
		c.cells[i] = cell{ch: ' ', fg: fg, bg: bg}
	}
}

func (c *Canvas) paint(s *grid.Surface, clip grid.Rect, dx, dy float32) {
	x0, y0 := max(0, round(clip.X)), max(0, round(clip.Y))
	x1, y1 := min(c.w, round(clip.X+clip.W)), min(c.h, round(clip.Y+clip.H))
	if x0 >= x1 || y0 >= y1 {
		return
	}

	s.Walk(func(_ grid.Tag, it grid.Item) {
		if _, _, _, a := grid.UnpackRGBA(it.Color); a == 0 {
			return
		}
		switch it.Kind {
		case grid.ItemRect:
			c.fill(it.Bounds.Offset(dx, dy), clip, it.Color)
		case grid.ItemText:
			y := round(it.TextTop() + dy)
			if y < y0 || y >= y1 {
				return
			}
			x := round(it.Bounds.X + dx)
			for _, ch := range it.Text {
				w := runewidth.RuneWidth(ch)
				if w == 0 {
					continue
				}
				if x+w > x1 {
					break
				}
				if x >= x0 {
					row := c.cells[y*c.w:]
					row[x].ch, row[x].fg = ch, it.Color
					for i := 1; i < w; i++ {
						row[x+i].ch = 0
					}
				}
				x += w
			}
		}
	})
}

// Lines returns the canvas as plain text, one string per row.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.h)
	var sb strings.Builder
	for y := range lines {
		sb.Reset()
		for _, cl := range c.cells[y*c.w : (y+1)*c.w] {
			if cl.ch != 0 {
				sb.WriteRune(cl.ch)
			}
		}
		lines[y] = sb.String()
	}
	return lines
}

// At returns the rune and colors of cell (x, y).
func (c *Canvas) At(x, y int) (ch rune, fg, bg uint32) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0, 0, 0
	}
	cl := c.cells[y*c.w+x]
	return cl.ch, cl.fg, cl.bg
}

// String renders the canvas with one lipgloss style per run of equally
// colored cells.
func (c *Canvas) String() string {
	var out, run strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		row := c.cells[y*c.w : (y+1)*c.w]
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].fg == row[start].fg && row[x].bg == row[start].bg {
				continue
			}
			run.Reset()
			for _, cl := range row[start:x] {
				if cl.ch != 0 {
					run.WriteRune(cl.ch)
				}
			}
			out.WriteString(c.style(row[start].fg, row[start].bg).Render(run.String()))
			start = x
		}
	}
	return out.String()
}

func (c *Canvas) style(fg, bg uint32) lipgloss.Style {
	key := [2]uint32{fg, bg}
	if st, ok := c.styles[key]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor(fg))).
		Background(lipgloss.Color(hexColor(bg)))
	c.styles[key] = st
	return st
}

func hexColor(c uint32) string {
	r, g, b, _ := grid.UnpackRGBA(c)
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex()
}

func round(v float32) int { return int(math.Floor(float64(v) + 0.5)) }

func ceil(v float32) int { return int(math.Ceil(float64(v))) }
