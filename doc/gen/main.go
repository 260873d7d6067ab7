// Command gen renders the grid in a few representative states, captures the
// framebuffer and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/grid"
	"github.com/go-theft-auto/grid/backend/opengl"
)

const margin = 12

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single grid state to capture.
type screenshot struct {
	name  string                 // filename without extension
	theme grid.ThemeMode         // palette to draw with
	setup func(g *grid.Grid)     // drives the grid into the pictured state
	size  func(g *grid.Grid) int // optional container height; 0 shows everything
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	// The hidden window stays larger than every screenshot; captures only
	// resize the backend projection.
	w, err := opengl.OpenWindow(opengl.WindowOptions{Title: "screenshot-gen", Width: 1200, Height: 600, Hidden: true})
	if err != nil {
		return err
	}
	defer w.Close()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		width, height, err := capture(w, s, outDir)
		if err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, width, height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(w *opengl.Window, s screenshot, outDir string) (int, int, error) {
	// Fresh grid per screenshot to avoid state leaking between captures.
	g, err := newSampleGrid(s.theme)
	if err != nil {
		return 0, 0, err
	}
	if s.size != nil {
		g.OnContainerResize(g.Regions().Size().X, float32(s.size(g)))
		g.Idle()
	}
	if s.setup != nil {
		s.setup(g)
	}

	size := g.Regions().Size()
	width, height := int(size.X)+2*margin, int(size.Y)+2*margin
	w.Backend.Resize(width, height)

	if err := w.Frame(g, grid.Vec2{X: margin, Y: margin}); err != nil {
		return 0, 0, err
	}

	img := w.Backend.Snapshot()
	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	return width, height, jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func newSampleGrid(theme grid.ThemeMode) (*grid.Grid, error) {
	m, err := grid.NewModel(
		[]string{"Nome", "Idade", "Cidade"},
		[][]string{
			{"Ana Souza", "34", "Lisboa"},
			{"Bruno Lima", "41", "Porto"},
			{"Carla Dias", "29", "Coimbra"},
			{"Diogo Reis", "52", "Braga"},
			{"Eva Martins", "23", "Faro"},
			{"Filipe Costa", "38", "Aveiro"},
			{"Gabriela Nunes", "45", "Évora"},
		},
	)
	if err != nil {
		return nil, err
	}

	cfg := grid.DefaultConfig()
	cfg.Theme = theme
	cfg.Width = 560
	font := grid.NewFixedFont(2)
	return grid.New(m, cfg, grid.WithFonts(font, font))
}

// buildScreenshots returns the list of grid states to capture.
func buildScreenshots() []screenshot {
	pointAt := func(g *grid.Grid, slot int) (float32, float32) {
		r := g.Regions()
		m := g.Metrics()
		return r.Body.X + 20, r.Body.Y + m.SlotTop(slot) + m.RowPitch()/2
	}

	return []screenshot{
		{name: "light", theme: grid.ThemeLight},
		{name: "dark", theme: grid.ThemeDark},
		{
			name: "hover_selected", theme: grid.ThemeLight,
			setup: func(g *grid.Grid) {
				g.Click(pointAt(g, 1))
				g.PointerMove(pointAt(g, 3))
			},
		},
		{
			name: "last_page", theme: grid.ThemeDark,
			setup: func(g *grid.Grid) { g.LastPage() },
		},
		{
			name: "scrolled", theme: grid.ThemeLight,
			setup: func(g *grid.Grid) { g.SetScrollFractions(0, 0.5) },
			size: func(g *grid.Grid) int {
				cfg := g.Config()
				return int(cfg.HeaderHeight+cfg.FooterHeight) + 3*int(g.Metrics().RowPitch())
			},
		},
	}
}
