package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/go-theft-auto/grid"
)

// ParseColor parses "#RRGGBB" (or "#RGB") into an opaque grid color.
func ParseColor(s string) (uint32, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return grid.RGBA(r, g, b, 0xFF), nil
}

// FormatColor renders a grid color as "#rrggbb", dropping alpha.
func FormatColor(c uint32) string {
	r, g, b, _ := grid.UnpackRGBA(c)
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex()
}

func (p PaletteFile) apply(base grid.Palette) (grid.Palette, error) {
	fields := []struct {
		hex string
		dst *uint32
	}{
		{p.Background, &base.Background},
		{p.Row, &base.Row},
		{p.AltRow, &base.AltRow},
		{p.Hover, &base.Hover},
		{p.Selected, &base.Selected},
		{p.Separator, &base.Separator},
		{p.Text, &base.Text},
		{p.ScrollTrack, &base.ScrollTrack},
		{p.ScrollThumb, &base.ScrollThumb},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := ParseColor(f.hex)
		if err != nil {
			return grid.Palette{}, err
		}
		*f.dst = c
	}
	return base, nil
}

func paletteToFile(p grid.Palette) PaletteFile {
	return PaletteFile{
		Background: FormatColor(p.Background),
		Row:        FormatColor(p.Row),
		AltRow:     FormatColor(p.AltRow),
		Hover:      FormatColor(p.Hover),
		Selected:   FormatColor(p.Selected),
		Separator:  FormatColor(p.Separator),
		Text:       FormatColor(p.Text),

		ScrollTrack: FormatColor(p.ScrollTrack),
		ScrollThumb: FormatColor(p.ScrollThumb),
	}
}
