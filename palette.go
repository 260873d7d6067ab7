package grid

import (
	"fmt"
	"strings"
)

// ThemeMode selects one of the two palettes.
type ThemeMode int

const (
	ThemeLight ThemeMode = iota
	ThemeDark
)

func (m ThemeMode) String() string {
	switch m {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return fmt.Sprintf("ThemeMode(%d)", int(m))
	}
}

// ParseThemeMode parses "light" or "dark" (case-insensitive).
func ParseThemeMode(s string) (ThemeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light", "":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	default:
		return ThemeLight, fmt.Errorf("grid: unknown theme %q", s)
	}
}

// Palette holds every color the grid draws with in one theme mode.
type Palette struct {
	Background uint32 // header strip, filler and footer
	Row        uint32 // even absolute rows
	AltRow     uint32 // odd absolute rows
	Hover      uint32
	Selected   uint32
	Separator  uint32
	Text       uint32

	ScrollTrack uint32
	ScrollThumb uint32
}

// Palettes pairs the light and dark palettes of one grid.
type Palettes struct {
	Light Palette
	Dark  Palette
}

// DefaultPalettes returns the desk application's stock colors.
func DefaultPalettes() Palettes {
	return Palettes{
		Light: Palette{
			Background: Hex(0xFFFFFF),
			Row:        Hex(0xF2F2F2),
			AltRow:     Hex(0xFFFFFF),
			Hover:      Hex(0xE3F5FF),
			Selected:   Hex(0xE3FFE6),
			Separator:  Hex(0xBFBFBF),
			Text:       Hex(0x000000),

			ScrollTrack: Hex(0xE9ECEF),
			ScrollThumb: Hex(0xADB5BD),
		},
		Dark: Palette{
			Background: Hex(0x212529),
			Row:        Hex(0x2C3034),
			AltRow:     Hex(0x212529),
			Hover:      Hex(0x2B4A5E),
			Selected:   Hex(0x2E5339),
			Separator:  Hex(0x32383E),
			Text:       Hex(0xFFFFFF),

			ScrollTrack: Hex(0x2C3034),
			ScrollThumb: Hex(0x6C757D),
		},
	}
}

// Select returns the palette for mode.
func (p Palettes) Select(mode ThemeMode) Palette {
	if mode == ThemeDark {
		return p.Dark
	}
	return p.Light
}

// Background is the highlight state a row is drawn with.
type Background int

const (
	BackgroundDefault Background = iota
	BackgroundHover
	BackgroundSelected
)

func (b Background) String() string {
	switch b {
	case BackgroundDefault:
		return "default"
	case BackgroundHover:
		return "hover"
	case BackgroundSelected:
		return "selected"
	default:
		return fmt.Sprintf("Background(%d)", int(b))
	}
}

// RowColor resolves the fill of an absolute row. Default rows alternate on
// the absolute index so stripes do not shift between pages.
func (p Palette) RowColor(kind Background, absRow int) uint32 {
	switch kind {
	case BackgroundHover:
		return p.Hover
	case BackgroundSelected:
		return p.Selected
	}
	if absRow%2 == 0 {
		return p.Row
	}
	return p.AltRow
}
