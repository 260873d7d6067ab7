package grid

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ErrUnsupportedGlyph is returned by FixedFont when a string contains a rune
// that the bitmap atlas cannot draw.
var ErrUnsupportedGlyph = errors.New("grid: unsupported glyph")

// Font measures text for layout and truncation.
// Hosts supply their own implementation when they draw with something
// other than the built-in bitmap atlas.
type Font interface {
	// MeasureText returns the advance width of text in pixels.
	MeasureText(text string) (float32, error)

	// LineHeight returns the height of one line of text in pixels.
	LineHeight() float32
}

// Glyph cell size of the built-in bitmap atlas at scale 1.
const (
	GlyphWidth  = 8
	GlyphHeight = 8
)

// FixedFont is the monospace bitmap font drawn by backend/opengl.
type FixedFont struct {
	Scale float32
}

// NewFixedFont returns a bitmap font scaled by scale. Non-positive scales mean 1.
func NewFixedFont(scale float32) *FixedFont {
	if scale <= 0 {
		scale = 1
	}
	return &FixedFont{Scale: scale}
}

// MeasureText implements Font.
func (f *FixedFont) MeasureText(text string) (float32, error) {
	n := 0
	for _, r := range text {
		if !hasGlyph(r) {
			return 0, fmt.Errorf("%w: %q", ErrUnsupportedGlyph, r)
		}
		n++
	}
	return float32(n) * GlyphWidth * f.scale(), nil
}

// LineHeight implements Font.
func (f *FixedFont) LineHeight() float32 {
	return GlyphHeight * f.scale()
}

// CellSize returns the size of one glyph quad. Surfaces use it when
// flattening text into a DrawList.
func (f *FixedFont) CellSize() (w, h float32) {
	s := f.scale()
	return GlyphWidth * s, GlyphHeight * s
}

func (f *FixedFont) scale() float32 {
	if f == nil || f.Scale <= 0 {
		return 1
	}
	return f.Scale
}

// cellSizer is implemented by fonts with a fixed glyph cell.
type cellSizer interface {
	CellSize() (w, h float32)
}

// glyphCell returns the quad size used to draw text with font.
// Proportional fonts are approximated by their average advance.
func glyphCell(font Font, text string) (w, h float32) {
	if cs, ok := font.(cellSizer); ok {
		return cs.CellSize()
	}
	h = font.LineHeight()
	n := len([]rune(text))
	if n == 0 {
		return 0, h
	}
	adv, err := font.MeasureText(text)
	if err != nil {
		return h, h
	}
	return adv / float32(n), h
}

// hasGlyph reports whether the atlas can draw r, directly or through a fallback.
func hasGlyph(r rune) bool {
	g := unicodeFallback(r)
	return g >= 32 && g < 127
}

// glyphIndex maps r to its slot in the atlas; unknown runes draw as '?'.
func glyphIndex(r rune) int {
	g := unicodeFallback(r)
	if g < 32 || g >= 127 {
		g = '?'
	}
	return int(g - 32)
}

// unicodeFallback maps accented Latin letters to their base letter and a
// few common symbols to ASCII look-alikes.
func unicodeFallback(r rune) rune {
	if r >= 32 && r <= 127 {
		return r
	}
	if base := foldAccent(r); base != r {
		return base
	}
	switch r {
	case 'ø':
		return 'o'
	case 'Ø':
		return 'O'
	case 'đ':
		return 'd'
	case 'Đ':
		return 'D'
	case 'ł':
		return 'l'
	case 'Ł':
		return 'L'
	case 'ı':
		return 'i'
	case 'ß':
		return 's'
	case 'æ', 'œ':
		return 'e'
	case 'Æ', 'Œ':
		return 'E'
	case '‘', '’', '´':
		return '\''
	case '“', '”', '«', '»':
		return '"'
	case '►', '▶', '▸', '→':
		return '>'
	case '◄', '◀', '◂', '←':
		return '<'
	case '•', '●':
		return '*'
	case '—', '–':
		return '-'
	case '\u00a0':
		return ' '
	default:
		return r
	}
}

// foldAccent returns the ASCII base letter of a precomposed letter such as
// 'à' or 'Ç', found through canonical decomposition. Other runes come back
// unchanged.
func foldAccent(r rune) rune {
	if r < 0xC0 {
		return r
	}
	base, _ := utf8.DecodeRuneInString(norm.NFD.String(string(r)))
	if lower := base | 0x20; lower >= 'a' && lower <= 'z' {
		return base
	}
	return r
}
