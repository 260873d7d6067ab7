package grid

// TagKind groups the drawables of a surface.
type TagKind uint8

const (
	TagHeader TagKind = iota
	TagRow
	TagFiller
	TagFooter
)

// Tag identifies a set of drawables that are erased and redrawn together.
// Row tags carry the absolute row index.
type Tag struct {
	Kind TagKind
	Row  int
}

// RowTag returns the tag of absolute row abs.
func RowTag(abs int) Tag { return Tag{Kind: TagRow, Row: abs} }

var (
	headerTag = Tag{Kind: TagHeader}
	fillerTag = Tag{Kind: TagFiller}
	footerTag = Tag{Kind: TagFooter}
)

// ItemKind distinguishes drawable items.
type ItemKind uint8

const (
	ItemRect ItemKind = iota
	ItemText
)

// Item is a single retained drawable.
// Rect items fill Bounds. Text items start at Bounds.X and are vertically
// centered on Bounds.Y; Bounds.W holds the measured text width.
type Item struct {
	Kind   ItemKind
	Bounds Rect
	Color  uint32
	Text   string
	Font   Font
}

// TextTop returns the y coordinate of the top of a text item's glyphs.
func (it Item) TextTop() float32 {
	if it.Font == nil {
		return it.Bounds.Y
	}
	return it.Bounds.Y - it.Font.LineHeight()/2
}

type surfaceEntry struct {
	items    []Item
	revision uint64
}

// Surface is a retained canvas: drawables are grouped by Tag so that one
// group can be replaced without touching the others.
//
// Groups are painted in the order they were first drawn after their last erase.
type Surface struct {
	entries map[Tag]*surfaceEntry
	order   []Tag
	clock   uint64
}

// NewSurface returns an empty surface.
func NewSurface() *Surface {
	return &Surface{entries: make(map[Tag]*surfaceEntry)}
}

// Delete erases every item tagged tag. Unknown tags are ignored.
func (s *Surface) Delete(tag Tag) {
	e, ok := s.entries[tag]
	if !ok || len(e.items) == 0 {
		return
	}
	e.items = e.items[:0]
	s.touch(e)
	for i, t := range s.order {
		if t == tag {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// AddRect adds a filled rectangle under tag.
func (s *Surface) AddRect(tag Tag, r Rect, color uint32) {
	if r.Empty() {
		return
	}
	s.add(tag, Item{Kind: ItemRect, Bounds: r, Color: color})
}

// AddText adds text whose left edge is x and whose line is centered on y.
// Text font cannot measure is not added.
func (s *Surface) AddText(tag Tag, x, y float32, text string, color uint32, font Font) error {
	if text == "" {
		return nil
	}
	w, err := font.MeasureText(text)
	if err != nil {
		return err
	}
	s.add(tag, Item{Kind: ItemText, Bounds: Rect{X: x, Y: y, W: w}, Color: color, Text: text, Font: font})
	return nil
}

func (s *Surface) add(tag Tag, it Item) {
	e, ok := s.entries[tag]
	if !ok {
		e = &surfaceEntry{}
		s.entries[tag] = e
	}
	if len(e.items) == 0 {
		s.order = append(s.order, tag)
	}
	e.items = append(e.items, it)
	s.touch(e)
}

func (s *Surface) touch(e *surfaceEntry) {
	s.clock++
	e.revision = s.clock
}

// Clear erases every item.
func (s *Surface) Clear() {
	for _, t := range s.order {
		e := s.entries[t]
		e.items = e.items[:0]
		s.touch(e)
	}
	s.order = s.order[:0]
}

// Items returns the items under tag in drawing order.
func (s *Surface) Items(tag Tag) []Item {
	if e, ok := s.entries[tag]; ok {
		return e.items
	}
	return nil
}

// Revision returns a counter that changes whenever the items under tag change.
// Tags that were never drawn report 0.
func (s *Surface) Revision(tag Tag) uint64 {
	if e, ok := s.entries[tag]; ok {
		return e.revision
	}
	return 0
}

// Tags returns the non-empty tags in painting order.
func (s *Surface) Tags() []Tag {
	return append([]Tag(nil), s.order...)
}

// Len returns the total number of items.
func (s *Surface) Len() int {
	n := 0
	for _, t := range s.order {
		n += len(s.entries[t].items)
	}
	return n
}

// Walk calls fn for every item in painting order.
func (s *Surface) Walk(fn func(Tag, Item)) {
	for _, t := range s.order {
		for _, it := range s.entries[t].items {
			fn(t, it)
		}
	}
}
