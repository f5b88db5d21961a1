package highlighter

import "github.com/numspan/numspan/pkg/types"

// StyleSink receives style spans from a highlight pass. Merge must
// union the span's parity tag with whatever styling the host already
// holds for the range, never replace it: independent styling passes
// over the same text have to compose.
type StyleSink interface {
	Merge(g types.Group)
}

// SinkFunc adapts a function to StyleSink.
type SinkFunc func(types.Group)

func (f SinkFunc) Merge(g types.Group) { f(g) }

// TagSet is a reference StyleSink: a per-character union of parity
// tags. Rendering hosts normally keep their own annotation store; the
// CLI renderer uses TagSet, and its tests pin down the required merge
// semantics.
type TagSet struct {
	tags map[int]uint8
}

const (
	oddBit  uint8 = 1 << iota // Odd tag present
	evenBit                   // Even tag present
)

// NewTagSet returns an empty tag store.
func NewTagSet() *TagSet {
	return &TagSet{tags: make(map[int]uint8)}
}

// Merge unions the group's parity onto every character it covers.
func (t *TagSet) Merge(g types.Group) {
	bit := oddBit
	if g.Parity == types.Even {
		bit = evenBit
	}
	for i := g.Start; i < g.End; i++ {
		t.tags[i] |= bit
	}
}

// Has reports whether character offset i carries the given tag.
func (t *TagSet) Has(i int, p types.Parity) bool {
	bit := oddBit
	if p == types.Even {
		bit = evenBit
	}
	return t.tags[i]&bit != 0
}

// Tagged reports whether character offset i carries any tag.
func (t *TagSet) Tagged(i int) bool { return t.tags[i] != 0 }

// Len returns the number of tagged characters.
func (t *TagSet) Len() int { return len(t.tags) }
