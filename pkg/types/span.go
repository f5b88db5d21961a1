package types

import "fmt"

// Span is a half-open [Start, End) character range into scanned text.
// Offsets count characters (runes), not bytes, so hosts that address
// text by character position can use spans directly.
type Span struct {
	Start int
	End   int
}

// Len returns the number of characters the span covers.
func (s Span) Len() int { return s.End - s.Start }

// Empty reports whether the span covers no characters.
func (s Span) Empty() bool { return s.End <= s.Start }

// Parity is one of the two alternating style tags. The core only ever
// emits the tag; visual rendering is a host concern.
type Parity int

const (
	Odd Parity = iota
	Even
)

// Flip returns the opposite parity.
func (p Parity) Flip() Parity {
	if p == Odd {
		return Even
	}
	return Odd
}

func (p Parity) String() string {
	if p == Odd {
		return "odd"
	}
	return "even"
}

// Anchor selects which end of a sub-span group widths are measured from.
type Anchor int

const (
	// FromEnd peels groups from the high end. Integer parts group this
	// way: the units digit anchors the first group and any short group
	// lands at the front.
	FromEnd Anchor = iota

	// FromStart peels groups from the low end. Fractional and date/time
	// parts group this way: any short group lands at the back.
	FromStart
)

// Group is a contiguous digit run assigned one parity.
type Group struct {
	Span
	Parity Parity
}

// StyleSpan is the externally visible form of a Group: the (start, end,
// parity) triple a host merges into its own style store.
type StyleSpan = Group

func (g Group) String() string {
	return fmt.Sprintf("[%d,%d)%s", g.Start, g.End, g.Parity)
}
