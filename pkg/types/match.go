package types

import "fmt"

// Kind identifies which literal form matched. The ordering mirrors the
// grammar priority: when two forms start at the same offset the lower
// Kind wins.
type Kind int

const (
	KindTimestamp Kind = iota // ISO-8601 basic, e.g. 20220805T125830
	KindHexPrefixed           // #xDEADBEEF
	KindHexOrFloat            // 0xFF or 0x1.921FB54p+2
	KindBinary                // 0b1010 or #b1010
	KindUnprefixedHex         // deadbeef1 (word-bounded, mixed digits)
	KindDecimal               // 28318530
	KindBareFraction          // .141592
)

var kindNames = map[Kind]string{
	KindTimestamp:     "timestamp",
	KindHexPrefixed:   "hex-prefixed",
	KindHexOrFloat:    "hex-or-float",
	KindBinary:        "binary",
	KindUnprefixedHex: "unprefixed-hex",
	KindDecimal:       "decimal",
	KindBareFraction:  "bare-fraction",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a kind name back to its Kind value.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown literal kind %q", name)
}

// Match is a single recognized literal. Span covers the whole matched
// region; the named sub-spans carve it into the pieces that receive
// grouping. A zero-length sub-span means the field is absent for the
// matched form.
//
// Sub-spans never overlap within one Match, and at most one of IntHex
// and IntDec is non-empty: they are mutually exclusive grammar
// alternatives that share the same grouping treatment.
type Match struct {
	Kind Kind
	Span Span

	IntHex   Span // hex or binary integer digits
	IntDec   Span // decimal integer digits; also exponent digits for hex floats
	FracDec  Span // decimal fractional digits
	FracHex  Span // hex fractional digits
	DateTime Span // whole timestamp
	Time     Span // hour/minute/second run inside DateTime, fractional seconds excluded
	Offset   Span // timezone offset digits, sign excluded
}

// Year, Month and Day address the fixed-width date fields of a
// timestamp match. They are only meaningful when DateTime is present.
func (m Match) Year() Span  { return Span{Start: m.DateTime.Start, End: m.DateTime.Start + 4} }
func (m Match) Month() Span { return Span{Start: m.DateTime.Start + 4, End: m.DateTime.Start + 6} }
func (m Match) Day() Span   { return Span{Start: m.DateTime.Start + 6, End: m.DateTime.Start + 8} }
