package matcher

import "github.com/numspan/numspan/pkg/types"

// rule is one literal form: a kind plus the pattern that recognizes it.
type rule struct {
	kind    types.Kind
	pattern string
}

// grammar lists the literal forms in priority order. The scanner picks
// the left-most match; when two forms start at the same offset the
// earlier entry wins.
//
// Capture-group names map onto Match sub-spans. Binary integers reuse
// the inthex slot since both group in width four, and hex-float
// exponent digits reuse intdec since they group like a plain decimal
// integer.
var grammar = []rule{
	// ISO-8601 basic: 8-digit date, T, then a 2/4/6-digit time.
	// Fractional seconds are only admitted after a full 6-digit time
	// (the lookbehind enforces it) and are not part of the time run.
	// The offset keeps its digits only; the sign stays unstyled.
	{types.KindTimestamp,
		`[0-9]{8}T(?<time>[0-9]{2}(?:[0-9]{2}(?:[0-9]{2})?)?)(?:(?<=T[0-9]{6})\.[0-9]+)?(?:[-+](?<offset>[0-9]+))?`},

	{types.KindHexPrefixed,
		`#[xX](?<inthex>[0-9a-fA-F]+)`},

	// The fraction-plus-exponent tail is one unit: without the
	// mandatory p exponent, 0x1234.5678 matches only 0x1234 and the
	// .5678 is picked up later as a bare fraction.
	{types.KindHexOrFloat,
		`0[xX](?<inthex>[0-9a-fA-F]*)(?:\.(?<frachex>[0-9a-fA-F]+)[pP][-+]?(?<intdec>[0-9]+))?`},

	{types.KindBinary,
		`[0#][bB](?<inthex>[01]+)`},

	// A word-bounded hex-digit run counts as a hex literal only when it
	// mixes at least one decimal digit with at least one letter digit;
	// the lookaheads check both without consuming.
	{types.KindUnprefixedHex,
		`\b(?=[0-9a-fA-F]*[a-fA-F])(?=[0-9a-fA-F]*[0-9])(?<inthex>[0-9a-fA-F]+)\b`},

	{types.KindDecimal,
		`(?<intdec>[0-9]+)`},

	// Fires on its own and as the fractional half of 123.456, since the
	// scan resumes right where the integer match ended.
	{types.KindBareFraction,
		`\.(?<fracdec>[0-9]+)`},
}
