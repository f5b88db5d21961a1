// Package grouping splits digit runs into alternating-parity groups.
// It has no knowledge of the literal grammar: callers hand it bounds, a
// group width, a starting parity and an anchor, and get back the
// ordered group sequence.
package grouping

import (
	"slices"

	"github.com/numspan/numspan/pkg/types"
)

// Split partitions [lo, hi) into contiguous groups of exactly width
// characters, except possibly one short group at the end opposite the
// anchor. Adjacent groups alternate parity; the group nearest the
// anchor receives start. Groups are reported in document order.
//
// Runs shorter than threshold yield no groups at all. Callers styling
// fixed-width fields (date and time components) pass threshold 0 to
// group unconditionally.
func Split(lo, hi, width int, start types.Parity, anchor types.Anchor, threshold int) []types.Group {
	if width < 1 || lo >= hi || hi-lo < threshold {
		return nil
	}

	groups := make([]types.Group, 0, (hi-lo+width-1)/width)
	parity := start

	switch anchor {
	case types.FromEnd:
		for end := hi; end > lo; end -= width {
			s := end - width
			if s < lo {
				s = lo
			}
			groups = append(groups, types.Group{Span: types.Span{Start: s, End: end}, Parity: parity})
			parity = parity.Flip()
		}
		// Peeled right to left; report document order.
		slices.Reverse(groups)
	default:
		for s := lo; s < hi; s += width {
			end := s + width
			if end > hi {
				end = hi
			}
			groups = append(groups, types.Group{Span: types.Span{Start: s, End: end}, Parity: parity})
			parity = parity.Flip()
		}
	}

	return groups
}
