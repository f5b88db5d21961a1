// Package highlighter drives literal matching and digit grouping over a
// text range and hands the resulting style spans to a host sink.
package highlighter

import (
	"github.com/numspan/numspan/pkg/grouping"
	"github.com/numspan/numspan/pkg/matcher"
	"github.com/numspan/numspan/pkg/types"
)

// MatchFunc receives each literal found during a pass together with the
// style spans computed for it, in document order. Returning an error
// aborts the pass.
type MatchFunc func(m types.Match, spans []types.Group) error

// Highlighter runs highlight passes with a fixed configuration. It is
// read-only after New and safe for concurrent use; a pass keeps all its
// state on the stack, so overlapping or repeated scans over the same
// text are independent.
type Highlighter struct {
	m   *matcher.Matcher
	cfg types.Config
}

// New validates cfg and compiles the literal grammar.
func New(cfg types.Config) (*Highlighter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m, err := matcher.New()
	if err != nil {
		return nil, err
	}
	return &Highlighter{m: m, cfg: cfg}, nil
}

// Config returns the grouping configuration the highlighter runs with.
func (h *Highlighter) Config() types.Config { return h.cfg }

// Matcher exposes the compiled literal matcher for hosts that want raw
// matches without styling.
func (h *Highlighter) Matcher() *matcher.Matcher { return h.m }

// Run scans [from, limit) of text and merges alternating-parity groups
// into sink for every literal found, in document order.
func (h *Highlighter) Run(text string, from, limit int, sink StyleSink) error {
	return h.RunRunes([]rune(text), from, limit, sink)
}

// RunRunes is Run over an already-decoded rune slice.
func (h *Highlighter) RunRunes(runes []rune, from, limit int, sink StyleSink) error {
	return h.scan(runes, from, limit, func(_ types.Match, spans []types.Group) error {
		for _, g := range spans {
			sink.Merge(g)
		}
		return nil
	})
}

// Literals scans [from, limit) of text and reports each literal with
// its computed style spans. Hosts that need the match structure (the
// CLI, persistence) use this instead of a bare StyleSink.
func (h *Highlighter) Literals(text string, from, limit int, fn MatchFunc) error {
	return h.scan([]rune(text), from, limit, fn)
}

// Spans runs a highlight pass and collects the emitted spans instead of
// merging them into a host store.
func (h *Highlighter) Spans(text string, from, limit int) ([]types.StyleSpan, error) {
	var out []types.StyleSpan
	err := h.scan([]rune(text), from, limit, func(_ types.Match, spans []types.Group) error {
		out = append(out, spans...)
		return nil
	})
	return out, err
}

// scan is the orchestration loop: find the next literal, dispatch its
// sub-spans, report, advance to the match end. The pass ends once no
// literal starts before limit; every iteration consumes at least one
// character of progress, so termination is guaranteed.
func (h *Highlighter) scan(runes []rune, from, limit int, fn MatchFunc) error {
	if from < 0 {
		from = 0
	}
	if limit > len(runes) {
		limit = len(runes)
	}

	cur := from
	for cur < limit {
		m, ok, err := h.m.FindNextRunes(runes, cur, limit)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if err := fn(m, h.groups(m)); err != nil {
			return err
		}
		if m.Span.End > cur {
			cur = m.Span.End
		} else {
			cur++
		}
	}
	return nil
}

// groups dispatches each present sub-span with the width, anchor,
// parity and threshold its role demands.
func (h *Highlighter) groups(m types.Match) []types.Group {
	w, thr := h.cfg.GroupSize, h.cfg.Threshold

	var out []types.Group
	out = append(out, grouping.Split(m.IntHex.Start, m.IntHex.End, types.HexGroupSize, types.Odd, types.FromEnd, thr)...)
	out = append(out, grouping.Split(m.FracHex.Start, m.FracHex.End, types.HexGroupSize, types.Odd, types.FromStart, thr)...)
	out = append(out, grouping.Split(m.IntDec.Start, m.IntDec.End, w, types.Odd, types.FromEnd, thr)...)
	out = append(out, grouping.Split(m.FracDec.Start, m.FracDec.End, w, types.Odd, types.FromStart, thr)...)

	if m.Kind != types.KindTimestamp {
		return out
	}

	// Date fields are fixed width and always styled, so each is a
	// single group rather than a split.
	out = append(out,
		types.Group{Span: m.Year(), Parity: types.Even},
		types.Group{Span: m.Month(), Parity: types.Odd},
		types.Group{Span: m.Day(), Parity: types.Even},
	)

	out = append(out, grouping.Split(m.Time.Start, m.Time.End, 2, types.Even, types.FromStart, 0)...)

	if m.Offset.Len() > 4 {
		// Too long to plausibly be a timezone offset; style it like an
		// ordinary decimal integer instead.
		out = append(out, grouping.Split(m.Offset.Start, m.Offset.End, w, types.Odd, types.FromEnd, thr)...)
	} else {
		out = append(out, grouping.Split(m.Offset.Start, m.Offset.End, 2, types.Even, types.FromStart, 0)...)
	}
	return out
}
