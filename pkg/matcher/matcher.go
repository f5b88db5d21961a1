// Package matcher recognizes numeric and timestamp literals in text.
//
// The matcher scans for the next occurrence of one of the literal forms
// in the grammar, left-most first, grammar order breaking ties. It is a
// pure function of its input: no state survives between calls.
package matcher

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/numspan/numspan/pkg/types"
)

// matchTimeout bounds a single regex evaluation. The grammar has no
// nested quantifiers so this should never trigger in practice.
const matchTimeout = 5 * time.Second

// compiled pairs a grammar rule with its compiled pattern.
type compiled struct {
	kind types.Kind
	re   *regexp2.Regexp
}

// Matcher holds the compiled grammar. It is read-only after New and
// safe for concurrent use.
type Matcher struct {
	rules []compiled
}

// New compiles the literal grammar. Compilation failure is a programmer
// error in the pattern table, surfaced here rather than mid-scan.
func New() (*Matcher, error) {
	rules := make([]compiled, 0, len(grammar))
	for _, r := range grammar {
		re, err := regexp2.Compile(r.pattern, regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("compiling %s pattern: %w", r.kind, err)
		}
		re.MatchTimeout = matchTimeout
		rules = append(rules, compiled{kind: r.kind, re: re})
	}
	return &Matcher{rules: rules}, nil
}

// FindNext returns the next literal starting at or after from and
// strictly before limit. Offsets are character (rune) offsets; see
// FindNextRunes for the allocation-free variant used by scan loops.
func (m *Matcher) FindNext(text string, from, limit int) (types.Match, bool, error) {
	return m.FindNextRunes([]rune(text), from, limit)
}

// FindNextRunes is FindNext over an already-decoded rune slice. Callers
// that re-enter the matcher while walking a text should decode once and
// use this form.
//
// Matching runs against the full slice with an explicit start offset,
// not a subslice: word boundaries and lookbehinds must see the true
// preceding character.
func (m *Matcher) FindNextRunes(runes []rune, from, limit int) (types.Match, bool, error) {
	if from < 0 {
		from = 0
	}
	if limit > len(runes) {
		limit = len(runes)
	}
	if from >= limit {
		return types.Match{}, false, nil
	}

	var best types.Match
	found := false
	for _, r := range m.rules {
		mt, err := r.re.FindRunesMatchStartingAt(runes, from)
		if err != nil {
			return types.Match{}, false, fmt.Errorf("matching %s: %w", r.kind, err)
		}
		if mt == nil || mt.Index >= limit {
			continue
		}
		// Left-most wins; ties go to the earlier grammar rule.
		if found && mt.Index >= best.Span.Start {
			continue
		}
		best = buildMatch(r.kind, mt)
		found = true
	}
	return best, found, nil
}

// buildMatch maps a regexp2 match onto the typed sub-span layout.
func buildMatch(kind types.Kind, mt *regexp2.Match) types.Match {
	out := types.Match{
		Kind: kind,
		Span: types.Span{Start: mt.Index, End: mt.Index + mt.Length},
	}
	out.IntHex = groupSpan(mt, "inthex")
	out.IntDec = groupSpan(mt, "intdec")
	out.FracDec = groupSpan(mt, "fracdec")
	out.FracHex = groupSpan(mt, "frachex")
	out.Time = groupSpan(mt, "time")
	out.Offset = groupSpan(mt, "offset")
	if kind == types.KindTimestamp {
		out.DateTime = out.Span
	}
	return out
}

func groupSpan(mt *regexp2.Match, name string) types.Span {
	g := mt.GroupByName(name)
	if g == nil || len(g.Captures) == 0 {
		return types.Span{}
	}
	c := g.Captures[len(g.Captures)-1]
	return types.Span{Start: c.Index, End: c.Index + c.Length}
}
