package highlighter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/numspan/numspan/pkg/types"
)

func newHighlighter(t *testing.T, cfg types.Config) *Highlighter {
	t.Helper()
	h, err := New(cfg)
	require.NoError(t, err)
	return h
}

func defaultHighlighter(t *testing.T) *Highlighter {
	return newHighlighter(t, types.DefaultConfig())
}

func spansOf(t *testing.T, h *Highlighter, text string) []types.StyleSpan {
	t.Helper()
	spans, err := h.Spans(text, 0, len([]rune(text)))
	require.NoError(t, err)
	return spans
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(types.Config{GroupSize: 0, Threshold: 5})
	assert.ErrorIs(t, err, types.ErrInvalidConfig)

	_, err = New(types.Config{GroupSize: 3, Threshold: -1})
	assert.ErrorIs(t, err, types.ErrInvalidConfig)
}

func TestDecimalGrouping(t *testing.T) {
	h := defaultHighlighter(t)

	spans := spansOf(t, h, "28318530")
	assert.Equal(t, []types.StyleSpan{
		{Span: types.Span{Start: 0, End: 2}, Parity: types.Odd},
		{Span: types.Span{Start: 2, End: 5}, Parity: types.Even},
		{Span: types.Span{Start: 5, End: 8}, Parity: types.Odd},
	}, spans)
}

func TestShortRunsStayUnstyled(t *testing.T) {
	h := defaultHighlighter(t)

	assert.Empty(t, spansOf(t, h, "1234"), "below threshold")
	assert.Empty(t, spansOf(t, h, "0xFFF"), "hex below threshold")
}

func TestHexGrouping(t *testing.T) {
	h := defaultHighlighter(t)

	// 7 hex digits, width 4 from the end: short group leads.
	spans := spansOf(t, h, "0x1921FB5")
	assert.Equal(t, []types.StyleSpan{
		{Span: types.Span{Start: 2, End: 5}, Parity: types.Even},
		{Span: types.Span{Start: 5, End: 9}, Parity: types.Odd},
	}, spans)
}

func TestHexFloatGrouping(t *testing.T) {
	h := defaultHighlighter(t)

	// int "1" and exponent "2" are below threshold; only the fraction
	// groups, from the start.
	spans := spansOf(t, h, "0x1.921FB54p+2")
	assert.Equal(t, []types.StyleSpan{
		{Span: types.Span{Start: 4, End: 8}, Parity: types.Odd},
		{Span: types.Span{Start: 8, End: 11}, Parity: types.Even},
	}, spans)
}

func TestTimestampGrouping(t *testing.T) {
	h := defaultHighlighter(t)

	spans := spansOf(t, h, "20220805T1258")
	assert.Equal(t, []types.StyleSpan{
		{Span: types.Span{Start: 0, End: 4}, Parity: types.Even},  // year
		{Span: types.Span{Start: 4, End: 6}, Parity: types.Odd},   // month
		{Span: types.Span{Start: 6, End: 8}, Parity: types.Even},  // day
		{Span: types.Span{Start: 9, End: 11}, Parity: types.Even}, // "12"
		{Span: types.Span{Start: 11, End: 13}, Parity: types.Odd}, // "58"
	}, spans)
}

func TestTimestampOffsetGrouping(t *testing.T) {
	h := defaultHighlighter(t)

	t.Run("short offset groups as time", func(t *testing.T) {
		spans := spansOf(t, h, "20220805T1200-0500")
		require.Len(t, spans, 7)
		assert.Equal(t, []types.StyleSpan{
			{Span: types.Span{Start: 14, End: 16}, Parity: types.Even},
			{Span: types.Span{Start: 16, End: 18}, Parity: types.Odd},
		}, spans[5:])
	})

	t.Run("overlong offset falls back to decimal grouping", func(t *testing.T) {
		spans := spansOf(t, h, "20220805T1200-123456")
		require.Len(t, spans, 7)
		assert.Equal(t, []types.StyleSpan{
			{Span: types.Span{Start: 14, End: 17}, Parity: types.Even},
			{Span: types.Span{Start: 17, End: 20}, Parity: types.Odd},
		}, spans[5:])
	})
}

func TestIntegerFractionPair(t *testing.T) {
	h := newHighlighter(t, types.Config{GroupSize: 3, Threshold: 0})

	// 123.456 is an integer match immediately followed by a fraction
	// match; both group toward the decimal point.
	spans := spansOf(t, h, "123.456")
	assert.Equal(t, []types.StyleSpan{
		{Span: types.Span{Start: 0, End: 3}, Parity: types.Odd},
		{Span: types.Span{Start: 4, End: 7}, Parity: types.Odd},
	}, spans)
}

func TestLongFractionGrouping(t *testing.T) {
	h := defaultHighlighter(t)

	// Fractions group from the start: short group trails.
	spans := spansOf(t, h, "3.14159265")
	assert.Equal(t, []types.StyleSpan{
		{Span: types.Span{Start: 2, End: 5}, Parity: types.Odd},
		{Span: types.Span{Start: 5, End: 8}, Parity: types.Even},
		{Span: types.Span{Start: 8, End: 10}, Parity: types.Odd},
	}, spans)
}

func TestRangeBounds(t *testing.T) {
	h := defaultHighlighter(t)

	text := "11111111 22222222"

	t.Run("limit excludes later literals", func(t *testing.T) {
		spans, err := h.Spans(text, 0, 8)
		require.NoError(t, err)
		require.Len(t, spans, 3)
		assert.Equal(t, 0, spans[0].Start)
	})

	t.Run("from skips earlier literals", func(t *testing.T) {
		spans, err := h.Spans(text, 8, len(text))
		require.NoError(t, err)
		require.Len(t, spans, 3)
		assert.Equal(t, 9, spans[0].Start)
	})
}

func TestRunMergesIntoSink(t *testing.T) {
	h := defaultHighlighter(t)

	tags := NewTagSet()
	require.NoError(t, h.Run("28318530", 0, 8, tags))

	assert.True(t, tags.Has(0, types.Odd))
	assert.True(t, tags.Has(2, types.Even))
	assert.True(t, tags.Has(5, types.Odd))
	assert.False(t, tags.Has(2, types.Odd))
	assert.Equal(t, 8, tags.Len())
}

func TestLiteralsReportsMatches(t *testing.T) {
	h := defaultHighlighter(t)

	text := "28318530 and 0x1921FB5"
	var kinds []types.Kind
	err := h.Literals(text, 0, len([]rune(text)), func(m types.Match, spans []types.Group) error {
		kinds = append(kinds, m.Kind)
		assert.NotEmpty(t, spans)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []types.Kind{types.KindDecimal, types.KindHexOrFloat}, kinds)
}

// Two passes over the same unchanged text must produce the identical
// span sequence: a pass is a pure function of its input.
func TestHighlightIdempotent(t *testing.T) {
	h := defaultHighlighter(t)

	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringMatching(`[0-9a-fA-FxX#.+\-Tp ]{0,40}`).Draw(rt, "text")
		limit := len([]rune(text))

		first, err := h.Spans(text, 0, limit)
		require.NoError(rt, err)
		second, err := h.Spans(text, 0, limit)
		require.NoError(rt, err)
		require.Equal(rt, first, second)
	})
}

// Emitted spans never overlap and always advance.
func TestSpansAreOrderedAndDisjoint(t *testing.T) {
	h := defaultHighlighter(t)

	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.StringMatching(`[0-9a-f .xT#]{0,60}`).Draw(rt, "text")
		spans, err := h.Spans(text, 0, len([]rune(text)))
		require.NoError(rt, err)

		for i := 1; i < len(spans); i++ {
			require.GreaterOrEqual(rt, spans[i].Start, spans[i-1].End,
				"spans must be disjoint and in document order")
		}
	})
}
