// Package numspan recognizes numeric literals in text and splits long
// digit runs into alternating-style groups so they become visually
// parseable, e.g. 28318530 reads as (28)(318)(530).
//
// The library understands decimal integers, hexadecimal (prefixed and
// word-bounded unprefixed), binary, hex floating point and ISO-8601
// basic timestamps. For every literal it emits half-open
// (start, end, parity) style spans that a host text renderer merges
// into its own annotation store.
//
// # Basic Usage
//
// Create a highlighter and scan a string:
//
//	h, err := numspan.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	spans, err := h.HighlightString("pi*1e7 is 31415926.535897")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, s := range spans {
//	    fmt.Printf("[%d,%d) %s\n", s.Start, s.End, s.Parity)
//	}
//
// # Custom Grouping
//
// Group size and the minimum-length threshold are per-highlighter
// configuration:
//
//	h, err := numspan.New(
//	    numspan.WithGroupSize(4),
//	    numspan.WithThreshold(8),
//	)
//
// # Host Integration
//
// Rendering hosts that keep their own style store pass a StyleSink to
// HighlightRange and merge each span as it is emitted. A highlighter
// holds no state between passes, so hosts may rescan any region at any
// time, including concurrently.
package numspan

import (
	"fmt"
	"os"

	"github.com/numspan/numspan/pkg/highlighter"
	"github.com/numspan/numspan/pkg/types"
)

// Re-export commonly used types for convenience. Users can import just
// "github.com/numspan/numspan" without subpackages.
type (
	// Match is a single recognized literal with its typed sub-spans.
	Match = types.Match

	// Span is a half-open [Start, End) character range.
	Span = types.Span

	// Group is a contiguous digit run assigned one parity.
	Group = types.Group

	// StyleSpan is the (start, end, parity) triple emitted to hosts.
	StyleSpan = types.StyleSpan

	// Parity is one of the two alternating style tags.
	Parity = types.Parity

	// Kind identifies which literal form matched.
	Kind = types.Kind

	// Config carries the grouping knobs.
	Config = types.Config

	// StyleSink receives style spans with merge semantics.
	StyleSink = highlighter.StyleSink

	// MatchFunc receives each literal with its computed style spans.
	MatchFunc = highlighter.MatchFunc
)

// Re-export parity and kind constants.
const (
	Odd  = types.Odd
	Even = types.Even

	KindTimestamp     = types.KindTimestamp
	KindHexPrefixed   = types.KindHexPrefixed
	KindHexOrFloat    = types.KindHexOrFloat
	KindBinary        = types.KindBinary
	KindUnprefixedHex = types.KindUnprefixedHex
	KindDecimal       = types.KindDecimal
	KindBareFraction  = types.KindBareFraction
)

// ErrInvalidConfig reports a rejected configuration value.
var ErrInvalidConfig = types.ErrInvalidConfig

// Highlighter finds literals and computes their digit grouping.
type Highlighter struct {
	hl *highlighter.Highlighter
}

// Option configures a Highlighter.
type Option func(*types.Config)

// WithGroupSize sets the number of digits per decimal group.
// Default is 3.
func WithGroupSize(n int) Option {
	return func(c *types.Config) {
		c.GroupSize = n
	}
}

// WithThreshold sets the minimum digit-run length before grouping
// applies. Default is 5. Runs shorter than the threshold are left
// unstyled; fixed-width date and time fields are always styled.
func WithThreshold(n int) Option {
	return func(c *types.Config) {
		c.Threshold = n
	}
}

// New creates a Highlighter. Configuration is validated here, never
// mid-scan: a constructed Highlighter cannot fail on malformed input,
// only on a regex engine timeout.
func New(opts ...Option) (*Highlighter, error) {
	cfg := types.DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	hl, err := highlighter.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Highlighter{hl: hl}, nil
}

// Config returns the grouping configuration.
func (h *Highlighter) Config() Config { return h.hl.Config() }

// FindNext returns the next literal starting at or after from and
// strictly before limit, without computing any styling.
func (h *Highlighter) FindNext(text string, from, limit int) (Match, bool, error) {
	return h.hl.Matcher().FindNext(text, from, limit)
}

// HighlightString scans all of text and returns the style spans in
// document order.
func (h *Highlighter) HighlightString(text string) ([]StyleSpan, error) {
	return h.hl.Spans(text, 0, len([]rune(text)))
}

// HighlightRange scans [from, limit) of text and merges each style span
// into sink as it is emitted.
func (h *Highlighter) HighlightRange(text string, from, limit int, sink StyleSink) error {
	return h.hl.Run(text, from, limit, sink)
}

// Literals scans [from, limit) of text and reports each literal with
// its computed style spans, in document order.
func (h *Highlighter) Literals(text string, from, limit int, fn MatchFunc) error {
	return h.hl.Literals(text, from, limit, fn)
}

// HighlightFile reads and scans a file.
func (h *Highlighter) HighlightFile(path string) ([]StyleSpan, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return h.HighlightString(string(content))
}
