// Package prefilter provides a cheap candidate gate ahead of the
// literal grammar. Scanning a blob that cannot contain any literal is
// wasted regex work; the gate answers that question with a single
// Aho-Corasick pass.
package prefilter

import "github.com/cloudflare/ahocorasick"

// leadins are substrings at least one of which occurs in every literal
// form: timestamps, decimals, fractions, binary and unprefixed hex all
// contain a decimal digit, 0x hex starts with a digit, and #x hex is
// covered by its prefix.
var leadins = []string{
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"#x", "#X",
}

// Prefilter reports whether content can contain a literal at all.
type Prefilter struct {
	matcher *ahocorasick.Matcher
}

// New builds the gate. The keyword set is static, so one Prefilter can
// serve a whole scan.
func New() *Prefilter {
	return &Prefilter{matcher: ahocorasick.NewStringMatcher(leadins)}
}

// Candidate reports whether content may contain a literal. A false
// result is definitive; a true result only means the full grammar is
// worth running.
func (p *Prefilter) Candidate(content []byte) bool {
	return len(p.matcher.Match(content)) > 0
}
