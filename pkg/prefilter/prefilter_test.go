package prefilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidate(t *testing.T) {
	pf := New()

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"decimal", "total: 28318530", true},
		{"hex prefixed without decimal digits", "#xff", true},
		{"bare fraction", "offset .5 applied", true},
		{"letters only", "no numerals in sight", false},
		{"empty", "", false},
		{"punctuation", "---!!!---", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pf.Candidate([]byte(tt.content)))
		})
	}
}
