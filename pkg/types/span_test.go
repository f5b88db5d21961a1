package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpan(t *testing.T) {
	s := Span{Start: 3, End: 8}
	assert.Equal(t, 5, s.Len())
	assert.False(t, s.Empty())

	assert.True(t, Span{}.Empty())
	assert.True(t, Span{Start: 4, End: 4}.Empty())
}

func TestParity(t *testing.T) {
	assert.Equal(t, Even, Odd.Flip())
	assert.Equal(t, Odd, Even.Flip())
	assert.Equal(t, "odd", Odd.String())
	assert.Equal(t, "even", Even.String())
}

func TestGroupString(t *testing.T) {
	g := Group{Span: Span{Start: 2, End: 5}, Parity: Even}
	assert.Equal(t, "[2,5)even", g.String())
}
