package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindRoundTrip(t *testing.T) {
	kinds := []Kind{
		KindTimestamp, KindHexPrefixed, KindHexOrFloat, KindBinary,
		KindUnprefixedHex, KindDecimal, KindBareFraction,
	}
	for _, k := range kinds {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := ParseKind("nonsense")
	assert.Error(t, err)
}

func TestMatchDateFields(t *testing.T) {
	m := Match{
		Kind:     KindTimestamp,
		DateTime: Span{Start: 10, End: 23},
	}
	assert.Equal(t, Span{Start: 10, End: 14}, m.Year())
	assert.Equal(t, Span{Start: 14, End: 16}, m.Month())
	assert.Equal(t, Span{Start: 16, End: 18}, m.Day())
}
