package mbti

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/mbti/errors"
)

func TestDeriveInvalid(t *testing.T) {
	for _, code := range []string{"abcd", "int", "", "intpx", "i n t"} {
		t.Run(code, func(t *testing.T) {
			res, err := Derive(code)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTypeCode))
			assert.Equal(t, Result{}, res)
		})
	}
}

func TestDeriveNormalizes(t *testing.T) {
	res, err := Derive("  InTp\n")
	require.NoError(t, err)
	assert.Equal(t, "intp", res.Code)
	assert.Equal(t, "INTP", res.Upper())
}

func TestDeriveIsIdempotent(t *testing.T) {
	for _, code := range AllCodes() {
		first, err := Derive(code)
		require.NoError(t, err)
		second, err := Derive(code)
		require.NoError(t, err)
		assert.Equal(t, first, second, code)
	}
}

func TestDeriveSummary(t *testing.T) {
	res := MustDerive("esfp")
	assert.Contains(t, res.Summary, "ESFP -> extraversion, sensing, feeling, perceiving")
	assert.Contains(t, res.Summary, "stack:  se fi te ni")
	assert.Contains(t, res.Summary, "shadow: si fe ti ne")
}

func TestResultPositions(t *testing.T) {
	positions := MustDerive("intp").Positions()
	require.Len(t, positions, StackSize)

	assert.Equal(t, Position{Rank: 1, Role: "dominant", Entry: "ni", Function: "introverted intuition"}, positions[0])
	assert.Equal(t, Position{Rank: 4, Role: "inferior", Entry: "se", Function: "extraverted sensing"}, positions[3])
	assert.Equal(t, Position{Rank: 8, Role: "demon", Entry: "si", Function: "introverted sensing"}, positions[7])
}

func TestAllCodesOrder(t *testing.T) {
	codes := AllCodes()
	assert.Equal(t, "intj", codes[0])
	assert.Equal(t, "intp", codes[1])
	assert.Equal(t, "esfp", codes[15])

	seen := map[string]bool{}
	for _, c := range codes {
		assert.False(t, seen[c], c)
		seen[c] = true
	}
}

func TestMustDerivePanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { MustDerive("nope") })
}
