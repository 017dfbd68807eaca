package mbti

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/mbti/errors"
)

func TestAttributeMatch(t *testing.T) {
	withAbbrev := NewAttribute("intuition", "n")
	bare := NewAttribute("intuition", "")

	tests := []struct {
		name  string
		attr  Attribute
		query string
		want  bool
	}{
		{"full name", withAbbrev, "intuition", true},
		{"abbreviation", withAbbrev, "n", true},
		{"other letter", withAbbrev, "s", false},
		{"case sensitive", withAbbrev, "N", false},
		{"no abbrev full name", bare, "intuition", true},
		{"no abbrev never matches empty", bare, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.attr.Match(tt.query))
		})
	}
}

func TestDichotomyAbbreviationsSortedByName(t *testing.T) {
	tests := []struct {
		axis Axis
		want [2]string
	}{
		{AxisAttitude, [2]string{"e", "i"}},    // extraversion < introversion
		{AxisPerceiving, [2]string{"n", "s"}},  // intuition < sensing
		{AxisJudging, [2]string{"f", "t"}},     // feeling < thinking
		{AxisOrientation, [2]string{"j", "p"}}, // judging < perceiving
	}

	for _, tt := range tests {
		t.Run(tt.axis.String(), func(t *testing.T) {
			d := NewDichotomy(tt.axis)
			assert.Equal(t, tt.want, d.Abbreviations())

			// order does not depend on which side is active
			d.Toggle()
			assert.Equal(t, tt.want, d.Abbreviations())
		})
	}
}

func TestDichotomyActivate(t *testing.T) {
	d := NewDichotomy(AxisJudging)
	require.Equal(t, "thinking", d.Active().Name())

	already, err := d.Activate("t")
	require.NoError(t, err)
	assert.True(t, already, "activating the active side reports no change")
	assert.Equal(t, "thinking", d.Active().Name())

	already, err = d.Activate("feeling")
	require.NoError(t, err)
	assert.False(t, already, "activating the inactive side toggles")
	assert.Equal(t, "feeling", d.Active().Name())
	assert.Equal(t, "thinking", d.Inactive().Name())

	_, err = d.Activate("n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidAttribute))
	var attrErr *InvalidAttributeError
	require.True(t, errors.As(err, &attrErr))
	assert.Equal(t, AxisJudging, attrErr.Axis)
	assert.Equal(t, "n", attrErr.Query)
	assert.Equal(t, "feeling", d.Active().Name(), "failed activation must not mutate")
}

func TestDichotomyToggle(t *testing.T) {
	d := NewDichotomy(AxisAttitude)
	active, inactive := d.Active(), d.Inactive()

	d.Toggle()
	assert.Equal(t, inactive, d.Active())
	assert.Equal(t, active, d.Inactive())

	d.Toggle()
	assert.Equal(t, active, d.Active())
	assert.NotEqual(t, d.Active(), d.Inactive())
}

func TestDichotomyOppositeOf(t *testing.T) {
	d := NewDichotomy(AxisPerceiving)
	members := d.Members()

	got, err := d.OppositeOf(members[0])
	require.NoError(t, err)
	assert.Equal(t, "sensing", got.Name())

	got, err = d.OppositeOf(members[1])
	require.NoError(t, err)
	assert.Equal(t, "intuition", got.Name())

	_, err = d.OppositeOf(NewAttribute("thinking", "t"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotAMember))
	assert.Contains(t, err.Error(), "perceiving")
}

func TestDichotomyOppositeByQuery(t *testing.T) {
	d := NewDichotomy(AxisJudging)

	for query, want := range map[string]string{
		"t":        "feeling",
		"thinking": "feeling",
		"f":        "thinking",
		"feeling":  "thinking",
	} {
		got, err := d.Opposite(query)
		require.NoError(t, err, query)
		assert.Equal(t, want, got.Name(), query)
	}

	_, err := d.Opposite("intuition")
	assert.True(t, errors.Is(err, ErrNotAMember))
}

func TestNewDichotomyDoesNotShareState(t *testing.T) {
	a := NewDichotomy(AxisOrientation)
	b := NewDichotomy(AxisOrientation)

	a.Toggle()
	assert.Equal(t, "perceiving", a.Active().Name())
	assert.Equal(t, "judging", b.Active().Name())
}
