package mbti

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/mbti/errors"
)

func TestProfileValidate(t *testing.T) {
	p, err := NewProfile("")
	require.NoError(t, err)

	for _, code := range AllCodes() {
		assert.True(t, p.Validate(code), code)
	}

	for _, code := range []string{"", "int", "intpx", "abcd", "nitp", "INTP", "ixtp", "inxp", "intx", "eeee"} {
		assert.False(t, p.Validate(code), code)
	}
	assert.Equal(t, StateUninitialized, p.State(), "Validate must not mutate")
}

func TestProfileCheckReportsPosition(t *testing.T) {
	p, _ := NewProfile("")

	tests := []struct {
		code     string
		position int
		char     string
	}{
		{"int", 0, ""},
		{"intpp", 0, ""},
		{"abcd", 1, "a"},
		{"ixtp", 2, "x"},
		{"inxp", 3, "x"},
		{"intx", 4, "x"},
		{"nitp", 1, "n"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := p.Check(tt.code)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTypeCode))

			var codeErr *InvalidTypeCodeError
			require.True(t, errors.As(err, &codeErr))
			assert.Equal(t, tt.position, codeErr.Position)
			assert.Equal(t, tt.char, codeErr.Char)
			assert.Equal(t, tt.code, codeErr.Code)
		})
	}
}

func TestProfileCheckCountsRunes(t *testing.T) {
	p, _ := NewProfile("")

	// four bytes but three letters
	err := p.Check("éti")
	var codeErr *InvalidTypeCodeError
	require.True(t, errors.As(err, &codeErr))
	assert.Equal(t, 0, codeErr.Position)
	assert.Contains(t, codeErr.Reason, "got 3")
}

func TestNewProfileActivates(t *testing.T) {
	p, err := NewProfile("INTP")
	require.NoError(t, err)

	assert.Equal(t, StateActive, p.State())
	assert.Equal(t, "intp", p.Code())
	assert.Equal(t, Attributes{
		Attitude:    "introversion",
		Perceiving:  "intuition",
		Judging:     "thinking",
		Orientation: "perceiving",
	}, p.Attributes())

	stack, ok := p.Stack()
	require.True(t, ok)
	assert.Equal(t, Stack{"ni", "te", "fi", "se", "ne", "ti", "fe", "si"}, stack)
}

func TestNewProfileRejectsInvalid(t *testing.T) {
	p, err := NewProfile("xyz")
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, ErrInvalidTypeCode))
}

func TestProfileEmptyIsInert(t *testing.T) {
	p, err := NewProfile("")
	require.NoError(t, err)

	assert.Equal(t, StateUninitialized, p.State())
	assert.Equal(t, "", p.Code())
	_, ok := p.Stack()
	assert.False(t, ok)
	assert.Equal(t, "<no type>", p.String())
}

func TestProfileSetCodeIsFailAtomic(t *testing.T) {
	p, err := NewProfile("esfp")
	require.NoError(t, err)
	before, _ := p.Stack()
	attrsBefore := p.Attributes()

	for _, bad := range []string{"abcd", "int", "intx", "esfpp"} {
		err := p.SetCode(bad)
		require.Error(t, err, bad)
		assert.True(t, errors.Is(err, ErrInvalidTypeCode), bad)

		after, ok := p.Stack()
		require.True(t, ok)
		assert.Equal(t, before, after, bad)
		assert.Equal(t, "esfp", p.Code(), bad)
		assert.Equal(t, attrsBefore, p.Attributes(), bad)
	}
}

func TestProfileStateTransitions(t *testing.T) {
	p, _ := NewProfile("")
	require.Equal(t, StateUninitialized, p.State())

	// invalid from uninitialized stays uninitialized
	require.Error(t, p.SetCode("zzzz"))
	assert.Equal(t, StateUninitialized, p.State())
	assert.Equal(t, "", p.Code())

	require.NoError(t, p.SetCode(" ENTJ "))
	assert.Equal(t, StateActive, p.State())
	assert.Equal(t, "entj", p.Code())

	// active to active with a new code
	require.NoError(t, p.SetCode("isfj"))
	stack, _ := p.Stack()
	assert.Equal(t, "fi", stack.Dominant(), "j puts the judging function first")

	require.NoError(t, p.SetCode("isfp"))
	stack, _ = p.Stack()
	assert.Equal(t, "si", stack.Dominant(), "p puts the perceiving function first")

	require.NoError(t, p.SetCode(""))
	assert.Equal(t, StateUninitialized, p.State())
	_, ok := p.Stack()
	assert.False(t, ok)
}

func TestProfilesDoNotShareDichotomies(t *testing.T) {
	a, err := NewProfile("estj")
	require.NoError(t, err)
	b, err := NewProfile("infp")
	require.NoError(t, err)

	assert.Equal(t, "extraversion", a.Attributes().Attitude)
	assert.Equal(t, "introversion", b.Attributes().Attitude)
	assert.NotSame(t, a.Dichotomy(AxisAttitude), b.Dichotomy(AxisAttitude))
}

func TestProfileString(t *testing.T) {
	p, err := NewProfile("intp")
	require.NoError(t, err)

	want := "INTP -> introversion, intuition, thinking, perceiving\n" +
		"stack:  ni te fi se\n" +
		"shadow: ne ti fe si"
	assert.Equal(t, want, p.String())
}
