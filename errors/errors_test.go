package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	original := New("original")
	wrapped := Wrapf(original, "deriving %q", "intp")

	assert.Contains(t, wrapped.Error(), `deriving "intp"`)
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

type codeError struct {
	code string
}

func (e *codeError) Error() string { return "bad code " + e.code }

func TestAsThroughWrap(t *testing.T) {
	wrapped := Wrap(&codeError{code: "abcd"}, "handler")

	var target *codeError
	require.True(t, As(wrapped, &target))
	assert.Equal(t, "abcd", target.code)
}

func TestHint(t *testing.T) {
	assert.Equal(t, "", Hint(New("plain")))

	err := WithHint(New("invalid"), "use four letters")
	err = Wrap(err, "derive")
	assert.Equal(t, "use four letters", Hint(err))
}

func TestSentinelHelpers(t *testing.T) {
	nf := NewNotFoundError("route %s", "/x")
	assert.True(t, IsNotFoundError(nf))
	assert.False(t, IsInvalidRequestError(nf))
	assert.Contains(t, nf.Error(), "route /x")

	bad := NewInvalidRequestError("missing field %q", "code")
	assert.True(t, IsInvalidRequestError(bad))
	assert.False(t, IsNotFoundError(bad))

	assert.False(t, IsNotFoundError(nil))
	assert.False(t, IsInvalidRequestError(nil))
}

func TestAssertionFailure(t *testing.T) {
	err := NewAssertionErrorWithWrappedErrf(New("cause"), "unreachable for %s", "intp")
	assert.True(t, HasAssertionFailure(err))
	assert.False(t, HasAssertionFailure(New("ordinary")))
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")
	assert.Contains(t, fmt.Sprintf("%+v", err), "errors_test.go")
}

func ExampleWithHint() {
	err := WithHint(New("invalid type code"), "codes are four letters: i/e, n/s, t/f, j/p")
	fmt.Println(GetAllHints(err)[0])
	// Output: codes are four letters: i/e, n/s, t/f, j/p
}
