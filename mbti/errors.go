package mbti

import (
	"fmt"

	"github.com/teranos/mbti/errors"
)

// Sentinel errors. The typed errors below match these through errors.Is.
var (
	// ErrInvalidTypeCode indicates a code of the wrong length or with a
	// character that does not belong to the dichotomy at its position
	ErrInvalidTypeCode = errors.New("invalid type code")

	// ErrInvalidAttribute indicates a query foreign to a dichotomy
	ErrInvalidAttribute = errors.New("invalid attribute")

	// ErrNotAMember indicates an attribute that belongs to neither side of a dichotomy
	ErrNotAMember = errors.New("not a member")
)

// InvalidTypeCodeError reports why a type code was rejected.
// Position is 1-based; 0 means the code as a whole (wrong length).
type InvalidTypeCodeError struct {
	Code     string
	Position int
	Char     string
	Reason   string
}

func (e *InvalidTypeCodeError) Error() string {
	if e.Position == 0 {
		return fmt.Sprintf("invalid type code %q: %s", e.Code, e.Reason)
	}
	return fmt.Sprintf("invalid type code %q: position %d (%q) %s", e.Code, e.Position, e.Char, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidTypeCode) hold.
func (e *InvalidTypeCodeError) Is(target error) bool {
	return target == ErrInvalidTypeCode
}

// InvalidAttributeError is returned by Dichotomy.Activate for a query that
// matches neither member. Unreachable through Derive.
type InvalidAttributeError struct {
	Axis  Axis
	Query string
}

func (e *InvalidAttributeError) Error() string {
	return fmt.Sprintf("%s dichotomy has no attribute %q", e.Axis, e.Query)
}

func (e *InvalidAttributeError) Is(target error) bool {
	return target == ErrInvalidAttribute
}

// NotAMemberError is returned by Dichotomy.OppositeOf for a foreign attribute.
type NotAMemberError struct {
	Axis      Axis
	Attribute Attribute
}

func (e *NotAMemberError) Error() string {
	return fmt.Sprintf("%q is not a member of the %s dichotomy", e.Attribute.Name(), e.Axis)
}

func (e *NotAMemberError) Is(target error) bool {
	return target == ErrNotAMember
}
