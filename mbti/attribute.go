// Package mbti models the four type dichotomies and derives the eight-slot
// cognitive function stack implied by a four-letter type code.
//
// Usage:
//
//	res, err := mbti.Derive("INTP")
//	if err != nil {
//	    // err matches mbti.ErrInvalidTypeCode
//	}
//	fmt.Println(res.Stack) // [ni te fi se ne ti fe si]
//
// Every call to Derive builds its own Profile, so results may be handed to
// concurrent request handlers without sharing state.
package mbti

// Attribute is one side of a dichotomy, e.g. "introversion" abbreviated "i".
// Attributes are immutable once constructed.
type Attribute struct {
	name   string
	abbrev string
}

// NewAttribute creates an attribute. abbrev may be empty.
func NewAttribute(name, abbrev string) Attribute {
	return Attribute{name: name, abbrev: abbrev}
}

// Name returns the full name (e.g. "intuition").
func (a Attribute) Name() string { return a.name }

// Abbrev returns the abbreviation, or "" when none was defined.
func (a Attribute) Abbrev() string { return a.abbrev }

// HasAbbrev reports whether the attribute carries an abbreviation.
func (a Attribute) HasAbbrev() bool { return a.abbrev != "" }

// Match reports whether query names this attribute, by full name or by
// abbreviation when one is set.
func (a Attribute) Match(query string) bool {
	if query == a.name {
		return true
	}
	return a.abbrev != "" && query == a.abbrev
}

// String returns the full name.
func (a Attribute) String() string { return a.name }
