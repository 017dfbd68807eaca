package mbti

import (
	"fmt"
	"strings"

	"github.com/teranos/mbti/errors"
)

// CodeLength is the number of letters in a type code, one per dichotomy.
const CodeLength = 4

// State is the lifecycle state of a Profile.
type State int

const (
	// StateUninitialized means no code is set and no stack is derived
	StateUninitialized State = iota
	// StateActive means the code was validated, dichotomies activated and the stack derived
	StateActive
)

func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "uninitialized"
}

// Attributes holds the full names of the active attribute of each dichotomy.
type Attributes struct {
	Attitude    string `json:"attitude"`
	Perceiving  string `json:"perceiving"`
	Judging     string `json:"judging"`
	Orientation string `json:"orientation"`
}

// Profile is a type code together with its four dichotomies and derived stack.
// A Profile is not safe for concurrent use; build one per caller.
type Profile struct {
	code        string
	attitude    *Dichotomy
	perceiving  *Dichotomy
	judging     *Dichotomy
	orientation *Dichotomy
	stack       *Stack
}

// NewProfile builds a profile with its own set of dichotomies. An empty code
// yields an uninitialized profile with no stack.
func NewProfile(code string) (*Profile, error) {
	p := &Profile{
		attitude:    NewDichotomy(AxisAttitude),
		perceiving:  NewDichotomy(AxisPerceiving),
		judging:     NewDichotomy(AxisJudging),
		orientation: NewDichotomy(AxisOrientation),
	}
	if code == "" {
		return p, nil
	}
	if err := p.SetCode(code); err != nil {
		return nil, err
	}
	return p, nil
}

// dichotomies returns the dichotomies in code position order.
func (p *Profile) dichotomies() [CodeLength]*Dichotomy {
	return [CodeLength]*Dichotomy{p.attitude, p.perceiving, p.judging, p.orientation}
}

// Dichotomy returns the profile's dichotomy for axis.
func (p *Profile) Dichotomy(axis Axis) *Dichotomy {
	return p.dichotomies()[axis]
}

// Validate reports whether code is a valid type code. Matching is exact;
// callers wanting case-insensitivity should Normalize first.
func (p *Profile) Validate(code string) bool {
	return p.Check(code) == nil
}

// Check is Validate with a diagnostic: it returns an *InvalidTypeCodeError
// naming the first offending position.
func (p *Profile) Check(code string) error {
	letters := []rune(code)
	if len(letters) != CodeLength {
		return &InvalidTypeCodeError{
			Code:   code,
			Reason: fmt.Sprintf("must be %d letters, got %d", CodeLength, len(letters)),
		}
	}
	for i, d := range p.dichotomies() {
		ch := string(letters[i])
		if !d.HasAbbrev(ch) {
			abbrevs := d.Abbreviations()
			return &InvalidTypeCodeError{
				Code:     code,
				Position: i + 1,
				Char:     ch,
				Reason:   fmt.Sprintf("is not a valid %s letter (%s)", d.Axis(), strings.Join(abbrevs[:], "/")),
			}
		}
	}
	return nil
}

// Activate validates code and, only if it is valid, activates each
// dichotomy with the matching letter, records the code and derives the
// stack. An invalid code leaves the profile untouched.
func (p *Profile) Activate(code string) error {
	if err := p.Check(code); err != nil {
		return err
	}

	// Activate copies and swap them in once all four succeed.
	next := p.dichotomies()
	for i, d := range next {
		next[i] = d.clone()
		if _, err := next[i].Activate(code[i : i+1]); err != nil {
			return errors.NewAssertionErrorWithWrappedErrf(err, "validated code %q failed to activate", code)
		}
	}
	p.attitude, p.perceiving, p.judging, p.orientation = next[0], next[1], next[2], next[3]

	stack := p.GenerateStack()
	p.code = code
	p.stack = &stack
	return nil
}

// SetCode replaces the profile's code. The code is normalized first. An
// empty code resets the profile; an invalid one returns an error and keeps
// the previous code and stack.
func (p *Profile) SetCode(code string) error {
	code = Normalize(code)
	if code == "" {
		p.code = ""
		p.stack = nil
		return nil
	}
	return p.Activate(code)
}

// GenerateStack derives the stack from the current dichotomies.
func (p *Profile) GenerateStack() Stack {
	return GenerateStack(p.attitude, p.perceiving, p.judging, p.orientation)
}

// Code returns the active code, or "" when uninitialized.
func (p *Profile) Code() string { return p.code }

// Stack returns the derived stack; ok is false when no code is set.
func (p *Profile) Stack() (stack Stack, ok bool) {
	if p.stack == nil {
		return Stack{}, false
	}
	return *p.stack, true
}

// State returns the lifecycle state.
func (p *Profile) State() State {
	if p.stack == nil {
		return StateUninitialized
	}
	return StateActive
}

// Attributes returns the active attribute names.
func (p *Profile) Attributes() Attributes {
	return Attributes{
		Attitude:    p.attitude.Active().Name(),
		Perceiving:  p.perceiving.Active().Name(),
		Judging:     p.judging.Active().Name(),
		Orientation: p.orientation.Active().Name(),
	}
}

// String formats the profile for display:
//
//	INTP -> introversion, intuition, thinking, perceiving
//	stack:  ni te fi se
//	shadow: ne ti fe si
func (p *Profile) String() string {
	if p.stack == nil {
		return "<no type>"
	}
	a := p.Attributes()
	var b strings.Builder
	fmt.Fprintf(&b, "%s -> %s, %s, %s, %s\n", strings.ToUpper(p.code), a.Attitude, a.Perceiving, a.Judging, a.Orientation)
	fmt.Fprintf(&b, "stack:  %s\n", strings.Join(p.stack.Primary(), " "))
	fmt.Fprintf(&b, "shadow: %s", strings.Join(p.stack.Shadow(), " "))
	return b.String()
}
