package mbti

import (
	"strings"

	"github.com/teranos/mbti/errors"
)

// StackSize is the number of ranked functions: four primary, four shadow.
const StackSize = 8

// Stack is the ordered function ranking. Each entry is a function letter
// (n, s, t, f) followed by an attitude letter (i, e). Positions are never
// reordered after derivation.
type Stack [StackSize]string

// Primary returns positions 1-4.
func (s Stack) Primary() []string { return append([]string(nil), s[:4]...) }

// Shadow returns positions 5-8.
func (s Stack) Shadow() []string { return append([]string(nil), s[4:]...) }

// Dominant returns the first-ranked function.
func (s Stack) Dominant() string { return s[0] }

// Mode is the outward-expressed mode selected by the orientation dichotomy.
type Mode int

const (
	ModeJudging Mode = iota
	ModePerceiving
)

func (m Mode) String() string {
	if m == ModeJudging {
		return "judging"
	}
	return "perceiving"
}

// orientationMode maps the active orientation (j or p) to the mode it
// expresses outward.
func orientationMode(orientation *Dichotomy) Mode {
	if orientation.Active().Abbrev() == "j" {
		return ModeJudging
	}
	return ModePerceiving
}

// GenerateStack derives the stack from four activated dichotomies.
//
// The dominant (driver) function is the active side of whichever mode the
// orientation selects; the auxiliary (passenger) is the active side of the
// other mode. Tertiary and inferior are the inactive sides of passenger and
// driver respectively. Attitudes alternate starting from the active
// attitude, and the shadow half repeats the same functions with every
// attitude flipped.
func GenerateStack(attitude, perceiving, judging, orientation *Dichotomy) Stack {
	var driver, passenger *Dichotomy
	switch orientationMode(orientation) {
	case ModeJudging:
		driver, passenger = judging, perceiving
	case ModePerceiving:
		driver, passenger = perceiving, judging
	}

	fns := [4]string{
		driver.Active().Abbrev(),
		passenger.Active().Abbrev(),
		passenger.Inactive().Abbrev(),
		driver.Inactive().Abbrev(),
	}
	a, a2 := attitude.Active().Abbrev(), attitude.Inactive().Abbrev()

	var s Stack
	for i, fn := range fns {
		if i%2 == 0 {
			s[i], s[i+4] = fn+a, fn+a2
		} else {
			s[i], s[i+4] = fn+a2, fn+a
		}
	}
	return s
}

// PositionRoles labels the eight stack positions.
var PositionRoles = [StackSize]string{
	"dominant",
	"auxiliary",
	"tertiary",
	"inferior",
	"opposing",
	"critical parent",
	"trickster",
	"demon",
}

// FlipAttitude returns entry with its attitude letter swapped (ni -> ne).
func FlipAttitude(entry string) (string, error) {
	if len(entry) != 2 {
		return "", errors.Newf("stack entry %q must be two letters", entry)
	}
	opposite, err := NewDichotomy(AxisAttitude).Opposite(entry[1:])
	if err != nil {
		return "", err
	}
	return entry[:1] + opposite.Abbrev(), nil
}

// DescribeFunction expands a stack entry, e.g. "ni" -> "introverted intuition".
func DescribeFunction(entry string) (string, error) {
	entry = Normalize(entry)
	if len(entry) != 2 {
		return "", errors.Newf("stack entry %q must be two letters", entry)
	}

	var function string
	for _, axis := range []Axis{AxisPerceiving, AxisJudging} {
		for _, m := range axis.members() {
			if m.Match(entry[:1]) {
				function = m.Name()
			}
		}
	}
	if function == "" {
		return "", errors.Newf("stack entry %q: %q is not a cognitive function", entry, entry[:1])
	}

	var attitude string
	switch entry[1:] {
	case "i":
		attitude = "introverted"
	case "e":
		attitude = "extraverted"
	default:
		return "", errors.Newf("stack entry %q: %q is not an attitude", entry, entry[1:])
	}
	return attitude + " " + function, nil
}

// String renders the stack as "ni te fi se | ne ti fe si".
func (s Stack) String() string {
	return strings.Join(s[:4], " ") + " | " + strings.Join(s[4:], " ")
}
