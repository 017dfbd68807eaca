package mbti

import "sort"

// Axis identifies one of the four dichotomies, in type-code position order.
type Axis int

const (
	AxisAttitude Axis = iota
	AxisPerceiving
	AxisJudging
	AxisOrientation
)

// Axes lists the dichotomies in the order their letters appear in a code.
var Axes = [4]Axis{AxisAttitude, AxisPerceiving, AxisJudging, AxisOrientation}

func (a Axis) String() string {
	switch a {
	case AxisAttitude:
		return "attitude"
	case AxisPerceiving:
		return "perceiving"
	case AxisJudging:
		return "judging"
	case AxisOrientation:
		return "orientation"
	default:
		return "unknown"
	}
}

// members returns the two attributes of an axis. The first is active on a
// freshly constructed dichotomy.
func (a Axis) members() [2]Attribute {
	switch a {
	case AxisAttitude:
		return [2]Attribute{NewAttribute("introversion", "i"), NewAttribute("extraversion", "e")}
	case AxisPerceiving:
		return [2]Attribute{NewAttribute("intuition", "n"), NewAttribute("sensing", "s")}
	case AxisJudging:
		return [2]Attribute{NewAttribute("thinking", "t"), NewAttribute("feeling", "f")}
	case AxisOrientation:
		return [2]Attribute{NewAttribute("judging", "j"), NewAttribute("perceiving", "p")}
	}
	panic("mbti: unknown axis")
}

// Dichotomy is a pair of mutually exclusive attributes, exactly one of
// which is active at any time.
type Dichotomy struct {
	axis    Axis
	members [2]Attribute
	active  int // index into members
}

// NewDichotomy returns a dichotomy for axis with its default side active.
// Each call allocates a fresh value; nothing is shared between callers.
func NewDichotomy(axis Axis) *Dichotomy {
	return &Dichotomy{axis: axis, members: axis.members()}
}

// Axis returns which dichotomy this is.
func (d *Dichotomy) Axis() Axis { return d.axis }

// Active returns the currently active attribute.
func (d *Dichotomy) Active() Attribute { return d.members[d.active] }

// Inactive returns the currently inactive attribute.
func (d *Dichotomy) Inactive() Attribute { return d.members[1-d.active] }

// Members returns both attributes in declaration order, independent of
// which one is active.
func (d *Dichotomy) Members() [2]Attribute { return d.members }

// Abbreviations returns both abbreviations ordered by full name.
func (d *Dichotomy) Abbreviations() [2]string {
	m := []Attribute{d.members[0], d.members[1]}
	sort.Slice(m, func(i, j int) bool { return m[i].Name() < m[j].Name() })
	return [2]string{m[0].Abbrev(), m[1].Abbrev()}
}

// HasAbbrev reports whether s is the abbreviation of either member.
func (d *Dichotomy) HasAbbrev(s string) bool {
	for _, abbrev := range d.Abbreviations() {
		if abbrev != "" && abbrev == s {
			return true
		}
	}
	return false
}

// Activate makes the attribute matching query the active one.
// It returns true when that attribute was already active and false when
// the dichotomy had to toggle.
func (d *Dichotomy) Activate(query string) (alreadyActive bool, err error) {
	switch {
	case d.Inactive().Match(query):
		d.Toggle()
		return false, nil
	case d.Active().Match(query):
		return true, nil
	default:
		return false, &InvalidAttributeError{Axis: d.axis, Query: query}
	}
}

// Toggle swaps the active and inactive attributes.
func (d *Dichotomy) Toggle() {
	d.active = 1 - d.active
}

// OppositeOf returns the member that is not a.
func (d *Dichotomy) OppositeOf(a Attribute) (Attribute, error) {
	switch a {
	case d.members[0]:
		return d.members[1], nil
	case d.members[1]:
		return d.members[0], nil
	}
	return Attribute{}, &NotAMemberError{Axis: d.axis, Attribute: a}
}

// Opposite is OppositeOf for a query given by full name or abbreviation.
func (d *Dichotomy) Opposite(query string) (Attribute, error) {
	for i, m := range d.members {
		if m.Match(query) {
			return d.members[1-i], nil
		}
	}
	return Attribute{}, &NotAMemberError{Axis: d.axis, Attribute: NewAttribute(query, "")}
}

// clone returns an independent copy.
func (d *Dichotomy) clone() *Dichotomy {
	c := *d
	return &c
}
