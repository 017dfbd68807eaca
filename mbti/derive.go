package mbti

import (
	"fmt"
	"strings"
)

// Result is the read-only outcome of Derive.
type Result struct {
	Code       string     `json:"code"`
	Summary    string     `json:"summary"`
	Stack      Stack      `json:"stack"`
	Attributes Attributes `json:"attributes"`
}

// Position describes one ranked slot of a stack.
type Position struct {
	Rank     int    `json:"rank"`
	Role     string `json:"role"`
	Entry    string `json:"entry"`
	Function string `json:"function"`
}

// Normalize trims surrounding whitespace and lowercases a code.
func Normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// Derive validates code, activates a fresh profile and returns its stack.
// Invalid codes return an *InvalidTypeCodeError; the stack is never empty
// on success.
func Derive(code string) (Result, error) {
	p, err := NewProfile("")
	if err != nil {
		return Result{}, err
	}
	if err := p.Activate(Normalize(code)); err != nil {
		return Result{}, err
	}
	stack, _ := p.Stack()
	return Result{
		Code:       p.Code(),
		Summary:    p.String(),
		Stack:      stack,
		Attributes: p.Attributes(),
	}, nil
}

// Positions pairs every stack entry with its role and full function name.
func (r Result) Positions() []Position {
	out := make([]Position, 0, StackSize)
	for i, entry := range r.Stack {
		name, err := DescribeFunction(entry)
		if err != nil {
			name = entry
		}
		out = append(out, Position{Rank: i + 1, Role: PositionRoles[i], Entry: entry, Function: name})
	}
	return out
}

// Upper returns the code in its conventional upper-case form.
func (r Result) Upper() string { return strings.ToUpper(r.Code) }

// AllCodes lists the sixteen valid codes, varying the last letter fastest.
func AllCodes() []string {
	codes := make([]string, 0, 16)
	var walk func(prefix string, depth int)
	walk = func(prefix string, depth int) {
		if depth == CodeLength {
			codes = append(codes, prefix)
			return
		}
		for _, m := range Axes[depth].members() {
			walk(prefix+m.Abbrev(), depth+1)
		}
	}
	walk("", 0)
	return codes
}

// MustDerive is Derive for codes known to be valid, such as those from AllCodes.
func MustDerive(code string) Result {
	r, err := Derive(code)
	if err != nil {
		panic(fmt.Sprintf("mbti: %v", err))
	}
	return r
}
