package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// FieldState tells whether a labeled field was found and well-formed.
type FieldState int

const (
	Missing FieldState = iota
	Parsed
	Malformed
)

func (s FieldState) String() string {
	switch s {
	case Parsed:
		return "parsed"
	case Malformed:
		return "malformed"
	default:
		return "missing"
	}
}

// Field is the result of looking up one label inside a block.
type Field[T any] struct {
	State FieldState
	Value T
	Raw   string
}

func (f Field[T]) OK() bool { return f.State == Parsed }

// labelPattern matches "<label>: <rest of line>" anywhere in a block.
func labelPattern(label string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(label) + `:[ \t]*(.*)`)
}

// textField extracts a single-line text value. An empty value counts as Missing.
func textField(re *regexp.Regexp, block string) Field[string] {
	m := re.FindStringSubmatch(block)
	if m == nil {
		return Field[string]{State: Missing}
	}
	v := strings.TrimSpace(m[1])
	if v == "" {
		return Field[string]{State: Missing, Raw: m[1]}
	}
	return Field[string]{State: Parsed, Value: v, Raw: m[1]}
}

var (
	correctValue   = regexp.MustCompile(`^([1-4])(?:\D|$)`)
	timeLimitValue = regexp.MustCompile(`^(\d+)`)
)

// intField extracts an integer whose leading characters must match valueRe.
func intField(re, valueRe *regexp.Regexp, block string) Field[int] {
	m := re.FindStringSubmatch(block)
	if m == nil {
		return Field[int]{State: Missing}
	}
	raw := strings.TrimSpace(m[1])
	if raw == "" {
		return Field[int]{State: Missing, Raw: m[1]}
	}
	vm := valueRe.FindStringSubmatch(raw)
	if vm == nil {
		return Field[int]{State: Malformed, Raw: raw}
	}
	n, err := strconv.Atoi(vm[1])
	if err != nil {
		return Field[int]{State: Malformed, Raw: raw}
	}
	return Field[int]{State: Parsed, Value: n, Raw: raw}
}
