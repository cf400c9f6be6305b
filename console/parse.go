package console

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/fuzzymf/membership"
)

var (
	// ErrUnknownShape indicates a menu code outside the fixed shape set.
	ErrUnknownShape = errors.New("console: unknown shape code")

	// ErrMalformedInput indicates textual input that does not parse as a
	// number or as a "y_min: v" / "y_max: v" override. It is a prompt-layer
	// error only; the core never sees malformed text.
	ErrMalformedInput = errors.New("console: malformed input")
)

// Shape is one menu entry: its code, display name, required breakpoint
// parameters in prompt order, and a constructor adapter.
type Shape struct {
	Code   string
	Name   string
	Params []string
	New    func(params []float64, opts ...membership.Option) (membership.Function, error)
}

// shapes lists the menu in its fixed order.
var shapes = []Shape{
	{
		Code: "L", Name: "Linear", Params: []string{"a", "b"},
		New: func(p []float64, opts ...membership.Option) (membership.Function, error) {
			return membership.NewLinear(p[0], p[1], opts...)
		},
	},
	{
		Code: "Tri", Name: "Triangle", Params: []string{"a", "m", "b"},
		New: func(p []float64, opts ...membership.Option) (membership.Function, error) {
			return membership.NewTriangle(p[0], p[1], p[2], opts...)
		},
	},
	{
		Code: "Tra", Name: "Trapezoid", Params: []string{"a", "m1", "m2", "b"},
		New: func(p []float64, opts ...membership.Option) (membership.Function, error) {
			return membership.NewTrapezoid(p[0], p[1], p[2], p[3], opts...)
		},
	},
	{
		Code: "S", Name: "S", Params: []string{"a", "b"},
		New: func(p []float64, opts ...membership.Option) (membership.Function, error) {
			return membership.NewS(p[0], p[1], opts...)
		},
	},
	{
		Code: "Z", Name: "Z", Params: []string{"a", "b"},
		New: func(p []float64, opts ...membership.Option) (membership.Function, error) {
			return membership.NewZ(p[0], p[1], opts...)
		},
	},
	{
		Code: "Pi", Name: "Pi", Params: []string{"a", "m", "b"},
		New: func(p []float64, opts ...membership.Option) (membership.Function, error) {
			return membership.NewPi(p[0], p[1], p[2], opts...)
		},
	},
}

// Shapes returns the menu entries in display order.
func Shapes() []Shape {
	out := make([]Shape, len(shapes))
	copy(out, shapes)

	return out
}

// Codes renders the menu line, e.g. "L, Tri, Tra, S, Z, Pi".
func Codes() string {
	parts := make([]string, len(shapes))
	for i, s := range shapes {
		parts[i] = s.Code
	}

	return strings.Join(parts, ", ")
}

// Lookup resolves a menu code (case-insensitive) to its Shape.
func Lookup(code string) (Shape, error) {
	for _, s := range shapes {
		if strings.EqualFold(s.Code, strings.TrimSpace(code)) {
			return s, nil
		}
	}

	return Shape{}, fmt.Errorf("%q: %w", code, ErrUnknownShape)
}

// overrideRe accepts the legacy "key: value" override grammar.
var overrideRe = regexp.MustCompile(`^\s*(y_min|y_max)\s*:\s*([+-]?[0-9]*\.?[0-9]+)\s*$`)

// ParseOverride parses one range-override line ("y_min: 0.2",
// "y_max: 0.69") into a membership.Option. The value's legality is NOT
// checked here — that is the constructor's job; only the textual form is.
func ParseOverride(line string) (membership.Option, error) {
	m := overrideRe.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("%q: %w", line, ErrMalformedInput)
	}
	v, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", line, ErrMalformedInput)
	}
	if m[1] == "y_min" {
		return membership.WithYMin(v), nil
	}

	return membership.WithYMax(v), nil
}

// ParseFloat parses a prompted breakpoint or query value.
func ParseFloat(line string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", line, ErrMalformedInput)
	}

	return v, nil
}
