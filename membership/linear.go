package membership

// Linear is the simplest membership shape: y_min up to a, a straight ramp
// on (a, b), y_max from b on.
//
//	x <= a      → y_min
//	x >= b      → y_max
//	a < x < b   → y_min + (y_max - y_min)/(b - a) * (x - a)
//
// Immutable after construction; see NewLinear.
type Linear struct {
	a, b       float64
	yMin, yMax float64
	def        Definition
}

// NewLinear builds a Linear membership function over the breakpoints a < b.
// The membership range defaults to [0, 1]; override with WithYMin/WithYMax.
// Fails fast with ErrInvalidRange or ErrInvalidShape.
func NewLinear(a, b float64, opts ...Option) (*Linear, error) {
	cfg, err := resolveRange(opts)
	if err != nil {
		return nil, err
	}
	bps := []Breakpoint{{Name: "a", Value: a}, {Name: "b", Value: b}}
	if err = validateBreakpoints(bps); err != nil {
		return nil, err
	}
	if err = validateLess("a", a, "b", b); err != nil {
		return nil, err
	}

	return &Linear{
		a:    a,
		b:    b,
		yMin: cfg.yMin,
		yMax: cfg.yMax,
		def:  linearDefinition(a, b, cfg.yMin, cfg.yMax),
	}, nil
}

// linearDefinition declares the piecewise table with concrete parameters
// substituted. Both Evaluate and formula derivation consume this table.
func linearDefinition(a, b, yMin, yMax float64) Definition {
	ramp := Add{
		Num(yMin),
		Mul{
			Div{Sub{Num(yMax), Num(yMin)}, Sub{Num(b), Num(a)}},
			Sub{X{}, Num(a)},
		},
	}

	return Definition{
		Shape: "Linear",
		Branches: []Branch{
			{Guard: guardOf(upTo(a, true)), Expr: Num(yMin)},
			{Guard: guardOf(from(b, true)), Expr: Num(yMax)},
			{Guard: guardOf(between(a, false, b, false)), Expr: ramp},
		},
	}
}

// Name reports "Linear".
func (l *Linear) Name() string { return "Linear" }

// Evaluate maps x to its membership grade by walking the piecewise table.
func (l *Linear) Evaluate(x float64) float64 { return l.def.Evaluate(x) }

// Definition returns the declarative piecewise table of the instance.
func (l *Linear) Definition() Definition { return l.def }

// Breakpoints lists a and b in ascending order.
func (l *Linear) Breakpoints() []Breakpoint {
	return []Breakpoint{{Name: "a", Value: l.a}, {Name: "b", Value: l.b}}
}

// A returns the lower breakpoint.
func (l *Linear) A() float64 { return l.a }

// B returns the upper breakpoint.
func (l *Linear) B() float64 { return l.b }

// YMin returns the lower membership bound.
func (l *Linear) YMin() float64 { return l.yMin }

// YMax returns the upper membership bound.
func (l *Linear) YMax() float64 { return l.yMax }

// WithRange returns a new Linear over the same breakpoints with the given
// membership range; the receiver is untouched.
func (l *Linear) WithRange(yMin, yMax float64) (Function, error) {
	return NewLinear(l.a, l.b, WithYMin(yMin), WithYMax(yMax))
}
