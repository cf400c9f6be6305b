package membership

// Triangle rises linearly from y_min at a to its peak y_max at m, then
// falls back to y_min at b.
//
//	x <= a or x >= b → y_min
//	a < x < m        → y_min + (y_max - y_min)/(m - a) * (x - a)
//	m <= x < b       → y_max - (y_max - y_min)/(b - m) * (x - m)
//
// Ordering invariant: a < m < b.
type Triangle struct {
	a, m, b    float64
	yMin, yMax float64
	def        Definition
}

// NewTriangle builds a Triangle membership function peaking at m.
// Fails fast with ErrInvalidRange or ErrInvalidShape.
func NewTriangle(a, m, b float64, opts ...Option) (*Triangle, error) {
	cfg, err := resolveRange(opts)
	if err != nil {
		return nil, err
	}
	bps := []Breakpoint{{Name: "a", Value: a}, {Name: "m", Value: m}, {Name: "b", Value: b}}
	if err = validateBreakpoints(bps); err != nil {
		return nil, err
	}
	if err = validateLess("a", a, "m", m); err != nil {
		return nil, err
	}
	if err = validateLess("m", m, "b", b); err != nil {
		return nil, err
	}

	return &Triangle{
		a:    a,
		m:    m,
		b:    b,
		yMin: cfg.yMin,
		yMax: cfg.yMax,
		def:  triangleDefinition(a, m, b, cfg.yMin, cfg.yMax),
	}, nil
}

// triangleDefinition declares the piecewise table with parameters substituted.
func triangleDefinition(a, m, b, yMin, yMax float64) Definition {
	rise := Add{
		Num(yMin),
		Mul{
			Div{Sub{Num(yMax), Num(yMin)}, Sub{Num(m), Num(a)}},
			Sub{X{}, Num(a)},
		},
	}
	fall := Sub{
		Num(yMax),
		Mul{
			Div{Sub{Num(yMax), Num(yMin)}, Sub{Num(b), Num(m)}},
			Sub{X{}, Num(m)},
		},
	}

	return Definition{
		Shape: "Triangle",
		Branches: []Branch{
			{Guard: guardOf(upTo(a, true), from(b, true)), Expr: Num(yMin)},
			{Guard: guardOf(between(a, false, m, false)), Expr: rise},
			{Guard: guardOf(between(m, true, b, false)), Expr: fall},
		},
	}
}

// Name reports "Triangle".
func (t *Triangle) Name() string { return "Triangle" }

// Evaluate maps x to its membership grade by walking the piecewise table.
func (t *Triangle) Evaluate(x float64) float64 { return t.def.Evaluate(x) }

// Definition returns the declarative piecewise table of the instance.
func (t *Triangle) Definition() Definition { return t.def }

// Breakpoints lists a, m and b in ascending order.
func (t *Triangle) Breakpoints() []Breakpoint {
	return []Breakpoint{
		{Name: "a", Value: t.a},
		{Name: "m", Value: t.m},
		{Name: "b", Value: t.b},
	}
}

// A returns the lower breakpoint.
func (t *Triangle) A() float64 { return t.a }

// M returns the peak position.
func (t *Triangle) M() float64 { return t.m }

// B returns the upper breakpoint.
func (t *Triangle) B() float64 { return t.b }

// YMin returns the lower membership bound.
func (t *Triangle) YMin() float64 { return t.yMin }

// YMax returns the upper membership bound.
func (t *Triangle) YMax() float64 { return t.yMax }

// WithRange returns a new Triangle over the same breakpoints with the given
// membership range; the receiver is untouched.
func (t *Triangle) WithRange(yMin, yMax float64) (Function, error) {
	return NewTriangle(t.a, t.m, t.b, WithYMin(yMin), WithYMax(yMax))
}
