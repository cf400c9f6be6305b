package membership

// Trapezoid rises from y_min at a to a y_max plateau on [m1, m2], then
// falls back to y_min at b.
//
//	x <= a or x >= b → y_min
//	m1 < x < m2      → y_max (the plateau)
//	a < x <= m1      → y_min + (y_max - y_min)/(m1 - a) * (x - a)
//	m2 <= x < b      → y_max - (y_max - y_min)/(b - m2) * (x - m2)
//
// Ordering invariant: a < m1 <= m2 < b. With m1 == m2 the plateau collapses
// to a single point and the shape degenerates into a Triangle.
type Trapezoid struct {
	a, m1, m2, b float64
	yMin, yMax   float64
	def          Definition
}

// NewTrapezoid builds a Trapezoid membership function with plateau [m1, m2].
// Fails fast with ErrInvalidRange or ErrInvalidShape.
func NewTrapezoid(a, m1, m2, b float64, opts ...Option) (*Trapezoid, error) {
	cfg, err := resolveRange(opts)
	if err != nil {
		return nil, err
	}
	bps := []Breakpoint{
		{Name: "a", Value: a},
		{Name: "m1", Value: m1},
		{Name: "m2", Value: m2},
		{Name: "b", Value: b},
	}
	if err = validateBreakpoints(bps); err != nil {
		return nil, err
	}
	if err = validateLess("a", a, "m1", m1); err != nil {
		return nil, err
	}
	if err = validateLessEq("m1", m1, "m2", m2); err != nil {
		return nil, err
	}
	if err = validateLess("m2", m2, "b", b); err != nil {
		return nil, err
	}

	return &Trapezoid{
		a:    a,
		m1:   m1,
		m2:   m2,
		b:    b,
		yMin: cfg.yMin,
		yMax: cfg.yMax,
		def:  trapezoidDefinition(a, m1, m2, b, cfg.yMin, cfg.yMax),
	}, nil
}

// trapezoidDefinition declares the piecewise table with parameters substituted.
func trapezoidDefinition(a, m1, m2, b, yMin, yMax float64) Definition {
	rise := Add{
		Num(yMin),
		Mul{
			Div{Sub{Num(yMax), Num(yMin)}, Sub{Num(m1), Num(a)}},
			Sub{X{}, Num(a)},
		},
	}
	fall := Sub{
		Num(yMax),
		Mul{
			Div{Sub{Num(yMax), Num(yMin)}, Sub{Num(b), Num(m2)}},
			Sub{X{}, Num(m2)},
		},
	}

	return Definition{
		Shape: "Trapezoid",
		Branches: []Branch{
			{Guard: guardOf(upTo(a, true), from(b, true)), Expr: Num(yMin)},
			{Guard: guardOf(between(m1, false, m2, false)), Expr: Num(yMax)},
			{Guard: guardOf(between(a, false, m1, true)), Expr: rise},
			{Guard: guardOf(between(m2, true, b, false)), Expr: fall},
		},
	}
}

// Name reports "Trapezoid".
func (t *Trapezoid) Name() string { return "Trapezoid" }

// Evaluate maps x to its membership grade by walking the piecewise table.
func (t *Trapezoid) Evaluate(x float64) float64 { return t.def.Evaluate(x) }

// Definition returns the declarative piecewise table of the instance.
func (t *Trapezoid) Definition() Definition { return t.def }

// Breakpoints lists a, m1, m2 and b in ascending order.
func (t *Trapezoid) Breakpoints() []Breakpoint {
	return []Breakpoint{
		{Name: "a", Value: t.a},
		{Name: "m1", Value: t.m1},
		{Name: "m2", Value: t.m2},
		{Name: "b", Value: t.b},
	}
}

// A returns the lower breakpoint.
func (t *Trapezoid) A() float64 { return t.a }

// M1 returns the plateau start.
func (t *Trapezoid) M1() float64 { return t.m1 }

// M2 returns the plateau end.
func (t *Trapezoid) M2() float64 { return t.m2 }

// B returns the upper breakpoint.
func (t *Trapezoid) B() float64 { return t.b }

// YMin returns the lower membership bound.
func (t *Trapezoid) YMin() float64 { return t.yMin }

// YMax returns the upper membership bound.
func (t *Trapezoid) YMax() float64 { return t.yMax }

// WithRange returns a new Trapezoid over the same breakpoints with the
// given membership range; the receiver is untouched.
func (t *Trapezoid) WithRange(yMin, yMax float64) (Function, error) {
	return NewTrapezoid(t.a, t.m1, t.m2, t.b, WithYMin(yMin), WithYMax(yMax))
}
