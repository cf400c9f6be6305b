package membership

// Pi is a smooth hill: an S rise over [a, m] glued to a Z fall over [m, b],
// peaking at y_max exactly at the split point m.
//
// Pi carries no formulas of its own. It holds an inner S over [a, m] and an
// inner Z over [m, b] (same membership range) and case-splits at m:
//
//	x <= m → S(a, m).Evaluate(x)
//	x > m  → Z(m, b).Evaluate(x)
//
// Its piecewise table is the concatenation of the two inner tables with
// guards clamped to x <= m and x > m respectively, so any correction to the
// S formula propagates here (and through Z) automatically.
type Pi struct {
	a, m, b float64
	rise    *S
	fall    *Z
	def     Definition
}

// NewPi builds a Pi membership function peaking at m.
// Fails fast with ErrInvalidRange or ErrInvalidShape; the ordering
// a < m < b is checked here so violations are reported against the Pi
// parameter names, not the inner shapes'.
func NewPi(a, m, b float64, opts ...Option) (*Pi, error) {
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

	rangeOpts := []Option{WithYMin(cfg.yMin), WithYMax(cfg.yMax)}
	rise, err := NewS(a, m, rangeOpts...)
	if err != nil {
		return nil, err
	}
	fall, err := NewZ(m, b, rangeOpts...)
	if err != nil {
		return nil, err
	}

	def := concat("Pi",
		rise.Definition().restrict("Pi", upTo(m, true)),
		fall.Definition().restrict("Pi", from(m, false)),
	)

	return &Pi{a: a, m: m, b: b, rise: rise, fall: fall, def: def}, nil
}

// Name reports "Pi".
func (p *Pi) Name() string { return "Pi" }

// Evaluate case-splits at m and delegates to the inner S or Z.
func (p *Pi) Evaluate(x float64) float64 {
	if x <= p.m {
		return p.rise.Evaluate(x)
	}

	return p.fall.Evaluate(x)
}

// Definition returns the glued piecewise table of the inner S and Z.
func (p *Pi) Definition() Definition { return p.def }

// Breakpoints lists a, m and b in ascending order.
func (p *Pi) Breakpoints() []Breakpoint {
	return []Breakpoint{
		{Name: "a", Value: p.a},
		{Name: "m", Value: p.m},
		{Name: "b", Value: p.b},
	}
}

// A returns the lower breakpoint.
func (p *Pi) A() float64 { return p.a }

// M returns the peak position.
func (p *Pi) M() float64 { return p.m }

// B returns the upper breakpoint.
func (p *Pi) B() float64 { return p.b }

// YMin returns the lower membership bound.
func (p *Pi) YMin() float64 { return p.rise.YMin() }

// YMax returns the upper membership bound.
func (p *Pi) YMax() float64 { return p.rise.YMax() }

// WithRange returns a new Pi over the same breakpoints with the given
// membership range; the receiver is untouched.
func (p *Pi) WithRange(yMin, yMax float64) (Function, error) {
	return NewPi(p.a, p.m, p.b, WithYMin(yMin), WithYMax(yMax))
}
