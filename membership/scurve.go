package membership

// S is the smooth sigmoid rise: two quadratic splines meeting at the
// midpoint (a+b)/2 with matching value and slope (C¹ continuity).
//
//	x <= a              → y_min
//	x > b               → y_max
//	a < x <= (a+b)/2    → y_min + 2*((x - a)/(b - a))^2 * (y_max - y_min)
//	(a+b)/2 < x <= b    → y_min + (1 - 2*((b - x)/(b - a))^2) * (y_max - y_min)
//
// At the midpoint both branches yield y_min + (y_max - y_min)/2, the
// inflection point of the curve. The midpoint belongs to the convex branch.
//
// S is the single source of truth for the smooth shapes: Z is its point
// reflection and Pi glues an S to a Z, both by delegation.
type S struct {
	a, b       float64
	yMin, yMax float64
	def        Definition
}

// NewS builds an S membership function rising over (a, b).
// Fails fast with ErrInvalidRange or ErrInvalidShape.
func NewS(a, b float64, opts ...Option) (*S, error) {
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

	return &S{
		a:    a,
		b:    b,
		yMin: cfg.yMin,
		yMax: cfg.yMax,
		def:  sDefinition(a, b, cfg.yMin, cfg.yMax),
	}, nil
}

// sDefinition declares the piecewise table with parameters substituted.
func sDefinition(a, b, yMin, yMax float64) Definition {
	mid := (a + b) / 2
	span := Sub{Num(yMax), Num(yMin)}

	// Convex half: y_min + 2*((x - a)/(b - a))^2 * (y_max - y_min).
	convex := Add{
		Num(yMin),
		Mul{
			Mul{
				Num(2),
				Pow{Base: Div{Sub{X{}, Num(a)}, Sub{Num(b), Num(a)}}, Exp: 2},
			},
			span,
		},
	}

	// Concave half: y_min + (1 - 2*((b - x)/(b - a))^2) * (y_max - y_min).
	concave := Add{
		Num(yMin),
		Mul{
			Sub{
				Num(1),
				Mul{
					Num(2),
					Pow{Base: Div{Sub{Num(b), X{}}, Sub{Num(b), Num(a)}}, Exp: 2},
				},
			},
			span,
		},
	}

	return Definition{
		Shape: "S",
		Branches: []Branch{
			{Guard: guardOf(upTo(a, true)), Expr: Num(yMin)},
			{Guard: guardOf(from(b, false)), Expr: Num(yMax)},
			{Guard: guardOf(between(a, false, mid, true)), Expr: convex},
			{Guard: guardOf(between(mid, false, b, true)), Expr: concave},
		},
	}
}

// Name reports "S".
func (s *S) Name() string { return "S" }

// Evaluate maps x to its membership grade by walking the piecewise table.
func (s *S) Evaluate(x float64) float64 { return s.def.Evaluate(x) }

// Definition returns the declarative piecewise table of the instance.
func (s *S) Definition() Definition { return s.def }

// Breakpoints lists a and b in ascending order.
func (s *S) Breakpoints() []Breakpoint {
	return []Breakpoint{{Name: "a", Value: s.a}, {Name: "b", Value: s.b}}
}

// A returns the lower breakpoint.
func (s *S) A() float64 { return s.a }

// B returns the upper breakpoint.
func (s *S) B() float64 { return s.b }

// YMin returns the lower membership bound.
func (s *S) YMin() float64 { return s.yMin }

// YMax returns the upper membership bound.
func (s *S) YMax() float64 { return s.yMax }

// WithRange returns a new S over the same breakpoints with the given
// membership range; the receiver is untouched.
func (s *S) WithRange(yMin, yMax float64) (Function, error) {
	return NewS(s.a, s.b, WithYMin(yMin), WithYMax(yMax))
}
