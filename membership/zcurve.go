package membership

// Z is the mirror image of S: a smooth fall from y_max to y_min over (a, b).
//
// Z carries no formulas of its own. It holds an inner S over the same
// (a, b, y_min, y_max) and evaluates
//
//	Z(x) = y_max + y_min - S(x),
//
// a point reflection of S about the horizontal line (y_max + y_min)/2.
// Its piecewise table is the reflection transform of the inner S table,
// so any correction to S's formula propagates here automatically.
type Z struct {
	inner *S
	def   Definition
}

// NewZ builds a Z membership function falling over (a, b).
// Fails fast with ErrInvalidRange or ErrInvalidShape.
func NewZ(a, b float64, opts ...Option) (*Z, error) {
	inner, err := NewS(a, b, opts...)
	if err != nil {
		return nil, err
	}

	return &Z{
		inner: inner,
		def:   inner.Definition().reflect("Z", inner.YMin(), inner.YMax()),
	}, nil
}

// Name reports "Z".
func (z *Z) Name() string { return "Z" }

// Evaluate delegates to the inner S and reflects its value.
func (z *Z) Evaluate(x float64) float64 {
	return z.inner.YMax() + z.inner.YMin() - z.inner.Evaluate(x)
}

// Definition returns the reflected piecewise table of the inner S.
func (z *Z) Definition() Definition { return z.def }

// Breakpoints lists a and b in ascending order.
func (z *Z) Breakpoints() []Breakpoint { return z.inner.Breakpoints() }

// A returns the lower breakpoint.
func (z *Z) A() float64 { return z.inner.A() }

// B returns the upper breakpoint.
func (z *Z) B() float64 { return z.inner.B() }

// YMin returns the lower membership bound.
func (z *Z) YMin() float64 { return z.inner.YMin() }

// YMax returns the upper membership bound.
func (z *Z) YMax() float64 { return z.inner.YMax() }

// WithRange returns a new Z over the same breakpoints with the given
// membership range; the receiver is untouched.
func (z *Z) WithRange(yMin, yMax float64) (Function, error) {
	return NewZ(z.inner.A(), z.inner.B(), WithYMin(yMin), WithYMax(yMax))
}
