// Package membership: shared contract, options and defaults.
package membership

const (
	// DefaultYMin is the membership grade outside the support of a shape.
	DefaultYMin = 0.0
	// DefaultYMax is the full-membership grade at the core of a shape.
	DefaultYMax = 1.0
)

// Function is the shared capability of every membership-function shape.
//
// Implementations are immutable value types: all parameters are validated
// once, at construction, and never change afterwards. Evaluate and
// Definition are pure; concurrent readers need no synchronization.
type Function interface {
	// Name reports the shape name ("Linear", "Triangle", "Trapezoid",
	// "S", "Z", "Pi").
	Name() string

	// Evaluate maps x to its degree of membership in [YMin, YMax].
	// It is total on the real line and never fails for a validly
	// constructed instance.
	Evaluate(x float64) float64

	// Definition returns the declarative piecewise table of the instance:
	// ordered (guard, expression) branches with concrete parameter values
	// substituted. Evaluate consumes the same table, so the two views
	// cannot diverge.
	Definition() Definition

	// Breakpoints lists the named domain breakpoints of the instance
	// (a, b, and any of m/m1/m2 the shape carries) in ascending order,
	// for presentation layers that annotate them.
	Breakpoints() []Breakpoint

	// YMin reports the lower bound of the membership range.
	YMin() float64
	// YMax reports the upper bound of the membership range.
	YMax() float64

	// WithRange returns a NEW instance of the same shape and breakpoints
	// with the given membership range. The receiver is left untouched;
	// invalid bounds yield ErrInvalidRange.
	WithRange(yMin, yMax float64) (Function, error)
}

// Compile-time proof that every shape satisfies the shared capability.
var (
	_ Function = (*Linear)(nil)
	_ Function = (*Triangle)(nil)
	_ Function = (*Trapezoid)(nil)
	_ Function = (*S)(nil)
	_ Function = (*Z)(nil)
	_ Function = (*Pi)(nil)
)

// Breakpoint is a named domain parameter of a shape, exposed so plotting
// and other presentation layers can annotate it.
type Breakpoint struct {
	Name  string  // "a", "m", "m1", "m2" or "b"
	Value float64 // the concrete breakpoint position
}

// Option customizes the membership range of a constructor.
// Applying N options costs O(N) time, O(1) space. Validation happens in
// the constructor, not in the option, so a bad value surfaces as
// ErrInvalidRange rather than a panic.
type Option func(*rangeConfig)

// rangeConfig accumulates the y_min/y_max overrides of a constructor call.
type rangeConfig struct {
	yMin float64
	yMax float64
}

// defaultRange returns the canonical [0,1] membership range.
func defaultRange() rangeConfig {
	return rangeConfig{yMin: DefaultYMin, yMax: DefaultYMax}
}

// WithYMin overrides the lower membership bound (default 0).
// Legal interval: 0 <= v < 1.
func WithYMin(v float64) Option {
	return func(c *rangeConfig) { c.yMin = v }
}

// WithYMax overrides the upper membership bound (default 1).
// Legal interval: 0 < v <= 1.
func WithYMax(v float64) Option {
	return func(c *rangeConfig) { c.yMax = v }
}

// resolveRange applies opts over the defaults and validates the result.
func resolveRange(opts []Option) (rangeConfig, error) {
	cfg := defaultRange()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateRange(cfg.yMin, cfg.yMax); err != nil {
		return rangeConfig{}, err
	}

	return cfg, nil
}
