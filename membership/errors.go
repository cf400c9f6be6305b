// Package membership: sentinel error set.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Constructors attach context via fmt.Errorf("...: %w", ErrX); the
//     sentinel itself is never redefined with parameters baked in.
//   - Evaluation never returns an error: a validly constructed instance is
//     total on the real line. All failures happen at construction time.

package membership

import "errors"

var (
	// ErrInvalidRange indicates a y_min or y_max outside its legal interval:
	// y_min must satisfy 0 <= y_min < 1, y_max must satisfy 0 < y_max <= 1.
	// Usage: if errors.Is(err, ErrInvalidRange) { /* re-prompt the range */ }.
	ErrInvalidRange = errors.New("membership: y_min/y_max out of range")

	// ErrInvalidShape indicates a breakpoint ordering violation (a >= b,
	// m outside (a,b), m1 > m2, ...) or a non-finite breakpoint. A violated
	// ordering would make a ramp denominator zero or negative, so
	// construction rejects it instead of evaluation tolerating it.
	// Usage: if errors.Is(err, ErrInvalidShape) { /* fix the breakpoints */ }.
	ErrInvalidShape = errors.New("membership: breakpoint ordering violated")
)
