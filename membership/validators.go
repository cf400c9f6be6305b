// Package membership: canonical validation checks.
//
// Purpose:
//   - Provide a single source of truth for range and ordering guards.
//   - Keep constructors minimal by delegating every check here.
//   - Return sentinel-wrapped errors so call sites branch with errors.Is.
//
// All checks are pure, deterministic, O(1) and allocation-free on the
// success path.

package membership

import (
	"fmt"
	"math"
)

// validateRange checks both membership bounds independently, exactly as the
// construction contract demands: 0 <= y_min < 1 and 0 < y_max <= 1.
// It deliberately does NOT compare y_min against y_max — a degenerate
// y_min >= y_max is a documented caller obligation, never auto-swapped.
func validateRange(yMin, yMax float64) error {
	if err := validateYMin(yMin); err != nil {
		return err
	}

	return validateYMax(yMax)
}

// validateYMin rejects values outside [0, 1).
func validateYMin(v float64) error {
	if math.IsNaN(v) || v < 0 || v >= 1 {
		return fmt.Errorf("y_min=%v must satisfy 0 <= y_min < 1: %w", v, ErrInvalidRange)
	}

	return nil
}

// validateYMax rejects values outside (0, 1].
func validateYMax(v float64) error {
	if math.IsNaN(v) || v <= 0 || v > 1 {
		return fmt.Errorf("y_max=%v must satisfy 0 < y_max <= 1: %w", v, ErrInvalidRange)
	}

	return nil
}

// validateFinite rejects NaN and ±Inf breakpoints. A non-finite breakpoint
// would poison every ramp denominator downstream, so it is refused up front.
func validateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s=%v must be finite: %w", name, v, ErrInvalidShape)
	}

	return nil
}

// validateLess enforces the strict ordering lo < hi between two named
// breakpoints. Strictness matters: lo == hi would make a ramp denominator
// zero, which evaluation must never have to tolerate.
func validateLess(loName string, lo float64, hiName string, hi float64) error {
	if !(lo < hi) {
		return fmt.Errorf("%s=%v must be < %s=%v: %w", loName, lo, hiName, hi, ErrInvalidShape)
	}

	return nil
}

// validateLessEq enforces lo <= hi (used for the trapezoid plateau, where
// m1 == m2 collapses the plateau to a single point and is legal).
func validateLessEq(loName string, lo float64, hiName string, hi float64) error {
	if !(lo <= hi) {
		return fmt.Errorf("%s=%v must be <= %s=%v: %w", loName, lo, hiName, hi, ErrInvalidShape)
	}

	return nil
}

// validateBreakpoints runs finiteness checks over an ordered breakpoint list.
func validateBreakpoints(bps []Breakpoint) error {
	for _, bp := range bps {
		if err := validateFinite(bp.Name, bp.Value); err != nil {
			return err
		}
	}

	return nil
}
