// Package membership implements parametric, piecewise-defined membership
// functions for fuzzy sets: for a real x, each shape maps x to a degree of
// membership in the closed interval [y_min, y_max].
//
// 🚀 What is a membership function?
//
//	A fuzzy set grades membership instead of deciding it: μ(x) ∈ [0,1]
//	tells "how much" x belongs. The grade is computed by a small piecewise
//	formula controlled by breakpoints (a, b, and optionally m, m1, m2).
//	Membership functions are the core of fuzzy-logic controllers,
//	linguistic variables ("warm", "tall", "fast") and fuzzy clustering.
//
// ✨ The six shapes:
//
//   - Linear(a,b)           — flat y_min, straight ramp, flat y_max
//   - Triangle(a,m,b)       — ramp up to the peak at m, ramp down
//   - Trapezoid(a,m1,m2,b)  — ramp up, plateau at y_max on [m1,m2], ramp down
//   - S(a,b)                — smooth sigmoid rise (quadratic splines, C¹ at the midpoint)
//   - Z(a,b)                — mirror image of S: y_max + y_min − S(x)
//   - Pi(a,m,b)             — S over [a,m] glued to Z over [m,b]: a smooth hill
//
// Composition, not duplication: Z delegates to an inner S sharing (a, b,
// y_min, y_max); Pi delegates to an inner S over [a,m] and an inner Z over
// [m,b]. Any correction to S's formula therefore propagates to Z and Pi
// automatically.
//
// Declarative piecewise tables: every instance carries a Definition — an
// ordered list of (guard, expression) branches with the instance's concrete
// parameter values substituted. Evaluate walks that table, and package
// formula renders the very same table, so the printed definition and the
// computed value can never drift apart.
//
// ⚙️ Usage:
//
//	tri, err := membership.NewTriangle(1, 3, 5)
//	if err != nil {
//	  // ErrInvalidShape (breakpoint order) or ErrInvalidRange (y_min/y_max)
//	}
//	μ := tri.Evaluate(2) // 0.5
//
//	// Narrow the range without mutating tri:
//	warm, err := tri.WithRange(0.2, 0.9)
//
// Invariants (enforced at construction, fail fast):
//
//   - 0 ≤ y_min < 1 and 0 < y_max ≤ 1      → ErrInvalidRange otherwise
//   - a < b; a < m < b; a < m1 ≤ m2 < b    → ErrInvalidShape otherwise
//   - all breakpoints finite               → ErrInvalidShape otherwise
//
// y_min < y_max is a documented caller obligation, not an enforced check:
// choosing y_min ≥ y_max yields a degenerate (flat or inverted) curve and is
// never auto-corrected.
//
// Instances are immutable and therefore safe for unlimited concurrent
// readers. Every operation is a bounded, pure arithmetic computation.
package membership
