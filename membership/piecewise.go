// Package membership: declarative piecewise tables.
//
// A Definition is the first-class description of a shape's piecewise
// formula: an ordered list of branches, each pairing a Guard (a union of
// intervals over x) with an expression tree. Tables are built once, at
// construction, with the instance's concrete parameter values substituted,
// and are total over the real line by construction.
//
// Two transforms keep Z and Pi single-sourced from S:
//
//   - reflect   — maps every branch expression e to (y_max + y_min) - e,
//     turning an S table into the corresponding Z table;
//   - restrict  — intersects every guard with an interval, used by Pi to
//     clamp its inner S table to x <= m and its inner Z table to x > m.

package membership

import "strings"

// Bound is one endpoint of an interval over x.
type Bound struct {
	Value     float64
	Inclusive bool
}

// Interval is a (possibly half-unbounded) interval over x.
// A nil endpoint means unbounded on that side.
type Interval struct {
	Lower *Bound
	Upper *Bound
}

// Contains reports whether x lies inside the interval.
func (iv Interval) Contains(x float64) bool {
	if lo := iv.Lower; lo != nil {
		if x < lo.Value || (x == lo.Value && !lo.Inclusive) {
			return false
		}
	}
	if hi := iv.Upper; hi != nil {
		if x > hi.Value || (x == hi.Value && !hi.Inclusive) {
			return false
		}
	}

	return true
}

// String renders the interval as a guard over x, e.g. "x <= 1",
// "1 < x <= 3" or "x > 5".
func (iv Interval) String() string {
	lo, hi := iv.Lower, iv.Upper
	switch {
	case lo == nil && hi == nil:
		return "any x"
	case lo == nil:
		return "x " + relTo(hi.Inclusive) + " " + Num(hi.Value).String()
	case hi == nil:
		return "x " + relFrom(lo.Inclusive) + " " + Num(lo.Value).String()
	default:
		return Num(lo.Value).String() + " " + relOpen(lo.Inclusive) +
			" x " + relOpen(hi.Inclusive) + " " + Num(hi.Value).String()
	}
}

// relTo renders the upper relation of a one-sided interval.
func relTo(inclusive bool) string {
	if inclusive {
		return "<="
	}

	return "<"
}

// relFrom renders the lower relation of a one-sided interval.
func relFrom(inclusive bool) string {
	if inclusive {
		return ">="
	}

	return ">"
}

// relOpen renders a chained relation in "lo < x <= hi" form.
func relOpen(inclusive bool) string {
	if inclusive {
		return "<="
	}

	return "<"
}

// upTo builds the interval x <= v (inclusive) or x < v.
func upTo(v float64, inclusive bool) Interval {
	return Interval{Upper: &Bound{Value: v, Inclusive: inclusive}}
}

// from builds the interval x >= v (inclusive) or x > v.
func from(v float64, inclusive bool) Interval {
	return Interval{Lower: &Bound{Value: v, Inclusive: inclusive}}
}

// between builds the two-sided interval lo ? x ? hi with per-end inclusivity.
func between(lo float64, loInclusive bool, hi float64, hiInclusive bool) Interval {
	return Interval{
		Lower: &Bound{Value: lo, Inclusive: loInclusive},
		Upper: &Bound{Value: hi, Inclusive: hiInclusive},
	}
}

// intersect returns the overlap of two intervals and whether it is non-empty.
func (iv Interval) intersect(o Interval) (Interval, bool) {
	lo := tighterLower(iv.Lower, o.Lower)
	hi := tighterUpper(iv.Upper, o.Upper)
	if lo != nil && hi != nil {
		if lo.Value > hi.Value {
			return Interval{}, false
		}
		if lo.Value == hi.Value && !(lo.Inclusive && hi.Inclusive) {
			return Interval{}, false
		}
	}

	return Interval{Lower: lo, Upper: hi}, true
}

// tighterLower picks the more restrictive lower bound (nil = unbounded).
func tighterLower(a, b *Bound) *Bound {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.Value > b.Value:
		return a
	case b.Value > a.Value:
		return b
	case !a.Inclusive: // equal values: exclusive is tighter
		return a
	default:
		return b
	}
}

// tighterUpper picks the more restrictive upper bound (nil = unbounded).
func tighterUpper(a, b *Bound) *Bound {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.Value < b.Value:
		return a
	case b.Value < a.Value:
		return b
	case !a.Inclusive:
		return a
	default:
		return b
	}
}

// Guard is a union of intervals: it matches x when any interval does.
// Most branches have a single interval; the y_min tails of Triangle and
// Trapezoid use two ("x <= a or x >= b").
type Guard struct {
	Intervals []Interval
}

// guardOf builds a guard from its member intervals.
func guardOf(ivs ...Interval) Guard {
	return Guard{Intervals: ivs}
}

// Contains reports whether x satisfies the guard.
func (g Guard) Contains(x float64) bool {
	for _, iv := range g.Intervals {
		if iv.Contains(x) {
			return true
		}
	}

	return false
}

// String renders the guard, joining interval clauses with " or ".
func (g Guard) String() string {
	parts := make([]string, len(g.Intervals))
	for i, iv := range g.Intervals {
		parts[i] = iv.String()
	}

	return strings.Join(parts, " or ")
}

// restrict intersects the guard with iv, dropping clauses that vanish.
// The second result reports whether anything of the guard survives.
func (g Guard) restrict(iv Interval) (Guard, bool) {
	var kept []Interval
	for _, own := range g.Intervals {
		if cut, ok := own.intersect(iv); ok {
			kept = append(kept, cut)
		}
	}

	return Guard{Intervals: kept}, len(kept) > 0
}

// Branch pairs a guard with the expression that applies inside it.
type Branch struct {
	Guard Guard
	Expr  Expr
}

// Definition is the ordered piecewise table of one shape instance.
// Branches are checked in order; tables are total over the real line
// by construction.
type Definition struct {
	// Shape is the owning shape name ("Linear", "S", ...).
	Shape string
	// Branches holds the (guard, expression) pairs in canonical order:
	// low tail first, then the interior regions, then the high tail.
	Branches []Branch
}

// Evaluate folds the table for a concrete x: the first branch whose guard
// contains x supplies the value. Tables are total, so the trailing branch
// acts as the match of last resort for well-formed definitions.
func (d Definition) Evaluate(x float64) float64 {
	last := len(d.Branches) - 1
	for i, br := range d.Branches {
		if i == last || br.Guard.Contains(x) {
			return br.Expr.Eval(x)
		}
	}

	return 0 // unreachable: Definitions always carry at least one branch
}

// reflect maps the table of an S shape into the table of its Z mirror:
// every branch keeps its guard and wraps its expression into
// (y_max + y_min) - expr.
func (d Definition) reflect(shape string, yMin, yMax float64) Definition {
	out := Definition{Shape: shape, Branches: make([]Branch, len(d.Branches))}
	for i, br := range d.Branches {
		out.Branches[i] = Branch{
			Guard: br.Guard,
			Expr:  Sub{L: Add{L: Num(yMax), R: Num(yMin)}, R: br.Expr},
		}
	}

	return out
}

// restrict clamps the table to iv: every guard is intersected with iv and
// branches whose guard vanishes are dropped. Pi uses this to glue its inner
// S table (x <= m) to its inner Z table (x > m).
func (d Definition) restrict(shape string, iv Interval) Definition {
	out := Definition{Shape: shape}
	for _, br := range d.Branches {
		if g, ok := br.Guard.restrict(iv); ok {
			out.Branches = append(out.Branches, Branch{Guard: g, Expr: br.Expr})
		}
	}

	return out
}

// concat splices piecewise tables in order under a new shape name.
func concat(shape string, parts ...Definition) Definition {
	out := Definition{Shape: shape}
	for _, p := range parts {
		out.Branches = append(out.Branches, p.Branches...)
	}

	return out
}
