// Package formula reconstructs a human-readable piecewise definition for a
// concrete membership-function parameterization.
//
// 🚀 What does it do?
//
//	Every membership.Function carries a declarative piecewise table with its
//	parameter values already substituted. Derive renders that table branch
//	by branch into three views:
//	  • Condition  — the guard over x, e.g. "x <= 1 or x >= 5"
//	  • Raw        — the substituted formula, e.g. "0 + (1 - 0)/(3 - 1)*(x - 1)"
//	  • Simplified — the algebraically reduced form, e.g. "x/2 - 1/2"
//	plus the exact numeric value for branches that fold to a constant.
//
// Simplification is delegated, never implemented here: the Simplifier
// interface is the narrow seam to an external symbolic-algebra collaborator,
// and Symbolic (the default) is backed by github.com/njchilds90/gosymbol's
// exact rational kernel. Because derivation reads the very same table that
// Evaluate walks, the printed definition can never drift from the computed
// values — substituting any x into a simplified branch reproduces
// Evaluate(x) up to floating rounding.
//
// Z and Pi need no special casing: their tables are already the reflected /
// glued tables of their inner S and Z instances, so the derived formula
// inherits the composition for free.
//
// ⚙️ Usage:
//
//	tri, _ := membership.NewTriangle(1, 3, 5)
//	f, err := formula.Derive(tri)
//	if err != nil { ... }
//	fmt.Println(f) // Triangle := { x <= 1 or x >= 5: 0 ==> 0 ... }
//
// Derive is read-only and side-effect-free: it never mutates the function
// instance and performs no I/O.
package formula
