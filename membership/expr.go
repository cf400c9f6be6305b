// Package membership: declarative expression trees.
//
// Each piecewise branch stores its right-hand side as a small arithmetic
// tree over one free variable X and numeric literals (the instance's
// parameter values, substituted at construction time). The tree serves two
// consumers at once:
//
//   - Evaluate — folds the tree numerically for a concrete x;
//   - package formula — renders the tree verbatim ("substituted form") and
//     hands it to the symbolic-algebra collaborator for simplification.
//
// The node set is deliberately tiny: the six shapes only ever need
// +, -, *, / and integer powers. The tree carries no algebra of its own —
// simplification is somebody else's job.

package membership

import "strconv"

// Expr is a node of a piecewise-branch expression tree.
// The set of implementations is closed: Num, X, Add, Sub, Mul, Div, Pow.
type Expr interface {
	// Eval folds the tree numerically with the free variable bound to x.
	Eval(x float64) float64
	// String renders the tree with minimal parentheses, e.g.
	// "0 + ((1 - 0)/(5 - 1))*(x - 1)".
	String() string

	// prec reports rendering precedence (higher binds tighter).
	prec() int
}

// Operator precedence levels used by the renderer.
const (
	precSum  = 1 // Add, Sub
	precProd = 2 // Mul, Div
	precPow  = 3 // Pow
	precAtom = 4 // Num, X
)

// Num is a numeric literal — a parameter value already substituted.
type Num float64

// X is the free variable of a membership function.
type X struct{}

// Add is l + r.
type Add struct{ L, R Expr }

// Sub is l - r.
type Sub struct{ L, R Expr }

// Mul is l * r.
type Mul struct{ L, R Expr }

// Div is l / r. Construction guarantees the denominator folds to a
// non-zero constant (ordering invariants forbid zero-width ramps).
type Div struct{ L, R Expr }

// Pow is base^exp with a small integer exponent (the shapes use only 2).
type Pow struct {
	Base Expr
	Exp  int
}

func (n Num) Eval(float64) float64 { return float64(n) }
func (X) Eval(x float64) float64   { return x }
func (e Add) Eval(x float64) float64 {
	return e.L.Eval(x) + e.R.Eval(x)
}
func (e Sub) Eval(x float64) float64 {
	return e.L.Eval(x) - e.R.Eval(x)
}
func (e Mul) Eval(x float64) float64 {
	return e.L.Eval(x) * e.R.Eval(x)
}
func (e Div) Eval(x float64) float64 {
	return e.L.Eval(x) / e.R.Eval(x)
}
func (e Pow) Eval(x float64) float64 {
	base := e.Base.Eval(x)
	out := 1.0
	for i := 0; i < e.Exp; i++ {
		out *= base
	}

	return out
}

func (Num) prec() int { return precAtom }
func (X) prec() int   { return precAtom }
func (Add) prec() int { return precSum }
func (Sub) prec() int { return precSum }
func (Mul) prec() int { return precProd }
func (Div) prec() int { return precProd }
func (Pow) prec() int { return precPow }

func (n Num) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func (X) String() string { return "x" }

func (e Add) String() string {
	return renderChild(e.L, precSum, false) + " + " + renderChild(e.R, precSum, false)
}

func (e Sub) String() string {
	// Subtraction is left-associative: the right operand needs parentheses
	// at equal precedence ("a - (b + c)", not "a - b + c").
	return renderChild(e.L, precSum, false) + " - " + renderChild(e.R, precSum, true)
}

func (e Mul) String() string {
	return renderChild(e.L, precProd, false) + "*" + renderChild(e.R, precProd, false)
}

func (e Div) String() string {
	return renderChild(e.L, precProd, false) + "/" + renderChild(e.R, precProd, true)
}

func (e Pow) String() string {
	return renderChild(e.Base, precAtom, false) + "^" + strconv.Itoa(e.Exp)
}

// renderChild renders a sub-expression, parenthesizing it when its
// precedence is too weak for the parent context (or equal, for the right
// operand of a non-associative operator).
func renderChild(e Expr, parent int, rightOfNonAssoc bool) string {
	p := e.prec()
	if p < parent || (rightOfNonAssoc && p == parent) {
		return "(" + e.String() + ")"
	}

	return e.String()
}
