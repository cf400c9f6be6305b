package formula

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	gosymbol "github.com/njchilds90/gosymbol"

	"github.com/katalvlaran/fuzzymf/membership"
)

// ErrUnsupportedExpr indicates an expression node this adapter cannot map
// into the symbolic kernel. The membership node set is closed, so in
// practice this only fires for hand-built trees of foreign Expr types.
var ErrUnsupportedExpr = errors.New("formula: unsupported expression node")

// Symbolic is the default Simplifier, backed by gosymbol's exact rational
// kernel. It is stateless and safe for concurrent use.
type Symbolic struct{}

// Simplify converts the tree into a gosymbol expression, reduces it, and
// renders the deterministic closed form. Constant branches additionally
// report their numeric value.
func (Symbolic) Simplify(e membership.Expr) (string, *float64, error) {
	sym, err := toSymbolic(e)
	if err != nil {
		return "", nil, err
	}

	reduced := gosymbol.Simplify(sym)
	text := gosymbol.String(reduced)
	if n, ok := reduced.Eval(); ok {
		v := n.Float64()

		return text, &v, nil
	}

	return text, nil, nil
}

// EvalAt substitutes x into the reduced symbolic form of e and evaluates it
// numerically. It exists for round-trip verification: the result must match
// membership evaluation of the same branch up to floating rounding.
func (Symbolic) EvalAt(e membership.Expr, x float64) (float64, error) {
	sym, err := toSymbolic(e)
	if err != nil {
		return 0, err
	}

	bound := gosymbol.Sub(gosymbol.Simplify(sym), "x", symNum(x))
	n, ok := bound.Eval()
	if !ok {
		return 0, fmt.Errorf("expression %q did not fold to a number: %w",
			gosymbol.String(bound), ErrUnsupportedExpr)
	}

	return n.Float64(), nil
}

// toSymbolic maps the closed membership node set onto gosymbol
// constructors. Subtraction and division are expressed through the kernel's
// canonical forms (addition of a negated term, multiplication by an inverse
// power) so its simplifier sees its own normal forms.
func toSymbolic(e membership.Expr) (gosymbol.Expr, error) {
	switch n := e.(type) {
	case membership.Num:
		return symNum(float64(n)), nil
	case membership.X:
		return gosymbol.S("x"), nil
	case membership.Add:
		l, r, err := toSymbolicPair(n.L, n.R)
		if err != nil {
			return nil, err
		}

		return gosymbol.AddOf(l, r), nil
	case membership.Sub:
		l, r, err := toSymbolicPair(n.L, n.R)
		if err != nil {
			return nil, err
		}

		return gosymbol.AddOf(l, gosymbol.MulOf(gosymbol.N(-1), r)), nil
	case membership.Mul:
		l, r, err := toSymbolicPair(n.L, n.R)
		if err != nil {
			return nil, err
		}

		return gosymbol.MulOf(l, r), nil
	case membership.Div:
		l, r, err := toSymbolicPair(n.L, n.R)
		if err != nil {
			return nil, err
		}

		return gosymbol.MulOf(l, gosymbol.PowOf(r, gosymbol.N(-1))), nil
	case membership.Pow:
		base, err := toSymbolic(n.Base)
		if err != nil {
			return nil, err
		}

		return gosymbol.PowOf(base, gosymbol.N(int64(n.Exp))), nil
	default:
		return nil, fmt.Errorf("%T: %w", e, ErrUnsupportedExpr)
	}
}

// toSymbolicPair converts both operands of a binary node.
func toSymbolicPair(l, r membership.Expr) (gosymbol.Expr, gosymbol.Expr, error) {
	ls, err := toSymbolic(l)
	if err != nil {
		return nil, nil, err
	}
	rs, err := toSymbolic(r)
	if err != nil {
		return nil, nil, err
	}

	return ls, rs, nil
}

// symNum lifts a float64 parameter into an exact rational. Going through
// the decimal rendering keeps human-entered values exact (0.1 becomes 1/10,
// not the nearest binary fraction), which keeps the simplified output
// readable.
func symNum(v float64) gosymbol.Expr {
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(v, 'f', -1, 64))
	if ok && r.Num().IsInt64() && r.Denom().IsInt64() {
		return gosymbol.F(r.Num().Int64(), r.Denom().Int64())
	}

	return gosymbol.NFloat(v)
}
