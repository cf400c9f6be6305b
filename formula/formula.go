package formula

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/fuzzymf/membership"
)

var (
	// ErrNilFunction indicates a nil membership.Function was passed to Derive.
	ErrNilFunction = errors.New("formula: nil membership function")

	// ErrNilSimplifier indicates DeriveWith received a nil Simplifier.
	ErrNilSimplifier = errors.New("formula: nil simplifier")
)

// Simplifier is the narrow interface to the external symbolic-algebra
// collaborator: it reduces one substituted branch expression to a closed
// form. The returned value is non-nil iff the expression folds to a
// constant. This package assembles expressions; it never simplifies them
// itself.
type Simplifier interface {
	Simplify(e membership.Expr) (simplified string, value *float64, err error)
}

// BranchFormula is one derived piecewise branch.
type BranchFormula struct {
	// Condition is the guard over x, e.g. "3 <= x < 5".
	Condition string
	// Raw is the substituted expression exactly as declared by the shape.
	Raw string
	// Simplified is the collaborator's reduced closed form.
	Simplified string
	// Value is the branch's numeric constant when it folds to one
	// (the flat y_min/y_max tails), nil for x-dependent branches.
	Value *float64
}

// Formula is the ordered, derived piecewise definition of one instance.
type Formula struct {
	// Shape is the owning shape name ("Linear", "Pi", ...).
	Shape string
	// Branches follow the canonical branch order of the shape's table.
	Branches []BranchFormula
}

// String renders the formula in the classic presentation, one branch per
// line:
//
//	Triangle := {
//	  x <= 1 or x >= 5: 0 ==> 0
//	  1 < x < 3: 0 + (1 - 0)/(3 - 1)*(x - 1) ==> x/2 - 1/2
//	  ...
//	}
func (f Formula) String() string {
	var sb strings.Builder
	sb.WriteString(f.Shape)
	sb.WriteString(" := {\n")
	for _, br := range f.Branches {
		sb.WriteString("  ")
		sb.WriteString(br.Condition)
		sb.WriteString(": ")
		sb.WriteString(br.Raw)
		sb.WriteString(" ==> ")
		sb.WriteString(br.Simplified)
		sb.WriteString("\n")
	}
	sb.WriteString("}")

	return sb.String()
}

// Derive produces the piecewise definition of fn with the default
// gosymbol-backed simplifier.
func Derive(fn membership.Function) (Formula, error) {
	return DeriveWith(fn, Symbolic{})
}

// DeriveWith produces the piecewise definition of fn, reducing every branch
// through the given simplifier. The derivation consumes fn's declarative
// table directly — the same table Evaluate walks — so the result is, branch
// for branch, the definition actually in force.
func DeriveWith(fn membership.Function, s Simplifier) (Formula, error) {
	if fn == nil {
		return Formula{}, ErrNilFunction
	}
	if s == nil {
		return Formula{}, ErrNilSimplifier
	}

	def := fn.Definition()
	out := Formula{
		Shape:    def.Shape,
		Branches: make([]BranchFormula, 0, len(def.Branches)),
	}
	for _, br := range def.Branches {
		simplified, value, err := s.Simplify(br.Expr)
		if err != nil {
			return Formula{}, fmt.Errorf("branch %q: %w", br.Guard.String(), err)
		}
		out.Branches = append(out.Branches, BranchFormula{
			Condition:  br.Guard.String(),
			Raw:        br.Expr.String(),
			Simplified: simplified,
			Value:      value,
		})
	}

	return out, nil
}
