package formula_test

import (
	"testing"

	"github.com/katalvlaran/fuzzymf/formula"
	"github.com/katalvlaran/fuzzymf/membership"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSymbolic_ConstantFolds verifies that pure-constant trees report their
// numeric value alongside the reduced text.
func TestSymbolic_ConstantFolds(t *testing.T) {
	var sym formula.Symbolic

	text, value, err := sym.Simplify(membership.Num(0.5))
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, 0.5, *value)
	assert.NotEmpty(t, text)

	// (1 - 0.25)/(6 - 4) folds to 3/8.
	text, value, err = sym.Simplify(membership.Div{
		L: membership.Sub{L: membership.Num(1), R: membership.Num(0.25)},
		R: membership.Sub{L: membership.Num(6), R: membership.Num(4)},
	})
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.InDelta(t, 0.375, *value, 1e-15)
	assert.NotEmpty(t, text)
}

// TestSymbolic_VariableStaysSymbolic verifies x-dependent trees carry no
// constant value.
func TestSymbolic_VariableStaysSymbolic(t *testing.T) {
	var sym formula.Symbolic

	text, value, err := sym.Simplify(membership.Add{L: membership.X{}, R: membership.Num(1)})
	require.NoError(t, err)
	assert.Nil(t, value)
	assert.Contains(t, text, "x")
}

// TestSymbolic_NilExpr exercises the defensive node guard.
func TestSymbolic_NilExpr(t *testing.T) {
	var sym formula.Symbolic

	_, _, err := sym.Simplify(nil)
	assert.ErrorIs(t, err, formula.ErrUnsupportedExpr)
}

// TestSymbolic_EvalAt checks direct numeric substitution into the reduced
// form, including exact decimal lifting (0.1 must not pick up binary noise).
func TestSymbolic_EvalAt(t *testing.T) {
	var sym formula.Symbolic

	// 0.1 + 0.2 as exact decimals is exactly 0.3.
	got, err := sym.EvalAt(membership.Add{L: membership.Num(0.1), R: membership.Num(0.2)}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.3, got)

	// Linear ramp at its midpoint.
	ramp := membership.Add{
		L: membership.Num(0),
		R: membership.Mul{
			L: membership.Div{
				L: membership.Sub{L: membership.Num(1), R: membership.Num(0)},
				R: membership.Sub{L: membership.Num(6), R: membership.Num(4)},
			},
			R: membership.Sub{L: membership.X{}, R: membership.Num(4)},
		},
	}
	got, err = sym.EvalAt(ramp, 5)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-15)
}
