package formula_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/fuzzymf/formula"
	"github.com/katalvlaran/fuzzymf/membership"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDerive_NilInputs covers the two argument guards.
func TestDerive_NilInputs(t *testing.T) {
	_, err := formula.Derive(nil)
	assert.ErrorIs(t, err, formula.ErrNilFunction)

	tri, err := membership.NewTriangle(1, 3, 5)
	require.NoError(t, err)
	_, err = formula.DeriveWith(tri, nil)
	assert.ErrorIs(t, err, formula.ErrNilSimplifier)
}

// TestDerive_TriangleBranches pins the derived conditions and substituted
// expressions of the canonical Triangle(1, 3, 5), and checks that exactly
// the constant tail reports a numeric value.
func TestDerive_TriangleBranches(t *testing.T) {
	tri, err := membership.NewTriangle(1, 3, 5)
	require.NoError(t, err)

	f, err := formula.Derive(tri)
	require.NoError(t, err)
	require.Len(t, f.Branches, 3)
	assert.Equal(t, "Triangle", f.Shape)

	assert.Equal(t, "x <= 1 or x >= 5", f.Branches[0].Condition)
	assert.Equal(t, "0", f.Branches[0].Raw)
	require.NotNil(t, f.Branches[0].Value, "flat tail folds to a constant")
	assert.Equal(t, 0.0, *f.Branches[0].Value)

	assert.Equal(t, "1 < x < 3", f.Branches[1].Condition)
	assert.Equal(t, "0 + (1 - 0)/(3 - 1)*(x - 1)", f.Branches[1].Raw)
	assert.Nil(t, f.Branches[1].Value, "ramp depends on x")
	assert.NotEmpty(t, f.Branches[1].Simplified)

	assert.Equal(t, "3 <= x < 5", f.Branches[2].Condition)
	assert.Equal(t, "1 - (1 - 0)/(5 - 3)*(x - 3)", f.Branches[2].Raw)
	assert.Nil(t, f.Branches[2].Value)
}

// TestDerive_ZInheritsComposition verifies that a Z formula is derived from
// the reflected S table (shared guards, wrapped expressions) rather than
// re-derived from scratch.
func TestDerive_ZInheritsComposition(t *testing.T) {
	z, err := membership.NewZ(2, 8)
	require.NoError(t, err)

	f, err := formula.Derive(z)
	require.NoError(t, err)
	require.Len(t, f.Branches, 4)
	assert.Equal(t, "Z", f.Shape)
	for _, br := range f.Branches {
		assert.True(t, strings.HasPrefix(br.Raw, "1 + 0 - "),
			"every Z branch must reflect an S expression, got %q", br.Raw)
	}
	require.NotNil(t, f.Branches[0].Value)
	assert.Equal(t, 1.0, *f.Branches[0].Value, "x <= a tail reflects to y_max")
}

// TestDerive_PiGluesInnerFormulas verifies the Pi derivation reuses the
// clamped inner S and Z tables (six branches, split at m).
func TestDerive_PiGluesInnerFormulas(t *testing.T) {
	pi, err := membership.NewPi(2, 5, 8)
	require.NoError(t, err)

	f, err := formula.Derive(pi)
	require.NoError(t, err)
	assert.Equal(t, "Pi", f.Shape)
	require.Len(t, f.Branches, 6)
	assert.Equal(t, "x <= 2", f.Branches[0].Condition)
	assert.Equal(t, "6.5 < x <= 8", f.Branches[5].Condition)
}

// TestFormula_String checks the classic rendering skeleton.
func TestFormula_String(t *testing.T) {
	tri, err := membership.NewTriangle(1, 3, 5)
	require.NoError(t, err)

	f, err := formula.Derive(tri)
	require.NoError(t, err)

	text := f.String()
	assert.True(t, strings.HasPrefix(text, "Triangle := {\n"))
	assert.True(t, strings.HasSuffix(text, "}"))
	assert.Contains(t, text, "1 < x < 3: 0 + (1 - 0)/(3 - 1)*(x - 1) ==> ")
	assert.Equal(t, 3, strings.Count(text, "==>"), "one arrow per branch")
}

// TestDerive_RoundTrip is the keystone property: numerically evaluating any
// branch's simplified symbolic form at x reproduces Evaluate(x) up to
// floating rounding, for every shape.
func TestDerive_RoundTrip(t *testing.T) {
	lin, err := membership.NewLinear(4, 6, membership.WithYMin(0.2), membership.WithYMax(0.69))
	require.NoError(t, err)
	tri, err := membership.NewTriangle(1, 3, 5)
	require.NoError(t, err)
	tra, err := membership.NewTrapezoid(1, 4, 6, 9)
	require.NoError(t, err)
	s, err := membership.NewS(2, 8, membership.WithYMin(0.5))
	require.NoError(t, err)
	z, err := membership.NewZ(2, 8)
	require.NoError(t, err)
	pi, err := membership.NewPi(2, 5, 8)
	require.NoError(t, err)

	var sym formula.Symbolic
	for _, fn := range []membership.Function{lin, tri, tra, s, z, pi} {
		def := fn.Definition()
		for x := -1.0; x <= 10; x += 0.25 {
			for _, br := range def.Branches {
				if !br.Guard.Contains(x) {
					continue
				}
				got, err := sym.EvalAt(br.Expr, x)
				require.NoError(t, err, "%s at x=%v", fn.Name(), x)
				assert.InDelta(t, fn.Evaluate(x), got, 1e-9,
					"%s: symbolic round-trip diverged at x=%v", fn.Name(), x)

				break // only the first matching branch is in force
			}
		}
	}
}
