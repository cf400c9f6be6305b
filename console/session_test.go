package console_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/fuzzymf/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runScript drives a session over scripted input and returns everything it
// printed. The preview is disabled to keep output assertions focused.
func runScript(t *testing.T, script string, opts ...console.SessionOption) string {
	t.Helper()

	var out strings.Builder
	opts = append([]console.SessionOption{console.WithPreview(false)}, opts...)
	sess := console.NewSession(strings.NewReader(script), &out, opts...)
	require.NoError(t, sess.Run())

	return out.String()
}

// TestSession_TriangleHappyPath walks the full flow: menu, parameters,
// default range, derived formula, one point query, back to menu, quit.
func TestSession_TriangleHappyPath(t *testing.T) {
	out := runScript(t, "Tri\n1\n3\n5\n\n2\n\nq\n")

	assert.Contains(t, out, "Functions: L, Tri, Tra, S, Z, Pi")
	assert.Contains(t, out, "Triangle - membership function")
	assert.Contains(t, out, "Triangle := {")
	assert.Contains(t, out, "1 < x < 3: 0 + (1 - 0)/(3 - 1)*(x - 1) ==> ")
	assert.Contains(t, out, "μ(2) = 0.5")
}

// TestSession_ConstructionFailureReturnsToMenu feeds unordered breakpoints:
// the error is reported, the session survives and the menu shows again.
func TestSession_ConstructionFailureReturnsToMenu(t *testing.T) {
	out := runScript(t, "Tri\n5\n3\n1\n\nq\n")

	assert.Contains(t, out, "Invalid input")
	assert.Contains(t, out, "breakpoint ordering violated")
	assert.GreaterOrEqual(t, strings.Count(out, "Functions:"), 2,
		"menu must be offered again after the failure")
}

// TestSession_RangeOverrideRejected parses an out-of-range y_max override
// fine at the prompt and reports the constructor's rejection.
func TestSession_RangeOverrideRejected(t *testing.T) {
	out := runScript(t, "L\n0\n1\ny_max: 1.5\n\nq\n")

	assert.Contains(t, out, "y_min/y_max out of range")
	assert.GreaterOrEqual(t, strings.Count(out, "Functions:"), 2)
}

// TestSession_RepromptsOnMalformedInput re-asks for a breakpoint after a
// non-numeric answer and for an override after a bad key.
func TestSession_RepromptsOnMalformedInput(t *testing.T) {
	out := runScript(t, "L\nabc\n0\n1\ny_mid: 0.3\n\n\nq\n")

	assert.Contains(t, out, "Invalid input:")
	assert.Contains(t, out, "invalid input format")
	assert.Contains(t, out, "Linear := {")
}

// TestSession_UnknownShapeAndEOF reports unknown codes and ends cleanly on
// end of input instead of erroring.
func TestSession_UnknownShapeAndEOF(t *testing.T) {
	out := runScript(t, "Gauss\n")

	assert.Contains(t, out, `Unrecognized function "Gauss"`)
	assert.Contains(t, out, "'e' for examples")
}

// TestSession_ExamplesWalkthrough answers 'e' at the unrecognized-function
// prompt and gets the derived formula of every classic parameterization.
func TestSession_ExamplesWalkthrough(t *testing.T) {
	out := runScript(t, "x\ne\nq\n")

	for _, header := range []string{
		"Linear := {", "Triangle := {", "Trapezoid := {",
		"S := {", "Z := {", "Pi := {",
	} {
		assert.Contains(t, out, header)
	}
}

// TestSession_PointLoopExitsOnNonNumber leaves the query loop on any
// non-numeric line and returns to the menu.
func TestSession_PointLoopExitsOnNonNumber(t *testing.T) {
	out := runScript(t, "Tri\n1\n3\n5\n\n2\nback\nq\n")

	assert.Contains(t, out, "μ(2) = 0.5")
	assert.NotContains(t, out, "μ(back)")
	assert.GreaterOrEqual(t, strings.Count(out, "Functions:"), 2)
}

// TestSession_PreviewRendersCurve leaves the ASCII preview on and checks a
// caption shows up.
func TestSession_PreviewRendersCurve(t *testing.T) {
	var out strings.Builder
	sess := console.NewSession(strings.NewReader("S\n2\n8\n\n\nq\n"), &out)
	require.NoError(t, sess.Run())

	assert.Contains(t, out.String(), "S over [1.25, 8.75]")
}
