package plot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/fuzzymf/membership"
	"github.com/katalvlaran/fuzzymf/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSample_Validation covers the argument guards.
func TestSample_Validation(t *testing.T) {
	tri, err := membership.NewTriangle(1, 3, 5)
	require.NoError(t, err)

	_, _, err = plot.Sample(nil, 0, 1, 10)
	assert.ErrorIs(t, err, plot.ErrNilFunction)

	_, _, err = plot.Sample(tri, 5, 5, 10)
	assert.ErrorIs(t, err, plot.ErrBadDomain)

	_, _, err = plot.Sample(tri, 6, 5, 10)
	assert.ErrorIs(t, err, plot.ErrBadDomain)

	_, _, err = plot.Sample(tri, 0, 1, 1)
	assert.ErrorIs(t, err, plot.ErrBadSamples)
}

// TestSample_BoundsAndCount verifies the sampled grid: exact endpoints,
// even spacing, values straight from Evaluate.
func TestSample_BoundsAndCount(t *testing.T) {
	tri, err := membership.NewTriangle(1, 3, 5)
	require.NoError(t, err)

	xs, ys, err := plot.Sample(tri, 1, 5, 5)
	require.NoError(t, err)
	require.Len(t, xs, 5)
	require.Len(t, ys, 5)
	assert.Equal(t, 1.0, xs[0])
	assert.Equal(t, 5.0, xs[4])
	assert.InDelta(t, 2.0, xs[1], 1e-12, "even spacing")
	assert.InDelta(t, tri.Evaluate(2), ys[1], 1e-15)
	assert.InDelta(t, 1.0, ys[2], 1e-12, "peak sampled at m")
}

// TestDefaultDomain pads the breakpoint span by one eighth on each side.
func TestDefaultDomain(t *testing.T) {
	s, err := membership.NewS(2, 8)
	require.NoError(t, err)

	start, stop := plot.DefaultDomain(s)
	assert.InDelta(t, 1.25, start, 1e-12)
	assert.InDelta(t, 8.75, stop, 1e-12)
}

// TestRender_AllShapes renders every shape and checks the figure exists;
// the annotation set is exercised simply by not erroring across shapes
// with 2, 3 and 4 breakpoints.
func TestRender_AllShapes(t *testing.T) {
	lin, err := membership.NewLinear(4, 6)
	require.NoError(t, err)
	tra, err := membership.NewTrapezoid(1, 4, 6, 9)
	require.NoError(t, err)
	pi, err := membership.NewPi(2, 5, 8)
	require.NoError(t, err)

	for _, fn := range []membership.Function{lin, tra, pi} {
		p, err := plot.Render(fn, plot.WithSamples(64))
		require.NoError(t, err, fn.Name())
		require.NotNil(t, p, fn.Name())
		assert.Contains(t, p.Title.Text, fn.Name())
	}
}

// TestSave_WritesPNG writes a figure into a scratch dir and checks the
// file materialized.
func TestSave_WritesPNG(t *testing.T) {
	tri, err := membership.NewTriangle(1, 3, 5)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "triangle.png")
	require.NoError(t, plot.Save(tri, path, plot.WithSamples(64), plot.WithSize(4, 3)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

// TestRender_NilFunction propagates the guard from Sample.
func TestRender_NilFunction(t *testing.T) {
	_, err := plot.Render(nil)
	assert.ErrorIs(t, err, plot.ErrNilFunction)
}
