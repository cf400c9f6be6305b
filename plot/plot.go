package plot

import (
	"errors"
	"image/color"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/fuzzymf/membership"
)

var (
	// ErrNilFunction indicates a nil membership.Function.
	ErrNilFunction = errors.New("plot: nil membership function")

	// ErrBadDomain indicates a sampling domain with stop <= start.
	ErrBadDomain = errors.New("plot: sampling domain must satisfy start < stop")

	// ErrBadSamples indicates a sample count too small to draw a line.
	ErrBadSamples = errors.New("plot: need at least 2 samples")
)

const (
	// DefaultSamples is the sample count used when WithSamples is absent.
	DefaultSamples = 512

	defaultWidthInch  = 6
	defaultHeightInch = 4
)

// Option customizes sampling and figure geometry.
type Option func(*config)

type config struct {
	start, stop   float64
	domainSet     bool
	samples       int
	width, height vg.Length
}

func defaultConfig() config {
	return config{
		samples: DefaultSamples,
		width:   defaultWidthInch * vg.Inch,
		height:  defaultHeightInch * vg.Inch,
	}
}

// WithDomain overrides the sampling domain [start, stop].
func WithDomain(start, stop float64) Option {
	return func(c *config) {
		c.start, c.stop = start, stop
		c.domainSet = true
	}
}

// WithSamples overrides the number of evenly spaced samples (default 512).
func WithSamples(n int) Option {
	return func(c *config) { c.samples = n }
}

// WithSize overrides the figure size in inches (default 6x4).
func WithSize(widthInch, heightInch float64) Option {
	return func(c *config) {
		c.width = vg.Length(widthInch) * vg.Inch
		c.height = vg.Length(heightInch) * vg.Inch
	}
}

// DefaultDomain returns the canonical sampling domain of fn: the breakpoint
// span [a, b] padded by an eighth of its width on each side, so the flat
// tails remain visible.
func DefaultDomain(fn membership.Function) (start, stop float64) {
	bps := fn.Breakpoints()
	lo, hi := bps[0].Value, bps[len(bps)-1].Value
	pad := (hi - lo) / 8

	return lo - pad, hi + pad
}

// Sample evaluates fn at n evenly spaced points across [start, stop].
func Sample(fn membership.Function, start, stop float64, n int) (xs, ys []float64, err error) {
	if fn == nil {
		return nil, nil, ErrNilFunction
	}
	if !(start < stop) {
		return nil, nil, ErrBadDomain
	}
	if n < 2 {
		return nil, nil, ErrBadSamples
	}

	xs = make([]float64, n)
	ys = make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := 0; i < n; i++ {
		xs[i] = start + float64(i)*step
		ys[i] = fn.Evaluate(xs[i])
	}

	return xs, ys, nil
}

// Render builds a figure of fn: the sampled curve under the shape name,
// dotted horizontal reference lines at y_min/y_max and a dotted vertical
// line per breakpoint, all present in the legend.
func Render(fn membership.Function, opts ...Option) (*gplot.Plot, error) {
	cfg := resolve(fn, opts)

	return render(fn, cfg)
}

// Save renders fn and writes the figure to path; the format follows the
// file extension (.png, .svg, .pdf, ...).
func Save(fn membership.Function, path string, opts ...Option) error {
	cfg := resolve(fn, opts)
	p, err := render(fn, cfg)
	if err != nil {
		return err
	}

	return p.Save(cfg.width, cfg.height, path)
}

// resolve applies opts over the defaults, filling the domain from fn when
// the caller did not choose one.
func resolve(fn membership.Function, opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.domainSet && fn != nil {
		cfg.start, cfg.stop = DefaultDomain(fn)
	}

	return cfg
}

// breakpointPalette cycles through the vertical-line colors, one per
// breakpoint in ascending order.
var breakpointPalette = []color.Color{
	color.RGBA{R: 0xcc, G: 0xaa, B: 0x00, A: 0xff}, // a
	color.RGBA{R: 0x00, G: 0x99, B: 0xcc, A: 0xff}, // m / m1
	color.RGBA{R: 0x66, G: 0x33, B: 0xcc, A: 0xff}, // m2
	color.RGBA{R: 0xcc, G: 0x00, B: 0xcc, A: 0xff}, // b
}

func render(fn membership.Function, cfg config) (*gplot.Plot, error) {
	xs, ys, err := Sample(fn, cfg.start, cfg.stop, cfg.samples)
	if err != nil {
		return nil, err
	}

	p := gplot.New()
	p.Title.Text = fn.Name() + " membership function"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "μ(x)"

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}
	curve, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	curve.LineStyle.Width = vg.Points(1.5)
	p.Add(curve)
	p.Legend.Add(fn.Name(), curve)

	// y_min / y_max reference levels across the full domain.
	yMax, err := dottedLine(plotter.XYs{
		{X: cfg.start, Y: fn.YMax()}, {X: cfg.stop, Y: fn.YMax()},
	}, color.RGBA{G: 0x99, A: 0xff})
	if err != nil {
		return nil, err
	}
	p.Add(yMax)
	p.Legend.Add("y_max", yMax)

	yMin, err := dottedLine(plotter.XYs{
		{X: cfg.start, Y: fn.YMin()}, {X: cfg.stop, Y: fn.YMin()},
	}, color.RGBA{R: 0xcc, A: 0xff})
	if err != nil {
		return nil, err
	}
	p.Add(yMin)
	p.Legend.Add("y_min", yMin)

	// One vertical marker per named breakpoint, slightly overshooting the
	// membership range so the intersections stay readable.
	overshoot := (fn.YMax() - fn.YMin()) / 10
	for i, bp := range fn.Breakpoints() {
		v, err := dottedLine(plotter.XYs{
			{X: bp.Value, Y: fn.YMin() - overshoot},
			{X: bp.Value, Y: fn.YMax() + overshoot},
		}, breakpointPalette[i%len(breakpointPalette)])
		if err != nil {
			return nil, err
		}
		p.Add(v)
		p.Legend.Add(bp.Name, v)
	}

	return p, nil
}

// dottedLine builds a two-point dotted annotation line.
func dottedLine(pts plotter.XYs, col color.Color) (*plotter.Line, error) {
	ln, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	ln.LineStyle.Color = col
	ln.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(3)}

	return ln, nil
}
