package console

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/katalvlaran/fuzzymf/formula"
	"github.com/katalvlaran/fuzzymf/membership"
	"github.com/katalvlaran/fuzzymf/plot"
)

// DefaultPreviewSamples is the curve resolution of the ASCII preview.
const DefaultPreviewSamples = 120

// Session is one interactive run over a reader/writer pair. It owns no
// resources beyond the scanner; construct with NewSession and drive with
// Run.
type Session struct {
	in      *bufio.Scanner
	out     io.Writer
	samples int
	preview bool
	plotDir string
}

// SessionOption customizes a Session before it starts.
type SessionOption func(*Session)

// WithSampleCount overrides the ASCII-preview sample count.
func WithSampleCount(n int) SessionOption {
	return func(s *Session) {
		if n >= 2 {
			s.samples = n
		}
	}
}

// WithPreview toggles the ASCII curve preview (default on).
func WithPreview(on bool) SessionOption {
	return func(s *Session) { s.preview = on }
}

// WithPlotDir makes the session additionally save a PNG figure per
// constructed function into dir (empty disables, the default).
func WithPlotDir(dir string) SessionOption {
	return func(s *Session) { s.plotDir = dir }
}

// NewSession builds a session reading prompts' answers from r and writing
// everything it says to w.
func NewSession(r io.Reader, w io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		in:      bufio.NewScanner(r),
		out:     w,
		samples: DefaultPreviewSamples,
		preview: true,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run drives the menu loop until "q" or end of input. Construction
// failures are reported and control returns to the menu; Run only returns
// a non-nil error when the underlying reader fails.
func (s *Session) Run() error {
	for {
		s.printf("Functions: %s\n", Codes())
		line, ok := s.readLine("Choose function (q to quit): ")
		if !ok {
			return s.in.Err()
		}
		code := strings.TrimSpace(line)
		switch {
		case code == "":
			continue
		case strings.EqualFold(code, "q"):
			return s.in.Err()
		}

		shape, err := Lookup(code)
		if err != nil {
			s.printf("Unrecognized function %q\n'e' for examples\n", code)
			line, ok = s.readLine("Any key to continue... : ")
			if !ok {
				return s.in.Err()
			}
			if strings.EqualFold(strings.TrimSpace(line), "e") {
				s.examples()
			}

			continue
		}

		s.printf("%s - membership function\nEnter parameters:\n", shape.Name)
		params, ok := s.readParams(shape)
		if !ok {
			return s.in.Err()
		}
		opts, ok := s.readOverrides()
		if !ok {
			return s.in.Err()
		}

		fn, err := shape.New(params, opts...)
		if err != nil {
			s.printf("Invalid input\n%v\n", err)

			continue
		}

		s.show(fn)
		if !s.pointLoop(fn) {
			return s.in.Err()
		}
	}
}

// readParams prompts for every required breakpoint of the shape,
// re-prompting on malformed numbers. The second result is false on EOF.
func (s *Session) readParams(shape Shape) ([]float64, bool) {
	params := make([]float64, 0, len(shape.Params))
	for _, name := range shape.Params {
		for {
			line, ok := s.readLine(name + ": ")
			if !ok {
				return nil, false
			}
			v, err := ParseFloat(line)
			if err != nil {
				s.printf("Invalid input: %v\n", err)

				continue
			}
			params = append(params, v)

			break
		}
	}

	return params, true
}

// readOverrides collects optional y_min/y_max overrides until a blank
// line, re-prompting on malformed ones. The second result is false on EOF.
func (s *Session) readOverrides() ([]membership.Option, bool) {
	s.printf("Additional parameters (default: y_max=1, y_min=0). Write e.g.: y_max: 0.5\nEmpty line to skip\n")

	var opts []membership.Option
	for {
		line, ok := s.readLine("y_max/min: ")
		if !ok {
			return nil, false
		}
		if strings.TrimSpace(line) == "" {
			return opts, true
		}
		opt, err := ParseOverride(line)
		if err != nil {
			s.printf("invalid input format\n")

			continue
		}
		opts = append(opts, opt)
	}
}

// show prints the derived piecewise formula and, when enabled, an ASCII
// preview of the curve (plus a PNG figure when a plot directory is set).
func (s *Session) show(fn membership.Function) {
	f, err := formula.Derive(fn)
	if err != nil {
		s.printf("formula derivation failed: %v\n", err)
	} else {
		s.printf("%s\n", f)
	}

	if s.preview {
		start, stop := plot.DefaultDomain(fn)
		if _, ys, err := plot.Sample(fn, start, stop, s.samples); err == nil {
			s.printf("%s\n", asciigraph.Plot(ys,
				asciigraph.Height(12),
				asciigraph.Precision(2),
				asciigraph.Caption(fmt.Sprintf("%s over [%g, %g]", fn.Name(), start, stop)),
			))
		}
	}

	if s.plotDir != "" {
		path := filepath.Join(s.plotDir, strings.ToLower(fn.Name())+".png")
		if err := plot.Save(fn, path); err != nil {
			s.printf("could not save figure: %v\n", err)
		} else {
			s.printf("figure saved to %s\n", path)
		}
	}
}

// examples walks the classic parameterizations of all six shapes, one
// derived formula and preview each.
func (s *Session) examples() {
	build := func(fn membership.Function, err error) {
		if err != nil {
			s.printf("Invalid input\n%v\n", err)

			return
		}
		s.show(fn)
	}

	build(membership.NewLinear(4, 6, membership.WithYMin(0.2), membership.WithYMax(0.69)))
	build(membership.NewTriangle(1, 3, 5))
	build(membership.NewTrapezoid(1, 4, 6, 9))
	build(membership.NewS(2, 8, membership.WithYMin(0.5)))
	build(membership.NewZ(2, 8))
	build(membership.NewPi(2, 5, 8, membership.WithYMin(0.42), membership.WithYMax(0.69)))
}

// pointLoop answers x → μ(x) queries until a line that is not a number
// (blank included); false on EOF.
func (s *Session) pointLoop(fn membership.Function) bool {
	s.printf("Calculate specific points:\n(Any other key to exit...)\n")
	for {
		line, ok := s.readLine("x: ")
		if !ok {
			return false
		}
		x, err := ParseFloat(strings.TrimSpace(line))
		if err != nil {
			return true
		}
		s.printf("μ(%g) = %g\n", x, fn.Evaluate(x))
	}
}

// readLine prints the prompt and reads one answer; false on EOF.
func (s *Session) readLine(prompt string) (string, bool) {
	s.printf("%s", prompt)
	if !s.in.Scan() {
		return "", false
	}

	return s.in.Text(), true
}

// printf writes to the session writer, swallowing write errors the way an
// interactive prompt must (a broken pipe ends the session via the reader).
func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
