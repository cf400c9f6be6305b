// Package console drives the interactive membership-function prompt: a
// fixed menu of shape codes, parameter prompts, and a point-query loop.
//
// It is a presentation collaborator with no algorithmic content: all
// construction failures (membership.ErrInvalidRange,
// membership.ErrInvalidShape) are caught, reported to the writer, and
// control returns to the menu — the session never crashes on bad input and
// re-prompts instead.
//
// Menu codes mirror the classic toolkit: L (Linear), Tri (Triangle),
// Tra (Trapezoid), S, Z, Pi. Optional range overrides are entered in the
// textual "y_min: 0.2" / "y_max: 0.69" form; an empty line accepts the
// defaults. After construction the session prints the derived piecewise
// formula, an ASCII preview of the curve, and answers x → μ(x) queries
// until a non-numeric line returns to the menu. An unrecognized menu code
// offers 'e' to walk the classic example parameterizations of all six
// shapes.
//
// ⚙️ Usage:
//
//	sess := console.NewSession(os.Stdin, os.Stdout)
//	if err := sess.Run(); err != nil { ... }
//
// The session reads from any io.Reader and writes to any io.Writer, so it
// is fully scriptable in tests.
package console
