// Package plot renders membership-function curves for visual inspection.
//
// It is a thin presentation collaborator over package membership: it only
// ever calls Evaluate over a sampled domain and annotates what the core
// exposes by name — the breakpoints (a, b, and any of m/m1/m2 the shape
// carries) as dotted vertical lines, and the y_min/y_max reference levels
// as dotted horizontal lines. No algorithmic content lives here.
//
// The default sampling domain pads [a, b] by an eighth of the breakpoint
// span on each side, so the flat tails stay visible around the ramps.
//
// ⚙️ Usage:
//
//	tri, _ := membership.NewTriangle(1, 3, 5)
//
//	// In-memory figure (gonum.org/v1/plot):
//	p, err := plot.Render(tri)
//
//	// Straight to disk, format from the extension:
//	err = plot.Save(tri, "triangle.png", plot.WithSamples(1024))
//
//	// Raw samples, e.g. for a terminal preview:
//	xs, ys, err := plot.Sample(tri, 0, 6, 200)
package plot
