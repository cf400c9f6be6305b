// Command fuzzymf runs the interactive membership-function prompt: pick a
// shape, enter its breakpoints, read the derived piecewise formula, preview
// the curve and query specific points.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/katalvlaran/fuzzymf/console"
)

func main() {
	var (
		samples   = flag.Int("samples", console.DefaultPreviewSamples, "ASCII preview resolution in samples")
		noPreview = flag.Bool("no-preview", false, "Disable the ASCII curve preview")
		plotDir   = flag.String("plot", "", "Directory to save a PNG figure per function (empty disables)")
	)
	flag.Parse()

	opts := []console.SessionOption{
		console.WithSampleCount(*samples),
		console.WithPreview(!*noPreview),
	}
	if *plotDir != "" {
		stat, err := os.Stat(*plotDir)
		if err != nil || !stat.IsDir() {
			log.Fatalf("Invalid plot directory: %s", *plotDir)
		}
		if abs, err := filepath.Abs(*plotDir); err == nil {
			*plotDir = abs
		}
		opts = append(opts, console.WithPlotDir(*plotDir))
	}

	session := console.NewSession(os.Stdin, os.Stdout, opts...)
	if err := session.Run(); err != nil {
		log.Fatalf("Session error: %v", err)
	}
}
