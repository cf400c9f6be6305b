// Package fuzzymf is a small toolkit for building, evaluating and
// presenting fuzzy-set membership functions — the parametric, piecewise
// curves that map a real number x to its degree of membership μ(x).
//
// 🚀 What is fuzzymf?
//
//	A pure-core library with thin presentation collaborators:
//		• Six classic shapes: Linear, Triangle, Trapezoid, S, Z, Pi
//		• Validated, immutable parameter model (y_min/y_max range, breakpoint order)
//		• Z and Pi composed from S — one source of truth for every formula
//		• Declarative piecewise tables shared by evaluation & formula derivation
//		• Human-readable, algebraically simplified formulas per parameterization
//		• Plot rendering and an interactive prompt for exploration
//
// ✨ Why choose fuzzymf?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – fail-fast constructors, immutable instances
//   - Single-source formulas – the evaluator and the printed definition
//     consume the same piecewise table, so they can never diverge
//
// Everything is organized under four subpackages:
//
//	membership/ — shapes, validation, piecewise tables, point evaluation
//	formula/    — derives the substituted + simplified piecewise definition
//	plot/       — samples a curve and renders it with breakpoint annotations
//	console/    — interactive shape menu, parameter prompts, point queries
//
// Quick ASCII example (Triangle a=1, m=3, b=5):
//
//	 1 ┤    ╱╲
//	   │   ╱  ╲
//	 0 ┤──╱    ╲──
//	   └──┴──┴──┴──
//	      1  3  5
//
// Dive into the package docs for formulas, invariants and worked examples.
//
//	go get github.com/katalvlaran/fuzzymf
package fuzzymf
