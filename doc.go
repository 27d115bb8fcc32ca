// Package heatpath finds minimum-cost routes through grayscale cost fields —
// single heat-map images and ordered frame sequences alike.
//
// 🚀 What is heatpath?
//
//	A small, focused toolkit that brings together:
//		• Cost fields: byte-per-cell planar fields & frame volumes
//		• Image I/O: PNG/JPEG/GIF/BMP/TIFF heat maps in, annotated PNG out
//		• Searches: Dijkstra, A* and Fringe over 8-connected grids
//		• Temporal routing: one step per frame with a bounded lateral reach
//		• Overlays: route markers burned into the source frames
//		• Synthetic fields: border, noise and drifting-blob generators
//
// ✨ Why choose heatpath?
//
//   - Deterministic – equal-cost ties break the same way on every run
//   - Bounded – cost thresholds, expansion budgets and context cancellation
//   - Pure results – routes come back as typed points, not printouts
//
// Under the hood, everything is organized under six packages:
//
//	grid/     — Field, Volume, Point and the axis/neighbor arithmetic
//	search/   — the three strategies plus options & sentinel errors
//	heatmap/  — image decode/encode between pixels and cell costs
//	overlay/  — route markers and the route.txt sidecar
//	fieldgen/ — synthetic fields for tests, demos and benchmarks
//	cmd/      — the heatpath CLI: path, route, gen, compare
//
// Quick ASCII example:
//
//	    ▓▓▓▓▓▓▓
//	    ▓░░●░░▓
//	    ▓░▓▓▓░▓
//	    ▓░░░○░▓
//	    ▓▓▓▓▓▓▓
//
//	dark cells cost more; the route slips around them from ● to ○.
//
// Dive into README.md for CLI walkthroughs and the full option list.
//
//	go get github.com/heatpath/heatpath
package heatpath
