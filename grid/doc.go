// Package grid provides the read-only byte-cost lattices that route
// searches run over: the planar Field and the temporal Volume.
//
// What:
//
//   - Field wraps a width×height byte grid (row-major), immutable once built.
//   - Volume wraps a frames×height×width byte stack — an ordered pile of
//     equally shaped frames addressed by a third coordinate T.
//   - Both expose bounds checking, linear row-major indexing, coordinate
//     recovery, and impassability classification against a cost threshold.
//
// Why:
//
//   - Image luminance maps: dark pixels as cheap corridors, bright as walls.
//   - Terrain or risk rasters: per-cell traversal prices for route planning.
//   - Frame stacks: following a target drifting across a video sequence.
//
// Complexity:
//
//   - Construction: O(n) time and memory (deep copy), n = number of cells.
//   - At / Cost / Index / Coordinate / InBounds / Impassable: O(1).
//
// Errors:
//
//   - ErrEmpty: a declared extent is zero or no cell data was supplied.
//   - ErrSize: cell data length disagrees with the declared extents.
//   - ErrRagged: rows (or stacked fields) have differing shapes.
//   - ErrBounds: a checked accessor was given an out-of-range position.
//
// Both lattices are safe for concurrent reads from any number of search
// invocations; nothing mutates them after construction.
package grid
