// Package heatmap declares the sentinel errors shared by the decoding and
// encoding entry points.
package heatmap

import "errors"

var (
	// ErrDecode - the underlying image could not be decoded.
	ErrDecode = errors.New("heatmap: image decode failed")

	// ErrNoFrames - LoadVolume was given an empty path list.
	ErrNoFrames = errors.New("heatmap: no frames")

	// ErrFrameShape - a frame's dimensions differ from the first frame's.
	ErrFrameShape = errors.New("heatmap: frame shape mismatch")
)
