// Package fieldgen builds synthetic cost fields and volumes: cleared-border
// mazes, seeded random noise, and drifting-blob frame sequences. The
// generators are deterministic, so fixtures regenerate bit-identically.
package fieldgen

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/heatpath/heatpath/grid"
)

// ErrExtent - a requested dimension or radius is not positive where it must be.
var ErrExtent = errors.New("fieldgen: bad extent")

// Border builds a width×height field whose outermost ring costs edge and
// whose interior costs inner. With inner far above edge this is the classic
// cleared-border maze: the cheap route hugs the rim.
func Border(width, height int, inner, edge byte) (*grid.Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrExtent, width, height)
	}

	cells := make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := inner
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				c = edge
			}
			cells[y*width+x] = c
		}
	}

	return grid.NewField(width, height, cells)
}

// Random builds a width×height field of seeded uniform costs in [1,255].
// Zero-cost cells are deliberately excluded so thresholds stay meaningful.
func Random(width, height int, seed int64) (*grid.Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrExtent, width, height)
	}

	rng := rand.New(rand.NewSource(seed))
	cells := make([]byte, width*height)
	for i := range cells {
		cells[i] = byte(1 + rng.Intn(255))
	}

	return grid.NewField(width, height, cells)
}

// RandomVolume builds a width×height×frames volume of seeded uniform costs
// in [1,255].
func RandomVolume(width, height, frames int, seed int64) (*grid.Volume, error) {
	if width <= 0 || height <= 0 || frames <= 0 {
		return nil, fmt.Errorf("%w: %d×%d×%d", ErrExtent, width, height, frames)
	}

	rng := rand.New(rand.NewSource(seed))
	cells := make([]byte, width*height*frames)
	for i := range cells {
		cells[i] = byte(1 + rng.Intn(255))
	}

	return grid.NewVolume(width, height, frames, cells)
}

// Drift builds a frame sequence with a round blob of cost blob sliding left
// to right over a uniform bg background, wobbling vertically on a slow sine.
// It is the synthetic analog of a dark target moving through a bright
// heatmap. Per frame the blob center moves about (width-1)/(frames-1) cells
// horizontally and at most one cell vertically; a reach covering the
// horizontal step tracks it exactly.
func Drift(width, height, frames, radius int, bg, blob byte) (*grid.Volume, error) {
	if width <= 0 || height <= 0 || frames <= 0 {
		return nil, fmt.Errorf("%w: %d×%d×%d", ErrExtent, width, height, frames)
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w: radius %d", ErrExtent, radius)
	}

	cells := make([]byte, width*height*frames)
	for i := range cells {
		cells[i] = bg
	}

	for t := 0; t < frames; t++ {
		cx := blobX(width, frames, t)
		cy := blobY(height, t)
		stamp(cells, width, height, t, cx, cy, radius, blob)
	}

	return grid.NewVolume(width, height, frames, cells)
}

// BlobCenter reports the blob position Drift uses on frame t, letting tests
// and demos aim searches at the blob without re-deriving the trajectory.
func BlobCenter(width, height, frames, t int) grid.Point {
	return grid.Pt3(blobX(width, frames, t), blobY(height, t), t)
}

// blobX advances linearly from column 0 to column width-1 across the frames.
func blobX(width, frames, t int) int {
	if frames == 1 {
		return (width - 1) / 2
	}

	return t * (width - 1) / (frames - 1)
}

// blobY wobbles around the middle row. The amplitude is capped so the
// per-frame vertical movement never exceeds one cell, whatever the height.
func blobY(height, t int) int {
	amp := math.Min(float64(height)/4, 2.8)
	cy := int(math.Round(float64(height)/2 + amp*math.Sin(0.35*float64(t))))
	if cy < 0 {
		cy = 0
	}
	if cy >= height {
		cy = height - 1
	}

	return cy
}

// stamp writes a filled circle of cost c into frame t.
func stamp(cells []byte, width, height, t, cx, cy, radius int, c byte) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			x, y := cx+dx, cy+dy
			if x < 0 || x >= width || y < 0 || y >= height {
				continue
			}
			cells[(t*height+y)*width+x] = c
		}
	}
}
