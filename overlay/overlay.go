// Package overlay renders found routes back onto their source frames and
// serializes them to the route.txt sidecar format.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/fogleman/gg"

	"github.com/heatpath/heatpath/grid"
)

// Style controls how route positions are marked on a frame.
type Style struct {
	// Color fills the markers. Defaults to pure red.
	Color color.Color
	// Radius is the marker circle radius in pixels.
	Radius float64
}

// DefaultStyle returns the marker style of the original tooling: filled red
// circles of radius 3.
func DefaultStyle() Style {
	return Style{Color: color.RGBA{R: 255, A: 255}, Radius: 3}
}

// MarkRoute draws one filled circle per point onto a copy of src and returns
// the annotated image; src itself is never modified.
// Complexity: O(W×H + len(points)·r²).
func MarkRoute(src image.Image, points []grid.Point, style Style) image.Image {
	dc := gg.NewContextForImage(src)
	dc.SetColor(style.Color)
	for _, p := range points {
		// Center on the pixel, not its top-left corner.
		dc.DrawCircle(float64(p.X)+0.5, float64(p.Y)+0.5, style.Radius)
		dc.Fill()
	}

	return dc.Image()
}

// RenderFrames annotates every frame with the route positions that belong to
// it (grouped by each point's T coordinate) and returns the annotated copies
// in frame order.
func RenderFrames(frames []image.Image, points []grid.Point, style Style) []image.Image {
	byFrame := groupByFrame(points)
	out := make([]image.Image, len(frames))
	for t, frame := range frames {
		out[t] = MarkRoute(frame, byFrame[t], style)
	}

	return out
}

// WriteRouteTxt writes the route sidecar consumed by downstream tooling:
// a four-line header, then one line per frame carrying the frame number and
// every x y pair the route visits on that frame.
//
//	# Route file: each line contains the frame number and x y coordinates for that frame
//	# Format: frame_number x1 y1 x2 y2 ...
//	# Total cost: 12
//	# Total path length: 3 points
//	0 4 7
//	1 5 7
//	2 5 8
func WriteRouteTxt(w io.Writer, frames int, points []grid.Point, cost int64) error {
	if _, err := fmt.Fprintln(w, "# Route file: each line contains the frame number and x y coordinates for that frame"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "# Format: frame_number x1 y1 x2 y2 ..."); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "# Total cost: %d\n", cost); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "# Total path length: %d points\n", len(points)); err != nil {
		return err
	}

	byFrame := groupByFrame(points)
	for t := 0; t < frames; t++ {
		if _, err := fmt.Fprintf(w, "%d", t); err != nil {
			return err
		}
		for _, p := range byFrame[t] {
			if _, err := fmt.Fprintf(w, " %d %d", p.X, p.Y); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

// LoadImage decodes one image file in any registered format.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("overlay: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("overlay: decode %s: %w", path, err)
	}

	return img, nil
}

// SavePNG writes img to path as a PNG.
func SavePNG(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}

// groupByFrame buckets route positions by their frame coordinate, keeping
// route order within each bucket.
func groupByFrame(points []grid.Point) map[int][]grid.Point {
	byFrame := make(map[int][]grid.Point, len(points))
	for _, p := range points {
		byFrame[p.T] = append(byFrame[p.T], p)
	}

	return byFrame
}
