// Package heatmap converts images to cost lattices and back: pixel luminance
// becomes the per-cell traversal cost.
package heatmap

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	// Registered decoders. PNG doubles as the encoder below.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/heatpath/heatpath/grid"
)

// Decode reads one image from r and converts it to a cost field.
// Color pixels are reduced to Rec.601 luminance (the conversion behind
// color.GrayModel), so dark regions become cheap cells and bright regions
// expensive ones.
// Returns ErrDecode (wrapped) when the stream is not a registered format.
// Complexity: O(W×H) time and memory.
func Decode(r io.Reader) (*grid.Field, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return fieldFromImage(img)
}

// DecodeFile opens path and decodes it with Decode.
func DecodeFile(path string) (*grid.Field, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("heatmap: open %s: %w", path, err)
	}
	defer f.Close()

	field, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return field, nil
}

// LoadVolume decodes the given frame files, in the order supplied, and stacks
// them into a volume: paths[0] becomes the T=0 frame.
// Returns ErrNoFrames for an empty list and ErrFrameShape (with the offending
// index) when a frame's dimensions differ from the first frame's; shape
// problems are caught here, before any search sees the volume.
// Complexity: O(W×H×F) time and memory.
func LoadVolume(paths []string) (*grid.Volume, error) {
	if len(paths) == 0 {
		return nil, ErrNoFrames
	}

	fields := make([]*grid.Field, 0, len(paths))
	for i, path := range paths {
		f, err := DecodeFile(path)
		if err != nil {
			return nil, err
		}
		if i > 0 && (f.Width() != fields[0].Width() || f.Height() != fields[0].Height()) {
			return nil, fmt.Errorf("%w: frame %d (%s) is %d×%d, want %d×%d",
				ErrFrameShape, i, path, f.Width(), f.Height(), fields[0].Width(), fields[0].Height())
		}
		fields = append(fields, f)
	}

	return grid.VolumeFromFields(fields)
}

// Encode writes f as a grayscale PNG: cell costs become pixel luminance, the
// exact inverse of Decode for grayscale inputs.
func Encode(w io.Writer, f *grid.Field) error {
	return png.Encode(w, fieldImage(f))
}

// EncodeFile writes f as a grayscale PNG at path.
func EncodeFile(path string, f *grid.Field) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("heatmap: create %s: %w", path, err)
	}
	defer out.Close()

	return Encode(out, f)
}

// WriteFrames writes every frame of v as frame_000.png, frame_001.png, ...
// under dir, creating the directory if needed, and returns the written paths
// in frame order.
func WriteFrames(dir string, v *grid.Volume) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("heatmap: create dir %s: %w", dir, err)
	}

	paths := make([]string, 0, v.Frames())
	for t := 0; t < v.Frames(); t++ {
		path := filepath.Join(dir, fmt.Sprintf("frame_%03d.png", t))
		out, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("heatmap: create %s: %w", path, err)
		}
		err = png.Encode(out, frameImage(v, t))
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return nil, fmt.Errorf("heatmap: write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// fieldFromImage flattens any decoded image into a Field.
// *image.Gray gets a row-copy fast path; everything else goes through the
// color model conversion pixel by pixel.
func fieldFromImage(img image.Image) (*grid.Field, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	cells := make([]byte, w*h)

	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < h; y++ {
			copy(cells[y*w:(y+1)*w], gray.Pix[y*gray.Stride:y*gray.Stride+w])
		}

		return grid.NewField(w, h, cells)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			cells[y*w+x] = c.Y
		}
	}

	return grid.NewField(w, h, cells)
}

// fieldImage renders a Field as a grayscale image.
func fieldImage(f *grid.Field) *image.Gray {
	w, h := f.Width(), f.Height()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Pix[y*img.Stride+x] = f.Cost(f.Index(x, y))
		}
	}

	return img
}

// frameImage renders one frame of a Volume as a grayscale image.
func frameImage(v *grid.Volume, t int) *image.Gray {
	w, h := v.Width(), v.Height()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Pix[y*img.Stride+x] = v.Cost(v.Index(x, y, t))
		}
	}

	return img
}
