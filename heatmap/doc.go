// Package heatmap bridges images and cost lattices: decoded pixel luminance
// becomes per-cell traversal cost, and lattices render back to grayscale PNGs.
//
// What:
//
//   - Decode / DecodeFile: one image → grid.Field (Rec.601 luminance).
//   - LoadVolume: an ordered frame list → grid.Volume, with shape validation.
//   - Encode / EncodeFile: grid.Field → grayscale PNG (inverse of Decode).
//   - WriteFrames: grid.Volume → frame_000.png, frame_001.png, ... in a directory.
//
// Why:
//
//   - Heatmap images are the native input of the route tools: dark pixels are
//     cheap to traverse, bright pixels expensive.
//   - Frame sequences on disk are the native form of temporal volumes.
//
// Formats:
//
//   - Decoding: PNG, JPEG, GIF (stdlib) plus BMP and TIFF (golang.org/x/image).
//   - Encoding: grayscale PNG only.
//
// Errors:
//
//   - ErrDecode: the stream is not a decodable image.
//   - ErrNoFrames: LoadVolume got an empty path list.
//   - ErrFrameShape: a frame's dimensions differ from the first frame's.
package heatmap
