// Package imaging connects the dot-art grid to raster images.
//
// It provides the editor's external capabilities: decoding user-supplied image
// bytes, mapping rasters to and from grid cells, encoding exports, and
// rendering the grid (with its selection overlay) into a display frame. Cell
// colour sampling and colour statistics live here as well.
//
// # Coordinate System
//
// Raster pixel coordinates are 0-based with (0,0) at the top-left, X
// increasing rightward and Y increasing downward. A raster imported with
// ToGrid maps pixel (x, y) to cell (x, y); a grid exported at scale k maps
// cell (x, y) to the k x k pixel block starting at (x*k, y*k).
//
// # Transparency
//
// Grid cells are either opaque or transparent. On import, pixels with alpha
// below AlphaThreshold become transparent cells and all other pixels become
// opaque, discarding their alpha. On export, transparent cells stay fully
// transparent except in JPEG output, which is flattened onto white.
//
// # Supported Formats
//
// Decoding accepts PNG, JPEG, GIF, BMP, TIFF and WebP. Encoding produces PNG,
// JPEG, GIF, BMP, ICO (PNG payload, at most 256x256) and single-page PDF.
//
// # Thread Safety
//
// Codec is stateless and FrameRenderer is safe for concurrent use. Functions
// taking a *pixel.Grid only read it; the caller must not mutate the grid
// concurrently.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Cell coordinates outside the grid (wrapping pixel.ErrOutOfBounds)
//   - Data that is not a decodable image (wrapping ErrDecodeFailure)
//   - Unknown export format tags (wrapping ErrUnsupportedFormat)
//   - Icons larger than 256x256 (wrapping ErrIconTooLarge)
package imaging
