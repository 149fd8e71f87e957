package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ErrDecodeFailure is returned when supplied bytes are not a decodable image.
var ErrDecodeFailure = errors.New("failed to decode image")

// Codec is the decode and encode capability used by the editor session.
//
// The zero Codec is ready for use and encodes JPEG at DefaultJPEGQuality.
type Codec struct {
	// JPEGQuality is the quality (1-100) for lossy exports. Zero means
	// DefaultJPEGQuality.
	JPEGQuality int
}

// ImageInfo describes a decoded image before it is mapped onto the grid.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the detected encoding: "png", "jpeg", "gif", "bmp", "tiff" or "webp".
	// Detection is based on the data itself, not a file name.
	Format string `json:"format"`

	// HasAlpha indicates whether the decoded image carries an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// SizeBytes is the length of the encoded data.
	SizeBytes int `json:"size_bytes"`
}

// Decode parses an encoded image and returns it as non-premultiplied RGBA.
//
// EXIF orientation is applied to JPEG input, so the returned raster matches
// what an image viewer would display.
//
// # Errors
//
// Returns an error wrapping ErrDecodeFailure if data is empty or not one of
// PNG, JPEG, GIF, BMP, TIFF or WebP.
func (c Codec) Decode(data []byte) (*image.NRGBA, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrDecodeFailure)
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	return imaging.Clone(img), nil
}

// Inspect reports metadata about encoded image data without decoding the
// full raster.
func Inspect(data []byte) (*ImageInfo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}

	hasAlpha := false
	if _, _, _, a := cfg.ColorModel.Convert(image.Transparent).RGBA(); a == 0 {
		hasAlpha = true
	}

	return &ImageInfo{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Format:    format,
		HasAlpha:  hasAlpha,
		SizeBytes: len(data),
	}, nil
}

// ReadFile loads encoded image bytes from disk.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return data, nil
}
