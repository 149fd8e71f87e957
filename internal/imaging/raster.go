package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/dotart-mcp/internal/colors"
	"github.com/ironsheep/dotart-mcp/internal/pixel"
)

// AlphaThreshold is the lowest alpha value imported as an opaque cell.
const AlphaThreshold = 128

// ToGrid maps an RGBA raster onto a new grid with one cell per pixel.
//
// Pixels with alpha below AlphaThreshold become transparent cells; all others
// keep their RGB colour and lose their alpha. The conversion is one-way:
// exporting the grid never reproduces partial transparency.
func ToGrid(img image.Image) (*pixel.Grid, error) {
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	g, err := pixel.NewGrid(w, h)
	if err != nil {
		return nil, fmt.Errorf("image has no pixels: %w", err)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := src.NRGBAAt(x, y)
			if c.A < AlphaThreshold {
				continue
			}
			_ = g.Set(x, y, pixel.Paint(colors.RGB{R: c.R, G: c.G, B: c.B}))
		}
	}
	return g, nil
}

// FitWithin downsamples img so it is at most maxW x maxH pixels, keeping its
// aspect ratio. A non-positive bound leaves that axis unconstrained. Images
// already within bounds are returned as an unscaled copy.
func FitWithin(img image.Image, maxW, maxH int) *image.NRGBA {
	b := img.Bounds()
	if maxW <= 0 {
		maxW = b.Dx()
	}
	if maxH <= 0 {
		maxH = b.Dy()
	}
	return imaging.Fit(img, maxW, maxH, imaging.Box)
}

// MaxExportPixels bounds the pixel count of a FromGrid raster.
const MaxExportPixels = 1 << 24

// FromGrid renders the grid as a raster with each cell expanded to a
// scale x scale block. Transparent cells stay fully transparent.
func FromGrid(g *pixel.Grid, scale int) (*image.NRGBA, error) {
	if scale < 1 {
		return nil, fmt.Errorf("%w: scale %d", pixel.ErrInvalidDimension, scale)
	}
	// cells*scale*scale compared by division so huge scales cannot overflow
	if cells := g.Cols() * g.Rows(); scale > MaxExportPixels/cells || scale*scale > MaxExportPixels/cells {
		return nil, fmt.Errorf("%w: %dx%d grid at scale %d exceeds %d pixels",
			pixel.ErrInvalidDimension, g.Cols(), g.Rows(), scale, MaxExportPixels)
	}

	small := image.NewNRGBA(image.Rect(0, 0, g.Cols(), g.Rows()))
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			c, _ := g.At(x, y)
			if !c.Painted {
				continue
			}
			small.SetNRGBA(x, y, color.NRGBA{R: c.Color.R, G: c.Color.G, B: c.Color.B, A: 255})
		}
	}

	return imaging.Resize(small, g.Cols()*scale, g.Rows()*scale, imaging.NearestNeighbor), nil
}
