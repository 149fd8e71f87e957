package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/dotart-mcp/internal/pixel"
)

// DefaultCellSize is the on-screen size of one cell in pixels.
const DefaultCellSize = 16

// MaxFrameSide bounds the longest side of a rendered frame. Grids too large
// to fit at the configured cell size are drawn with smaller cells.
const MaxFrameSide = 4096

// dashLength is the length of each dash and gap of the selection outline.
const dashLength = 4

var (
	checkerLight = color.RGBA{255, 255, 255, 255}
	checkerDark  = color.RGBA{204, 204, 204, 255}
	gridLine     = color.RGBA{224, 224, 224, 255}
	outline      = color.RGBA{0, 0, 0, 255}
)

// FrameResult contains a rendered frame encoded as base64 PNG.
type FrameResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	CellSize    int    `json:"cell_size"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// FrameRenderer draws the grid into an in-memory frame after each mutation.
//
// Each cell becomes a CellSize square; transparent cells show a checkerboard.
// Grid lines separate cells when cells are at least 4 pixels, and a selection
// is outlined with a dashed rectangle. While a selection is floating, its
// staged cells are drawn at the selection rectangle instead of the grid's own
// cells underneath.
//
// FrameRenderer is safe for concurrent use; the latest frame may be read
// while a new one is rendered.
type FrameRenderer struct {
	cellSize int

	mu        sync.RWMutex
	frame     *image.RGBA
	frameCell int
	renders   int
}

// NewFrameRenderer creates a renderer drawing cells of cellSize pixels.
// A non-positive size selects DefaultCellSize.
func NewFrameRenderer(cellSize int) *FrameRenderer {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &FrameRenderer{cellSize: cellSize}
}

// CellSize returns the configured pixel size of one cell.
func (r *FrameRenderer) CellSize() int { return r.cellSize }

// cellSizeFor returns the cell size used to draw g, shrunk from the
// configured size so that neither frame side exceeds MaxFrameSide.
func (r *FrameRenderer) cellSizeFor(g *pixel.Grid) int {
	longest := max(g.Cols(), g.Rows())
	if longest*r.cellSize <= MaxFrameSide {
		return r.cellSize
	}
	return max(MaxFrameSide/longest, 1)
}

// Render redraws the whole frame from g and the optional selection overlay.
func (r *FrameRenderer) Render(g *pixel.Grid, overlay *pixel.Overlay) {
	cs := r.cellSizeFor(g)
	w, h := g.Cols()*cs, g.Rows()*cs

	cells := image.NewRGBA(image.Rect(0, 0, g.Cols(), g.Rows()))
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			c, _ := g.At(x, y)
			if c.Painted {
				cells.SetRGBA(x, y, color.RGBA{c.Color.R, c.Color.G, c.Color.B, 255})
			}
		}
	}
	if overlay != nil && overlay.Floating != nil {
		compositeFloating(cells, overlay)
	}

	frame := checkerboard(w, h, cs)
	scaled := transform.Resize(cells, w, h, transform.NearestNeighbor)
	draw.Draw(frame, frame.Bounds(), scaled, image.Point{}, draw.Over)

	if cs >= 4 {
		drawGridLines(frame, cs)
	}
	if overlay != nil {
		drawDashedRect(frame, overlay.Rect, cs)
	}

	r.mu.Lock()
	r.frame = frame
	r.frameCell = cs
	r.renders++
	r.mu.Unlock()
}

// Frame returns the most recent frame, or nil before the first render.
func (r *FrameRenderer) Frame() image.Image {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.frame == nil {
		return nil
	}
	return r.frame
}

// Renders returns how many frames have been drawn.
func (r *FrameRenderer) Renders() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.renders
}

// PNG encodes the most recent frame.
func (r *FrameRenderer) PNG() (*FrameResult, error) {
	r.mu.RLock()
	frame, cs := r.frame, r.frameCell
	r.mu.RUnlock()
	if frame == nil {
		return nil, fmt.Errorf("nothing rendered yet")
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, frame, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}

	return &FrameResult{
		Width:       frame.Bounds().Dx(),
		Height:      frame.Bounds().Dy(),
		CellSize:    cs,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// compositeFloating draws the painted staged cells at the overlay position,
// hiding the source cells they were lifted from.
func compositeFloating(cells *image.RGBA, overlay *pixel.Overlay) {
	src := overlay.Source
	for y := src.Y1; y <= src.Y2; y++ {
		for x := src.X1; x <= src.X2; x++ {
			cells.SetRGBA(x, y, color.RGBA{})
		}
	}

	buf := overlay.Floating
	for by := 0; by < buf.Height(); by++ {
		for bx := 0; bx < buf.Width(); bx++ {
			c := buf.At(bx, by)
			if !c.Painted {
				continue
			}
			cells.SetRGBA(overlay.Rect.X1+bx, overlay.Rect.Y1+by, color.RGBA{c.Color.R, c.Color.G, c.Color.B, 255})
		}
	}
}

// checkerboard fills a frame with a two-tone pattern of half-cell squares.
func checkerboard(w, h, cs int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	sq := max(cs/2, 1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/sq+y/sq)%2 == 0 {
				img.SetRGBA(x, y, checkerLight)
			} else {
				img.SetRGBA(x, y, checkerDark)
			}
		}
	}
	return img
}

// drawGridLines draws the top and left edge of every cell after the first.
func drawGridLines(img *image.RGBA, cs int) {
	bounds := img.Bounds()

	// Draw vertical lines
	for x := cs; x < bounds.Dx(); x += cs {
		for y := 0; y < bounds.Dy(); y++ {
			img.SetRGBA(x, y, gridLine)
		}
	}

	// Draw horizontal lines
	for y := cs; y < bounds.Dy(); y += cs {
		for x := 0; x < bounds.Dx(); x++ {
			img.SetRGBA(x, y, gridLine)
		}
	}
}

// drawDashedRect outlines the cells of r with a dashed one-pixel border.
func drawDashedRect(img *image.RGBA, r pixel.Rect, cs int) {
	x1, y1 := r.X1*cs, r.Y1*cs
	x2, y2 := (r.X2+1)*cs-1, (r.Y2+1)*cs-1

	on := func(i int) bool { return (i/dashLength)%2 == 0 }

	for x := x1; x <= x2; x++ {
		if on(x - x1) {
			img.SetRGBA(x, y1, outline)
			img.SetRGBA(x, y2, outline)
		}
	}
	for y := y1; y <= y2; y++ {
		if on(y - y1) {
			img.SetRGBA(x1, y, outline)
			img.SetRGBA(x2, y, outline)
		}
	}
}
