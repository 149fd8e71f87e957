package editor

import (
	"fmt"

	"github.com/ironsheep/dotart-mcp/internal/imaging"
	"github.com/ironsheep/dotart-mcp/internal/pixel"
)

// ImportResult describes a completed import.
type ImportResult struct {
	SourceFormat string `json:"source_format,omitempty"`
	SourceWidth  int    `json:"source_width"`
	SourceHeight int    `json:"source_height"`
	Cols         int    `json:"cols"`
	Rows         int    `json:"rows"`
	Painted      int    `json:"painted"`
	Downsampled  bool   `json:"downsampled"`
}

// Import decodes an image and replaces the grid with it, one cell per pixel.
//
// When maxCols or maxRows is positive and the image exceeds it, the image is
// first downsampled to fit, keeping its aspect ratio. Bounds that are unset or
// above pixel.MaxGridSide are taken as pixel.MaxGridSide. Pixels with alpha below
// imaging.AlphaThreshold become transparent. On any error the grid and
// selection are unchanged.
func (s *Session) Import(data []byte, maxCols, maxRows int) (*ImportResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.idle(); err != nil {
		return nil, err
	}

	img, err := s.decoder.Decode(data)
	if err != nil {
		return nil, err
	}
	srcW, srcH := img.Bounds().Dx(), img.Bounds().Dy()

	grid, err := imaging.ToGrid(imaging.FitWithin(img, gridBound(maxCols), gridBound(maxRows)))
	if err != nil {
		return nil, err
	}

	s.grid = grid
	s.sel.Reset()
	s.logger.Printf("session %s: imported %dx%d image as %dx%d grid", s.id, srcW, srcH, grid.Cols(), grid.Rows())
	s.render()

	res := &ImportResult{
		SourceWidth:  srcW,
		SourceHeight: srcH,
		Cols:         grid.Cols(),
		Rows:         grid.Rows(),
		Painted:      grid.Painted(),
		Downsampled:  grid.Cols() != srcW || grid.Rows() != srcH,
	}
	if info, err := imaging.Inspect(data); err == nil {
		res.SourceFormat = info.Format
	}
	return res, nil
}

func gridBound(n int) int {
	if n <= 0 || n > pixel.MaxGridSide {
		return pixel.MaxGridSide
	}
	return n
}

// Export is an encoded copy of the grid.
type Export struct {
	Data   []byte
	Format imaging.Format
	Width  int
	Height int
}

// Filename suggests a file name with the format's extension.
func (e *Export) Filename() string {
	return "dotart." + e.Format.Ext()
}

func (e *Export) String() string {
	return fmt.Sprintf("%s %dx%d (%d bytes)", e.Format, e.Width, e.Height, len(e.Data))
}

// Export encodes the grid with each cell magnified to a scale x scale block.
// A non-positive scale or empty format tag uses the configured default.
func (s *Session) Export(scale int, formatTag string) (*Export, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if scale <= 0 {
		scale = s.cfg.ExportScale
	}
	if formatTag == "" {
		formatTag = s.cfg.ExportFormat
	}
	format, err := imaging.ParseFormat(formatTag)
	if err != nil {
		return nil, err
	}

	img, err := imaging.FromGrid(s.grid, scale)
	if err != nil {
		return nil, err
	}
	data, err := s.encoder.Encode(img, format)
	if err != nil {
		return nil, err
	}

	s.logger.Printf("session %s: exported %s at %dx (%d bytes)", s.id, format, scale, len(data))
	return &Export{
		Data:   data,
		Format: format,
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}, nil
}

// Sample reads cell (x, y) without changing anything.
func (s *Session) Sample(x, y int) (*imaging.CellSample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return imaging.SampleCell(s.grid, x, y)
}

// ColorStats returns the count most used colours in the grid.
func (s *Session) ColorStats(count int) *imaging.ColorStatsResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return imaging.ColorStats(s.grid, count)
}

// State summarises the session for display.
type State struct {
	ID        string         `json:"id"`
	Cols      int            `json:"cols"`
	Rows      int            `json:"rows"`
	Painted   int            `json:"painted"`
	Tool      Tool           `json:"tool"`
	Pressed   bool           `json:"pressed"`
	Selection string         `json:"selection"`
	Rect      *pixel.Rect    `json:"selection_rect,omitempty"`
	Color     ColorState     `json:"color"`
	Palette   []string       `json:"palette"`
	Defaults  ExportDefaults `json:"export_defaults"`
}

// ExportDefaults are the configured export settings.
type ExportDefaults struct {
	Scale  int    `json:"scale"`
	Format string `json:"format"`
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		ID:        s.id,
		Cols:      s.grid.Cols(),
		Rows:      s.grid.Rows(),
		Painted:   s.grid.Painted(),
		Tool:      s.tool,
		Pressed:   s.pressed,
		Selection: s.sel.State().String(),
		Color:     s.colorState(),
		Palette:   make([]string, 0, s.palette.Len()),
		Defaults:  ExportDefaults{Scale: s.cfg.ExportScale, Format: s.cfg.ExportFormat},
	}
	if r, ok := s.sel.Rect(s.grid); ok {
		st.Rect = &r
	}
	for _, c := range s.palette.Colors() {
		st.Palette = append(st.Palette, c.Hex())
	}
	return st
}
