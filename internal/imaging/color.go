package imaging

import (
	"fmt"
	"sort"

	"github.com/ironsheep/dotart-mcp/internal/colors"
	"github.com/ironsheep/dotart-mcp/internal/pixel"
)

// CellSample contains the colour of one grid cell in multiple representations.
//
// For a transparent cell Painted is false and the colour fields are omitted.
type CellSample struct {
	X       int         `json:"x"`
	Y       int         `json:"y"`
	Painted bool        `json:"painted"`
	Hex     string      `json:"hex,omitempty"`
	RGB     *colors.RGB `json:"rgb,omitempty"`
	HSB     *colors.HSB `json:"hsb,omitempty"`
}

// SampleCell reads the cell at (x, y).
//
// Returns an error wrapping pixel.ErrOutOfBounds if (x, y) is outside the grid.
func SampleCell(g *pixel.Grid, x, y int) (*CellSample, error) {
	c, err := g.At(x, y)
	if err != nil {
		return nil, fmt.Errorf("failed to sample cell: %w", err)
	}

	s := &CellSample{X: x, Y: y, Painted: c.Painted}
	if c.Painted {
		rgb := c.Color
		hsb := rgb.HSB()
		s.Hex = rgb.Hex()
		s.RGB = &rgb
		s.HSB = &hsb
	}
	return s, nil
}

// ColorFrequency represents a colour and how many cells use it.
type ColorFrequency struct {
	Hex        string     `json:"hex"`        // Hex color "#RRGGBB"
	RGB        colors.RGB `json:"rgb"`        // RGB components
	Count      int        `json:"count"`      // Number of cells with this color
	Percentage float64    `json:"percentage"` // Share of painted cells (0-100)
}

// ColorStatsResult summarises the colours used in a grid.
type ColorStatsResult struct {
	Colors      []ColorFrequency `json:"colors"`      // Most used first
	Painted     int              `json:"painted"`     // Painted cell count
	Transparent int              `json:"transparent"` // Transparent cell count
}

// ColorStats returns up to count of the most used colours in the grid.
//
// Unlike photographs, dot art uses few exact colours, so no quantisation is
// applied. Percentages are relative to painted cells. Colours used equally
// often are ordered by hex value so results are stable.
func ColorStats(g *pixel.Grid, count int) *ColorStatsResult {
	counts := make(map[colors.RGB]int)
	painted := 0

	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			c, _ := g.At(x, y)
			if !c.Painted {
				continue
			}
			counts[c.Color]++
			painted++
		}
	}

	freqs := make([]ColorFrequency, 0, len(counts))
	for rgb, n := range counts {
		freqs = append(freqs, ColorFrequency{
			Hex:        rgb.Hex(),
			RGB:        rgb,
			Count:      n,
			Percentage: float64(n) / float64(painted) * 100,
		})
	}

	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Hex < freqs[j].Hex
	})

	if count > 0 && len(freqs) > count {
		freqs = freqs[:count]
	}

	return &ColorStatsResult{
		Colors:      freqs,
		Painted:     painted,
		Transparent: g.Cols()*g.Rows() - painted,
	}
}
