package colors

import (
	"errors"
	"fmt"
)

// PaletteCapacity is the number of colours a palette keeps.
const PaletteCapacity = 10

// ErrPaletteIndex is returned when selecting a palette slot that does not exist.
var ErrPaletteIndex = errors.New("palette index out of range")

// Palette is a bounded, duplicate-free list of saved colours.
//
// Colours are kept in insertion order, oldest first. When the palette is
// full, adding a new colour evicts the oldest one.
type Palette struct {
	colors []RGB
}

// NewPalette returns an empty palette.
func NewPalette() *Palette {
	return &Palette{colors: make([]RGB, 0, PaletteCapacity)}
}

// Add appends c to the palette. It reports false, leaving the palette
// untouched, if c is already present.
func (p *Palette) Add(c RGB) bool {
	if p.Contains(c) {
		return false
	}
	if len(p.colors) == PaletteCapacity {
		copy(p.colors, p.colors[1:])
		p.colors = p.colors[:PaletteCapacity-1]
	}
	p.colors = append(p.colors, c)
	return true
}

// Select returns the colour stored at index.
func (p *Palette) Select(index int) (RGB, error) {
	if index < 0 || index >= len(p.colors) {
		return RGB{}, fmt.Errorf("%w: %d (palette holds %d colors)", ErrPaletteIndex, index, len(p.colors))
	}
	return p.colors[index], nil
}

// Contains reports whether c is saved in the palette.
func (p *Palette) Contains(c RGB) bool {
	for _, existing := range p.colors {
		if existing == c {
			return true
		}
	}
	return false
}

// Len returns the number of saved colours.
func (p *Palette) Len() int { return len(p.colors) }

// Colors returns a copy of the saved colours, oldest first.
func (p *Palette) Colors() []RGB {
	out := make([]RGB, len(p.colors))
	copy(out, p.colors)
	return out
}
