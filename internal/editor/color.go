package editor

import "github.com/ironsheep/dotart-mcp/internal/colors"

// ColorState is the working colour in every representation.
type ColorState struct {
	RGB colors.RGB `json:"rgb"`
	HSB colors.HSB `json:"hsb"`
	Hex string     `json:"hex"`
	CSS string     `json:"css"`
}

func (s *Session) colorState() ColorState {
	rgb := s.color.RGB()
	return ColorState{RGB: rgb, HSB: s.color.HSB(), Hex: rgb.Hex(), CSS: s.color.String()}
}

// Color returns the working colour.
func (s *Session) Color() ColorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.colorState()
}

// SetRGB sets the working colour from RGB channels, clamped to 0-255.
func (s *Session) SetRGB(r, g, b int) ColorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.color.SetRGB(r, g, b)
	return s.colorState()
}

// SetHSB sets the working colour from hue, saturation and brightness.
func (s *Session) SetHSB(h, sat, b int) ColorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.color.SetHSB(h, sat, b)
	return s.colorState()
}

// SetHex sets the working colour from a hex string such as "#FF8040".
func (s *Session) SetHex(hex string) (ColorState, error) {
	c, err := colors.ParseHex(hex)
	if err != nil {
		return ColorState{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.color.Set(c)
	return s.colorState(), nil
}

// SaveColor adds the working colour to the palette. It reports false if the
// colour was already saved.
func (s *Session) SaveColor() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.palette.Add(s.color.RGB())
}

// AddColor adds c to the palette without changing the working colour.
func (s *Session) AddColor(c colors.RGB) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.palette.Add(c)
}

// UsePaletteColor makes palette entry index the working colour.
func (s *Session) UsePaletteColor(index int) (ColorState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.palette.Select(index)
	if err != nil {
		return ColorState{}, err
	}
	s.color.Set(c)
	return s.colorState(), nil
}

// Palette returns the saved colours, oldest first.
func (s *Session) Palette() []colors.RGB {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.palette.Colors()
}
