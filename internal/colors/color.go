package colors

import (
	"errors"
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned when a hex colour string cannot be parsed.
var ErrInvalidHex = errors.New("invalid hex color")

// RGB represents a colour with 8-bit components.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSB represents a colour in the Hue, Saturation, Brightness colour space.
type HSB struct {
	H int `json:"h"` // Hue: 0-359 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	B int `json:"b"` // Brightness: 0-100 percent (0=black)
}

// Hex returns the colour as "#RRGGBB".
func (c RGB) Hex() string {
	return strings.ToUpper(c.colorful().Hex())
}

// String returns the colour in "rgb(r, g, b)" form.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSB converts the colour to HSB.
func (c RGB) HSB() HSB {
	return RGBToHSB(c)
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// RGB converts the colour to RGB.
func (h HSB) RGB() RGB {
	return HSBToRGB(h)
}

// HSBToRGB converts HSB to RGB using the chroma / hue-sector method.
//
// Components outside their ranges are normalised first: hue wraps modulo 360,
// saturation and brightness are clamped to 0-100.
func HSBToRGB(h HSB) RGB {
	h = h.normalize()
	c := colorful.Hsv(float64(h.H), float64(h.S)/100.0, float64(h.B)/100.0)
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}

// RGBToHSB converts RGB to HSB.
//
// Brightness is the largest channel, saturation is chroma over brightness
// (0 for black) and hue is derived from whichever channel is largest. All
// three are rounded to the nearest integer; a hue that rounds to 360 wraps
// to 0.
func RGBToHSB(c RGB) HSB {
	h, s, v := c.colorful().Hsv()
	hue := int(math.Round(h))
	if hue >= 360 {
		hue -= 360
	}
	return HSB{
		H: hue,
		S: int(math.Round(s * 100)),
		B: int(math.Round(v * 100)),
	}
}

func (h HSB) normalize() HSB {
	return HSB{
		H: ((h.H % 360) + 360) % 360,
		S: clamp(h.S, 0, 100),
		B: clamp(h.B, 0, 100),
	}
}

// ParseHex parses "#RRGGBB", "RRGGBB" or the short "#RGB" form.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGB{}, fmt.Errorf("%w: empty string", ErrInvalidHex)
	}
	if s[0] != '#' {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// RGBFromInts builds an RGB value, clamping each channel to 0-255.
func RGBFromInts(r, g, b int) RGB {
	return RGB{
		R: uint8(clamp(r, 0, 255)),
		G: uint8(clamp(g, 0, 255)),
		B: uint8(clamp(b, 0, 255)),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
