package colors

import (
	"errors"
	"testing"
)

func TestHSBToRGB_KnownColors(t *testing.T) {
	tests := []struct {
		name string
		hsb  HSB
		want RGB
	}{
		{"pure red", HSB{0, 100, 100}, RGB{255, 0, 0}},
		{"yellow", HSB{60, 100, 100}, RGB{255, 255, 0}},
		{"pure green", HSB{120, 100, 100}, RGB{0, 255, 0}},
		{"cyan", HSB{180, 100, 100}, RGB{0, 255, 255}},
		{"pure blue", HSB{240, 100, 100}, RGB{0, 0, 255}},
		{"magenta", HSB{300, 100, 100}, RGB{255, 0, 255}},
		{"white", HSB{0, 0, 100}, RGB{255, 255, 255}},
		{"black", HSB{0, 0, 0}, RGB{0, 0, 0}},
		{"mid gray", HSB{0, 0, 50}, RGB{128, 128, 128}},
		{"dark red", HSB{7, 100, 60}, RGB{153, 18, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSBToRGB(tt.hsb)
			if got != tt.want {
				t.Errorf("HSBToRGB(%v): got %v, want %v", tt.hsb, got, tt.want)
			}
		})
	}
}

func TestRGBToHSB_KnownColors(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSB
	}{
		{"pure red", RGB{255, 0, 0}, HSB{0, 100, 100}},
		{"pure green", RGB{0, 255, 0}, HSB{120, 100, 100}},
		{"pure blue", RGB{0, 0, 255}, HSB{240, 100, 100}},
		{"orange", RGB{255, 128, 0}, HSB{30, 100, 100}},
		{"brick", RGB{200, 50, 50}, HSB{0, 75, 78}},
		{"gray has zero hue", RGB{128, 128, 128}, HSB{0, 0, 50}},
		{"black", RGB{0, 0, 0}, HSB{0, 0, 0}},
		{"hue near 360 wraps", RGB{255, 0, 1}, HSB{0, 100, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSB(tt.rgb)
			if got != tt.want {
				t.Errorf("RGBToHSB(%v): got %+v, want %+v", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestHSBRoundTrip(t *testing.T) {
	for h := 0; h < 360; h += 7 {
		for _, s := range []int{60, 80, 100} {
			for _, b := range []int{60, 80, 100} {
				in := HSB{h, s, b}
				out := RGBToHSB(HSBToRGB(in))
				if hueDistance(in.H, out.H) > 1 || abs(in.S-out.S) > 1 || abs(in.B-out.B) > 1 {
					t.Errorf("round trip %+v -> %+v exceeds tolerance", in, out)
				}
			}
		}
	}
}

func TestHSBRoundTrip_Grays(t *testing.T) {
	for b := 0; b <= 100; b += 5 {
		out := RGBToHSB(HSBToRGB(HSB{200, 0, b}))
		if out.H != 0 || out.S != 0 {
			t.Errorf("gray b=%d: got %+v, want hue and saturation 0", b, out)
		}
		if abs(out.B-b) > 1 {
			t.Errorf("gray b=%d: brightness %d outside tolerance", b, out.B)
		}
	}
}

func TestHSBToRGB_NormalizesInput(t *testing.T) {
	tests := []struct {
		name string
		in   HSB
		want RGB
	}{
		{"hue 360 wraps to red", HSB{360, 100, 100}, RGB{255, 0, 0}},
		{"negative hue wraps", HSB{-240, 100, 100}, RGB{0, 255, 0}},
		{"saturation clamped", HSB{240, 150, 100}, RGB{0, 0, 255}},
		{"negative brightness clamped", HSB{0, 100, -5}, RGB{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSBToRGB(tt.in); got != tt.want {
				t.Errorf("HSBToRGB(%+v): got %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGB_Hex(t *testing.T) {
	if got := (RGB{255, 128, 64}).Hex(); got != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", got)
	}
	if got := (RGB{200, 50, 50}).String(); got != "rgb(200, 50, 50)" {
		t.Errorf("String: got %s, want rgb(200, 50, 50)", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#FF0000", RGB{255, 0, 0}, false},
		{"00ff80", RGB{0, 255, 128}, false},
		{"#fff", RGB{255, 255, 255}, false},
		{"", RGB{}, true},
		{"#12345", RGB{}, true},
		{"#GGGGGG", RGB{}, true},
		{"#FF000080", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidHex) {
					t.Errorf("ParseHex(%q): got err %v, want ErrInvalidHex", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q): got %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func hueDistance(a, b int) int {
	d := abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
