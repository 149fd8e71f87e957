package imaging

import (
	"errors"
	"testing"

	"github.com/ironsheep/dotart-mcp/internal/colors"
	"github.com/ironsheep/dotart-mcp/internal/pixel"
)

func TestSampleCell(t *testing.T) {
	g, _ := pixel.NewGrid(4, 4)
	_ = g.Set(2, 1, pixel.Paint(colors.RGB{R: 255, G: 128, B: 64}))

	result, err := SampleCell(g, 2, 1)
	if err != nil {
		t.Fatalf("SampleCell failed: %v", err)
	}

	if !result.Painted {
		t.Fatal("Painted: got false, want true")
	}
	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if *result.RGB != (colors.RGB{R: 255, G: 128, B: 64}) {
		t.Errorf("RGB: got %v", *result.RGB)
	}
	if result.HSB.H != 20 {
		t.Errorf("HSB hue: got %d, want 20", result.HSB.H)
	}
}

func TestSampleCell_Transparent(t *testing.T) {
	g, _ := pixel.NewGrid(4, 4)

	result, err := SampleCell(g, 0, 0)
	if err != nil {
		t.Fatalf("SampleCell failed: %v", err)
	}
	if result.Painted || result.RGB != nil || result.Hex != "" {
		t.Errorf("transparent sample: got %+v", result)
	}
}

func TestSampleCell_OutOfBounds(t *testing.T) {
	g, _ := pixel.NewGrid(4, 4)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 2},
		{"negative y", 2, -1},
		{"x too large", 4, 2},
		{"y too large", 2, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SampleCell(g, tt.x, tt.y)
			if !errors.Is(err, pixel.ErrOutOfBounds) {
				t.Errorf("SampleCell: got err %v, want ErrOutOfBounds", err)
			}
		})
	}
}

func TestColorStats(t *testing.T) {
	g, _ := pixel.NewGrid(10, 10)
	red := colors.RGB{R: 255}
	green := colors.RGB{G: 255}
	blue := colors.RGB{B: 255}

	_, _ = g.FillRect(pixel.Rect{X1: 0, Y1: 0, X2: 9, Y2: 5}, pixel.Paint(red))
	_, _ = g.FillRect(pixel.Rect{X1: 0, Y1: 6, X2: 9, Y2: 7}, pixel.Paint(green))
	_, _ = g.FillRect(pixel.Rect{X1: 0, Y1: 8, X2: 9, Y2: 8}, pixel.Paint(blue))

	result := ColorStats(g, 5)

	if result.Painted != 90 || result.Transparent != 10 {
		t.Errorf("counts: got %d painted, %d transparent", result.Painted, result.Transparent)
	}
	if len(result.Colors) != 3 {
		t.Fatalf("colors: got %d, want 3", len(result.Colors))
	}

	want := []struct {
		rgb   colors.RGB
		count int
	}{{red, 60}, {green, 20}, {blue, 10}}
	for i, w := range want {
		got := result.Colors[i]
		if got.RGB != w.rgb || got.Count != w.count {
			t.Errorf("color %d: got %v x%d, want %v x%d", i, got.RGB, got.Count, w.rgb, w.count)
		}
	}

	if p := result.Colors[0].Percentage; p < 66.6 || p > 66.7 {
		t.Errorf("red percentage: got %f, want 66.67", p)
	}
}

func TestColorStats_LimitAndTies(t *testing.T) {
	g, _ := pixel.NewGrid(3, 1)
	_ = g.Set(0, 0, pixel.Paint(colors.RGB{R: 2}))
	_ = g.Set(1, 0, pixel.Paint(colors.RGB{R: 1}))
	_ = g.Set(2, 0, pixel.Paint(colors.RGB{R: 3}))

	result := ColorStats(g, 2)
	if len(result.Colors) != 2 {
		t.Fatalf("colors: got %d, want 2", len(result.Colors))
	}
	if result.Colors[0].Hex != "#010000" || result.Colors[1].Hex != "#020000" {
		t.Errorf("tie order: got %s, %s", result.Colors[0].Hex, result.Colors[1].Hex)
	}
}

func TestColorStats_EmptyGrid(t *testing.T) {
	g, _ := pixel.NewGrid(2, 2)
	result := ColorStats(g, 5)
	if len(result.Colors) != 0 || result.Painted != 0 || result.Transparent != 4 {
		t.Errorf("empty grid stats: got %+v", result)
	}
}
