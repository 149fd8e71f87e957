package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/ironsheep/dotart-mcp/internal/imaging"
)

// envMap returns a getenv function backed by a map
func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Cols != 16 || cfg.Rows != 16 {
		t.Errorf("grid: got %dx%d, want 16x16", cfg.Cols, cfg.Rows)
	}
	if cfg.ExportScale != 1 || cfg.ExportFormat != "png" || cfg.CellSize != 16 || cfg.Debug {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFrom(t *testing.T) {
	cfg, err := loadFrom(envMap(map[string]string{
		EnvCols:         "32",
		EnvRows:         " 24 ",
		EnvExportScale:  "4",
		EnvExportFormat: "icon",
		EnvCellSize:     "8",
		EnvLogLevel:     "DEBUG",
	}))
	if err != nil {
		t.Fatalf("loadFrom failed: %v", err)
	}

	want := Config{Cols: 32, Rows: 24, ExportScale: 4, ExportFormat: "icon", CellSize: 8, Debug: true}
	if cfg != want {
		t.Errorf("config: got %+v, want %+v", cfg, want)
	}
}

func TestLoadFrom_Empty(t *testing.T) {
	cfg, err := loadFrom(envMap(nil))
	if err != nil {
		t.Fatalf("loadFrom failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("config: got %+v, want defaults", cfg)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero cols", EnvCols, "0"},
		{"negative rows", EnvRows, "-4"},
		{"text scale", EnvExportScale, "big"},
		{"float cell size", EnvCellSize, "1.5"},
		{"unknown format", EnvExportFormat, "xcf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadFrom(envMap(map[string]string{tt.key: tt.value}))
			if err == nil {
				t.Fatal("loadFrom should fail")
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error %q does not name %s", err, tt.key)
			}
		})
	}
}

func TestLoadFrom_UnknownFormat(t *testing.T) {
	_, err := loadFrom(envMap(map[string]string{EnvExportFormat: "tga"}))
	if !errors.Is(err, imaging.ErrUnsupportedFormat) {
		t.Errorf("got %v, want ErrUnsupportedFormat", err)
	}
}
