// Package config reads the editor session settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/dotart-mcp/internal/imaging"
)

// Environment variables read by Load.
const (
	EnvCols         = "DOTART_COLS"
	EnvRows         = "DOTART_ROWS"
	EnvExportScale  = "DOTART_EXPORT_SCALE"
	EnvExportFormat = "DOTART_EXPORT_FORMAT"
	EnvCellSize     = "DOTART_CELL_SIZE"
	EnvLogLevel     = "DOTART_LOG_LEVEL"
)

// Config holds the session configuration surface.
type Config struct {
	// Cols and Rows are the initial grid dimensions.
	Cols int
	Rows int

	// ExportScale is the default export magnification (cells to pixels).
	ExportScale int

	// ExportFormat is the default export format tag.
	ExportFormat string

	// CellSize is the rendered size of one cell in pixels.
	CellSize int

	// Debug enables debug logging.
	Debug bool
}

// Default returns the built-in configuration: a 16x16 grid exported as PNG
// at 1:1, rendered with 16 pixel cells.
func Default() Config {
	return Config{
		Cols:         16,
		Rows:         16,
		ExportScale:  1,
		ExportFormat: "png",
		CellSize:     16,
	}
}

// Load returns Default overridden by any DOTART_* variables that are set.
func Load() (Config, error) {
	return loadFrom(os.Getenv)
}

func loadFrom(getenv func(string) string) (Config, error) {
	cfg := Default()

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvCols, &cfg.Cols},
		{EnvRows, &cfg.Rows},
		{EnvExportScale, &cfg.ExportScale},
		{EnvCellSize, &cfg.CellSize},
	}
	for _, v := range ints {
		raw := strings.TrimSpace(getenv(v.name))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("%s must be a positive integer, got %q", v.name, raw)
		}
		*v.dst = n
	}

	if f := strings.TrimSpace(getenv(EnvExportFormat)); f != "" {
		if _, err := imaging.ParseFormat(f); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvExportFormat, err)
		}
		cfg.ExportFormat = f
	}
	cfg.Debug = strings.EqualFold(strings.TrimSpace(getenv(EnvLogLevel)), "debug")

	return cfg, nil
}
