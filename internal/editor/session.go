package editor

import (
	"fmt"
	"image"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ironsheep/dotart-mcp/internal/colors"
	"github.com/ironsheep/dotart-mcp/internal/config"
	"github.com/ironsheep/dotart-mcp/internal/imaging"
	"github.com/ironsheep/dotart-mcp/internal/pixel"
)

// Renderer redraws the grid and optional selection overlay. It is called
// after every mutation with the session lock held and must not call back
// into the session.
type Renderer interface {
	Render(g *pixel.Grid, overlay *pixel.Overlay)
}

// Decoder turns encoded image bytes into a raster.
type Decoder interface {
	Decode(data []byte) (*image.NRGBA, error)
}

// Encoder turns a raster into bytes of the requested format.
type Encoder interface {
	Encode(img image.Image, f imaging.Format) ([]byte, error)
}

// Tool selects how pointer events are interpreted.
type Tool string

// Editing tools.
const (
	ToolPencil     Tool = "pencil"
	ToolEraser     Tool = "eraser"
	ToolSelect     Tool = "select"
	ToolRect       Tool = "rect"
	ToolEyedropper Tool = "eyedropper"
)

// ParseTool validates a tool name.
func ParseTool(name string) (Tool, error) {
	switch t := Tool(strings.ToLower(strings.TrimSpace(name))); t {
	case ToolPencil, ToolEraser, ToolSelect, ToolRect, ToolEyedropper:
		return t, nil
	default:
		return "", fmt.Errorf("unknown tool: %s", name)
	}
}

// Option configures a Session.
type Option func(*Session)

// WithRenderer sets the render capability. The default renders nothing.
func WithRenderer(r Renderer) Option {
	return func(s *Session) { s.renderer = r }
}

// WithDecoder sets the decode capability used by Import.
func WithDecoder(d Decoder) Option {
	return func(s *Session) { s.decoder = d }
}

// WithEncoder sets the encode capability used by Export.
func WithEncoder(e Encoder) Option {
	return func(s *Session) { s.encoder = e }
}

// WithLogger sets the debug logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// Session is one editor: a grid plus the state needed to edit it.
type Session struct {
	mu sync.Mutex

	id  string
	cfg config.Config

	grid    *pixel.Grid
	sel     pixel.Selection
	color   *colors.Model
	palette *colors.Palette
	tool    Tool

	// pressed is true between a press and its release.
	pressed bool
	// rectFrom and rectTo track the rect tool's gesture.
	rectFrom, rectTo [2]int

	renderer Renderer
	decoder  Decoder
	encoder  Encoder
	logger   *log.Logger
}

// New creates a session with a transparent cfg.Cols x cfg.Rows grid, black
// working colour, empty palette and the pencil tool, then renders it once.
func New(cfg config.Config, opts ...Option) (*Session, error) {
	grid, err := pixel.NewGrid(cfg.Cols, cfg.Rows)
	if err != nil {
		return nil, fmt.Errorf("failed to create grid: %w", err)
	}

	s := &Session{
		id:      uuid.NewString(),
		cfg:     cfg,
		grid:    grid,
		color:   colors.NewModel(),
		palette: colors.NewPalette(),
		tool:    ToolPencil,
		decoder: imaging.Codec{},
		encoder: imaging.Codec{},
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.color.OnChange(func(c colors.RGB) {
		s.logger.Printf("session %s: color %s", s.id, c)
	})
	s.render()
	return s, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// render must be called with s.mu held.
func (s *Session) render() {
	if s.renderer == nil {
		return
	}
	s.renderer.Render(s.grid, s.overlay())
}

func (s *Session) overlay() *pixel.Overlay {
	if s.tool == ToolRect && s.pressed {
		r, ok := pixel.Rect{X1: s.rectFrom[0], Y1: s.rectFrom[1], X2: s.rectTo[0], Y2: s.rectTo[1]}.
			Clamp(s.grid.Cols(), s.grid.Rows())
		if ok {
			return &pixel.Overlay{Rect: r}
		}
		return nil
	}
	return s.sel.Overlay(s.grid)
}

// idle rejects operations that arrive in the middle of a gesture.
func (s *Session) idle() error {
	if s.pressed {
		return fmt.Errorf("%w: release the pointer first", pixel.ErrGestureInProgress)
	}
	return nil
}

// Tool returns the active tool.
func (s *Session) Tool() Tool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tool
}

// SetTool switches tools. Leaving the select tool discards any selection.
func (s *Session) SetTool(t Tool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parsed, err := ParseTool(string(t))
	if err != nil {
		return err
	}
	if err := s.idle(); err != nil {
		return err
	}
	if parsed != ToolSelect {
		s.sel.Reset()
	}
	s.tool = parsed
	s.render()
	return nil
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() *pixel.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Clone()
}

// Resize changes the grid dimensions, keeping overlapping content. Any
// selection is discarded. Invalid dimensions leave everything unchanged.
func (s *Session) Resize(cols, rows int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.idle(); err != nil {
		return err
	}
	if err := s.grid.Resize(cols, rows); err != nil {
		return err
	}
	s.sel.Reset()
	s.logger.Printf("session %s: resized to %dx%d", s.id, cols, rows)
	s.render()
	return nil
}

// Reset replaces the grid with a new transparent one of the given size.
func (s *Session) Reset(cols, rows int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.idle(); err != nil {
		return err
	}
	grid, err := pixel.NewGrid(cols, rows)
	if err != nil {
		return err
	}
	s.grid = grid
	s.sel.Reset()
	s.logger.Printf("session %s: new %dx%d grid", s.id, cols, rows)
	s.render()
	return nil
}

// Paint sets cell (x, y) to the working colour.
func (s *Session) Paint(x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setCell(x, y, pixel.Paint(s.color.RGB()))
}

// Erase makes cell (x, y) transparent.
func (s *Session) Erase(x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setCell(x, y, pixel.Transparent)
}

func (s *Session) setCell(x, y int, c pixel.Cell) error {
	if err := s.idle(); err != nil {
		return err
	}
	if err := s.grid.Set(x, y, c); err != nil {
		return err
	}
	s.render()
	return nil
}

// FillAll paints every cell with the working colour.
func (s *Session) FillAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.idle(); err != nil {
		return err
	}
	s.grid.FillAll(pixel.Paint(s.color.RGB()))
	s.render()
	return nil
}

// FillRect paints a rectangle, given by either pair of opposite corners and
// clamped to the grid, with the working colour. It returns the filled area.
func (s *Session) FillRect(r pixel.Rect) (pixel.Rect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.idle(); err != nil {
		return pixel.Rect{}, err
	}
	filled, err := s.grid.FillRect(r, pixel.Paint(s.color.RGB()))
	if err != nil {
		return pixel.Rect{}, err
	}
	s.render()
	return filled, nil
}

// FillSelection paints the finalized selection with the working colour and
// re-stages its cells so a following move carries the new content.
func (s *Session) FillSelection() (pixel.Rect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.idle(); err != nil {
		return pixel.Rect{}, err
	}
	if s.sel.State() != pixel.Selected {
		return pixel.Rect{}, fmt.Errorf("%w: select an area first", pixel.ErrEmptySelection)
	}
	r, _ := s.sel.Rect(s.grid)
	filled, err := s.grid.FillRect(r, pixel.Paint(s.color.RGB()))
	if err != nil {
		return pixel.Rect{}, err
	}
	if err := s.sel.Restage(s.grid); err != nil {
		return pixel.Rect{}, err
	}
	s.render()
	return filled, nil
}
