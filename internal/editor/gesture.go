package editor

import (
	"fmt"

	"github.com/ironsheep/dotart-mcp/internal/pixel"
)

// Press handles a pointer press on cell (x, y) with the active tool.
//
// A press outside the grid is rejected with pixel.ErrOutOfBounds and starts
// no gesture. A press before the previous gesture's release is rejected with
// pixel.ErrGestureInProgress.
func (s *Session) Press(x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.idle(); err != nil {
		return err
	}
	if !s.grid.InBounds(x, y) {
		return fmt.Errorf("press: %w: (%d,%d) not in %dx%d", pixel.ErrOutOfBounds, x, y, s.grid.Cols(), s.grid.Rows())
	}

	switch s.tool {
	case ToolPencil:
		_ = s.grid.Set(x, y, pixel.Paint(s.color.RGB()))
	case ToolEraser:
		_ = s.grid.Set(x, y, pixel.Transparent)
	case ToolSelect:
		if err := s.sel.Press(s.grid, x, y); err != nil {
			return err
		}
	case ToolRect:
		s.rectFrom = [2]int{x, y}
		s.rectTo = s.rectFrom
	case ToolEyedropper:
		if c, _ := s.grid.At(x, y); c.Painted {
			s.color.Set(c.Color)
		}
	}

	s.pressed = true
	s.render()
	return nil
}

// Move handles the pointer moving to cell (x, y) while pressed. Moves
// without a preceding press are ignored, as are pencil and eraser moves
// outside the grid.
func (s *Session) Move(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pressed {
		return
	}

	switch s.tool {
	case ToolPencil:
		if s.grid.Set(x, y, pixel.Paint(s.color.RGB())) != nil {
			return
		}
	case ToolEraser:
		if s.grid.Set(x, y, pixel.Transparent) != nil {
			return
		}
	case ToolSelect:
		s.sel.Move(s.grid, x, y)
	case ToolRect:
		s.rectTo = [2]int{x, y}
	default:
		return
	}
	s.render()
}

// Release ends the gesture at cell (x, y). Releasing without a press is a
// no-op.
//
// With the select tool, releasing after selecting stages the selection and
// releasing after dragging commits the move. With the rect tool, the
// rectangle from the press cell to (x, y) is filled with the working colour.
func (s *Session) Release(x, y int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pressed {
		return nil
	}
	s.pressed = false
	defer s.render()

	switch s.tool {
	case ToolSelect:
		moved, err := s.sel.Release(s.grid, x, y)
		if err != nil {
			return err
		}
		if moved {
			s.logger.Printf("session %s: moved selection", s.id)
		}
	case ToolRect:
		s.rectTo = [2]int{x, y}
		r := pixel.Rect{X1: s.rectFrom[0], Y1: s.rectFrom[1], X2: x, Y2: y}
		if _, err := s.grid.FillRect(r, pixel.Paint(s.color.RGB())); err != nil {
			return err
		}
	}
	return nil
}

// SelectionState returns the stage of the select/move gesture.
func (s *Session) SelectionState() pixel.SelectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.State()
}

// Selection returns the selection rectangle, if one exists.
func (s *Session) Selection() (pixel.Rect, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.Rect(s.grid)
}
