package pixel

import "fmt"

// SelectionState is a stage of the select/move gesture.
type SelectionState int

const (
	// Idle means no selection exists.
	Idle SelectionState = iota
	// Selecting means a selection rectangle is being dragged out.
	Selecting
	// Selected means a finalized rectangle and its staged cells exist.
	Selected
	// Dragging means the staged cells are being moved.
	Dragging
)

func (s SelectionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Selecting:
		return "selecting"
	case Selected:
		return "selected"
	case Dragging:
		return "dragging"
	default:
		return fmt.Sprintf("SelectionState(%d)", int(s))
	}
}

// Selection drives cutting out a rectangle of cells and moving it.
//
// It is fed press, move and release events carrying cell coordinates, in that
// order per gesture:
//
//	Idle --press--> Selecting --release--> Selected
//	Selected --press inside--> Dragging --release--> Idle (move committed)
//	Selected --press outside--> Selecting (old selection discarded)
//
// While dragging, only the selection rectangle moves; the grid is written once,
// on release, by clearing the source rectangle and then pasting the staged
// cells' painted entries at the destination.
//
// The zero Selection is Idle and ready for use.
type Selection struct {
	state SelectionState

	// anchor and current are the raw pointer cells while Selecting.
	anchor, current [2]int

	// rect is the finalized rectangle; while Dragging it is the candidate
	// destination and source keeps the original position.
	rect   Rect
	source Rect
	buf    *Buffer

	grabX, grabY int
}

// State returns the current stage.
func (s *Selection) State() SelectionState { return s.state }

// Rect returns the rectangle to outline, if any. While Selecting it is the
// normalized rectangle between anchor and pointer, clamped to the grid.
func (s *Selection) Rect(g *Grid) (Rect, bool) {
	switch s.state {
	case Selecting:
		return s.rawRect().Clamp(g.Cols(), g.Rows())
	case Selected, Dragging:
		return s.rect, true
	default:
		return Rect{}, false
	}
}

// Source returns the rectangle the staged cells were copied from.
func (s *Selection) Source() (Rect, bool) {
	if s.state != Selected && s.state != Dragging {
		return Rect{}, false
	}
	return s.source, true
}

// Buffer returns the staged cells of a finalized selection, or nil.
func (s *Selection) Buffer() *Buffer {
	if s.state != Selected && s.state != Dragging {
		return nil
	}
	return s.buf
}

// Floating reports whether the staged cells should be previewed at the
// selection rectangle instead of being read from the grid.
func (s *Selection) Floating() bool { return s.state == Dragging }

// Overlay describes what a renderer draws over the grid for a selection.
type Overlay struct {
	// Rect is the rectangle to outline.
	Rect Rect

	// Source and Floating are set only while dragging: the staged cells are
	// previewed at Rect and the Source cells are shown as lifted.
	Source   Rect
	Floating *Buffer
}

// Overlay returns the current selection overlay, or nil when Idle.
func (s *Selection) Overlay(g *Grid) *Overlay {
	r, ok := s.Rect(g)
	if !ok {
		return nil
	}
	ov := &Overlay{Rect: r}
	if s.Floating() {
		ov.Source = s.source
		ov.Floating = s.buf
	}
	return ov
}

// Press starts a gesture at cell (x, y).
//
// In Selected state a press inside the rectangle begins a move; anywhere else
// it discards the selection and starts a new one anchored at (x, y).
func (s *Selection) Press(g *Grid, x, y int) error {
	if s.state == Selecting || s.state == Dragging {
		return fmt.Errorf("%w: selection is %s", ErrGestureInProgress, s.state)
	}
	if !g.InBounds(x, y) {
		return g.outOfBounds(x, y)
	}
	if s.state == Selected && s.rect.Contains(x, y) {
		s.state = Dragging
		s.grabX, s.grabY = x-s.rect.X1, y-s.rect.Y1
		return nil
	}
	s.Reset()
	s.state = Selecting
	s.anchor = [2]int{x, y}
	s.current = s.anchor
	return nil
}

// Move tracks the pointer at cell (x, y). Coordinates outside the grid are
// accepted; they are clamped when the selection is finalized or the move
// candidate is computed. Moves outside a gesture are ignored.
func (s *Selection) Move(g *Grid, x, y int) {
	switch s.state {
	case Selecting:
		s.current = [2]int{x, y}
	case Dragging:
		s.rect = s.candidate(g, x, y)
	}
}

// Release ends the gesture at cell (x, y). It reports whether the grid was
// modified, which only happens when a move is committed.
//
// Ending a Selecting gesture normalizes and clamps the rectangle and stages
// a copy of its cells. Ending a Dragging gesture commits the move and returns
// to Idle.
func (s *Selection) Release(g *Grid, x, y int) (bool, error) {
	switch s.state {
	case Selecting:
		s.current = [2]int{x, y}
		r, ok := s.rawRect().Clamp(g.Cols(), g.Rows())
		if !ok {
			s.Reset()
			return false, fmt.Errorf("%w: selection outside grid", ErrOutOfBounds)
		}
		buf, err := g.Snapshot(r)
		if err != nil {
			s.Reset()
			return false, err
		}
		s.state = Selected
		s.rect, s.source, s.buf = r, r, buf
		return false, nil
	case Dragging:
		s.rect = s.candidate(g, x, y)
		s.commit(g)
		return true, nil
	default:
		return false, nil
	}
}

// Restage re-copies the staged cells from the grid after the selected area
// was modified in place.
func (s *Selection) Restage(g *Grid) error {
	if s.state != Selected {
		return ErrEmptySelection
	}
	buf, err := g.Snapshot(s.rect)
	if err != nil {
		return err
	}
	s.buf = buf
	return nil
}

// Reset discards any selection and staged cells.
func (s *Selection) Reset() {
	*s = Selection{}
}

func (s *Selection) rawRect() Rect {
	return Rect{X1: s.anchor[0], Y1: s.anchor[1], X2: s.current[0], Y2: s.current[1]}
}

// candidate places the staged block under the pointer's grab point, kept
// fully inside the grid.
func (s *Selection) candidate(g *Grid, x, y int) Rect {
	w, h := s.buf.Width(), s.buf.Height()
	nx := min(max(x-s.grabX, 0), g.Cols()-w)
	ny := min(max(y-s.grabY, 0), g.Rows()-h)
	return s.source.MoveTo(nx, ny)
}

func (s *Selection) commit(g *Grid) {
	// Clearing first keeps overlapping source and destination from
	// leaving a ghost of the old content.
	_, _ = g.FillRect(s.source, Transparent)
	g.Paste(s.buf, s.rect.X1, s.rect.Y1)
	s.Reset()
}
