package pixel

// Rect is a rectangle of cells with inclusive corners.
//
// A Rect built from raw pointer positions may have X1 > X2 or Y1 > Y2; call
// Normalize before iterating.
type Rect struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Normalize orders the corners so X1 <= X2 and Y1 <= Y2.
func (r Rect) Normalize() Rect {
	if r.X1 > r.X2 {
		r.X1, r.X2 = r.X2, r.X1
	}
	if r.Y1 > r.Y2 {
		r.Y1, r.Y2 = r.Y2, r.Y1
	}
	return r
}

// Clamp normalizes r and intersects it with a cols x rows grid. It reports
// false when the rectangle lies entirely outside the grid.
func (r Rect) Clamp(cols, rows int) (Rect, bool) {
	r = r.Normalize()
	if r.X2 < 0 || r.Y2 < 0 || r.X1 >= cols || r.Y1 >= rows {
		return Rect{}, false
	}
	r.X1 = max(r.X1, 0)
	r.Y1 = max(r.Y1, 0)
	r.X2 = min(r.X2, cols-1)
	r.Y2 = min(r.Y2, rows-1)
	return r, true
}

// Width is the number of columns covered by a normalized rectangle.
func (r Rect) Width() int { return r.X2 - r.X1 + 1 }

// Height is the number of rows covered by a normalized rectangle.
func (r Rect) Height() int { return r.Y2 - r.Y1 + 1 }

// Contains reports whether cell (x, y) lies inside a normalized rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// MoveTo returns r translated so its top-left corner is (x, y).
func (r Rect) MoveTo(x, y int) Rect {
	return Rect{X1: x, Y1: y, X2: x + r.Width() - 1, Y2: y + r.Height() - 1}
}

// Overlaps reports whether two normalized rectangles share a cell.
func (r Rect) Overlaps(o Rect) bool {
	return r.X1 <= o.X2 && o.X1 <= r.X2 && r.Y1 <= o.Y2 && o.Y1 <= r.Y2
}
