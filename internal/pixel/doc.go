// Package pixel implements the editable dot-art grid and its rectangular
// selection/move state machine.
//
// # Coordinate System
//
// Cells are addressed by 0-based (x, y) with (0,0) at the top-left, X
// increasing rightward (columns) and Y increasing downward (rows). Unlike the
// image packages, rectangles here are inclusive on both corners: Rect{0,0,0,0}
// covers exactly one cell.
//
// # Transparency
//
// A Cell either holds an RGB colour or is transparent (unpainted). There is no
// partial transparency.
//
// # Atomicity
//
// Every mutating operation either fully applies or returns an error and leaves
// the grid and selection untouched. Errors wrap one of the package's sentinel
// kinds so callers can test them with errors.Is.
//
// # Thread Safety
//
// Grid and Selection are not safe for concurrent use. The editor session owns
// them and serialises all access.
package pixel
