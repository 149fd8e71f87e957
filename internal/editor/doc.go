// Package editor implements the dot-art editing session.
//
// A Session owns the one grid, selection, working colour and palette of an
// editor. User gestures arrive as three abstract pointer events (press, move,
// release) carrying a cell coordinate; the session routes them according to
// the active Tool and invokes the render capability after every mutation.
//
// # Tools
//
//   - pencil: press and drag paint cells with the working colour
//   - eraser: press and drag make cells transparent
//   - select: press/drag/release selects a rectangle; pressing inside it
//     and dragging moves its content
//   - rect: press anchors a rectangle, release fills it with the working colour
//   - eyedropper: press copies a painted cell's colour into the working colour
//
// # Concurrency
//
// All Session methods are safe for concurrent use. They are serialised by one
// mutex, so the session remains the single logical owner of the grid. Gesture
// ordering is still the caller's responsibility: a press must be followed by
// its release before the next press, otherwise the press is rejected with
// pixel.ErrGestureInProgress.
package editor
