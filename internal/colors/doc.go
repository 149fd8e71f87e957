// Package colors holds the editor's colour values: the working colour kept in
// both RGB and HSB form, conversions between the two spaces, and the bounded
// palette of saved colours.
//
// # Colour Spaces
//
// Colours are carried in two equivalent integer coordinate systems:
//   - RGB: 8-bit components (0-255)
//   - HSB: Hue (0-359 degrees), Saturation (0-100), Brightness (0-100)
//
// HSB is also known as HSV. Conversions round to the nearest integer, so a
// round trip through the other space may differ by one unit per component.
// When a colour is grey (all channels equal) its hue is undefined and is
// reported as 0.
//
// # Synchronisation
//
// Model never stores the two representations independently: setting one
// always recomputes the other, and the value that was set is kept verbatim.
package colors
