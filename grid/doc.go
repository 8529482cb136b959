// Package grid implements the pure, non-visual spreadsheet engine for gridcanvas.
//
// Coordinates are 0-based (Row, Col) cell indices.
// Pixel positions are abstract integer units chosen by the host's Measure function.
// Rectangles are closed ranges: [Top, Bottom] x [Left, Right].
package grid
