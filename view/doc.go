// Package view provides a Bubble Tea spreadsheet component backed by the grid
// package.
//
// Model renders a grid.Grid into terminal cells and turns key and mouse input
// into grid calls. Terminal cells are the pixel unit: GridOptions configures
// the grid's measurement function and size constants for that scale.
package view
