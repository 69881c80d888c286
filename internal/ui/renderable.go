// Package ui holds the interfaces shared by the terminal component kit and the
// interactive preview.
package ui

// Renderable is anything that can draw itself to a string.
type Renderable interface {
	View() string
}
