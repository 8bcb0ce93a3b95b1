// Package ui is the terminal gallery viewer: a Bubble Tea model with a
// tab bar across the top and one chart slideshow per tab. Tab selection
// and slide cursors live in the gallery model; this package translates
// key presses into gallery operations and renders the result, including
// a half-block preview of the current chart.
package ui
