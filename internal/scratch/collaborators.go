// Package scratch implements the scratch-card surface: a prize layer hidden under an
// erasable overlay, erase strokes, reveal detection and the post-reveal fade.
//
// Everything in this package runs on the caller's goroutine (the game loop); a Surface
// is not safe for concurrent use and needs no locking.
package scratch

import "image"

// ImageSource is the prize image as seen by the surface. Decoding may finish after the
// surface is first initialized, so the surface only reads the image once Decoded reports true.
type ImageSource interface {
	// Decoded reports whether the image has finished decoding successfully.
	Decoded() bool

	// NaturalSize returns the decoded image's intrinsic size, or (0, 0) before decoding.
	NaturalSize() (width, height int)

	// Image returns the decoded image, or nil before decoding.
	Image() image.Image
}

// DimensionProvider supplies the display dimensions the surface should be sized to.
// Callers poll it once per tick and re-initialize the surface when the value changes.
type DimensionProvider interface {
	Dimensions() (width, height int)
}

// RevealNotifier is invoked exactly once per card instance, when the fade completes and
// the overlay has been hidden.
type RevealNotifier func()

// Point is a position in surface-local coordinates.
type Point struct {
	X, Y float64
}
