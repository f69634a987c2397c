package core

// IndexToCoords converts a row-major slice index into (x, y) for a grid of
// the given width. A zero width panics with an integer divide error.
func IndexToCoords(index, width int) (int, int) {
	return index % width, index / width
}

// CoordsToIndex returns the row-major slice index for coordinates (x, y).
// Bounds are the caller's responsibility.
func CoordsToIndex(x, y, width int) int { return y*width + x }
