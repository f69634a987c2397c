package core

// Size describes the dimensions of a world grid.
type Size struct {
	W int
	H int
}

// Len returns the number of cells covered by the size.
func (s Size) Len() int { return s.W * s.H }

// Contains reports whether (x, y) lies inside the grid.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}
