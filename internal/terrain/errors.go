package terrain

import "errors"

var (
	// ErrInvalidConfig is returned before generation for unusable parameters.
	ErrInvalidConfig = errors.New("invalid terrain config")
	// ErrUnassignedPlate means a plate id has no kind in the plate field.
	ErrUnassignedPlate = errors.New("plate has no kind assigned")
	// ErrUnclassified means an elevation matched no color band.
	ErrUnclassified = errors.New("elevation matches no terrain band")
	// ErrFieldSize means a field does not cover the grid it is applied to.
	ErrFieldSize = errors.New("field length does not match grid")
)
