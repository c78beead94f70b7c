package location

import "errors"

var (
	ErrInvalidDriverID    = errors.New("invalid driver id")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrLocationNotFound   = errors.New("driver location not found")
)
