package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrSiteNotFound signals a missing site record.
	ErrSiteNotFound = errors.New("site not found")
	// ErrDatasetUnavailable signals that the dataset could not be loaded.
	ErrDatasetUnavailable = errors.New("dataset unavailable")
	// ErrInvalidCoordinates signals latitude/longitude outside valid bounds.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// CoordinateError wraps ErrInvalidCoordinates with the offending values.
type CoordinateError struct {
	Lat float64
	Lng float64
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%s: lat=%g lng=%g", ErrInvalidCoordinates.Error(), e.Lat, e.Lng)
}

func (e *CoordinateError) Unwrap() error { return ErrInvalidCoordinates }

// NewCoordinateError creates an invalid coordinate error.
func NewCoordinateError(lat, lng float64) error {
	return &CoordinateError{Lat: lat, Lng: lng}
}
