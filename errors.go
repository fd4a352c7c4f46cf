package sakhi

import "github.com/studentGarv/hoshiarpur-sakhi/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrSiteNotFound       = domain.ErrSiteNotFound
	ErrDatasetUnavailable = domain.ErrDatasetUnavailable
	ErrInvalidCoordinates = domain.ErrInvalidCoordinates
)
