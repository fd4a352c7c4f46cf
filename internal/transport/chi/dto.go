package chi

import (
	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/site"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/usecase/directory"
)

// ErrorCode classifies an API error for clients.
type ErrorCode string

// API error codes.
const (
	CodeBadRequest         ErrorCode = "bad_request"
	CodeSiteNotFound       ErrorCode = "site_not_found"
	CodeInvalidCoordinates ErrorCode = "invalid_coordinates"
	CodeDatasetUnavailable ErrorCode = "dataset_unavailable"
	CodeInternalError      ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// SiteListResponse wraps a filtered site list.
type SiteListResponse struct {
	Sites []site.Site `json:"sites"`
	Total int         `json:"total"`
}

// NearbyResponse wraps a proximity query result.
type NearbyResponse struct {
	Results []directory.Proximity `json:"results"`
	Total   int                   `json:"total"`
}

// LocationListResponse wraps the distinct locations of the dataset.
type LocationListResponse struct {
	Locations []string `json:"locations"`
}

// FacilityListResponse wraps the distinct facility names of the dataset.
type FacilityListResponse struct {
	Facilities []string `json:"facilities"`
}

// HealthResponse reports component health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
