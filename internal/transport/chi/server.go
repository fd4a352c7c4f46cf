package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain"
	directoryuc "github.com/studentGarv/hoshiarpur-sakhi/internal/usecase/directory"
	healthuc "github.com/studentGarv/hoshiarpur-sakhi/internal/usecase/health"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server hosts the read-only directory API.
type Server struct {
	directory     *directoryuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	directory *directoryuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		directory: directory,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		coordinateErrorHandler,
		sentinelHandler(domain.ErrSiteNotFound, http.StatusNotFound, CodeSiteNotFound),
		sentinelHandler(domain.ErrDatasetUnavailable, http.StatusServiceUnavailable, CodeDatasetUnavailable),
	}
	return s
}

// Routes mounts all endpoints on the router.
func (s *Server) Routes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/sites", s.ListSites)
		r.Get("/sites/nearby", s.NearbySites)
		r.Get("/sites/{id}", s.GetSite)
		r.Get("/stats", s.GetStats)
		r.Get("/locations", s.ListLocations)
		r.Get("/facilities", s.ListFacilities)
		r.Get("/dataset/report", s.GetDatasetReport)
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// ListSites handles GET /api/v1/sites with the combined filter.
func (s *Server) ListSites(w http.ResponseWriter, r *http.Request) {
	f, err := filtersFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	sites := s.directory.Filter(f)
	writeJSON(w, http.StatusOK, SiteListResponse{Sites: sites, Total: len(sites)})
}

// GetSite handles GET /api/v1/sites/{id}.
func (s *Server) GetSite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	st, err := s.directory.GetByID(id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, st)
}

// NearbySites handles GET /api/v1/sites/nearby.
func (s *Server) NearbySites(w http.ResponseWriter, r *http.Request) {
	p, err := nearbyFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	results, err := s.directory.Nearby(p.lat, p.lng, p.radiusKm, p.limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, NearbyResponse{Results: results, Total: len(results)})
}

// GetStats handles GET /api/v1/stats.
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.directory.Stats())
}

// ListLocations handles GET /api/v1/locations.
func (s *Server) ListLocations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, LocationListResponse{Locations: s.directory.UniqueLocations()})
}

// ListFacilities handles GET /api/v1/facilities.
func (s *Server) ListFacilities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, FacilityListResponse{Facilities: s.directory.UniqueFacilities()})
}

// GetDatasetReport handles GET /api/v1/dataset/report.
func (s *Server) GetDatasetReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.directory.Report())
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrSiteNotFound,
		domain.ErrDatasetUnavailable,
		domain.ErrInvalidCoordinates,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// coordinateErrorHandler handles ErrInvalidCoordinates with the offending point in the payload.
func coordinateErrorHandler(w http.ResponseWriter, err error, msg string) bool {
	if !errors.Is(err, domain.ErrInvalidCoordinates) {
		return false
	}
	var ce *domain.CoordinateError
	if errors.As(err, &ce) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"code":    CodeInvalidCoordinates,
			"message": msg,
			"lat":     ce.Lat,
			"lng":     ce.Lng,
		})
		return true
	}
	writeError(w, http.StatusUnprocessableEntity, CodeInvalidCoordinates, msg)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
