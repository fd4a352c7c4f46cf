package chi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/oapi-codegen/runtime"

	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/search"
)

const defaultNearbyRadiusKm = 25.0

// filtersFromQuery binds the combined filter parameters. The facilities
// parameter accepts both repeated form and the comma form.
func filtersFromQuery(r *http.Request) (search.Filters, error) {
	q := r.URL.Query()

	var f search.Filters
	if err := runtime.BindQueryParameter("form", true, false, "q", q, &f.Query); err != nil {
		return search.Filters{}, fmt.Errorf("invalid parameter q: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "type", q, &f.Type); err != nil {
		return search.Filters{}, fmt.Errorf("invalid parameter type: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "location", q, &f.Location); err != nil {
		return search.Filters{}, fmt.Errorf("invalid parameter location: %w", err)
	}

	var facilities []string
	if err := runtime.BindQueryParameter("form", true, false, "facilities", q, &facilities); err != nil {
		return search.Filters{}, fmt.Errorf("invalid parameter facilities: %w", err)
	}
	f.Facilities = splitCSV(facilities)

	return f, nil
}

type nearbyQuery struct {
	lat      float64
	lng      float64
	radiusKm float64
	limit    int
}

// nearbyFromQuery binds the proximity parameters. lat and lng are
// required; radius_km defaults to 25.
func nearbyFromQuery(r *http.Request) (nearbyQuery, error) {
	q := r.URL.Query()
	p := nearbyQuery{radiusKm: defaultNearbyRadiusKm}

	if err := runtime.BindQueryParameter("form", true, true, "lat", q, &p.lat); err != nil {
		return nearbyQuery{}, fmt.Errorf("invalid parameter lat: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, true, "lng", q, &p.lng); err != nil {
		return nearbyQuery{}, fmt.Errorf("invalid parameter lng: %w", err)
	}

	var radius *float64
	if err := runtime.BindQueryParameter("form", true, false, "radius_km", q, &radius); err != nil {
		return nearbyQuery{}, fmt.Errorf("invalid parameter radius_km: %w", err)
	}
	if radius != nil {
		p.radiusKm = *radius
	}

	var limit *int
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &limit); err != nil {
		return nearbyQuery{}, fmt.Errorf("invalid parameter limit: %w", err)
	}
	if limit != nil {
		p.limit = *limit
	}

	return p, nil
}

// splitCSV flattens comma-joined entries and trims whitespace.
func splitCSV(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			out = append(out, strings.TrimSpace(part))
		}
	}
	return out
}
