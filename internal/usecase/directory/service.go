// Package directory exposes the read-only query operations of the site
// directory over an immutable in-memory snapshot: lookups, free-text
// search, the combined filter, aggregates, and proximity queries.
package directory

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/geo"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/search"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/site"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/validation"
)

// Service answers queries over a dataset snapshot. The snapshot never
// changes after construction, so all methods are safe for concurrent use
// without coordination.
type Service struct {
	sites  []site.Site
	byID   map[string]int
	report validation.DatasetReport
	loaded bool
}

// New creates a Service over an already-loaded dataset. On duplicate ids
// the first occurrence wins for lookups; the report names the duplicates.
func New(ds site.Dataset) *Service {
	s := &Service{
		sites:  ds.Sites,
		byID:   make(map[string]int, len(ds.Sites)),
		report: ds.Report,
		loaded: len(ds.Report.Structural) == 0,
	}
	for i, st := range ds.Sites {
		if _, dup := s.byID[st.ID]; !dup {
			s.byID[st.ID] = i
		}
	}
	return s
}

// Open loads the dataset through src and builds the Service. A load
// failure is logged and converted into an empty, explicitly-invalid
// snapshot: queries stay usable and return nothing instead of failing.
func Open(ctx context.Context, src Source, log *zap.Logger) *Service {
	ds, err := src.Load(ctx)
	if err != nil {
		log.Error("dataset load failed", zap.Error(err))
		return New(site.Empty("dataset load failed: " + err.Error()))
	}
	if !ds.Valid() {
		log.Warn("dataset loaded with validation problems",
			zap.Int("sites", ds.Len()),
			zap.Int("invalid_records", len(ds.Report.Invalid)),
			zap.Int("structural_issues", len(ds.Report.Structural)))
	} else {
		log.Info("dataset loaded",
			zap.Int("sites", ds.Len()),
			zap.Int("flagged_records", len(ds.Report.Flagged)))
	}
	return New(ds)
}

// Loaded reports whether a usable snapshot exists (the source could be
// read and had a well-formed top level).
func (s *Service) Loaded() bool { return s.loaded }

// Report returns the validation outcome of the loaded dataset.
func (s *Service) Report() validation.DatasetReport { return s.report }

// All returns a copy of the full snapshot in source order.
func (s *Service) All() []site.Site {
	out := make([]site.Site, len(s.sites))
	copy(out, s.sites)
	return out
}

// GetByID returns the record with the given id or domain.ErrSiteNotFound.
// When no snapshot could be loaded at all the miss is reported as
// domain.ErrDatasetUnavailable instead.
func (s *Service) GetByID(id string) (site.Site, error) {
	if !s.loaded {
		return site.Site{}, domain.ErrDatasetUnavailable
	}
	i, ok := s.byID[id]
	if !ok {
		return site.Site{}, domain.ErrSiteNotFound
	}
	return s.sites[i], nil
}

// GetByType returns every record of the given type.
func (s *Service) GetByType(t site.Type) []site.Site {
	return search.Apply(search.Filters{Type: string(t)}, s.sites)
}

// GetByLocation returns records whose city or address contains term. A
// blank term matches everything.
func (s *Service) GetByLocation(term string) []site.Site {
	return search.Apply(search.Filters{Location: term}, s.sites)
}

// Search returns records where term appears in name, description,
// address, city, or history. A blank term matches everything.
func (s *Service) Search(term string) []site.Site {
	return search.Apply(search.Filters{Query: term}, s.sites)
}

// Filter runs the combined filter engine over the snapshot.
func (s *Service) Filter(f search.Filters) []site.Site {
	return search.Apply(f, s.sites)
}

// Stats are aggregate dataset figures.
type Stats struct {
	TotalSites        int      `json:"totalSites"`
	Temples           int      `json:"temples"`
	Gurdwaras         int      `json:"gurdwaras"`
	SitesWithContact  int      `json:"sitesWithContact"`
	SitesWithImages   int      `json:"sitesWithImages"`
	AvgDescriptionLen int      `json:"avgDescriptionLen"`
	AvgHistoryLen     int      `json:"avgHistoryLen"`
	UniqueFacilities  []string `json:"uniqueFacilities"`
}

// Stats computes aggregate figures over the snapshot. Text lengths are
// averaged in runes; facility names are de-duplicated verbatim and sorted.
func (s *Service) Stats() Stats {
	st := Stats{TotalSites: len(s.sites)}
	var descRunes, histRunes int
	for _, rec := range s.sites {
		switch rec.Type {
		case site.TypeTemple:
			st.Temples++
		case site.TypeGurdwara:
			st.Gurdwaras++
		}
		if rec.HasContact() {
			st.SitesWithContact++
		}
		if rec.HasImages() {
			st.SitesWithImages++
		}
		descRunes += utf8.RuneCountInString(rec.Description)
		histRunes += utf8.RuneCountInString(rec.History)
	}
	if n := len(s.sites); n > 0 {
		st.AvgDescriptionLen = descRunes / n
		st.AvgHistoryLen = histRunes / n
	}
	st.UniqueFacilities = s.UniqueFacilities()
	return st
}

// UniqueFacilities returns the sorted distinct facility names of the
// snapshot.
func (s *Service) UniqueFacilities() []string {
	set := make(map[string]struct{})
	for _, rec := range s.sites {
		for _, f := range rec.Facilities {
			set[f] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// UniqueLocations returns the sorted union of each record's city plus the
// first comma-delimited segment of its address when that segment differs
// from the city (a cheap proxy for area/locality).
func (s *Service) UniqueLocations() []string {
	set := make(map[string]struct{})
	for _, rec := range s.sites {
		city := strings.TrimSpace(rec.Location.City)
		if city != "" {
			set[city] = struct{}{}
		}
		seg := rec.Location.Address
		if i := strings.Index(seg, ","); i >= 0 {
			seg = seg[:i]
		}
		seg = strings.TrimSpace(seg)
		if seg != "" && !strings.EqualFold(seg, city) {
			set[seg] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Proximity pairs a record with its distance from a query point.
type Proximity struct {
	Site       site.Site `json:"site"`
	DistanceKm float64   `json:"distanceKm"`
}

// Nearby returns records within radiusKm of the point, nearest first.
// The radius is inclusive; ties keep dataset order; limit <= 0 means no
// cap. Out-of-bounds query coordinates return a CoordinateError.
func (s *Service) Nearby(lat, lng, radiusKm float64, limit int) ([]Proximity, error) {
	if !geo.ValidateCoordinates(lat, lng) {
		return nil, domain.NewCoordinateError(lat, lng)
	}
	out := make([]Proximity, 0)
	for _, rec := range s.sites {
		d := geo.DistanceKm(lat, lng, rec.Location.Coordinates.Lat, rec.Location.Coordinates.Lng)
		if d <= radiusKm {
			out = append(out, Proximity{Site: rec, DistanceKm: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
