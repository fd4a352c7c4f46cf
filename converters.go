package sakhi

import (
	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/site"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/validation"
	directoryuc "github.com/studentGarv/hoshiarpur-sakhi/internal/usecase/directory"
)

// Converters between the flat public types and the internal domain model.
// Slices are cloned so callers never alias internal state.

func fromSite(s site.Site) Site {
	out := Site{
		ID:              s.ID,
		Name:            s.Name,
		Type:            Type(s.Type),
		Address:         s.Location.Address,
		City:            s.Location.City,
		Lat:             s.Location.Coordinates.Lat,
		Lng:             s.Location.Coordinates.Lng,
		Description:     s.Description,
		History:         s.History,
		WeekdayHours:    s.Timings.Weekdays,
		WeekendHours:    s.Timings.Weekends,
		SpecialDayHours: s.Timings.SpecialDays,
		Facilities:      cloneStrings(s.Facilities),
		Images:          cloneStrings(s.Images),
	}
	if s.Contact != nil {
		out.Phone = s.Contact.Phone
		out.Email = s.Contact.Email
	}
	return out
}

func toSite(s Site) site.Site {
	out := site.Site{
		ID:   s.ID,
		Name: s.Name,
		Type: site.Type(s.Type),
		Location: site.Location{
			Address:     s.Address,
			City:        s.City,
			Coordinates: site.Coordinates{Lat: s.Lat, Lng: s.Lng},
		},
		Description: s.Description,
		History:     s.History,
		Timings: site.Timings{
			Weekdays:    s.WeekdayHours,
			Weekends:    s.WeekendHours,
			SpecialDays: s.SpecialDayHours,
		},
		Facilities: cloneStrings(s.Facilities),
		Images:     cloneStrings(s.Images),
	}
	if s.Phone != "" || s.Email != "" {
		out.Contact = &site.Contact{Phone: s.Phone, Email: s.Email}
	}
	return out
}

func fromSites(sites []site.Site) []Site {
	out := make([]Site, len(sites))
	for i, s := range sites {
		out[i] = fromSite(s)
	}
	return out
}

func toSites(sites []Site) []site.Site {
	out := make([]site.Site, len(sites))
	for i, s := range sites {
		out[i] = toSite(s)
	}
	return out
}

func fromIssues(issues []validation.Issue) []Issue {
	if len(issues) == 0 {
		return nil
	}
	out := make([]Issue, len(issues))
	for i, iss := range issues {
		out[i] = Issue{Field: iss.Field, Code: iss.Code, Message: iss.Message}
	}
	return out
}

func fromRecordReport(r validation.Report) RecordReport {
	return RecordReport{
		Valid:      r.Valid,
		Errors:     fromIssues(r.Errors),
		Warnings:   fromIssues(r.Warnings),
		Advisories: fromIssues(r.Advisories),
	}
}

func fromEntries(entries []validation.Entry) []RecordEntry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]RecordEntry, len(entries))
	for i, e := range entries {
		out[i] = RecordEntry{Index: e.Index, ID: e.ID, Report: fromRecordReport(e.Report)}
	}
	return out
}

func fromDatasetReport(r validation.DatasetReport) DatasetReport {
	return DatasetReport{
		Valid:       r.Valid,
		Structural:  fromIssues(r.Structural),
		TotalSites:  r.Summary.TotalSites,
		Temples:     r.Summary.Temples,
		Gurdwaras:   r.Summary.Gurdwaras,
		WithContact: r.Summary.WithContact,
		WithImages:  r.Summary.WithImages,
		Invalid:     fromEntries(r.Invalid),
		Flagged:     fromEntries(r.Flagged),
	}
}

func fromStats(s directoryuc.Stats) Stats {
	return Stats{
		TotalSites:        s.TotalSites,
		Temples:           s.Temples,
		Gurdwaras:         s.Gurdwaras,
		WithContact:       s.SitesWithContact,
		WithImages:        s.SitesWithImages,
		AvgDescriptionLen: s.AvgDescriptionLen,
		AvgHistoryLen:     s.AvgHistoryLen,
		Facilities:        cloneStrings(s.UniqueFacilities),
	}
}

func fromProximities(ps []directoryuc.Proximity) []NearbyHit {
	out := make([]NearbyHit, len(ps))
	for i, p := range ps {
		out[i] = NearbyHit{Site: fromSite(p.Site), DistanceKm: p.DistanceKm}
	}
	return out
}

func toRegion(r Region) validation.Region {
	return validation.Region{
		Name:   r.Name,
		MinLat: r.MinLat,
		MaxLat: r.MaxLat,
		MinLng: r.MinLng,
		MaxLng: r.MaxLng,
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
