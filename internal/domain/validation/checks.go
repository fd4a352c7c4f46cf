package validation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	idPattern        = regexp.MustCompile(`^(temple|gurdwara)-[a-z0-9]+(-[a-z0-9]+)*$`)
	timeRangePattern = regexp.MustCompile(`(?i)^\d{1,2}:\d{2}\s*(AM|PM)\s*-\s*\d{1,2}:\d{2}\s*(AM|PM)$`)
	bareTimePattern  = regexp.MustCompile(`(?i)^\d{1,2}:\d{2}\s*(AM|PM)$`)
	phonePattern     = regexp.MustCompile(`^\+91-\d{4}-\d{6}$`)
	emailPattern     = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

const (
	idMinLen = 5
	idMaxLen = 100
)

// DefaultFacilities is the recognized facility vocabulary. Names outside it
// are allowed but reported as advisories.
func DefaultFacilities() []string {
	return []string{
		"Parking",
		"Langar Hall",
		"Langar",
		"Community Kitchen",
		"Drinking Water",
		"Washrooms",
		"Restrooms",
		"Shoe Stand",
		"Wheelchair Access",
		"Prasad Counter",
		"Prasad Shop",
		"Library",
		"Sarai",
		"Accommodation",
		"Garden",
		"Meditation Hall",
		"Kirtan Hall",
		"Donation Counter",
		"Museum",
		"Security",
		"CCTV",
	}
}

// CheckID verifies the id pattern ({temple|gurdwara}-kebab-name) and length.
func (v *Validator) CheckID(id string) []Issue {
	var issues []Issue
	if !idPattern.MatchString(id) {
		issues = append(issues, Issue{
			Field:   "id",
			Code:    CodeFormat,
			Message: `id must be lowercase kebab case starting with the site type, like "temple-shiv-mandir"`,
		})
	}
	if n := len(id); n < idMinLen || n > idMaxLen {
		issues = append(issues, Issue{
			Field:   "id",
			Code:    CodeLength,
			Message: fmt.Sprintf("id must be between %d and %d characters", idMinLen, idMaxLen),
		})
	}
	return issues
}

// CheckType verifies the site type against the allowed set.
func (v *Validator) CheckType(t string) []Issue {
	if t == "temple" || t == "gurdwara" {
		return nil
	}
	return []Issue{{
		Field:   "type",
		Code:    CodeEnum,
		Message: "type must be one of: temple, gurdwara",
	}}
}

// CheckLocation verifies address, city, and the coordinates block.
func (v *Validator) CheckLocation(loc map[string]any) []Issue {
	var issues []Issue
	issues = append(issues, requireString(loc, "address", "location.address")...)
	issues = append(issues, requireString(loc, "city", "location.city")...)

	switch coords := loc["coordinates"].(type) {
	case nil:
		issues = append(issues, Issue{
			Field:   "location.coordinates",
			Code:    CodeRequired,
			Message: "location.coordinates is required",
		})
	case map[string]any:
		issues = append(issues, v.CheckCoordinates(coords)...)
	default:
		issues = append(issues, Issue{
			Field:   "location.coordinates",
			Code:    CodeType,
			Message: "location.coordinates must be an object",
		})
	}
	return issues
}

// CheckCoordinates verifies that lat/lng are numeric, inside hard
// latitude/longitude bounds, and inside the configured region.
func (v *Validator) CheckCoordinates(coords map[string]any) []Issue {
	var issues []Issue

	lat, latOK := numeric(coords["lat"])
	if !latOK {
		issues = append(issues, Issue{
			Field:   "location.coordinates.lat",
			Code:    CodeNotNumeric,
			Message: "lat must be numeric",
		})
	}
	lng, lngOK := numeric(coords["lng"])
	if !lngOK {
		issues = append(issues, Issue{
			Field:   "location.coordinates.lng",
			Code:    CodeNotNumeric,
			Message: "lng must be numeric",
		})
	}

	if latOK {
		switch {
		case lat < -90 || lat > 90:
			issues = append(issues, Issue{
				Field:   "location.coordinates.lat",
				Code:    CodeRange,
				Message: "latitude must be between -90 and 90",
			})
		case !v.region.LatWithin(lat):
			issues = append(issues, Issue{
				Field: "location.coordinates.lat",
				Code:  CodeRegion,
				Message: fmt.Sprintf("latitude %g is outside the %s region (%g to %g)",
					lat, v.region.Name, v.region.MinLat, v.region.MaxLat),
			})
		}
	}
	if lngOK {
		switch {
		case lng < -180 || lng > 180:
			issues = append(issues, Issue{
				Field:   "location.coordinates.lng",
				Code:    CodeRange,
				Message: "longitude must be between -180 and 180",
			})
		case !v.region.LngWithin(lng):
			issues = append(issues, Issue{
				Field: "location.coordinates.lng",
				Code:  CodeRegion,
				Message: fmt.Sprintf("longitude %g is outside the %s region (%g to %g)",
					lng, v.region.Name, v.region.MinLng, v.region.MaxLng),
			})
		}
	}
	return issues
}

// CheckTimings verifies weekdays/weekends (required) and specialDays
// (optional). A value is accepted when it is a time range, a single time,
// or mentions "hours" (covers "24 hours", "Open all hours").
func (v *Validator) CheckTimings(timings map[string]any) []Issue {
	var issues []Issue
	issues = append(issues, checkTimingField(timings, "weekdays", true)...)
	issues = append(issues, checkTimingField(timings, "weekends", true)...)
	issues = append(issues, checkTimingField(timings, "specialDays", false)...)
	return issues
}

func checkTimingField(timings map[string]any, key string, required bool) []Issue {
	field := "timings." + key
	switch val := timings[key].(type) {
	case nil:
		if required {
			return []Issue{{Field: field, Code: CodeRequired, Message: field + " is required"}}
		}
		return nil
	case string:
		if required && strings.TrimSpace(val) == "" {
			return []Issue{{Field: field, Code: CodeRequired, Message: field + " is required"}}
		}
		if validTiming(val) {
			return nil
		}
		return []Issue{{
			Field:   field,
			Code:    CodeFormat,
			Message: field + ` must look like "6:00 AM - 8:00 PM", a single time, or mention "hours"`,
		}}
	default:
		return []Issue{{Field: field, Code: CodeType, Message: field + " must be a string"}}
	}
}

func validTiming(s string) bool {
	s = strings.TrimSpace(s)
	if timeRangePattern.MatchString(s) || bareTimePattern.MatchString(s) {
		return true
	}
	return strings.Contains(strings.ToLower(s), "hours")
}

// CheckFacilities verifies every entry is a non-empty string and advises on
// names outside the recognized vocabulary. New names are allowed.
func (v *Validator) CheckFacilities(list []any) (errors, advisories []Issue) {
	for i, e := range list {
		field := fmt.Sprintf("facilities[%d]", i)
		s, ok := e.(string)
		if !ok {
			errors = append(errors, Issue{Field: field, Code: CodeType, Message: field + " must be a string"})
			continue
		}
		if strings.TrimSpace(s) == "" {
			errors = append(errors, Issue{Field: field, Code: CodeEmpty, Message: field + " must not be empty"})
			continue
		}
		if _, known := v.facilities[strings.ToLower(strings.TrimSpace(s))]; !known {
			advisories = append(advisories, Issue{
				Field:   field,
				Code:    CodeUnknownFacility,
				Message: fmt.Sprintf("facility %q is not a recognized name", s),
			})
		}
	}
	return errors, advisories
}

// CheckContact verifies phone and email formats inside a present contact
// block. Each is checked only when provided.
func (v *Validator) CheckContact(contact map[string]any) []Issue {
	var issues []Issue
	switch phone := contact["phone"].(type) {
	case nil:
	case string:
		if strings.TrimSpace(phone) != "" && !phonePattern.MatchString(phone) {
			issues = append(issues, Issue{
				Field:   "contact.phone",
				Code:    CodeFormat,
				Message: "contact.phone must match +91-XXXX-XXXXXX",
			})
		}
	default:
		issues = append(issues, Issue{Field: "contact.phone", Code: CodeType, Message: "contact.phone must be a string"})
	}
	switch email := contact["email"].(type) {
	case nil:
	case string:
		if strings.TrimSpace(email) != "" && !emailPattern.MatchString(email) {
			issues = append(issues, Issue{
				Field:   "contact.email",
				Code:    CodeFormat,
				Message: "contact.email must be a valid address like name@example.org",
			})
		}
	default:
		issues = append(issues, Issue{Field: "contact.email", Code: CodeType, Message: "contact.email must be a string"})
	}
	return issues
}

// requireString reports a required/type issue for a string field inside a
// block, using field as the reported path.
func requireString(m map[string]any, key, field string) []Issue {
	switch val := m[key].(type) {
	case nil:
		return []Issue{{Field: field, Code: CodeRequired, Message: field + " is required"}}
	case string:
		if strings.TrimSpace(val) == "" {
			return []Issue{{Field: field, Code: CodeRequired, Message: field + " is required"}}
		}
		return nil
	default:
		return []Issue{{Field: field, Code: CodeType, Message: field + " must be a string"}}
	}
}

// numeric extracts a float from the JSON-decoded forms a number can take.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
