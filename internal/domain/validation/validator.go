// Package validation checks candidate site records against the dataset
// schema. It operates on pre-parsed JSON values, never raises for bad
// data, and always returns a structured report: hard errors decide
// validity, warnings flag recommended content, advisories flag
// non-blocking observations.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	minDescriptionLen = 50
	minHistoryLen     = 100
)

// Validator checks records against the schema using an injected regional
// bounding box and facility vocabulary.
type Validator struct {
	region     Region
	facilities map[string]struct{}
}

// New creates a Validator with the default region and facility vocabulary.
func New() *Validator {
	v := &Validator{region: DefaultRegion()}
	return v.WithKnownFacilities(DefaultFacilities())
}

// WithRegion replaces the regional bounding box.
func (v *Validator) WithRegion(r Region) *Validator {
	v.region = r
	return v
}

// WithKnownFacilities replaces the recognized facility vocabulary.
// Matching is case-insensitive.
func (v *Validator) WithKnownFacilities(names []string) *Validator {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[strings.ToLower(strings.TrimSpace(n))] = struct{}{}
	}
	v.facilities = set
	return v
}

// Region returns the configured bounding box.
func (v *Validator) Region() Region { return v.region }

// ValidateSite checks one candidate record. The basic presence check runs
// first; format, range, and content checks run only when it passed, so a
// skeletal record reports its missing fields without cascading noise.
func (v *Validator) ValidateSite(raw map[string]any) Report {
	var rep Report
	if required := v.checkRequired(raw); len(required) > 0 {
		rep.Errors = required
		return rep
	}

	rep.Errors = append(rep.Errors, v.CheckID(raw["id"].(string))...)
	rep.Errors = append(rep.Errors, v.CheckType(raw["type"].(string))...)
	rep.Errors = append(rep.Errors, v.CheckLocation(raw["location"].(map[string]any))...)
	rep.Errors = append(rep.Errors, v.CheckTimings(raw["timings"].(map[string]any))...)

	facErrs, facAdv := v.CheckFacilities(raw["facilities"].([]any))
	rep.Errors = append(rep.Errors, facErrs...)
	rep.Advisories = facAdv

	switch contact := raw["contact"].(type) {
	case nil:
	case map[string]any:
		rep.Errors = append(rep.Errors, v.CheckContact(contact)...)
	default:
		rep.Errors = append(rep.Errors, Issue{
			Field:   "contact",
			Code:    CodeType,
			Message: "contact must be an object",
		})
	}

	rep.Warnings = v.collectWarnings(raw)
	rep.Valid = len(rep.Errors) == 0
	return rep
}

// checkRequired verifies the basic shape: the five text fields, the
// location and timings blocks, and a non-empty facilities list. Passing it
// guarantees the type assertions in ValidateSite hold.
func (v *Validator) checkRequired(raw map[string]any) []Issue {
	var issues []Issue
	for _, f := range []string{"id", "name", "type", "description", "history"} {
		issues = append(issues, requireString(raw, f, f)...)
	}

	switch raw["location"].(type) {
	case nil:
		issues = append(issues, Issue{Field: "location", Code: CodeRequired, Message: "location block is required"})
	case map[string]any:
	default:
		issues = append(issues, Issue{Field: "location", Code: CodeType, Message: "location must be an object"})
	}

	switch raw["timings"].(type) {
	case nil:
		issues = append(issues, Issue{Field: "timings", Code: CodeRequired, Message: "timings block is required"})
	case map[string]any:
	default:
		issues = append(issues, Issue{Field: "timings", Code: CodeType, Message: "timings must be an object"})
	}

	switch list := raw["facilities"].(type) {
	case nil:
		issues = append(issues, Issue{Field: "facilities", Code: CodeRequired, Message: "facilities list is required"})
	case []any:
		if len(list) == 0 {
			issues = append(issues, Issue{Field: "facilities", Code: CodeEmpty, Message: "facilities list must not be empty"})
		}
	default:
		issues = append(issues, Issue{Field: "facilities", Code: CodeType, Message: "facilities must be a list"})
	}
	return issues
}

// collectWarnings flags recommended-but-optional content. Warnings never
// affect validity.
func (v *Validator) collectWarnings(raw map[string]any) []Issue {
	var warnings []Issue

	if _, ok := raw["contact"].(map[string]any); !ok {
		warnings = append(warnings, Issue{
			Field:   "contact",
			Code:    CodeMissing,
			Message: "contact information is recommended",
		})
	}
	if imgs, ok := raw["images"].([]any); !ok || len(imgs) == 0 {
		warnings = append(warnings, Issue{
			Field:   "images",
			Code:    CodeMissing,
			Message: "at least one image is recommended",
		})
	}
	if desc, ok := raw["description"].(string); ok && utf8.RuneCountInString(desc) < minDescriptionLen {
		warnings = append(warnings, Issue{
			Field:   "description",
			Code:    CodeLength,
			Message: fmt.Sprintf("description is shorter than the recommended %d characters", minDescriptionLen),
		})
	}
	if hist, ok := raw["history"].(string); ok && utf8.RuneCountInString(hist) < minHistoryLen {
		warnings = append(warnings, Issue{
			Field:   "history",
			Code:    CodeLength,
			Message: fmt.Sprintf("history is shorter than the recommended %d characters", minHistoryLen),
		})
	}
	return warnings
}

// ValidateCollection validates every record, aggregating failing entries
// without halting on the first. Duplicate ids across the collection are
// errors on the later occurrence.
func (v *Validator) ValidateCollection(raws []map[string]any) CollectionReport {
	rep := CollectionReport{Valid: true}

	dups := make(map[int]Issue)
	seen := make(map[string]int)
	for i, raw := range raws {
		id, ok := raw["id"].(string)
		if !ok || strings.TrimSpace(id) == "" {
			continue
		}
		if first, dup := seen[id]; dup {
			dups[i] = Issue{
				Field:   "id",
				Code:    CodeDuplicate,
				Message: fmt.Sprintf("id %q already used by record %d", id, first),
			}
			continue
		}
		seen[id] = i
	}

	for i, raw := range raws {
		r := v.ValidateSite(raw)
		if iss, ok := dups[i]; ok {
			r.Errors = append(r.Errors, iss)
			r.Valid = false
		}
		entry := Entry{Index: i, Report: r}
		if id, ok := raw["id"].(string); ok {
			entry.ID = id
		}
		switch {
		case !r.Valid:
			rep.Valid = false
			rep.Invalid = append(rep.Invalid, entry)
		case !r.Clean():
			rep.Flagged = append(rep.Flagged, entry)
		}
	}
	return rep
}

// ValidateDataset validates a whole pre-parsed dataset document shaped as
// {"sites": [...]}. A malformed top level yields a single structural issue
// instead of a panic; records that are not objects fail as empty records.
func (v *Validator) ValidateDataset(doc any) DatasetReport {
	obj, ok := doc.(map[string]any)
	if !ok {
		return StructuralFailure("dataset must be a JSON object with a sites list")
	}

	var rawSites []any
	switch s := obj["sites"].(type) {
	case nil:
		return DatasetReport{
			Structural: []Issue{{Field: "sites", Code: CodeStructure, Message: "sites list is missing"}},
		}
	case []any:
		rawSites = s
	default:
		return DatasetReport{
			Structural: []Issue{{Field: "sites", Code: CodeStructure, Message: "sites must be a list"}},
		}
	}

	raws := make([]map[string]any, len(rawSites))
	for i, rs := range rawSites {
		m, _ := rs.(map[string]any)
		raws[i] = m
	}

	coll := v.ValidateCollection(raws)
	return DatasetReport{
		Valid:   coll.Valid,
		Summary: summarize(raws),
		Invalid: coll.Invalid,
		Flagged: coll.Flagged,
	}
}

func summarize(raws []map[string]any) Summary {
	s := Summary{TotalSites: len(raws)}
	for _, raw := range raws {
		switch raw["type"] {
		case "temple":
			s.Temples++
		case "gurdwara":
			s.Gurdwaras++
		}
		if _, ok := raw["contact"].(map[string]any); ok {
			s.WithContact++
		}
		if imgs, ok := raw["images"].([]any); ok && len(imgs) > 0 {
			s.WithImages++
		}
	}
	return s
}
