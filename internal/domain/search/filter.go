// Package search implements the combined filter engine: four independent
// predicates (free text, site type, location, facilities) composed into a
// single pass over the collection. Matching is always a case-insensitive
// substring test; there is no stemming, fuzziness, or ranking, and results
// keep the collection's order.
package search

import (
	"strings"

	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/site"
)

// TypeAll selects every site type.
const TypeAll = "all"

// Filters is the combined query object. Blank fields are no-ops, so the
// zero value matches everything. Constructed fresh per request and passed
// by value.
type Filters struct {
	Query      string
	Type       string
	Location   string
	Facilities []string
}

// IsEmpty reports whether no filter would be active.
func (f Filters) IsEmpty() bool {
	return len(f.Predicates()) == 0
}

// Predicate decides whether one record survives a filter. A nil Predicate
// means the filter is inactive.
type Predicate func(site.Site) bool

// Text matches records where the query is a substring of name,
// description, address, city, or history.
func Text(query string) Predicate {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	return func(s site.Site) bool {
		return contains(s.Name, q) ||
			contains(s.Description, q) ||
			contains(s.Location.Address, q) ||
			contains(s.Location.City, q) ||
			contains(s.History, q)
	}
}

// ByType matches records of exactly the given type. "all" is a no-op.
func ByType(t string) Predicate {
	tt := strings.ToLower(strings.TrimSpace(t))
	if tt == "" || tt == TypeAll {
		return nil
	}
	return func(s site.Site) bool {
		return s.Type == site.Type(tt)
	}
}

// ByLocation matches records whose city or address contains the term.
func ByLocation(term string) Predicate {
	lt := strings.ToLower(strings.TrimSpace(term))
	if lt == "" {
		return nil
	}
	return func(s site.Site) bool {
		return contains(s.Location.City, lt) || contains(s.Location.Address, lt)
	}
}

// Facilities matches records where every requested facility is a substring
// of at least one record facility, so "Park" finds "Parking". AND across
// requested entries; blank entries are ignored.
func Facilities(required []string) Predicate {
	var terms []string
	for _, r := range required {
		if t := strings.ToLower(strings.TrimSpace(r)); t != "" {
			terms = append(terms, t)
		}
	}
	if len(terms) == 0 {
		return nil
	}
	return func(s site.Site) bool {
		for _, term := range terms {
			if !anyContains(s.Facilities, term) {
				return false
			}
		}
		return true
	}
}

// Predicates returns the active predicates for f in evaluation order. The
// order only affects performance: predicates are independent and a record
// must survive all of them.
func (f Filters) Predicates() []Predicate {
	var ps []Predicate
	for _, p := range []Predicate{Text(f.Query), ByType(f.Type), ByLocation(f.Location), Facilities(f.Facilities)} {
		if p != nil {
			ps = append(ps, p)
		}
	}
	return ps
}

// Apply runs the combined filter in one pass. The result is a fresh slice
// holding a same-order subsequence of sites; the input is never mutated.
func Apply(f Filters, sites []site.Site) []site.Site {
	ps := f.Predicates()
	out := make([]site.Site, 0, len(sites))
	if len(ps) == 0 {
		return append(out, sites...)
	}
	for _, s := range sites {
		if matchesAll(s, ps) {
			out = append(out, s)
		}
	}
	return out
}

func matchesAll(s site.Site, ps []Predicate) bool {
	for _, p := range ps {
		if !p(s) {
			return false
		}
	}
	return true
}

func contains(field, loweredTerm string) bool {
	return strings.Contains(strings.ToLower(field), loweredTerm)
}

func anyContains(fields []string, loweredTerm string) bool {
	for _, f := range fields {
		if contains(f, loweredTerm) {
			return true
		}
	}
	return false
}
