package validation

import "fmt"

// Issue codes. Codes classify the rule that fired; Field names where.
const (
	CodeRequired        = "required"
	CodeType            = "type"
	CodeFormat          = "format"
	CodeLength          = "length"
	CodeEnum            = "enum"
	CodeNotNumeric      = "not_numeric"
	CodeRange           = "out_of_range"
	CodeRegion          = "outside_region"
	CodeEmpty           = "empty"
	CodeMissing         = "missing"
	CodeDuplicate       = "duplicate"
	CodeUnknownFacility = "unknown_facility"
	CodeStructure       = "structure"
)

// Issue is one structured diagnostic about a record or a dataset.
type Issue struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}

// Report is the validation outcome for a single record.
// Valid depends on Errors only; Warnings flag recommended-but-optional
// content and Advisories flag non-blocking observations.
type Report struct {
	Valid      bool    `json:"valid"`
	Errors     []Issue `json:"errors,omitempty"`
	Warnings   []Issue `json:"warnings,omitempty"`
	Advisories []Issue `json:"advisories,omitempty"`
}

// Clean reports whether the record raised nothing at all.
func (r Report) Clean() bool {
	return r.Valid && len(r.Warnings) == 0 && len(r.Advisories) == 0
}

// Entry ties a record's report to its position in the collection.
type Entry struct {
	Index  int    `json:"index"`
	ID     string `json:"id,omitempty"`
	Report Report `json:"report"`
}

// CollectionReport aggregates per-record validation across a collection.
// Invalid holds entries with at least one error; Flagged holds valid
// entries that still carry warnings or advisories.
type CollectionReport struct {
	Valid   bool    `json:"valid"`
	Invalid []Entry `json:"invalid,omitempty"`
	Flagged []Entry `json:"flagged,omitempty"`
}

// Summary counts dataset content for the top-level report.
type Summary struct {
	TotalSites  int `json:"totalSites"`
	Temples     int `json:"temples"`
	Gurdwaras   int `json:"gurdwaras"`
	WithContact int `json:"withContact"`
	WithImages  int `json:"withImages"`
}

// DatasetReport is the full outcome of validating a dataset document.
// Structural issues describe a malformed top level (not an object, sites
// missing or not a list); they are reported instead of raised.
type DatasetReport struct {
	Valid      bool    `json:"valid"`
	Structural []Issue `json:"structural,omitempty"`
	Summary    Summary `json:"summary"`
	Invalid    []Entry `json:"invalid,omitempty"`
	Flagged    []Entry `json:"flagged,omitempty"`
}

// StructuralFailure builds an invalid dataset report carrying a single
// synthetic issue. Used when the source cannot be read or parsed at all.
func StructuralFailure(msg string) DatasetReport {
	return DatasetReport{
		Structural: []Issue{{Field: "$", Code: CodeStructure, Message: msg}},
	}
}
