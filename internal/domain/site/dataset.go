package site

import "github.com/studentGarv/hoshiarpur-sakhi/internal/domain/validation"

// Dataset is the loaded collection plus its validation outcome. Sites keep
// source order. Records stay in the snapshot even when individually
// invalid; the report names them.
type Dataset struct {
	Sites  []Site
	Report validation.DatasetReport
}

// Valid reports whether loading and validation both succeeded.
func (d Dataset) Valid() bool { return d.Report.Valid }

// Len returns the number of records in the snapshot.
func (d Dataset) Len() int { return len(d.Sites) }

// Empty returns an explicitly-invalid dataset carrying one structural
// issue, for sources that could not be loaded at all.
func Empty(reason string) Dataset {
	return Dataset{Report: validation.StructuralFailure(reason)}
}
