// Package sitestore loads site datasets from files or Redis. Sources
// validate the raw document with the injected validator and bind typed
// records leniently: a record that fails strict binding keeps its
// well-typed fields while the report names its problems.
package sitestore

import (
	"encoding/json"
	"errors"

	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/site"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/validation"
)

type datasetDTO struct {
	Sites []site.Site `json:"sites"`
}

// decodeDataset parses a raw dataset document, validates it and binds the
// typed records. Syntax errors are returned; type mismatches are not, the
// validation report already carries them per record.
func decodeDataset(data []byte, v *validation.Validator) (site.Dataset, error) {
	if v == nil {
		v = validation.New()
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return site.Dataset{}, err
	}

	report := v.ValidateDataset(doc)

	var dto datasetDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return site.Dataset{}, err
		}
	}

	return site.Dataset{Sites: dto.Sites, Report: report}, nil
}
