package sitestore

import (
	"context"
	"fmt"

	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/site"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/validation"
)

// Bytes implements usecase/directory.Source over an in-memory dataset
// document. Used for inline datasets and tests.
type Bytes struct {
	data      []byte
	validator *validation.Validator
}

// NewBytes creates a source over a raw dataset document.
func NewBytes(data []byte, v *validation.Validator) *Bytes {
	return &Bytes{data: data, validator: v}
}

// Load decodes and validates the document.
func (b *Bytes) Load(_ context.Context) (site.Dataset, error) {
	ds, err := decodeDataset(b.data, b.validator)
	if err != nil {
		return site.Dataset{}, fmt.Errorf("parse dataset: %w", err)
	}
	return ds, nil
}
