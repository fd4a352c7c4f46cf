package sitestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/site"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/validation"
)

// File implements usecase/directory.Source over a JSON file on disk.
type File struct {
	path      string
	validator *validation.Validator
}

// NewFile creates a file-backed dataset source.
func NewFile(path string, v *validation.Validator) *File {
	return &File{path: path, validator: v}
}

// Load reads and decodes the dataset file.
func (f *File) Load(_ context.Context) (site.Dataset, error) {
	data, err := os.ReadFile(filepath.Clean(f.path))
	if err != nil {
		return site.Dataset{}, fmt.Errorf("read dataset %s: %w", f.path, err)
	}

	ds, err := decodeDataset(data, f.validator)
	if err != nil {
		return site.Dataset{}, fmt.Errorf("parse dataset %s: %w", f.path, err)
	}
	return ds, nil
}
