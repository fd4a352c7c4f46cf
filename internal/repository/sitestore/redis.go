package sitestore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/site"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/validation"
)

// store is the consumer interface for the dataset blob (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Meta describes a published dataset blob.
type Meta struct {
	PublishedAt time.Time `json:"publishedAt"`
	Count       int       `json:"count"`
	Checksum    string    `json:"checksum"`
}

// Redis implements usecase/directory.Source over a dataset blob in Redis.
type Redis struct {
	store     store
	prefix    string
	validator *validation.Validator
}

// NewRedis creates a Redis-backed dataset source. Keys are derived from
// prefix: <prefix>:dataset and <prefix>:dataset:meta.
func NewRedis(s store, prefix string, v *validation.Validator) *Redis {
	if prefix == "" {
		prefix = "sakhi"
	}
	return &Redis{store: s, prefix: prefix, validator: v}
}

// Load fetches and decodes the dataset blob.
func (r *Redis) Load(ctx context.Context) (site.Dataset, error) {
	data, err := r.store.Get(ctx, r.blobKey())
	if err != nil {
		return site.Dataset{}, fmt.Errorf("get dataset %s: %w", r.blobKey(), err)
	}

	ds, err := decodeDataset(data, r.validator)
	if err != nil {
		return site.Dataset{}, fmt.Errorf("parse dataset %s: %w", r.blobKey(), err)
	}
	return ds, nil
}

// Publish validates a raw dataset document and writes blob + meta. Documents
// that fail the structural checks are rejected; per-record problems are left
// for loading instances to report.
func (r *Redis) Publish(ctx context.Context, raw []byte) (Meta, error) {
	ds, err := decodeDataset(raw, r.validator)
	if err != nil {
		return Meta{}, fmt.Errorf("parse dataset: %w", err)
	}
	if len(ds.Report.Structural) > 0 {
		return Meta{}, fmt.Errorf("dataset structure invalid: %s", ds.Report.Structural[0].Message)
	}

	if err := r.store.Set(ctx, r.blobKey(), raw); err != nil {
		return Meta{}, fmt.Errorf("set dataset %s: %w", r.blobKey(), err)
	}

	sum := sha256.Sum256(raw)
	meta := Meta{
		PublishedAt: time.Now().UTC(),
		Count:       ds.Report.Summary.TotalSites,
		Checksum:    hex.EncodeToString(sum[:]),
	}
	metaData, err := json.Marshal(meta)
	if err != nil {
		return Meta{}, fmt.Errorf("marshal meta: %w", err)
	}
	if err := r.store.Set(ctx, r.metaKey(), metaData); err != nil {
		return Meta{}, fmt.Errorf("set meta %s: %w", r.metaKey(), err)
	}

	return meta, nil
}

// Redis key patterns: sakhi:dataset, sakhi:dataset:meta

func (r *Redis) blobKey() string {
	return r.prefix + ":dataset"
}

func (r *Redis) metaKey() string {
	return r.prefix + ":dataset:meta"
}
