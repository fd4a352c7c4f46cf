package sakhi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/studentGarv/hoshiarpur-sakhi/internal/db"
	dbRedis "github.com/studentGarv/hoshiarpur-sakhi/internal/db/redis"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/search"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/site"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/validation"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/repository/sitestore"
	directoryuc "github.com/studentGarv/hoshiarpur-sakhi/internal/usecase/directory"
	healthuc "github.com/studentGarv/hoshiarpur-sakhi/internal/usecase/health"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the sakhi SDK entry point. The dataset snapshot never changes
// after New, so all query methods are safe for concurrent use.
type Client struct {
	store     db.Store
	dir       *directoryuc.Service
	healthSvc *healthuc.Service
	publisher *sitestore.Redis
	validator *validation.Validator
	obs       *observer
}

// New creates a Client and loads the dataset from the configured source.
// The context bounds the initial load and, for Redis, the readiness
// check. Unreadable or structurally broken datasets fail here;
// record-level validation problems load fine and are listed in Report.
// A Redis source with nothing published yet comes up empty so Publish
// can seed it.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.source == "" {
		return nil, errors.New("sakhi: dataset source required (use WithFile, WithSites or WithRedis)")
	}

	validator := newValidator(cfg)

	var store db.Store
	var publisher *sitestore.Redis
	var src directoryuc.Source
	switch cfg.source {
	case "file":
		src = sitestore.NewFile(cfg.path, validator)
	case "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("sakhi: create redis store: %w", err)
		}
		if err := s.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			s.Close()
			return nil, fmt.Errorf("sakhi: database not ready: %w", err)
		}
		store = s
		publisher = sitestore.NewRedis(s, cfg.keyPrefix, validator)
		src = publisher
	case "sites":
		data, err := json.Marshal(map[string]any{"sites": toSites(cfg.sites)})
		if err != nil {
			return nil, fmt.Errorf("sakhi: encode sites: %w", err)
		}
		src = sitestore.NewBytes(data, validator)
	}

	ds, err := src.Load(ctx)
	switch {
	case err == nil:
		if len(ds.Report.Structural) > 0 {
			closeStore(store)
			return nil, fmt.Errorf("sakhi: dataset invalid: %s", ds.Report.Structural[0].Message)
		}
	case errors.Is(err, db.ErrKeyNotFound):
		// Nothing published yet. The client still comes up so Publish can
		// seed the store; queries return ErrDatasetUnavailable until then.
		ds = site.Empty("dataset not published")
	default:
		closeStore(store)
		return nil, fmt.Errorf("sakhi: load dataset: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		closeStore(store)
		return nil, err
	}

	dir := directoryuc.New(ds)

	var pinger healthuc.DBPinger
	if store != nil {
		pinger = store
	}

	return &Client{
		store:     store,
		dir:       dir,
		healthSvc: healthuc.New(dir, pinger),
		publisher: publisher,
		validator: validator,
		obs:       obs,
	}, nil
}

func newValidator(cfg *clientConfig) *validation.Validator {
	v := validation.New()
	if cfg.region != nil {
		v = v.WithRegion(toRegion(*cfg.region))
	}
	if len(cfg.facilities) > 0 {
		v = v.WithKnownFacilities(cfg.facilities)
	}
	return v
}

func closeStore(s db.Store) {
	if s != nil {
		s.Close()
	}
}

// Close releases all resources.
func (c *Client) Close() {
	closeStore(c.store)
}

// Ping checks database connectivity. Always nil for file and inline
// datasets.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if c.store == nil {
		return nil
	}
	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Site returns the record with the given id or ErrSiteNotFound.
func (c *Client) Site(id string) (s Site, err error) {
	start := time.Now()
	defer func() { c.obs.observe("site_get", start, err) }()

	rec, err := c.dir.GetByID(id)
	if err != nil {
		return Site{}, err
	}
	return fromSite(rec), nil
}

// Sites returns every record in dataset order.
func (c *Client) Sites() []Site {
	return fromSites(c.dir.All())
}

// SitesByType returns every record of the given type.
func (c *Client) SitesByType(t Type) []Site {
	return c.Filter(Filters{Type: t})
}

// SitesIn returns records whose city or address contains term.
func (c *Client) SitesIn(location string) []Site {
	return c.Filter(Filters{Location: location})
}

// SearchSites returns records where term appears in name, description,
// address, city, or history.
func (c *Client) SearchSites(term string) []Site {
	return c.Filter(Filters{Query: term})
}

// Filter runs the combined filter: every active field must match.
func (c *Client) Filter(f Filters) []Site {
	start := time.Now()
	defer func() { c.obs.observe("filter", start, nil) }()

	return fromSites(c.dir.Filter(search.Filters{
		Query:      f.Query,
		Type:       string(f.Type),
		Location:   f.Location,
		Facilities: f.Facilities,
	}))
}

// Nearby returns sites within radiusKm of the point, nearest first.
// limit <= 0 means no cap. Out-of-bounds coordinates return
// ErrInvalidCoordinates.
func (c *Client) Nearby(lat, lng, radiusKm float64, limit int) (hits []NearbyHit, err error) {
	start := time.Now()
	defer func() { c.obs.observe("nearby", start, err) }()

	res, err := c.dir.Nearby(lat, lng, radiusKm, limit)
	if err != nil {
		return nil, err
	}
	return fromProximities(res), nil
}

// Stats computes aggregate figures over the dataset.
func (c *Client) Stats() Stats {
	return fromStats(c.dir.Stats())
}

// Locations returns the sorted distinct localities of the dataset.
func (c *Client) Locations() []string {
	return c.dir.UniqueLocations()
}

// Facilities returns the sorted distinct facility names of the dataset.
func (c *Client) Facilities() []string {
	return c.dir.UniqueFacilities()
}

// Report returns the validation outcome of the loaded dataset.
func (c *Client) Report() DatasetReport {
	return fromDatasetReport(c.dir.Report())
}

// ValidateRecord checks one candidate record given as a decoded JSON
// object, using the client's region and facility vocabulary.
func (c *Client) ValidateRecord(raw map[string]any) RecordReport {
	start := time.Now()
	defer func() { c.obs.observe("validate", start, nil) }()

	return fromRecordReport(c.validator.ValidateSite(raw))
}

// Publish validates a raw dataset document and writes it to Redis for
// other instances to load. Requires a Redis source. The running client
// keeps its loaded snapshot; create a new Client to pick up the
// published dataset.
func (c *Client) Publish(ctx context.Context, raw []byte) (info PublishInfo, err error) {
	start := time.Now()
	defer func() { c.obs.observe("publish", start, err) }()

	if c.publisher == nil {
		return PublishInfo{}, errors.New("sakhi: publish requires a redis source")
	}
	meta, err := c.publisher.Publish(ctx, raw)
	if err != nil {
		return PublishInfo{}, err
	}
	return PublishInfo{Count: meta.Count, Checksum: meta.Checksum}, nil
}

// Health checks the health of all components.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
}
