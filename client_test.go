package sakhi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func fixtureSites() []Site {
	return []Site{
		{
			ID:           "temple-shiv-mandir",
			Name:         "Shiv Mandir",
			Type:         Temple,
			Address:      "Railway Road, Near Clock Tower",
			City:         "Hoshiarpur",
			Lat:          31.5320,
			Lng:          75.9170,
			Description:  "Ancient Shiva temple by the clock tower fair grounds, rebuilt after the 1905 Kangra earthquake.",
			History:      "Endowed by grain merchants of the old bazaar in the late eighteenth century and rebuilt in brick after the 1905 Kangra earthquake damaged the original shikhara.",
			WeekdayHours: "5:00 AM - 9:00 PM",
			WeekendHours: "4:30 AM - 10:00 PM",
			Facilities:   []string{"Parking", "Drinking Water"},
			Phone:        "+91-1882-245678",
			Images:       []string{"shiv-mandir-front.jpg"},
		},
		{
			ID:           "gurdwara-singh-sabha",
			Name:         "Gurdwara Singh Sabha",
			Type:         Gurdwara,
			Address:      "GT Road, Dasuya",
			City:         "Dasuya",
			Lat:          31.8169,
			Lng:          75.6531,
			Description:  "Central gurdwara of Dasuya serving daily langar to travellers on the Grand Trunk Road.",
			History:      "Raised by the local Singh Sabha movement in the 1920s around an older travellers' sarai on the Grand Trunk Road, and expanded with a new langar hall after Partition.",
			WeekdayHours: "4:00 AM - 10:00 PM",
			WeekendHours: "4:00 AM - 10:00 PM",
			Facilities:   []string{"Langar Hall", "Parking", "Sarai"},
		},
		{
			ID:           "temple-kamahi-devi",
			Name:         "Kamahi Devi Temple",
			Type:         Temple,
			Address:      "Temple Road, Kamahi Devi",
			City:         "Garhshankar",
			Lat:          31.2150,
			Lng:          76.1420,
			Description:  "Hill shrine of the goddess visited in large numbers during the Navratri fairs.",
			History:      "A small village shrine that grew into a fair ground over generations, drawing pilgrims from Garhshankar and the surrounding Kandi belt villages during both Navratris.",
			WeekdayHours: "6:00 AM - 8:00 PM",
			WeekendHours: "5:00 AM - 9:00 PM",
			Facilities:   []string{"Drinking Water", "Shoe Stand"},
			Phone:        "+91-1884-267501",
			Images:       []string{"kamahi-devi-hill.jpg"},
		},
	}
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c, err := New(context.Background(), WithSites(fixtureSites()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestNew_NoSource(t *testing.T) {
	_, err := New(context.Background())
	if err == nil {
		t.Fatal("expected error when no source provided")
	}
	if !strings.Contains(err.Error(), "dataset source required") {
		t.Errorf("error must name the missing source, got %q", err)
	}
}

func TestNew_WithSites(t *testing.T) {
	c := newTestClient(t)

	if got := len(c.Sites()); got != 3 {
		t.Fatalf("sites: got %d, want 3", got)
	}

	report := c.Report()
	if !report.Valid {
		t.Errorf("report must be valid: %+v", report.Invalid)
	}
	if report.TotalSites != 3 || report.Temples != 2 || report.Gurdwaras != 1 {
		t.Errorf("summary: %+v", report)
	}
	// The gurdwara has no contact or images
	if len(report.Flagged) != 1 || report.Flagged[0].ID != "gurdwara-singh-sabha" {
		t.Errorf("flagged: %+v", report.Flagged)
	}
}

func TestNew_WithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.json")
	data, err := json.Marshal(map[string]any{"sites": toSites(fixtureSites())})
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c, err := New(context.Background(), WithFile(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	if got := len(c.Sites()); got != 3 {
		t.Errorf("sites: got %d, want 3", got)
	}
}

func TestNew_FileMissing(t *testing.T) {
	_, err := New(context.Background(), WithFile(filepath.Join(t.TempDir(), "absent.json")))
	if err == nil {
		t.Fatal("expected error for a missing file")
	}
}

func TestNew_StructurallyBroken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sites.json")
	if err := os.WriteFile(path, []byte(`["not", "a", "dataset"]`), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := New(context.Background(), WithFile(path))
	if err == nil {
		t.Fatal("expected error for a structurally broken dataset")
	}
	if !strings.Contains(err.Error(), "dataset invalid") {
		t.Errorf("error must describe the failure, got %q", err)
	}
}

func TestSite(t *testing.T) {
	c := newTestClient(t)

	s, err := c.Site("gurdwara-singh-sabha")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "Gurdwara Singh Sabha" || s.City != "Dasuya" {
		t.Errorf("got %+v", s)
	}

	_, err = c.Site("temple-does-not-exist")
	if !errors.Is(err, ErrSiteNotFound) {
		t.Errorf("expected ErrSiteNotFound, got %v", err)
	}
}

func TestTypedAndLocationLookups(t *testing.T) {
	c := newTestClient(t)

	if got := c.SitesByType(Temple); len(got) != 2 {
		t.Errorf("temples: got %d, want 2", len(got))
	}
	if got := c.SitesIn("dasuya"); len(got) != 1 || got[0].ID != "gurdwara-singh-sabha" {
		t.Errorf("dasuya: got %+v", got)
	}
	if got := c.SearchSites("navratri"); len(got) != 1 || got[0].ID != "temple-kamahi-devi" {
		t.Errorf("navratri: got %+v", got)
	}
}

func TestFilter_Combined(t *testing.T) {
	c := newTestClient(t)

	got := c.Filter(Filters{Type: Temple, Location: "hoshiarpur"})
	if len(got) != 1 || got[0].ID != "temple-shiv-mandir" {
		t.Errorf("got %+v", got)
	}

	if got := c.Filter(Filters{Facilities: []string{"Parking", "Sarai"}}); len(got) != 1 {
		t.Errorf("facilities: got %d, want 1", len(got))
	}

	if got := c.Filter(Filters{}); len(got) != 3 {
		t.Errorf("no filters: got %d, want 3", len(got))
	}
}

func TestNearby(t *testing.T) {
	c := newTestClient(t)

	hits, err := c.Nearby(31.5320, 75.9170, 45, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) != 3 {
		t.Fatalf("hits: got %d, want 3", len(hits))
	}
	if hits[0].Site.ID != "temple-shiv-mandir" || hits[0].DistanceKm > 0.001 {
		t.Errorf("nearest: %+v", hits[0])
	}
	if hits[1].Site.ID != "gurdwara-singh-sabha" {
		t.Errorf("second: %s", hits[1].Site.ID)
	}
}

func TestNearby_InvalidCoordinates(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Nearby(100, 75.9170, 10, 0)
	if !errors.Is(err, ErrInvalidCoordinates) {
		t.Errorf("expected ErrInvalidCoordinates, got %v", err)
	}
}

func TestStats(t *testing.T) {
	c := newTestClient(t)

	stats := c.Stats()
	if stats.TotalSites != 3 || stats.Temples != 2 || stats.Gurdwaras != 1 {
		t.Errorf("counts: %+v", stats)
	}
	if stats.WithContact != 2 || stats.WithImages != 2 {
		t.Errorf("contact/images: %+v", stats)
	}
	if len(stats.Facilities) != 5 {
		t.Errorf("facilities: %v", stats.Facilities)
	}
}

func TestLocationsAndFacilities(t *testing.T) {
	c := newTestClient(t)

	// Three cities plus three distinct address segments
	if got := c.Locations(); len(got) != 6 {
		t.Errorf("locations: %v", got)
	}
	if got := c.Facilities(); len(got) != 5 || got[0] != "Drinking Water" {
		t.Errorf("facilities: %v", got)
	}
}

func TestValidateRecord(t *testing.T) {
	c := newTestClient(t)

	bad := c.ValidateRecord(map[string]any{"id": "temple-broken"})
	if bad.Valid {
		t.Error("a skeletal record must not validate")
	}
	if len(bad.Errors) == 0 {
		t.Error("expected required-field errors")
	}

	good := c.ValidateRecord(map[string]any{
		"id": "temple-shiv-mandir", "name": "Shiv Mandir", "type": "temple",
		"description": "Ancient Shiva temple by the clock tower fair grounds of Hoshiarpur.",
		"history":     "Endowed by grain merchants of the old bazaar in the late eighteenth century and rebuilt in brick after the Kangra earthquake.",
		"location": map[string]any{
			"address": "Railway Road", "city": "Hoshiarpur",
			"coordinates": map[string]any{"lat": 31.532, "lng": 75.917},
		},
		"timings":    map[string]any{"weekdays": "5:00 AM - 9:00 PM", "weekends": "4:30 AM - 10:00 PM"},
		"facilities": []any{"Parking"},
		"contact":    map[string]any{"phone": "+91-1882-245678"},
		"images":     []any{"front.jpg"},
	})
	if !good.Valid || len(good.Warnings) != 0 {
		t.Errorf("expected a clean record, got %+v", good)
	}
}

func TestPublish_RequiresRedisSource(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Publish(context.Background(), []byte(`{"sites": []}`))
	if err == nil {
		t.Fatal("expected error for a non-redis client")
	}
}

func TestPing_NoStore(t *testing.T) {
	c := newTestClient(t)

	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("ping without a store must be nil, got %v", err)
	}
}

func TestHealth(t *testing.T) {
	c := newTestClient(t)

	h := c.Health(context.Background())
	if h.Status != "ok" {
		t.Errorf("status: got %s, want ok", h.Status)
	}
	if h.Checks["dataset"] != "ok" {
		t.Errorf("dataset check: %v", h.Checks)
	}
	if _, ok := h.Checks["database"]; ok {
		t.Error("no database check expected without a store")
	}
}

func TestClientOptions(t *testing.T) {
	cfg := &clientConfig{}
	WithFile("data/sites.json").apply(cfg)
	if cfg.source != "file" || cfg.path != "data/sites.json" {
		t.Errorf("WithFile: %+v", cfg)
	}

	cfg = &clientConfig{}
	WithRedis("localhost:6379", "secret").apply(cfg)
	if cfg.source != "redis" || cfg.addrs[0] != "localhost:6379" || cfg.password != "secret" {
		t.Errorf("WithRedis: %+v", cfg)
	}
	WithKeyPrefix("directory").apply(cfg)
	if cfg.keyPrefix != "directory" {
		t.Errorf("WithKeyPrefix: %+v", cfg)
	}

	cfg = &clientConfig{}
	WithSites(fixtureSites()).apply(cfg)
	if cfg.source != "sites" || len(cfg.sites) != 3 {
		t.Errorf("WithSites: %+v", cfg)
	}

	WithRegion(Region{Name: "Ticino", MinLat: 45, MaxLat: 47, MinLng: 8, MaxLng: 10}).apply(cfg)
	if cfg.region == nil || cfg.region.Name != "Ticino" {
		t.Errorf("WithRegion: %+v", cfg.region)
	}

	WithFacilityList([]string{"Grotto"}).apply(cfg)
	if len(cfg.facilities) != 1 {
		t.Errorf("WithFacilityList: %+v", cfg.facilities)
	}

	WithLogger(slog.Default()).apply(cfg)
	if cfg.logger == nil {
		t.Error("WithLogger did not set the logger")
	}

	WithPrometheus(prometheus.NewRegistry()).apply(cfg)
	if cfg.metricsReg == nil {
		t.Error("WithPrometheus did not set the registerer")
	}
}

func TestRegionOption_RejectsOutsideSites(t *testing.T) {
	// The fixture lies in Punjab; a Ticino box must invalidate it.
	c, err := New(context.Background(),
		WithSites(fixtureSites()),
		WithRegion(Region{Name: "Ticino", MinLat: 45, MaxLat: 47, MinLng: 8, MaxLng: 10}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	report := c.Report()
	if report.Valid {
		t.Error("sites outside the region must fail validation")
	}
	if len(report.Invalid) != 3 {
		t.Errorf("invalid: got %d, want 3", len(report.Invalid))
	}
}
