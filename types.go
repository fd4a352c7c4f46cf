package sakhi

// Type is the kind of religious site.
type Type string

// Site type constants.
const (
	Temple   Type = "temple"
	Gurdwara Type = "gurdwara"
)

// Site is one directory record. The struct is flat for ease of use;
// address, coordinates, timings, and contact details are plain fields.
type Site struct {
	ID   string
	Name string
	Type Type

	Address string
	City    string
	Lat     float64
	Lng     float64

	Description string
	History     string

	WeekdayHours    string
	WeekendHours    string
	SpecialDayHours string

	Facilities []string
	Phone      string
	Email      string
	Images     []string
}

// Filters is the combined query. Zero-value fields are inactive; a record
// must match every active field.
type Filters struct {
	Query      string
	Type       Type
	Location   string
	Facilities []string
}

// NearbyHit pairs a site with its distance from the query point.
type NearbyHit struct {
	Site       Site
	DistanceKm float64
}

// Stats are aggregate figures over the loaded dataset.
type Stats struct {
	TotalSites        int
	Temples           int
	Gurdwaras         int
	WithContact       int
	WithImages        int
	AvgDescriptionLen int
	AvgHistoryLen     int
	Facilities        []string
}

// Region is the bounding box records are validated against. Coordinates
// outside it fail validation even when globally plausible.
type Region struct {
	Name   string
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// Issue is one structured validation diagnostic.
type Issue struct {
	Field   string
	Code    string
	Message string
}

// RecordReport is the validation outcome for a single record. Valid
// depends on Errors only; Warnings and Advisories never block a record.
type RecordReport struct {
	Valid      bool
	Errors     []Issue
	Warnings   []Issue
	Advisories []Issue
}

// RecordEntry ties a record's report to its position and id.
type RecordEntry struct {
	Index  int
	ID     string
	Report RecordReport
}

// DatasetReport is the validation outcome for a whole dataset. Structural
// issues describe a malformed document; Invalid lists records with errors
// and Flagged lists valid records that still raised warnings.
type DatasetReport struct {
	Valid      bool
	Structural []Issue

	TotalSites  int
	Temples     int
	Gurdwaras   int
	WithContact int
	WithImages  int

	Invalid []RecordEntry
	Flagged []RecordEntry
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            // "ok", "degraded", "error"
	Checks map[string]string // component -> "ok"/"error"
}

// PublishInfo describes a dataset published to Redis.
type PublishInfo struct {
	Count    int
	Checksum string
}
