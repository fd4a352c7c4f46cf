package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// DatasetChecker reports whether the site dataset loaded cleanly.
type DatasetChecker interface {
	Loaded() bool
}
