// Package sakhi provides a Go client for the Hoshiarpur religious-sites
// directory: an embedded, validated dataset of temples and gurdwaras with
// lookup, filtering, and proximity queries.
//
// # Loading a dataset
//
//	d, _ := sakhi.New(ctx, sakhi.WithFile("data/sites.json"))
//	defer d.Close()
//
//	site, err := d.Site("temple-shiv-mandir")
//	report := d.Report() // validation outcome of the loaded dataset
//
// Datasets can also come from Redis (shared between instances) or be
// passed inline:
//
//	d, _ := sakhi.New(ctx, sakhi.WithRedis("localhost:6379", ""))
//	d, _ := sakhi.New(ctx, sakhi.WithSites(mySites))
//
// # Queries
//
// The combined filter matches on free text, site type, location, and
// facilities; every active condition must hold:
//
//	temples := d.Query().Type(sakhi.Temple).In("hoshiarpur").Do()
//	langar := d.Query().WithFacilities("Langar Hall", "Parking").Do()
//
// Proximity queries return sites within a radius, nearest first:
//
//	hits, err := d.Near(31.53, 75.91).Km(10).Limit(5).Do()
package sakhi
