package sakhi

const defaultRadiusKm = 25.0

// QueryBuilder is a fluent builder over the combined filter.
type QueryBuilder struct {
	c *Client
	f Filters
}

// Query returns a fluent builder for filtered site queries.
func (c *Client) Query() *QueryBuilder {
	return &QueryBuilder{c: c}
}

// Text sets the free-text query, matched against name, description,
// address, city, and history.
func (b *QueryBuilder) Text(q string) *QueryBuilder {
	b.f.Query = q
	return b
}

// Type restricts results to one site type.
func (b *QueryBuilder) Type(t Type) *QueryBuilder {
	b.f.Type = t
	return b
}

// In restricts results to sites whose city or address contains location.
func (b *QueryBuilder) In(location string) *QueryBuilder {
	b.f.Location = location
	return b
}

// WithFacilities requires every named facility (substring match, so
// "Park" finds "Parking").
func (b *QueryBuilder) WithFacilities(names ...string) *QueryBuilder {
	b.f.Facilities = append(b.f.Facilities, names...)
	return b
}

// Do executes the query. No active conditions means every site matches.
func (b *QueryBuilder) Do() []Site {
	return b.c.Filter(b.f)
}

// NearbyBuilder is a fluent builder for proximity queries.
type NearbyBuilder struct {
	c        *Client
	lat, lng float64
	radiusKm float64
	limit    int
}

// Near returns a fluent builder for sites around a point. The default
// radius is 25 km with no result cap.
func (c *Client) Near(lat, lng float64) *NearbyBuilder {
	return &NearbyBuilder{c: c, lat: lat, lng: lng, radiusKm: defaultRadiusKm}
}

// Km sets the search radius in kilometers (inclusive).
func (b *NearbyBuilder) Km(radius float64) *NearbyBuilder {
	b.radiusKm = radius
	return b
}

// Limit caps the number of results. n <= 0 means no cap.
func (b *NearbyBuilder) Limit(n int) *NearbyBuilder {
	b.limit = n
	return b
}

// Do executes the proximity query, nearest first.
func (b *NearbyBuilder) Do() ([]NearbyHit, error) {
	return b.c.Nearby(b.lat, b.lng, b.radiusKm, b.limit)
}
