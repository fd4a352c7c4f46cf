package validation

// Region is the bounding box a deployment expects its sites to fall in.
// Coordinates inside hard latitude/longitude bounds but outside the region
// are rejected with an outside_region error.
type Region struct {
	Name   string
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// DefaultRegion covers the Hoshiarpur district deployment.
func DefaultRegion() Region {
	return Region{
		Name:   "Hoshiarpur",
		MinLat: 29,
		MaxLat: 33,
		MinLng: 73,
		MaxLng: 78,
	}
}

// LatWithin reports whether lat falls inside the region's latitude band.
func (r Region) LatWithin(lat float64) bool {
	return lat >= r.MinLat && lat <= r.MaxLat
}

// LngWithin reports whether lng falls inside the region's longitude band.
func (r Region) LngWithin(lng float64) bool {
	return lng >= r.MinLng && lng <= r.MaxLng
}
