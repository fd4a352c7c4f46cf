// Package site defines the record model of the religious-sites dataset.
// Records mirror the dataset JSON contract directly and carry no behavior
// beyond small read helpers: a record must be representable even when it
// would fail validation, so invariants live in the validation package, not
// in constructors.
package site

// Type is the kind of religious site.
type Type string

// Allowed site types.
const (
	TypeTemple   Type = "temple"
	TypeGurdwara Type = "gurdwara"
)

// IsValid reports whether t is one of the allowed types.
func (t Type) IsValid() bool {
	return t == TypeTemple || t == TypeGurdwara
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location places a site at an address within a city.
type Location struct {
	Address     string      `json:"address"`
	City        string      `json:"city"`
	Coordinates Coordinates `json:"coordinates"`
}

// Timings holds opening hours as free-form display strings.
type Timings struct {
	Weekdays    string `json:"weekdays"`
	Weekends    string `json:"weekends"`
	SpecialDays string `json:"specialDays,omitempty"`
}

// Contact is the optional contact block.
type Contact struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Site is one record of the directory.
type Site struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        Type     `json:"type"`
	Location    Location `json:"location"`
	Description string   `json:"description"`
	History     string   `json:"history"`
	Timings     Timings  `json:"timings"`
	Facilities  []string `json:"facilities"`
	Contact     *Contact `json:"contact,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// HasContact reports whether the record carries a contact block.
func (s Site) HasContact() bool { return s.Contact != nil }

// HasImages reports whether the record carries at least one image.
func (s Site) HasImages() bool { return len(s.Images) > 0 }
