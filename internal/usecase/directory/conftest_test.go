package directory

import (
	"context"

	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/site"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/validation"
)

// stubSource lets each test script the load outcome.
type stubSource struct {
	load func(ctx context.Context) (site.Dataset, error)
}

func (s *stubSource) Load(ctx context.Context) (site.Dataset, error) {
	return s.load(ctx)
}

func fixtureSites() []site.Site {
	return []site.Site{
		{
			ID:   "temple-shiv-mandir",
			Name: "Shiv Mandir",
			Type: site.TypeTemple,
			Location: site.Location{
				Address:     "Railway Road, Near Clock Tower",
				City:        "Hoshiarpur",
				Coordinates: site.Coordinates{Lat: 31.5320, Lng: 75.9170},
			},
			Description: "An old Shiva temple with a marble sanctum.",
			History:     "Served the market quarter for over a century.",
			Timings:     site.Timings{Weekdays: "6:00 AM - 8:00 PM", Weekends: "5:00 AM - 9:00 PM"},
			Facilities:  []string{"Parking", "Drinking Water"},
			Contact:     &site.Contact{Phone: "+91-1882-245001"},
			Images:      []string{"shiv-mandir.jpg"},
		},
		{
			ID:   "gurdwara-singh-sabha",
			Name: "Gurdwara Singh Sabha",
			Type: site.TypeGurdwara,
			Location: site.Location{
				Address:     "Main Bazaar, Dasuya",
				City:        "Dasuya",
				Coordinates: site.Coordinates{Lat: 31.8169, Lng: 75.6531},
			},
			Description: "Central gurdwara serving daily langar.",
			History:     "Raised by the sangat in 1921 around an older shrine.",
			Timings:     site.Timings{Weekdays: "4:00 AM - 9:00 PM", Weekends: "24 hours"},
			Facilities:  []string{"Langar Hall", "Parking", "Sarai"},
			Contact:     &site.Contact{Email: "sewa@singhsabha.org"},
		},
		{
			ID:   "temple-kamahi-devi",
			Name: "Kamahi Devi Mandir",
			Type: site.TypeTemple,
			Location: site.Location{
				Address:     "Temple Street, Saila Khurd",
				City:        "Garhshankar",
				Coordinates: site.Coordinates{Lat: 31.2150, Lng: 76.1420},
			},
			Description: "Hill shrine drawing pilgrims during Navratri.",
			History:     "The shrine is tied to a local legend of a devoted shepherd girl.",
			Timings:     site.Timings{Weekdays: "5:00 AM - 7:00 PM", Weekends: "5:00 AM - 7:00 PM"},
			Facilities:  []string{"Drinking Water", "Shoe Stand"},
		},
		{
			ID:   "gurdwara-shaheedan",
			Name: "Gurdwara Shaheedan",
			Type: site.TypeGurdwara,
			Location: site.Location{
				Address:     "Mukerian, GT Road",
				City:        "Mukerian",
				Coordinates: site.Coordinates{Lat: 31.9540, Lng: 75.6170},
			},
			Description: "Memorial gurdwara on the old highway.",
			History:     "Commemorates martyrs of the eighteenth century misl period.",
			Timings:     site.Timings{Weekdays: "24 hours", Weekends: "24 hours"},
			Facilities:  []string{"Museum", "Washrooms"},
			Images:      []string{"shaheedan-1.jpg", "shaheedan-2.jpg"},
		},
	}
}

func fixtureDataset() site.Dataset {
	sites := fixtureSites()
	return site.Dataset{
		Sites: sites,
		Report: validation.DatasetReport{
			Valid: true,
			Summary: validation.Summary{
				TotalSites:  len(sites),
				Temples:     2,
				Gurdwaras:   2,
				WithContact: 2,
				WithImages:  2,
			},
		},
	}
}
