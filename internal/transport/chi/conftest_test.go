package chi

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap/zaptest"

	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/site"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/validation"
	directoryuc "github.com/studentGarv/hoshiarpur-sakhi/internal/usecase/directory"
	healthuc "github.com/studentGarv/hoshiarpur-sakhi/internal/usecase/health"
)

func fixtureDataset() site.Dataset {
	sites := []site.Site{
		{
			ID:   "temple-shiv-mandir",
			Name: "Shiv Mandir",
			Type: site.TypeTemple,
			Location: site.Location{
				Address:     "Railway Road, Near Clock Tower",
				City:        "Hoshiarpur",
				Coordinates: site.Coordinates{Lat: 31.5320, Lng: 75.9170},
			},
			Description: "Ancient Shiva temple by the clock tower fair grounds.",
			History:     "Endowed by grain traders in the late eighteenth century.",
			Timings:     site.Timings{Weekdays: "5:00 AM - 9:00 PM", Weekends: "4:30 AM - 10:00 PM"},
			Facilities:  []string{"Parking", "Drinking Water"},
			Contact:     &site.Contact{Phone: "+91-1882-245678"},
			Images:      []string{"shiv-mandir-front.jpg"},
		},
		{
			ID:   "gurdwara-singh-sabha",
			Name: "Gurdwara Singh Sabha",
			Type: site.TypeGurdwara,
			Location: site.Location{
				Address:     "GT Road, Dasuya",
				City:        "Dasuya",
				Coordinates: site.Coordinates{Lat: 31.8169, Lng: 75.6531},
			},
			Description: "Central gurdwara serving daily langar.",
			History:     "Raised by the local Singh Sabha movement around a travellers' sarai.",
			Timings:     site.Timings{Weekdays: "4:00 AM - 10:00 PM", Weekends: "4:00 AM - 10:00 PM"},
			Facilities:  []string{"Langar Hall", "Parking", "Sarai"},
		},
		{
			ID:   "temple-kamahi-devi",
			Name: "Kamahi Devi Temple",
			Type: site.TypeTemple,
			Location: site.Location{
				Address:     "Temple Road, Kamahi Devi",
				City:        "Garhshankar",
				Coordinates: site.Coordinates{Lat: 31.2150, Lng: 76.1420},
			},
			Description: "Hill shrine visited during Navratri.",
			History:     "A village shrine that grew with the Navratri fairs.",
			Timings:     site.Timings{Weekdays: "6:00 AM - 8:00 PM", Weekends: "5:00 AM - 9:00 PM"},
			Facilities:  []string{"Drinking Water", "Shoe Stand"},
		},
	}

	return site.Dataset{
		Sites: sites,
		Report: validation.DatasetReport{
			Valid: true,
			Summary: validation.Summary{
				TotalSites:  3,
				Temples:     2,
				Gurdwaras:   1,
				WithContact: 1,
				WithImages:  1,
			},
		},
	}
}

func routerFor(t *testing.T, ds site.Dataset) http.Handler {
	t.Helper()
	dir := directoryuc.New(ds)
	srv := NewServer(dir, healthuc.New(dir, nil), zaptest.NewLogger(t))
	r := chi.NewRouter()
	srv.Routes(r)
	return r
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return routerFor(t, fixtureDataset())
}
