package sitestore

import (
	"context"

	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/validation"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
	setFn func(ctx context.Context, key string, value []byte) error
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, nil
}

func (m *mockStore) Set(ctx context.Context, key string, value []byte) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value)
	}
	return nil
}

func testValidator() *validation.Validator {
	return validation.New()
}

// rawDataset is a two-record document that passes validation. The first
// record is clean, the second carries contact and image warnings.
func rawDataset() []byte {
	return []byte(`{
  "sites": [
    {
      "id": "temple-shiv-mandir",
      "name": "Shiv Mandir",
      "type": "temple",
      "location": {
        "address": "Railway Road, Near Clock Tower",
        "city": "Hoshiarpur",
        "coordinates": {"lat": 31.532, "lng": 75.917}
      },
      "description": "An old Shiva temple known for its Maha Shivratri fair and its carved stone doorway.",
      "history": "Local accounts date the shrine to the late eighteenth century, when traders on the grain route endowed a small linga shrine that grew into the present complex.",
      "timings": {"weekdays": "5:00 AM - 9:00 PM", "weekends": "4:30 AM - 10:00 PM"},
      "facilities": ["Parking", "Drinking Water"],
      "contact": {"phone": "+91-1882-245678"},
      "images": ["shiv-mandir-front.jpg"]
    },
    {
      "id": "gurdwara-singh-sabha",
      "name": "Gurdwara Singh Sabha",
      "type": "gurdwara",
      "location": {
        "address": "GT Road, Dasuya",
        "city": "Dasuya",
        "coordinates": {"lat": 31.8169, "lng": 75.6531}
      },
      "description": "Central gurdwara of Dasuya serving langar to travellers on the GT Road.",
      "history": "Established by the local Singh Sabha movement at the turn of the twentieth century, the gurdwara grew around a sarai that sheltered pilgrims travelling between Amritsar and the hills.",
      "timings": {"weekdays": "4:00 AM - 10:00 PM", "weekends": "4:00 AM - 10:00 PM"},
      "facilities": ["Langar Hall", "Parking", "Sarai"]
    }
  ]
}`)
}
