package directory

import (
	"context"

	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/site"
)

// Source loads the dataset. Implementations read an external store (file,
// Redis) exactly once per call; the Service caches the result for its
// lifetime.
type Source interface {
	Load(ctx context.Context) (site.Dataset, error)
}
