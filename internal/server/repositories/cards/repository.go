package cards

import (
	"context"

	"github.com/brandstack/cardlink/internal/server/models"
)

// Repository resolves card identifiers to stored records. Get returns
// common.ErrorNotFound when no record exists for the identifier.
type Repository interface {
	Get(ctx context.Context, cardID string) (*models.StoredCard, error)
	Upsert(ctx context.Context, cardID string, record []byte) error
	Delete(ctx context.Context, cardID string) error
}
