package repomanager

import (
	"context"
	"database/sql"

	"github.com/brandstack/cardlink/internal/dbx"
	"github.com/brandstack/cardlink/internal/server/repositories/cards"
)

// RepositoryManager vends repository implementations bound to a DBTX and
// exposes a schema migration hook.
type RepositoryManager interface {
	Cards(db dbx.DBTX) cards.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
