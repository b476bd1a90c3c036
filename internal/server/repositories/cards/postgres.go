// Package cards stores card records keyed by their public identifier. The
// record itself is kept as the raw JSON document it was submitted as, so
// the API can serve it back byte-identical.
package cards

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/brandstack/cardlink/internal/common"
	"github.com/brandstack/cardlink/internal/dbx"
	"github.com/brandstack/cardlink/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, cardID string) (*models.StoredCard, error) {
	query :=
		`SELECT record FROM cards
		 WHERE card_id = $1
		 `

	var raw []byte
	err := r.db.QueryRowContext(ctx, query, cardID).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	card := &models.Card{}
	if err := json.Unmarshal(raw, card); err != nil {
		// A record that is present but unparseable still renders in
		// degraded form; the raw bytes stay intact for the JSON endpoint.
		card = &models.Card{}
	}

	return &models.StoredCard{CardID: cardID, Card: card, Raw: raw}, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, cardID string, record []byte) error {
	query :=
		`INSERT INTO cards (card_id, record)
		 VALUES ($1, $2)
		 ON CONFLICT (card_id)
		 DO UPDATE SET record = EXCLUDED.record, updated_at = now()
		 `

	if _, err := r.db.ExecContext(ctx, query, cardID, record); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, cardID string) error {
	query :=
		`DELETE FROM cards
		 WHERE card_id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, cardID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
