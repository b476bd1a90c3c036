// Package services contains the server-side business logic. This file
// implements CardService, which turns stored card records into their three
// representations: HTML profile page, raw JSON record, and vCard file.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/brandstack/cardlink/internal/common"
	"github.com/brandstack/cardlink/internal/dbx"
	"github.com/brandstack/cardlink/internal/logging"
	"github.com/brandstack/cardlink/internal/render"
	"github.com/brandstack/cardlink/internal/server/content"
	"github.com/brandstack/cardlink/internal/server/repositories/repomanager"
	"github.com/brandstack/cardlink/internal/vcard"
)

// Template and asset names served through the content source.
const (
	TemplateIndex = "index.html"
	AssetStyle    = "style.css"
	AssetPhoto    = "profile.jpg"
)

// CardService resolves card identifiers and renders their representations.
// Record resolution always happens before any template fetch or encoding,
// so an unknown identifier is answered uniformly across representations.
type CardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	content     content.Source
	encoder     *vcard.Encoder
	logger      logging.Logger
}

func NewCardService(db *sql.DB, m repomanager.RepositoryManager, src content.Source, enc *vcard.Encoder, logger logging.Logger) *CardService {
	return &CardService{
		db:          db,
		repomanager: m,
		content:     src,
		encoder:     enc,
		logger:      logger.With("component", "cards"),
	}
}

// ProfileHTML renders the personalized profile page for cardID.
func (s *CardService) ProfileHTML(ctx context.Context, cardID string) (string, error) {
	repo := s.repomanager.Cards(s.db)
	stored, err := repo.Get(ctx, cardID)
	if err != nil {
		return "", err
	}

	tpl, err := s.content.Get(ctx, TemplateIndex)
	if err != nil {
		return "", fmt.Errorf("template fetch: %w", err)
	}

	// Anchors are rewritten on the raw template first; placeholder tokens
	// survive the parse/serialize round trip. Fields then substitutes into
	// the serialized output so its values reach the page byte-for-byte,
	// untouched by the HTML renderer.
	page, err := render.Elements(string(tpl), stored.Card, cardID)
	if err != nil {
		return "", err
	}
	return render.Fields(page, stored.Card), nil
}

// Record returns the stored record bytes verbatim.
func (s *CardService) Record(ctx context.Context, cardID string) ([]byte, error) {
	repo := s.repomanager.Cards(s.db)
	stored, err := repo.Get(ctx, cardID)
	if err != nil {
		return nil, err
	}
	return stored.Raw, nil
}

// VCard renders the vCard 3.0 representation for cardID.
func (s *CardService) VCard(ctx context.Context, cardID string) (string, error) {
	repo := s.repomanager.Cards(s.db)
	stored, err := repo.Get(ctx, cardID)
	if err != nil {
		return "", err
	}
	return s.encoder.Encode(ctx, stored.Card, cardID), nil
}

// Asset passes a static asset through from the content source.
func (s *CardService) Asset(ctx context.Context, name string) ([]byte, error) {
	body, err := s.content.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("asset fetch: %w", err)
	}
	return body, nil
}

// Upsert stores the raw record under cardID. The record must be a JSON
// document; its bytes are stored as submitted. Writes run in a transaction.
func (s *CardService) Upsert(ctx context.Context, cardID string, record []byte) error {
	if !json.Valid(record) {
		return common.ErrorInvalidRecord
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Cards(tx).Upsert(ctx, cardID, record)
	})
}

// Delete removes the record stored under cardID.
func (s *CardService) Delete(ctx context.Context, cardID string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Cards(tx).Delete(ctx, cardID)
	})
}
