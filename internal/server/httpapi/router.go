// Package httpapi exposes the public card endpoints and the admin API over
// HTTP.
package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brandstack/cardlink/internal/logging"
)

// CardRenderer produces the three representations of a card plus static
// assets. Implemented by services.CardService.
type CardRenderer interface {
	ProfileHTML(ctx context.Context, cardID string) (string, error)
	Record(ctx context.Context, cardID string) ([]byte, error)
	VCard(ctx context.Context, cardID string) (string, error)
	Asset(ctx context.Context, name string) ([]byte, error)
	Upsert(ctx context.Context, cardID string, record []byte) error
	Delete(ctx context.Context, cardID string) error
}

// AdminAuth guards the card-management endpoints. Implemented by
// services.AdminService.
type AdminAuth interface {
	Login(ctx context.Context, password string) (string, error)
	VerifyToken(tokenString string) error
}

// NewRouter wires the HTTP routes exposed by the service.
func NewRouter(logger logging.Logger, cards CardRenderer, admin AdminAuth) http.Handler {
	h := &Handlers{
		logger: logger.With("component", "http"),
		cards:  cards,
		admin:  admin,
	}

	r := chi.NewRouter()
	r.Use(requestLogger(h.logger))

	r.Get("/", h.handleHealth)
	r.Get("/style.css", h.assetHandler("style.css", "text/css; charset=utf-8"))
	r.Get("/profile.jpg", h.assetHandler("profile.jpg", "image/jpeg"))
	r.Get("/u/{cardID}", h.handleProfile)
	r.Get("/api/user/{cardID}", h.handleRecord)
	r.Get("/vcf/{cardID}", h.handleVCF)

	r.Post("/api/admin/login", h.handleAdminLogin)
	r.Route("/api/admin/cards", func(r chi.Router) {
		r.Use(h.requireAdmin)
		r.Put("/{cardID}", h.handleAdminUpsert)
		r.Delete("/{cardID}", h.handleAdminDelete)
	})

	return r
}
