package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brandstack/cardlink/internal/common"
	"github.com/brandstack/cardlink/internal/logging"
)

// Handlers holds shared dependencies for HTTP handlers.
type Handlers struct {
	logger logging.Logger
	cards  CardRenderer
	admin  AdminAuth
}

func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "cardlink is running")
}

// assetHandler passes a static asset through from the content source. Assets
// change rarely, so downstream caches may hold them for a day.
func (h *Handlers) assetHandler(name, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := h.cards.Asset(r.Context(), name)
		if err != nil {
			h.serveError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=86400")
		_, _ = w.Write(body)
	}
}

func (h *Handlers) handleProfile(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "cardID")

	page, err := h.cards.ProfileHTML(r.Context(), cardID)
	if err != nil {
		h.serveError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, page)
}

func (h *Handlers) handleRecord(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "cardID")

	raw, err := h.cards.Record(r.Context(), cardID)
	if err != nil {
		h.serveError(w, r, err)
		return
	}

	// The stored bytes are served as-is, not re-encoded.
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(raw)
}

func (h *Handlers) handleVCF(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "cardID")

	doc, err := h.cards.VCard(r.Context(), cardID)
	if err != nil {
		h.serveError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/vcard; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", cardID+".vcf"))
	_, _ = io.WriteString(w, doc)
}

// serveError maps service failures to the two user-visible outcomes:
// a uniform not-found and a generic server error. Partial-data cases never
// reach here; they degrade inside the renderers.
func (h *Handlers) serveError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, common.ErrorNotFound) {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	http.Error(w, "server error: "+err.Error(), http.StatusInternalServerError)
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *Handlers) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "bad request body", http.StatusBadRequest)
		return
	}

	token, err := h.admin.Login(r.Context(), req.Password)
	if err != nil {
		jsonError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	jsonOK(w, loginResponse{Token: token})
}

func (h *Handlers) handleAdminUpsert(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "cardID")

	record, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, "bad request body", http.StatusBadRequest)
		return
	}

	if err := h.cards.Upsert(r.Context(), cardID, record); err != nil {
		if errors.Is(err, common.ErrorInvalidRecord) {
			jsonError(w, "record must be valid JSON", http.StatusBadRequest)
			return
		}
		h.logger.Error(r.Context(), "upsert failed", "card_id", cardID, "error", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	jsonOK(w, map[string]string{"card_id": cardID})
}

func (h *Handlers) handleAdminDelete(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "cardID")

	if err := h.cards.Delete(r.Context(), cardID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			jsonError(w, "not found", http.StatusNotFound)
			return
		}
		h.logger.Error(r.Context(), "delete failed", "card_id", cardID, "error", err)
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// jsonOK writes a JSON 200 response.
func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
