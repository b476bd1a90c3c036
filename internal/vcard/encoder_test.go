package vcard

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandstack/cardlink/internal/logging"
	"github.com/brandstack/cardlink/internal/server/models"
)

func newTestEncoder(client *http.Client) *Encoder {
	l := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewEncoder(client, l)
}

func TestEncode_FullRecordWithCoordinates(t *testing.T) {
	card := &models.Card{
		Name:     "Suresh",
		Company:  "Acme",
		Title:    "CEO",
		Phone:    "+15551234567",
		Email:    "suresh@example.com",
		Website:  "https://suresh.example.com",
		Location: "https://maps.google.com/?q=12.34,56.78",
	}

	got := newTestEncoder(nil).Encode(context.Background(), card, "suresh")

	want := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:Suresh",
		"ORG:Acme",
		"TITLE:CEO",
		"TEL;TYPE=CELL:+15551234567",
		"EMAIL:suresh@example.com",
		"URL:https://suresh.example.com",
		"ADR;TYPE=WORK:;;;;https://maps.google.com/?q=12.34,56.78",
		"GEO:12.34;56.78",
		"END:VCARD",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestEncode_NoLocationOmitsAdrAndGeo(t *testing.T) {
	got := newTestEncoder(nil).Encode(context.Background(), &models.Card{Name: "Suresh"}, "suresh")

	assert.NotContains(t, got, "ADR")
	assert.NotContains(t, got, "GEO")
	assert.True(t, strings.HasPrefix(got, "BEGIN:VCARD"))
	assert.True(t, strings.HasSuffix(got, "END:VCARD"))
}

func TestEncode_NonCoordinateLocationGetsAdrOnly(t *testing.T) {
	card := &models.Card{Name: "S", Location: "https://maps.google.com/place/abc"}
	got := newTestEncoder(nil).Encode(context.Background(), card, "s")

	assert.Contains(t, got, "ADR;TYPE=WORK:;;;;https://maps.google.com/place/abc")
	assert.NotContains(t, got, "GEO:")
}

func TestEncode_NegativeCoordinatesPreserved(t *testing.T) {
	card := &models.Card{Name: "S", Location: "https://maps.google.com/?q=-1.50,103.80"}
	got := newTestEncoder(nil).Encode(context.Background(), card, "s")

	assert.Contains(t, got, "GEO:-1.50;103.80")
}

func TestEncode_PhotoEmbeddedBase64(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	card := &models.Card{Name: "S", Photo: srv.URL + "/p.jpg"}
	got := newTestEncoder(srv.Client()).Encode(context.Background(), card, "s")

	assert.Contains(t, got, "PHOTO;ENCODING=b;TYPE=JPEG:"+base64.StdEncoding.EncodeToString(payload))
}

func TestEncode_PhotoFetchFailureOmitsBlock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	card := &models.Card{Name: "S", Photo: srv.URL + "/p.jpg"}
	got := newTestEncoder(srv.Client()).Encode(context.Background(), card, "s")

	assert.NotContains(t, got, "PHOTO")
	assert.True(t, strings.HasPrefix(got, "BEGIN:VCARD"))
	assert.True(t, strings.HasSuffix(got, "END:VCARD"))
}

func TestEncode_PhotoUnreachableHostOmitsBlock(t *testing.T) {
	card := &models.Card{Name: "S", Photo: "http://127.0.0.1:1/p.jpg"}
	got := newTestEncoder(nil).Encode(context.Background(), card, "s")

	assert.NotContains(t, got, "PHOTO")
	assert.Contains(t, got, "FN:S")
}

func TestEncode_MissingOptionalFieldsStayEmpty(t *testing.T) {
	got := newTestEncoder(nil).Encode(context.Background(), &models.Card{Name: "Suresh"}, "suresh")

	require.Contains(t, got, "ORG:\n")
	require.Contains(t, got, "TITLE:\n")
	require.Contains(t, got, "EMAIL:\n")
	assert.NotContains(t, got, "null")
	assert.NotContains(t, got, "undefined")
}
