// Package vcard renders card records as vCard 3.0 documents, including an
// optional base64-embedded photo fetched from the record's photo URL.
package vcard

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/brandstack/cardlink/internal/logging"
	"github.com/brandstack/cardlink/internal/server/models"
)

// geoPattern extracts a coordinate pair from a Google-Maps style URL.
// Only the q=<lat>,<lng> shape is recognized; other map-link formats fall
// back to the ADR block alone.
var geoPattern = regexp.MustCompile(`q=([-0-9.]+),([-0-9.]+)`)

// Encoder builds vCard 3.0 documents. The HTTP client is used for the
// optional photo fetch only.
type Encoder struct {
	client *http.Client
	logger logging.Logger
}

func NewEncoder(client *http.Client, logger logging.Logger) *Encoder {
	if client == nil {
		client = http.DefaultClient
	}
	return &Encoder{client: client, logger: logger.With("component", "vcard")}
}

// Encode renders the record as a complete vCard 3.0 document. The document
// always begins with BEGIN:VCARD and ends with END:VCARD with no
// surrounding whitespace. A failed photo fetch is logged and the photo
// block omitted; it never fails the render.
func (e *Encoder) Encode(ctx context.Context, card *models.Card, cardID string) string {
	var photoBlock string
	if photo := card.Field(models.FieldPhoto); photo != "" {
		b64, err := e.fetchPhoto(ctx, photo)
		if err != nil {
			e.logger.Warn(ctx, "photo fetch failed", "card_id", cardID, "url", photo, "error", err)
		} else {
			photoBlock = "PHOTO;ENCODING=b;TYPE=JPEG:" + b64
		}
	}

	var adrBlock, geoBlock string
	if location := card.Field(models.FieldLocation); location != "" {
		if m := geoPattern.FindStringSubmatch(location); m != nil {
			geoBlock = "GEO:" + m[1] + ";" + m[2]
		}
		adrBlock = "ADR;TYPE=WORK:;;;;" + location
	}

	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:" + card.Field(models.FieldName),
		"ORG:" + card.Field(models.FieldCompany),
		"TITLE:" + card.Field(models.FieldTitle),
		"TEL;TYPE=CELL:" + card.Field(models.FieldPhone),
		"EMAIL:" + card.Field(models.FieldEmail),
		"URL:" + card.Field(models.FieldWebsite),
	}
	for _, block := range []string{adrBlock, geoBlock, photoBlock} {
		if block != "" {
			lines = append(lines, block)
		}
	}
	lines = append(lines, "END:VCARD")

	return strings.Join(lines, "\n")
}

// fetchPhoto downloads the image and returns it base64-encoded.
func (e *Encoder) fetchPhoto(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(body), nil
}
