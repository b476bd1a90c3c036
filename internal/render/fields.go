// Package render turns a raw HTML profile template and a card record into a
// personalized page. It has two stages: structural anchor rewriting
// (Elements) followed by literal placeholder substitution (Fields). Fields
// runs last, on the serialized tree output, so the values it inserts are
// never escaped or normalized by the HTML renderer.
package render

import (
	"strings"

	"github.com/brandstack/cardlink/internal/server/models"
)

// fieldTokens maps each recognized placeholder token to the record field
// backing it.
var fieldTokens = []struct {
	token string
	key   models.FieldKey
}{
	{"{{NAME}}", models.FieldName},
	{"{{TITLE}}", models.FieldTitle},
	{"{{COMPANY}}", models.FieldCompany},
	{"{{PHOTO}}", models.FieldPhoto},
}

// Fields replaces every occurrence of each recognized placeholder token with
// the corresponding record field, or the empty string when the field is
// absent. Replacement is literal and single-pass: inserted values are never
// rescanned for further tokens, and no HTML escaping is applied.
// Unrecognized tokens are left untouched.
func Fields(tpl string, card *models.Card) string {
	pairs := make([]string, 0, len(fieldTokens)*2)
	for _, ft := range fieldTokens {
		pairs = append(pairs, ft.token, card.Field(ft.key))
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}
