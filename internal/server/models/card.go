// Package models defines the server-side data structures of cardlink.
package models

// FieldKey names a card record field read by the renderers.
type FieldKey string

const (
	FieldName      FieldKey = "name"
	FieldTitle     FieldKey = "title"
	FieldCompany   FieldKey = "company"
	FieldPhoto     FieldKey = "photo"
	FieldPhone     FieldKey = "phone"
	FieldEmail     FieldKey = "email"
	FieldWebsite   FieldKey = "website"
	FieldInstagram FieldKey = "instagram"
	FieldFacebook  FieldKey = "facebook"
	FieldYoutube   FieldKey = "youtube"
	FieldLocation  FieldKey = "location"
)

// Card is a user record behind a public card identifier. Every field except
// Name is optional; absent fields are empty strings.
type Card struct {
	Name      string `json:"name"`
	Title     string `json:"title,omitempty"`
	Company   string `json:"company,omitempty"`
	Photo     string `json:"photo,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	Website   string `json:"website,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Youtube   string `json:"youtube,omitempty"`
	Location  string `json:"location,omitempty"`
}

// Field is the single point of truth for reading record fields: it returns
// the value for key, or the empty string when the field is absent or the
// key is unknown. Renderers must not reach into struct fields directly for
// optional data.
func (c *Card) Field(key FieldKey) string {
	switch key {
	case FieldName:
		return c.Name
	case FieldTitle:
		return c.Title
	case FieldCompany:
		return c.Company
	case FieldPhoto:
		return c.Photo
	case FieldPhone:
		return c.Phone
	case FieldEmail:
		return c.Email
	case FieldWebsite:
		return c.Website
	case FieldInstagram:
		return c.Instagram
	case FieldFacebook:
		return c.Facebook
	case FieldYoutube:
		return c.Youtube
	case FieldLocation:
		return c.Location
	}
	return ""
}

// StoredCard couples a parsed Card with the raw JSON bytes it was stored
// as. The raw form is served verbatim on the JSON endpoint.
type StoredCard struct {
	CardID string
	Card   *Card
	Raw    []byte
}
