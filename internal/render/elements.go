package render

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/brandstack/cardlink/internal/server/models"
)

// Elements rewrites the template's named anchor elements against the record:
// action buttons (call, email, whatsapp, save) get a derived href, and
// social/location icons (instagram, facebook, youtube, location, website)
// either get the record value as href or are hidden with an inline style.
// An anchor whose backing field is absent is always hidden rather than
// linked, so the page never carries a degenerate link.
//
// The template is parsed into an element tree and anchors are located by
// their id attribute, so attribute order inside the opening tag does not
// matter. All other attributes of a rewritten element are preserved.
func Elements(doc string, card *models.Card, cardID string) (string, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}

	anchors := make(map[string]*html.Node)
	collectAnchors(root, anchors)

	// Action buttons.
	linkOrHide(anchors["call"], hrefWithPrefix("tel:", card.Field(models.FieldPhone)))
	linkOrHide(anchors["email"], hrefWithPrefix("mailto:", card.Field(models.FieldEmail)))
	linkOrHide(anchors["whatsapp"], whatsappLink(card.Field(models.FieldPhone)))
	if n := anchors["save"]; n != nil {
		setAttr(n, "href", "/vcf/"+cardID)
	}

	// Social and location icons.
	linkOrHide(anchors["instagram"], card.Field(models.FieldInstagram))
	linkOrHide(anchors["facebook"], card.Field(models.FieldFacebook))
	linkOrHide(anchors["youtube"], card.Field(models.FieldYoutube))
	linkOrHide(anchors["location"], card.Field(models.FieldLocation))
	linkOrHide(anchors["website"], card.Field(models.FieldWebsite))

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// collectAnchors indexes <a> elements by their id attribute.
func collectAnchors(n *html.Node, out map[string]*html.Node) {
	if n.Type == html.ElementNode && n.Data == "a" {
		if id := attrValue(n, "id"); id != "" {
			out[id] = n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectAnchors(c, out)
	}
}

// linkOrHide sets href when the value is present, otherwise hides the
// element. Missing anchors are ignored.
func linkOrHide(n *html.Node, href string) {
	if n == nil {
		return
	}
	if href == "" {
		hide(n)
		return
	}
	setAttr(n, "href", href)
}

// hide forces the element invisible while leaving its other attributes
// untouched.
func hide(n *html.Node) {
	if style := attrValue(n, "style"); style != "" {
		setAttr(n, "style", strings.TrimRight(strings.TrimSpace(style), ";")+";display:none")
		return
	}
	setAttr(n, "style", "display:none")
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// whatsappLink derives a wa.me link from a phone number by stripping every
// non-digit character.
func whatsappLink(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return ""
	}
	return "https://wa.me/" + digits
}

// hrefWithPrefix returns prefix+value, or empty when the value is absent.
func hrefWithPrefix(prefix, value string) string {
	if value == "" {
		return ""
	}
	return prefix + value
}
