package sherdog

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/padraicbc/sherdogapi/models"
)

var (
	fighterHeading = Selector{Tag: "h1", Attr: "itemprop", Value: "name"}
	fighterName    = Selector{Tag: "h1", Attr: "itemprop", Value: "name", Path: []string{"span"}}
	birthDate      = Selector{Tag: "span", Attr: "itemprop", Value: "birthDate"}
	locality       = Selector{Tag: "span", Attr: "itemprop", Value: "addressLocality"}
	height         = Selector{Tag: "span", Attr: "class", Value: "item height", Text: LastChild}
	weight         = Selector{Tag: "span", Attr: "class", Value: "item weight", Text: LastChild}
	campTeam       = Selector{Tag: "h5", Attr: "class", Value: "item association", Path: []string{"strong", "span", "a", "span"}}
)

// Fighter scrapes a fighter profile. Only the name is mandatory.
func (s *Scraper) Fighter(ctx context.Context, id int) (*models.Fighter, error) {
	doc, err := s.document(ctx, "fighter", id)
	if err != nil {
		return nil, err
	}

	if fighterHeading.Find(doc.Selection).Length() == 0 {
		return nil, ErrNotFound
	}
	name, err := fighterName.Required(doc.Selection, "fighter name")
	if err != nil {
		return nil, err
	}

	return &models.Fighter{
		ID:        id,
		Name:      name,
		BirthDate: birthDate.Optional(doc.Selection),
		Locality:  locality.Optional(doc.Selection),
		HeightCM:  measurement(doc.Selection, height, " cm"),
		WeightKG:  measurement(doc.Selection, weight, " kg"),
		CampTeam:  campTeam.Optional(doc.Selection),
	}, nil
}

// measurement trims the selected text and drops its unit suffix.
func measurement(root *goquery.Selection, sel Selector, unit string) *string {
	text := sel.Optional(root)
	if text == nil {
		return nil
	}
	v := strings.ReplaceAll(strings.TrimSpace(*text), unit, "")
	return &v
}
