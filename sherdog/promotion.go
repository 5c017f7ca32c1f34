package sherdog

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/padraicbc/sherdogapi/models"
)

var (
	organizationSection = Selector{Tag: "section", Attr: "itemtype", Value: "http://schema.org/Organization"}
	organizationName    = Selector{Tag: "h2", Attr: "itemprop", Value: "name"}

	promotionEventRow = Selector{Tag: "tr", Attr: "itemtype", Value: schemaEvent}
	rowStartDate      = Selector{Tag: "meta", Attr: "itemprop", Value: "startDate", ReadAttr: "content"}
	rowLocation       = Selector{Tag: "td", Attr: "itemprop", Value: "location", Text: LastChild}
	rowName           = Selector{Tag: "span", Attr: "itemprop", Value: "name", Text: AllText}
)

// Promotion scrapes an organization page. Events dated after today are left out.
func (s *Scraper) Promotion(ctx context.Context, id int) (*models.Promotion, error) {
	doc, err := s.document(ctx, "organizations", id)
	if err != nil {
		return nil, err
	}

	section := organizationSection.Find(doc.Selection)
	if section.Length() == 0 {
		return nil, ErrNotFound
	}
	if organizationName.Find(section).Length() == 0 {
		return nil, ErrNotFound
	}
	name, err := organizationName.Required(section, "promotion name")
	if err != nil {
		return nil, err
	}

	today := models.NewDate(s.now())
	events := []models.EventSummary{}
	rows := promotionEventRow.FindAll(doc.Selection)
	for i := range rows.Nodes {
		ev, past, err := s.eventSummary(rows.Eq(i), today)
		if err != nil {
			return nil, err
		}
		if past {
			events = append(events, ev)
		}
	}

	return &models.Promotion{
		Name:   name,
		Events: events,
	}, nil
}

// eventSummary builds one promotion row. past is false when the event is
// dated after today, in which case the summary is incomplete.
func (s *Scraper) eventSummary(row *goquery.Selection, today models.Date) (ev models.EventSummary, past bool, err error) {
	start, err := rowStartDate.Required(row, "event startDate")
	if err != nil {
		return ev, false, err
	}
	ev.Date, err = models.ParseDate(datePart(start))
	if err != nil {
		return ev, false, err
	}
	if ev.Date.After(today) {
		return ev, false, nil
	}

	onclick, ok := row.Attr("onclick")
	if !ok {
		return ev, false, &FieldError{Field: "event onclick"}
	}
	path := strings.ReplaceAll(onclick, "document.location='", "")
	path = strings.ReplaceAll(path, "';", "")
	ev.URL = s.baseURL + path
	if ev.ID, err = idFromURL(ev.URL); err != nil {
		return ev, false, err
	}

	location, err := rowLocation.Required(row, "event location")
	if err != nil {
		return ev, false, err
	}
	ev.Location = strings.TrimLeft(location, " \t\r\n")

	if ev.Name, err = rowName.Required(row, "event name"); err != nil {
		return ev, false, err
	}
	return ev, true, nil
}
