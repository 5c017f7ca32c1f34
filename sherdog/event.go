package sherdog

import (
	"context"
	"fmt"
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/padraicbc/sherdogapi/models"
)

var (
	eventBlock    = Selector{Tag: "div", Attr: "itemtype", Value: schemaEvent}
	eventName     = Selector{Tag: "span", Attr: "itemprop", Value: "name"}
	eventDate     = Selector{Tag: "meta", Attr: "itemprop", Value: "startDate", ReadAttr: "content"}
	eventLocation = Selector{Tag: "span", Attr: "itemprop", Value: "location"}

	fightRow      = Selector{Tag: "tr", Attr: "itemprop", Value: "subEvent"}
	performerCell = Selector{Tag: "td", Attr: "itemprop", Value: "performer"}
	performerName = Selector{Tag: "span", Attr: "itemprop", Value: "name"}
	performerURL  = Selector{Tag: "a", Attr: "itemprop", Value: "url", ReadAttr: "href"}
	finalResult   = Selector{Tag: "span", Attr: "class", Pattern: regexp.MustCompile(`final_result.*`)}
)

// Event scrapes an event page and every fight on its card.
func (s *Scraper) Event(ctx context.Context, id int) (*models.Event, error) {
	doc, err := s.document(ctx, "events", id)
	if err != nil {
		return nil, err
	}

	block := eventBlock.Find(doc.Selection)
	if block.Length() == 0 {
		return nil, ErrNotFound
	}

	event := &models.Event{Fights: []models.Fight{}}
	if event.Name, err = eventName.Required(block, "event name"); err != nil {
		return nil, err
	}
	start, err := eventDate.Required(block, "event startDate")
	if err != nil {
		return nil, err
	}
	if event.Date, err = models.ParseDate(datePart(start)); err != nil {
		return nil, err
	}
	if event.Location, err = eventLocation.Required(block, "event location"); err != nil {
		return nil, err
	}

	rows := fightRow.FindAll(doc.Selection)
	for i := range rows.Nodes {
		fight, err := s.fight(rows.Eq(i))
		if err != nil {
			return nil, fmt.Errorf("fight %d: %w", i+1, err)
		}
		event.Fights = append(event.Fights, fight)
	}
	return event, nil
}

func (s *Scraper) fight(row *goquery.Selection) (models.Fight, error) {
	fight := models.Fight{Fighters: []models.FighterResult{}}

	cells := performerCell.FindAll(row)
	for i := range cells.Nodes {
		fr, err := s.fighterResult(cells.Eq(i))
		if err != nil {
			return fight, err
		}
		fight.Fighters = append(fight.Fighters, fr)
	}

	method, round, endTime, err := trailingCells(row)
	if err != nil {
		return fight, err
	}
	fight.Method, fight.Round, fight.EndTime = method, round, endTime
	return fight, nil
}

func (s *Scraper) fighterResult(cell *goquery.Selection) (models.FighterResult, error) {
	var fr models.FighterResult
	var err error

	if fr.Name, err = performerName.Required(cell, "fighter name"); err != nil {
		return fr, err
	}
	href, err := performerURL.Required(cell, "fighter url")
	if err != nil {
		return fr, err
	}
	fr.URL = s.baseURL + href
	if fr.ID, err = idFromURL(fr.URL); err != nil {
		return fr, err
	}
	result, err := finalResult.Required(cell, "fight result")
	if err != nil {
		return fr, err
	}
	fr.Win = result == "win"
	return fr, nil
}

// trailingCells reads method, round and end time from the last three cells
// of a fight row, in that order.
func trailingCells(row *goquery.Selection) (method, round, endTime string, err error) {
	cells := row.Find("td")
	n := cells.Length()
	if n < 3 {
		return "", "", "", fmt.Errorf("sherdog: fight row has %d cells, want at least 3", n)
	}
	out := make([]string, 3)
	for i := range out {
		text, ok := selectText(cells.Eq(n-3+i), FirstChild)
		if !ok {
			return "", "", "", &FieldError{Field: "fight result cell"}
		}
		out[i] = text
	}
	return out[0], out[1], out[2], nil
}
