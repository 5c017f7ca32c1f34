package sherdog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// TextMode picks which text of a matched element a Selector returns.
type TextMode int

const (
	// FirstChild is the first child node of the match.
	FirstChild TextMode = iota
	// LastChild is the last child node of the match.
	LastChild
	// AllText concatenates every text node under the match.
	AllText
)

// Selector locates a single field: an element by tag and attribute
// constraint, then an optional chain of descendant steps.
type Selector struct {
	Tag  string
	Attr string
	// Value is matched exactly against Attr.
	Value string
	// Pattern, when set, is searched for within Attr instead of Value.
	Pattern *regexp.Regexp
	// Path steps each take the first descendant with that tag name.
	Path []string
	Text TextMode
	// ReadAttr, when set, returns this attribute of the match instead of text.
	ReadAttr string
}

// FieldError is returned when a mandatory field is missing from the page.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("sherdog: required field %q not found", e.Field)
}

// FindAll returns every element under root matching the tag and attribute
// constraint. Path is not applied.
func (s Selector) FindAll(root *goquery.Selection) *goquery.Selection {
	if s.Attr == "" {
		return root.Find(s.Tag)
	}
	if s.Pattern != nil {
		return root.Find(s.Tag).FilterFunction(func(_ int, el *goquery.Selection) bool {
			val, ok := el.Attr(s.Attr)
			return ok && s.Pattern.MatchString(val)
		})
	}
	return root.Find(fmt.Sprintf("%s[%s=%q]", s.Tag, s.Attr, s.Value))
}

// Find returns the first match with Path applied, or an empty selection.
func (s Selector) Find(root *goquery.Selection) *goquery.Selection {
	sel := s.FindAll(root).First()
	for _, step := range s.Path {
		if sel.Length() == 0 {
			return sel
		}
		sel = sel.Find(step).First()
	}
	return sel
}

// Optional returns the selected text, or nil when there is no match.
func (s Selector) Optional(root *goquery.Selection) *string {
	sel := s.Find(root)
	if sel.Length() == 0 {
		return nil
	}
	if s.ReadAttr != "" {
		val, ok := sel.Attr(s.ReadAttr)
		if !ok {
			return nil
		}
		return &val
	}
	text, ok := selectText(sel, s.Text)
	if !ok {
		return nil
	}
	return &text
}

// Required returns the selected text or a *FieldError naming field.
func (s Selector) Required(root *goquery.Selection, field string) (string, error) {
	text := s.Optional(root)
	if text == nil {
		return "", &FieldError{Field: field}
	}
	return *text, nil
}

func selectText(sel *goquery.Selection, mode TextMode) (string, bool) {
	if mode == AllText {
		return sel.Text(), true
	}
	node := sel.Get(0)
	child := node.FirstChild
	if mode == LastChild {
		child = node.LastChild
	}
	if child == nil {
		return "", false
	}
	if child.Type == html.TextNode {
		return child.Data, true
	}
	return goquery.NewDocumentFromNode(child).Text(), true
}

// idFromURL returns the integer after the last hyphen of a sherdog URL,
// e.g. 461 for /fighter/Alistair-Overeem-461.
func idFromURL(url string) (int, error) {
	i := strings.LastIndex(url, "-")
	if i < 0 {
		return 0, fmt.Errorf("sherdog: no id in url %q", url)
	}
	id, err := strconv.Atoi(url[i+1:])
	if err != nil {
		return 0, fmt.Errorf("sherdog: bad id in url %q: %w", url, err)
	}
	return id, nil
}

// datePart returns the calendar part of an ISO timestamp such as
// 2011-12-30T00:00:00-08:00.
func datePart(ts string) string {
	date, _, _ := strings.Cut(ts, "T")
	return date
}
