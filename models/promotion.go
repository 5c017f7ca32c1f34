package models

// Promotion is an MMA organization and the events it has already held.
type Promotion struct {
	Name   string         `json:"name"`
	Events []EventSummary `json:"events"`
}

// EventSummary is the short form of an event as listed on a promotion page.
type EventSummary struct {
	Date     Date   `json:"date"`
	URL      string `json:"url"`
	ID       int    `json:"id"`
	Location string `json:"location"`
	Name     string `json:"name"`
}
