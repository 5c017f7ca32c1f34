package models

// Event is a single fight card.
type Event struct {
	Name     string  `json:"name"`
	Date     Date    `json:"date"`
	Location string  `json:"location"`
	Fights   []Fight `json:"fights"`
}

// Fight is one bout on a card. Round is kept exactly as printed.
type Fight struct {
	Fighters []FighterResult `json:"fighters"`
	Method   string          `json:"method"`
	Round    string          `json:"round"`
	EndTime  string          `json:"end_time"`
}

// FighterResult is a fighter's side of a fight as listed on the event page.
type FighterResult struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	ID   int    `json:"id"`
	Win  bool   `json:"win"`
}
