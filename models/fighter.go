package models

// Fighter is a fighter profile. Optional fields are nil when the page does
// not list them and serialize as null.
type Fighter struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	BirthDate *string `json:"birth_date"`
	Locality  *string `json:"locality"`
	HeightCM  *string `json:"height_cm"`
	WeightKG  *string `json:"weight_kg"`
	CampTeam  *string `json:"camp_team"`
}
