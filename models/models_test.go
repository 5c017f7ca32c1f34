package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestDateJSON(t *testing.T) {
	d, err := ParseDate("2012-01-28")
	require.NoError(t, err)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	require.JSONEq(t, `"2012-01-28"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	require.True(t, d.Equal(back))

	require.Error(t, json.Unmarshal([]byte(`"28/01/2012"`), &back))
}

func TestNewDateDropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*3600)
	d := NewDate(time.Date(2020, 3, 7, 23, 30, 0, 0, loc))
	require.Equal(t, "2020-03-07", d.String())

	next, err := ParseDate("2020-03-08")
	require.NoError(t, err)
	require.True(t, next.After(d))
	require.False(t, d.After(d))
}

func TestRecordsRoundTrip(t *testing.T) {
	date, err := ParseDate("2011-12-30")
	require.NoError(t, err)

	records := []interface{}{
		&Promotion{
			Name: "Ultimate Fighting Championship",
			Events: []EventSummary{
				{Date: date, URL: "http://www.sherdog.com/events/UFC-141-Lesnar-vs-Overeem-18247", ID: 18247, Location: "Las Vegas, Nevada", Name: "UFC 141"},
			},
		},
		&Event{
			Name:     "UFC 141",
			Date:     date,
			Location: "MGM Grand Garden Arena",
			Fights: []Fight{{
				Fighters: []FighterResult{
					{Name: "Alistair Overeem", URL: "http://www.sherdog.com/fighter/Alistair-Overeem-461", ID: 461, Win: true},
					{Name: "Brock Lesnar", URL: "http://www.sherdog.com/fighter/Brock-Lesnar-17522", ID: 17522},
				},
				Method:  "TKO (Body Kick and Punches)",
				Round:   "1",
				EndTime: "2:26",
			}},
		},
		&Fighter{ID: 461, Name: "Alistair Overeem", BirthDate: ptr("1980-05-17"), HeightCM: ptr("195.58")},
	}

	for _, rec := range records {
		data, err := json.Marshal(rec)
		require.NoError(t, err)

		var back interface{}
		switch rec.(type) {
		case *Promotion:
			back = &Promotion{}
		case *Event:
			back = &Event{}
		case *Fighter:
			back = &Fighter{}
		}
		require.NoError(t, json.Unmarshal(data, back))
		if diff := cmp.Diff(rec, back); diff != "" {
			t.Fatal(diff)
		}
	}
}

func TestFighterAbsentFieldsAreNull(t *testing.T) {
	data, err := json.Marshal(Fighter{ID: 1, Name: "Someone"})
	require.NoError(t, err)
	require.JSONEq(t, `{
		"id": 1,
		"name": "Someone",
		"birth_date": null,
		"locality": null,
		"height_cm": null,
		"weight_kg": null,
		"camp_team": null
	}`, string(data))
}
