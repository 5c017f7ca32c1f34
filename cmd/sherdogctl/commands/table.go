package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/padraicbc/sherdogapi/models"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

func orDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func renderTable(w io.Writer, record interface{}) error {
	t := newTable(w)

	switch r := record.(type) {
	case *models.Promotion:
		t.SetTitle(r.Name)
		t.AppendHeader(table.Row{"ID", "Date", "Event", "Location"})
		for _, ev := range r.Events {
			t.AppendRow(table.Row{ev.ID, ev.Date.String(), ev.Name, ev.Location})
		}
	case *models.Event:
		t.SetTitle(fmt.Sprintf("%s (%s, %s)", r.Name, r.Date, r.Location))
		t.AppendHeader(table.Row{"Fighters", "Winner", "Method", "Round", "Time"})
		for _, f := range r.Fights {
			names := make([]string, 0, len(f.Fighters))
			winner := "-"
			for _, fr := range f.Fighters {
				names = append(names, fr.Name)
				if fr.Win {
					winner = fr.Name
				}
			}
			t.AppendRow(table.Row{strings.Join(names, " vs "), winner, f.Method, f.Round, f.EndTime})
		}
	case *models.Fighter:
		t.SetTitle(r.Name)
		t.AppendRows([]table.Row{
			{"ID", r.ID},
			{"Birth date", orDash(r.BirthDate)},
			{"Locality", orDash(r.Locality)},
			{"Height (cm)", orDash(r.HeightCM)},
			{"Weight (kg)", orDash(r.WeightKG)},
			{"Camp/Team", orDash(r.CampTeam)},
		})
	default:
		return fmt.Errorf("cannot render %T", record)
	}

	t.Render()
	return nil
}
