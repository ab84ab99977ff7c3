package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/legside/cricstats/internal/dataset"
	"github.com/legside/cricstats/internal/model"
	"github.com/legside/cricstats/internal/rank"
	"github.com/legside/cricstats/internal/reports"
	"github.com/legside/cricstats/internal/storage"
)

// openService loads the stored dataset into a report service.
func openService(dbPath string) (*reports.Service, func() error, error) {
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}
	rows, err := db.LoadDeliveries()
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("load deliveries: %w", err)
	}
	if len(rows) == 0 {
		db.Close()
		return nil, nil, fmt.Errorf("no deliveries stored yet; run 'cricstats import <file.csv>' first")
	}
	return reports.New(dataset.New(rows)), db.Close, nil
}

// printJSON writes the report as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTable builds a tablewriter table in the house style: right-aligned
// cells, centered headers.
func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// renderLeaderboard prints a name/value table with the given heading.
func renderLeaderboard(title, valueHeader string, entries []rank.Entry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(os.Stdout, "\n--- %s ---\n\n", title)
	t := newTable(os.Stdout)
	t.Header("NAME", valueHeader)
	for _, e := range entries {
		t.Append(e.Name, fmt.Sprintf("%d", e.Value))
	}
	t.Render()
}

// renderSeasonSeries prints a per-season totals table.
func renderSeasonSeries(title, valueHeader string, s reports.SeasonSeries) {
	if len(s.Seasons) == 0 {
		return
	}
	fmt.Fprintf(os.Stdout, "\n--- %s ---\n\n", title)
	t := newTable(os.Stdout)
	t.Header("SEASON", valueHeader)
	for i, year := range s.Seasons {
		t.Append(fmt.Sprintf("%d", year), fmt.Sprintf("%d", s.Values[i]))
	}
	t.Render()
}

// renderMatchSeries prints a per-match totals table.
func renderMatchSeries(title, valueHeader string, s reports.MatchSeries) {
	if len(s.Matches) == 0 {
		return
	}
	fmt.Fprintf(os.Stdout, "\n--- %s ---\n\n", title)
	t := newTable(os.Stdout)
	t.Header("MATCH", valueHeader)
	for i, n := range s.Matches {
		t.Append(fmt.Sprintf("%d", n), fmt.Sprintf("%d", s.Values[i]))
	}
	t.Render()
}

// renderTeamSeries prints a per-opponent totals table.
func renderTeamSeries(title, valueHeader string, s reports.TeamSeries) {
	if len(s.Teams) == 0 {
		return
	}
	fmt.Fprintf(os.Stdout, "\n--- %s ---\n\n", title)
	t := newTable(os.Stdout)
	t.Header("TEAM", valueHeader)
	for i, team := range s.Teams {
		t.Append(team, fmt.Sprintf("%d", s.Values[i]))
	}
	t.Render()
}

// renderKV prints aligned "key : value" summary lines.
func renderKV(pairs [][2]string) {
	width := 0
	for _, p := range pairs {
		if len(p[0]) > width {
			width = len(p[0])
		}
	}
	for _, p := range pairs {
		fmt.Fprintf(os.Stdout, "  %-*s : %s\n", width, p[0], p[1])
	}
}

// metricCell renders a Metric for table output.
func metricCell(m model.Metric) string {
	return m.String()
}

func itoa(n int) string {
	return fmt.Sprintf("%d", n)
}

// optInt renders an optional count, "-" when absent.
func optInt(p *int) string {
	if p == nil {
		return "-"
	}
	return itoa(*p)
}
