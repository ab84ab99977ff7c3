package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/legside/cricstats/internal/model"
)

// Column headers expected in the ball-by-ball export. Matching is
// case-insensitive; extra columns are ignored.
var requiredColumns = []string{
	"id", "season", "innings", "battingteam", "team1", "team2",
	"batter", "bowler", "batsman_run", "total_run",
}

// ReadDeliveries parses a ball-by-ball CSV (header row required) into
// delivery rows. Rows with a malformed numeric field fail the whole read;
// the dataset is supposed to be pre-cleaned, so a bad cell is a caller
// problem, not something to paper over.
func ReadDeliveries(r io.Reader) ([]model.Delivery, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, want := range requiredColumns {
		if _, ok := col[want]; !ok {
			return nil, fmt.Errorf("csv missing required column %q", want)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		v := strings.TrimSpace(row[i])
		if v == "NA" {
			return ""
		}
		return v
	}

	var out []model.Delivery
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}

		var d model.Delivery
		intField := func(name string) (int, error) {
			v := field(row, name)
			if v == "" {
				return 0, nil
			}
			// Some exports carry numeric columns as floats ("4.0").
			n, err := strconv.Atoi(v)
			if err != nil {
				if f, ferr := strconv.ParseFloat(v, 64); ferr == nil {
					return int(f), nil
				}
				return 0, fmt.Errorf("csv line %d: column %s: %w", line, name, err)
			}
			return n, nil
		}

		if d.MatchID, err = intField("id"); err != nil {
			return nil, err
		}
		if d.Season, err = intField("season"); err != nil {
			return nil, err
		}
		if d.Innings, err = intField("innings"); err != nil {
			return nil, err
		}
		if d.BatterRuns, err = intField("batsman_run"); err != nil {
			return nil, err
		}
		if d.BowlerRuns, err = intField("bowler_run"); err != nil {
			return nil, err
		}
		if d.TotalRuns, err = intField("total_run"); err != nil {
			return nil, err
		}

		d.BattingTeam = field(row, "battingteam")
		d.Team1 = field(row, "team1")
		d.Team2 = field(row, "team2")
		d.Batter = field(row, "batter")
		d.Bowler = field(row, "bowler")
		d.Extra = model.ParseExtraType(field(row, "extra_type"))
		d.IsWicket = field(row, "iswicketdelivery") == "1"
		d.PlayerOut = field(row, "player_out")
		d.BowlerWicket = field(row, "isbowlerwicket") == "1"
		d.NonBoundary = field(row, "non_boundary") == "1"
		d.Stage = field(row, "matchnumber")
		d.WinningTeam = field(row, "winningteam")
		d.WonBy = field(row, "wonby")
		d.Method = field(row, "method")
		d.SuperOver = field(row, "superover") == "Y"
		d.PlayerOfMatch = field(row, "player_of_match")

		out = append(out, d)
	}
	return out, nil
}
