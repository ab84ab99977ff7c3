package storage

import (
	"fmt"

	"github.com/legside/cricstats/internal/model"
)

// ReplaceDeliveries drops any previously imported dataset and bulk-inserts
// rows in one transaction, preserving their order. Re-running an import is
// therefore idempotent.
func (db *DB) ReplaceDeliveries(rows []model.Delivery) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM deliveries"); err != nil {
		return fmt.Errorf("clear deliveries: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO deliveries(
			match_id, season, innings,
			batting_team, team1, team2,
			batter, bowler,
			batter_runs, bowler_runs, total_runs,
			extra_type, is_wicket, player_out, bowler_wicket, non_boundary,
			stage, winning_team, won_by, method, super_over, player_of_match
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, d := range rows {
		_, err = stmt.Exec(
			d.MatchID, d.Season, d.Innings,
			d.BattingTeam, d.Team1, d.Team2,
			d.Batter, d.Bowler,
			d.BatterRuns, d.BowlerRuns, d.TotalRuns,
			d.Extra.String(), boolInt(d.IsWicket), d.PlayerOut,
			boolInt(d.BowlerWicket), boolInt(d.NonBoundary),
			d.Stage, d.WinningTeam, d.WonBy, d.Method,
			boolInt(d.SuperOver), d.PlayerOfMatch,
		)
		if err != nil {
			return fmt.Errorf("insert delivery %d (match %d): %w", i, d.MatchID, err)
		}
	}
	return tx.Commit()
}

// LoadDeliveries returns every stored delivery in import order.
func (db *DB) LoadDeliveries() ([]model.Delivery, error) {
	rows, err := db.conn.Query(`
		SELECT match_id, season, innings,
		       batting_team, team1, team2,
		       batter, bowler,
		       batter_runs, bowler_runs, total_runs,
		       extra_type, is_wicket, player_out, bowler_wicket, non_boundary,
		       stage, winning_team, won_by, method, super_over, player_of_match
		FROM deliveries ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Delivery
	for rows.Next() {
		var d model.Delivery
		var extra string
		var isWicket, bowlerWicket, nonBoundary, superOver int
		if err := rows.Scan(
			&d.MatchID, &d.Season, &d.Innings,
			&d.BattingTeam, &d.Team1, &d.Team2,
			&d.Batter, &d.Bowler,
			&d.BatterRuns, &d.BowlerRuns, &d.TotalRuns,
			&extra, &isWicket, &d.PlayerOut, &bowlerWicket, &nonBoundary,
			&d.Stage, &d.WinningTeam, &d.WonBy, &d.Method, &superOver, &d.PlayerOfMatch,
		); err != nil {
			return nil, err
		}
		d.Extra = model.ParseExtraType(extra)
		d.IsWicket = isWicket != 0
		d.BowlerWicket = bowlerWicket != 0
		d.NonBoundary = nonBoundary != 0
		d.SuperOver = superOver != 0
		out = append(out, d)
	}
	return out, rows.Err()
}

// Overview summarizes what the store holds.
type Overview struct {
	Deliveries int
	Matches    int
	Seasons    int
	Teams      int
}

// Overview counts the store's contents.
func (db *DB) Overview() (Overview, error) {
	var o Overview
	err := db.conn.QueryRow(`
		SELECT COUNT(1),
		       COUNT(DISTINCT match_id),
		       COUNT(DISTINCT season),
		       COUNT(DISTINCT team1)
		FROM deliveries`).
		Scan(&o.Deliveries, &o.Matches, &o.Seasons, &o.Teams)
	if err != nil {
		return Overview{}, err
	}
	return o, nil
}

// Reset removes every stored delivery.
func (db *DB) Reset() error {
	_, err := db.conn.Exec("DELETE FROM deliveries")
	return err
}

// QueryRaw executes an arbitrary read-only query and returns column names
// plus stringified rows, for the sql command.
func (db *DB) QueryRaw(q string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(q)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		rec := make([]string, len(cols))
		for i, v := range raw {
			switch x := v.(type) {
			case nil:
				rec[i] = ""
			case []byte:
				rec[i] = string(x)
			default:
				rec[i] = fmt.Sprintf("%v", x)
			}
		}
		out = append(out, rec)
	}
	return cols, out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
