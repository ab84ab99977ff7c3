package reports

import (
	"fmt"

	"github.com/legside/cricstats/internal/metrics"
	"github.com/legside/cricstats/internal/model"
	"github.com/legside/cricstats/internal/query"
)

// bowlingTotals tallies one bowler's raw counts in a single pass: credited
// wickets, runs conceded, legal balls (wides and no-balls are not balls of
// the over), and boundaries conceded (genuine boundaries only).
func bowlingTotals(v query.View) (wickets, runs, balls, fours, sixes int) {
	v.Each(func(_ int32, d *model.Delivery) {
		if d.BowlerWicket {
			wickets++
		}
		runs += d.BowlerRuns
		if d.LegalBowlerBall() {
			balls++
		}
		if !d.NonBoundary {
			if d.BatterRuns == 4 {
				fours++
			}
			if d.BatterRuns == 6 {
				sixes++
			}
		}
	})
	return wickets, runs, balls, fours, sixes
}

// bowlingFigures builds the per-match wickets/runs figures for the view.
func bowlingFigures(v query.View) map[int]metrics.Figure {
	wickets := query.SumByMatch(v, bowlerWicket)
	runs := query.SumByMatch(v, bowlerRuns)
	figures := make(map[int]metrics.Figure, len(wickets))
	for id, w := range wickets {
		figures[id] = metrics.Figure{Wickets: w, Runs: runs[id]}
	}
	return figures
}

// threeWicketHauls counts matches with three or more credited wickets.
func threeWicketHauls(figures map[int]metrics.Figure) int {
	n := 0
	for _, f := range figures {
		if f.Wickets >= 3 {
			n++
		}
	}
	return n
}

// BowlerOverall builds a bowler's career summary across every season.
func (s *Service) BowlerOverall(name string) (*BowlerOverall, error) {
	v := query.All(s.ds).Where(query.BowlerIs(name))
	if v.Empty() {
		return nil, &query.EmptyResultError{Scope: fmt.Sprintf("bowler %q", name)}
	}

	wickets, runs, balls, fours, sixes := bowlingTotals(v)
	figures := bowlingFigures(v)
	best, _, _ := metrics.BestFigure(figures)
	current, former := teamHistory(v, fieldingTeam)

	return &BowlerOverall{
		Bowler:             name,
		TotalSeasonsPlayed: len(query.DistinctSeasons(v)),
		TotalMatchesPlayed: query.DistinctMatches(v, nil),
		TotalWickets:       wickets,
		Economy:            metrics.BowlingEconomy(runs, balls),
		Average:            metrics.BowlingAverage(runs, wickets),
		StrikeRate:         metrics.BowlingStrikeRate(balls, wickets),
		TotalFours:         fours,
		TotalSixes:         sixes,
		BestFigure:         best.String(),
		TotalW3:            threeWicketHauls(figures),
		TotalMOM:           query.DistinctMatches(query.All(s.ds).Where(playerOfMatchIs(name)), nil),
		PlayingIn:          current,
		PlayedIn:           former,
		SeasonWiseWickets:  seasonSeries(v, bowlerWicket),
	}, nil
}

// BowlerSeason builds a bowler's summary for one season.
func (s *Service) BowlerSeason(name string, season int) (*BowlerSeason, error) {
	v := query.All(s.ds).Where(query.And(query.BowlerIs(name), query.SeasonIs(season)))
	if v.Empty() {
		return nil, &query.EmptyResultError{Scope: fmt.Sprintf("bowler %q, season %d", name, season)}
	}

	wickets, runs, balls, fours, sixes := bowlingTotals(v)
	figures := bowlingFigures(v)
	best, _, _ := metrics.BestFigure(figures)
	current, _ := teamHistory(v, fieldingTeam)
	momScope := query.All(s.ds).Where(query.And(query.SeasonIs(season), playerOfMatchIs(name)))

	return &BowlerSeason{
		Bowler:                 name,
		Season:                 season,
		TotalMatchesPlayed:     query.DistinctMatches(v, nil),
		TotalWickets:           wickets,
		Economy:                metrics.BowlingEconomy(runs, balls),
		Average:                metrics.BowlingAverage(runs, wickets),
		StrikeRate:             metrics.BowlingStrikeRate(balls, wickets),
		TotalFours:             fours,
		TotalSixes:             sixes,
		BestFigure:             best.String(),
		TotalW3:                threeWicketHauls(figures),
		TotalMOM:               query.DistinctMatches(momScope, nil),
		PlayingIn:              current,
		WicketsAgainstAllTeams: perTeamSeries(v, current, bowlerWicket),
		MatchWiseWickets:       matchSeries(v, bowlerWicket),
	}, nil
}
