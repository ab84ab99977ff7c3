package reports

import (
	"fmt"

	"github.com/legside/cricstats/internal/metrics"
	"github.com/legside/cricstats/internal/model"
	"github.com/legside/cricstats/internal/query"
)

// Batting views exclude super-over deliveries: only the two regular innings
// count toward a batter's record.

// battingTotals tallies one batter's raw counts in a single pass: runs,
// boundary counts, dismissals, and legal balls faced (wides are not balls
// faced).
func battingTotals(v query.View, name string) (runs, fours, sixes, dismissals, balls int) {
	v.Each(func(_ int32, d *model.Delivery) {
		runs += d.BatterRuns
		if d.BatterRuns == 4 {
			fours++
		}
		if d.BatterRuns == 6 {
			sixes++
		}
		if d.PlayerOut == name {
			dismissals++
		}
		if d.LegalBall() {
			balls++
		}
	})
	return runs, fours, sixes, dismissals, balls
}

// BatsmanOverall builds a batter's career summary across every season.
func (s *Service) BatsmanOverall(name string) (*BatsmanOverall, error) {
	v := query.All(s.ds).Where(query.And(query.BatterIs(name), query.RegularInnings()))
	if v.Empty() {
		return nil, &query.EmptyResultError{Scope: fmt.Sprintf("batsman %q", name)}
	}

	totalRuns, fours, sixes, dismissals, balls := battingTotals(v, name)

	scores := matchScores(v, batterRuns)
	fifties, centuries := metrics.Milestones(scores)
	current, former := teamHistory(v, func(d *model.Delivery) string { return d.BattingTeam })

	return &BatsmanOverall{
		Batsman:            name,
		TotalSeasonsPlayed: len(query.DistinctSeasons(v)),
		TotalMatchesPlayed: query.DistinctMatches(v, nil),
		TotalRuns:          totalRuns,
		TotalFours:         fours,
		TotalSixes:         sixes,
		Average:            metrics.BattingAverage(totalRuns, dismissals),
		StrikeRate:         metrics.BattingStrikeRate(totalRuns, balls),
		TotalFifties:       fifties,
		TotalCenturies:     centuries,
		HighestScore:       maxMatchTotal(v, batterRuns),
		TotalMOM:           query.DistinctMatches(query.All(s.ds).Where(playerOfMatchIs(name)), nil),
		PlayingIn:          current,
		PlayedIn:           former,
		SeasonWiseRuns:     seasonSeries(v, batterRuns),
	}, nil
}

// BatsmanSeason builds a batter's summary for one season.
func (s *Service) BatsmanSeason(name string, season int) (*BatsmanSeason, error) {
	v := query.All(s.ds).Where(query.And(
		query.BatterIs(name), query.SeasonIs(season), query.RegularInnings()))
	if v.Empty() {
		return nil, &query.EmptyResultError{Scope: fmt.Sprintf("batsman %q, season %d", name, season)}
	}

	totalRuns, fours, sixes, dismissals, balls := battingTotals(v, name)

	scores := matchScores(v, batterRuns)
	fifties, centuries := metrics.Milestones(scores)
	current, _ := teamHistory(v, func(d *model.Delivery) string { return d.BattingTeam })
	momScope := query.All(s.ds).Where(query.And(query.SeasonIs(season), playerOfMatchIs(name)))

	return &BatsmanSeason{
		Batsman:             name,
		Season:              season,
		TotalMatchesPlayed:  query.DistinctMatches(v, nil),
		TotalRuns:           totalRuns,
		TotalFours:          fours,
		TotalSixes:          sixes,
		Average:             metrics.BattingAverage(totalRuns, dismissals),
		StrikeRate:          metrics.BattingStrikeRate(totalRuns, balls),
		TotalFifties:        fifties,
		TotalCenturies:      centuries,
		HighestScore:        maxMatchTotal(v, batterRuns),
		TotalMOM:            query.DistinctMatches(momScope, nil),
		PlayingIn:           current,
		RunsAgainstAllTeams: perTeamSeries(v, current, batterRuns),
		MatchWiseRuns:       matchSeries(v, batterRuns),
	}, nil
}
