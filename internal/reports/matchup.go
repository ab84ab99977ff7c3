package reports

import (
	"fmt"

	"github.com/legside/cricstats/internal/query"
)

// Matchup builds the head-to-head summary of two teams across every season.
func (s *Service) Matchup(team1, team2 string) (*Matchup, error) {
	v := query.All(s.ds).Where(query.MatchBetween(team1, team2))
	if v.Empty() {
		return nil, &query.EmptyResultError{Scope: fmt.Sprintf("matches between %q and %q", team1, team2)}
	}

	out := &Matchup{
		Team1:                 team1,
		Team2:                 team2,
		TotalSeasonsPlayed:    len(query.DistinctSeasons(v)),
		TotalMatchesPlayed:    query.DistinctMatches(v, nil),
		TotalSuperOversPlayed: superOverCount(v),
		Top5Batsmen:           topBatsmen(v),
		Top5Bowlers:           topBowlers(v),
		WonByTeam1:            query.DistinctMatches(v, wonBy(team1)),
		WonByTeam2:            query.DistinctMatches(v, wonBy(team2)),
		Drawn:                 query.DistinctMatches(v, wonBy("")),
	}
	if best, ok := bestBatterMatch(v); ok {
		out.HighestRunsBatsmanName = best.Entity
		out.HighestRuns = best.Value
		out.HighestRunsTied = best.Tied
	}
	if best, ok := bestBowlerMatch(v); ok {
		out.HighestWicketsBowlerName = best.Entity
		out.HighestWickets = best.Value
		out.HighestWicketsTied = best.Tied
	}
	if hi, lo, ok := scoreExtremes(v); ok {
		out.HighestScoreName, out.HighestScore = hi.Team, hi.Runs
		out.LowestScoreName, out.LowestScore = lo.Team, lo.Runs
	}
	return out, nil
}

// MatchupSeason builds the head-to-head summary of two teams in one season.
func (s *Service) MatchupSeason(team1, team2 string, season int) (*MatchupSeason, error) {
	v := query.All(s.ds).Where(query.And(query.MatchBetween(team1, team2), query.SeasonIs(season)))
	if v.Empty() {
		return nil, &query.EmptyResultError{Scope: fmt.Sprintf("matches between %q and %q in season %d", team1, team2, season)}
	}

	out := &MatchupSeason{
		Team1:                 team1,
		Team2:                 team2,
		Season:                season,
		TotalMatchesPlayed:    query.DistinctMatches(v, nil),
		TotalSuperOversPlayed: superOverCount(v),
		Team1Players:          teamRoster(v, team1),
		Team2Players:          teamRoster(v, team2),
		Top5Batsmen:           topBatsmen(v),
		Top5Bowlers:           topBowlers(v),
		WonByTeam1:            query.DistinctMatches(v, wonBy(team1)),
		WonByTeam2:            query.DistinctMatches(v, wonBy(team2)),
		Drawn:                 query.DistinctMatches(v, wonBy("")),
	}
	if best, ok := bestBatterMatch(v); ok {
		out.HighestRunsBatsmanName = best.Entity
		out.HighestRuns = best.Value
		out.HighestRunsTied = best.Tied
	}
	if best, ok := bestBowlerMatch(v); ok {
		out.HighestWicketsBowlerName = best.Entity
		out.HighestWickets = best.Value
		out.HighestWicketsTied = best.Tied
	}
	if hi, lo, ok := scoreExtremes(v); ok {
		out.HighestScoreName, out.HighestScore = hi.Team, hi.Runs
		out.LowestScoreName, out.LowestScore = lo.Team, lo.Runs
	}
	return out, nil
}
