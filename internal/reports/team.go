package reports

import (
	"fmt"

	"github.com/legside/cricstats/internal/query"
)

// TeamOverall builds one team's career summary across every season.
func (s *Service) TeamOverall(team string) (*TeamOverall, error) {
	v := query.All(s.ds).Where(query.TeamPlayed(team))
	if v.Empty() {
		return nil, &query.EmptyResultError{Scope: fmt.Sprintf("team %q", team)}
	}

	batting := v.Where(query.BattingTeamIs(team))
	bowling := v.Where(query.BattingTeamNot(team))

	out := &TeamOverall{
		Team:               team,
		TotalSeasonsPlayed: len(query.DistinctSeasons(v)),
		TotalMatchesPlayed: query.DistinctMatches(v, nil),
		TotalTitlesWon:     titleWinners(v)[team],
		Top5Batsmen:        topBatsmen(batting),
		Top5Bowlers:        topBowlers(bowling),
		Outcomes:           winDrawLoss(v, team),
	}
	if best, ok := bestBatterMatch(batting); ok {
		out.HighestRunsBatsmanName = best.Entity
		out.HighestRuns = best.Value
		out.HighestRunsTied = best.Tied
	}
	if best, ok := bestBowlerMatch(bowling); ok {
		out.HighestWicketsBowlerName = best.Entity
		out.HighestWickets = best.Value
		out.HighestWicketsTied = best.Tied
	}
	if hi, lo, ok := scoreExtremes(batting); ok {
		out.HighestScore, out.LowestScore = &hi.Runs, &lo.Runs
	}
	return out, nil
}

// TeamSeason builds one team's summary for one season.
func (s *Service) TeamSeason(team string, season int) (*TeamSeason, error) {
	v := query.All(s.ds).Where(query.And(query.TeamPlayed(team), query.SeasonIs(season)))
	if v.Empty() {
		return nil, &query.EmptyResultError{Scope: fmt.Sprintf("team %q, season %d", team, season)}
	}

	batting := v.Where(query.BattingTeamIs(team))
	bowling := v.Where(query.BattingTeamNot(team))

	out := &TeamSeason{
		Team:                  team,
		Season:                season,
		TotalMatchesPlayed:    query.DistinctMatches(v, nil),
		TotalSuperOversPlayed: superOverCount(v),
		TitlesWon:             titleWinners(v)[team],
		Players:               teamRoster(v, team),
		Top5Batsmen:           topBatsmen(batting),
		Top5Bowlers:           topBowlers(bowling),
		Outcomes:              winDrawLoss(v, team),
	}
	if best, ok := bestBatterMatch(batting); ok {
		out.HighestRunsBatsmanName = best.Entity
		out.HighestRuns = best.Value
		out.HighestRunsTied = best.Tied
	}
	if best, ok := bestBowlerMatch(bowling); ok {
		out.HighestWicketsBowlerName = best.Entity
		out.HighestWickets = best.Value
		out.HighestWicketsTied = best.Tied
	}
	if hi, lo, ok := scoreExtremes(batting); ok {
		out.HighestScore, out.LowestScore = &hi.Runs, &lo.Runs
	}
	return out, nil
}
