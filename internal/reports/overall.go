package reports

import (
	"fmt"
	"sort"

	"github.com/legside/cricstats/internal/model"
	"github.com/legside/cricstats/internal/query"
	"github.com/legside/cricstats/internal/rank"
)

// Overall builds the tournament-wide summary across every season.
func (s *Service) Overall() (*Overall, error) {
	v := query.All(s.ds)
	if v.Empty() {
		return nil, &query.EmptyResultError{Scope: "the dataset"}
	}

	out := &Overall{
		TotalSeasonsPlayed: len(query.DistinctSeasons(v)),
		TotalTeamsPlayed:   len(query.DistinctStrings(v, func(d *model.Delivery) string { return d.Team1 })),
		TotalMatchesPlayed: query.DistinctMatches(v, nil),
		Teams:              allTeams(v),
		Top5Batsmen:        topBatsmen(v),
		Top5Bowlers:        topBowlers(v),
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
		out.HighestTeamScoreName, out.HighestTeamScore = hi.Team, hi.Runs
		out.LowestTeamScoreName, out.LowestTeamScore = lo.Team, lo.Runs
	}
	if titles := titleWinners(v); len(titles) > 0 {
		out.TitleWinners = rank.TopN(titles, len(titles))
	}
	return out, nil
}

// OverallSeason builds the tournament summary for one season.
func (s *Service) OverallSeason(season int) (*OverallSeason, error) {
	v := query.All(s.ds).Where(query.SeasonIs(season))
	if v.Empty() {
		return nil, &query.EmptyResultError{Scope: fmt.Sprintf("season %d", season)}
	}

	out := &OverallSeason{
		TotalMatchesPlayed:    query.DistinctMatches(v, nil),
		TotalTeamsPlayed:      len(query.DistinctStrings(v, func(d *model.Delivery) string { return d.Team1 })),
		TotalSuperOversPlayed: superOverCount(v),
		PlayingTeams:          query.DistinctStrings(v, func(d *model.Delivery) string { return d.Team1 }),
		Top5Batsmen:           topBatsmen(v),
		Top5Bowlers:           topBowlers(v),
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
		out.HighestTeamScoreName, out.HighestTeamScore = hi.Team, hi.Runs
		out.LowestTeamScoreName, out.LowestTeamScore = lo.Team, lo.Runs
	}
	// Seasons decided without a final, or with an unfinished one, just have
	// no winner.
	v.Each(func(_ int32, d *model.Delivery) {
		if d.Stage == model.StageFinal && d.WinningTeam != "" {
			out.WinningTeam = d.WinningTeam
		}
	})
	return out, nil
}

// allTeams merges both contestant columns into one sorted team list.
func allTeams(v query.View) []string {
	seen := make(map[string]struct{})
	v.Each(func(_ int32, d *model.Delivery) {
		seen[d.Team1] = struct{}{}
		seen[d.Team2] = struct{}{}
	})
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
