package reports

import (
	"fmt"

	"github.com/legside/cricstats/internal/model"
	"github.com/legside/cricstats/internal/query"
)

// TeamsPerSeason lists the sides that played in one season.
func (s *Service) TeamsPerSeason(season int) (*TeamList, error) {
	v := query.All(s.ds).Where(query.SeasonIs(season))
	if v.Empty() {
		return nil, &query.EmptyResultError{Scope: fmt.Sprintf("season %d", season)}
	}
	return &TeamList{Teams: query.DistinctStrings(v, func(d *model.Delivery) string { return d.Team1 })}, nil
}

// TeamsPerTeam lists the opponents one side has ever faced.
func (s *Service) TeamsPerTeam(team string) (*TeamList, error) {
	v := query.All(s.ds).Where(query.TeamPlayed(team))
	if v.Empty() {
		return nil, &query.EmptyResultError{Scope: fmt.Sprintf("team %q", team)}
	}
	opponents := v.Where(query.BattingTeamNot(team))
	return &TeamList{Teams: query.DistinctStrings(opponents, func(d *model.Delivery) string { return d.BattingTeam })}, nil
}

// TeamsPerSeasonTeam lists the opponents one side faced in one season.
func (s *Service) TeamsPerSeasonTeam(season int, team string) (*TeamList, error) {
	v := query.All(s.ds).Where(query.And(query.SeasonIs(season), query.TeamPlayed(team)))
	if v.Empty() {
		return nil, &query.EmptyResultError{Scope: fmt.Sprintf("team %q, season %d", team, season)}
	}
	opponents := v.Where(query.BattingTeamNot(team))
	return &TeamList{Teams: query.DistinctStrings(opponents, func(d *model.Delivery) string { return d.BattingTeam })}, nil
}

// Batsmen lists every batter in the dataset.
func (s *Service) Batsmen() (*NameList, error) {
	v := query.All(s.ds)
	if v.Empty() {
		return nil, &query.EmptyResultError{Scope: "the dataset"}
	}
	return &NameList{Names: query.DistinctStrings(v, byBatter)}, nil
}

// BatsmenPerSeason lists every batter who faced a ball in one season.
func (s *Service) BatsmenPerSeason(season int) (*NameList, error) {
	v := query.All(s.ds).Where(query.SeasonIs(season))
	if v.Empty() {
		return nil, &query.EmptyResultError{Scope: fmt.Sprintf("season %d", season)}
	}
	return &NameList{Names: query.DistinctStrings(v, byBatter)}, nil
}

// Bowlers lists every bowler in the dataset.
func (s *Service) Bowlers() (*NameList, error) {
	v := query.All(s.ds)
	if v.Empty() {
		return nil, &query.EmptyResultError{Scope: "the dataset"}
	}
	return &NameList{Names: query.DistinctStrings(v, byBowler)}, nil
}

// BowlersPerSeason lists every bowler who bowled a ball in one season.
func (s *Service) BowlersPerSeason(season int) (*NameList, error) {
	v := query.All(s.ds).Where(query.SeasonIs(season))
	if v.Empty() {
		return nil, &query.EmptyResultError{Scope: fmt.Sprintf("season %d", season)}
	}
	return &NameList{Names: query.DistinctStrings(v, byBowler)}, nil
}

// Seasons lists every season in the dataset, ascending.
func (s *Service) Seasons() ([]int, error) {
	v := query.All(s.ds)
	if v.Empty() {
		return nil, &query.EmptyResultError{Scope: "the dataset"}
	}
	return query.DistinctSeasons(v), nil
}
