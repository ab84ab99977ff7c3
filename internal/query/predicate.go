package query

import (
	"strconv"

	"github.com/legside/cricstats/internal/model"
)

// Predicate decides whether a delivery belongs to a view. Predicates are
// pure and composed with And/Or rather than ad hoc boolean masks.
type Predicate func(*model.Delivery) bool

// And matches deliveries satisfying every predicate.
func And(ps ...Predicate) Predicate {
	return func(d *model.Delivery) bool {
		for _, p := range ps {
			if !p(d) {
				return false
			}
		}
		return true
	}
}

// Or matches deliveries satisfying at least one predicate.
func Or(ps ...Predicate) Predicate {
	return func(d *model.Delivery) bool {
		for _, p := range ps {
			if p(d) {
				return true
			}
		}
		return false
	}
}

// ParseSeason converts a season query parameter to its integer form.
// Non-numeric input is a ValidationError.
func ParseSeason(value string) (int, error) {
	year, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ValidationError{Param: "season", Value: value}
	}
	return year, nil
}

// SeasonIs matches deliveries of one season.
func SeasonIs(year int) Predicate {
	return func(d *model.Delivery) bool { return d.Season == year }
}

// TeamPlayed matches deliveries of matches the team took part in, on either
// side.
func TeamPlayed(team string) Predicate {
	return func(d *model.Delivery) bool { return d.Team1 == team || d.Team2 == team }
}

// MatchBetween matches deliveries of matches contested by exactly these two
// teams, in either home/away order.
func MatchBetween(a, b string) Predicate {
	return func(d *model.Delivery) bool {
		return (d.Team1 == a && d.Team2 == b) || (d.Team1 == b && d.Team2 == a)
	}
}

// BattingTeamIs matches deliveries where the given team is batting.
func BattingTeamIs(team string) Predicate {
	return func(d *model.Delivery) bool { return d.BattingTeam == team }
}

// BattingTeamNot matches deliveries where some other team is batting.
func BattingTeamNot(team string) Predicate {
	return func(d *model.Delivery) bool { return d.BattingTeam != team }
}

// BatterIs matches deliveries faced by the named batter.
func BatterIs(name string) Predicate {
	return func(d *model.Delivery) bool { return d.Batter == name }
}

// BowlerIs matches deliveries bowled by the named bowler.
func BowlerIs(name string) Predicate {
	return func(d *model.Delivery) bool { return d.Bowler == name }
}

// RegularInnings matches 1st- and 2nd-innings deliveries, excluding super
// overs.
func RegularInnings() Predicate {
	return func(d *model.Delivery) bool { return d.RegularInnings() }
}

// DecidedNormally matches deliveries of matches with a definitive,
// unadjusted result. No-result and D/L-method matches are excluded from
// score-extremum calculations.
func DecidedNormally() Predicate {
	return func(d *model.Delivery) bool {
		return d.WonBy != model.ResultNoResult && d.Method != model.MethodDL
	}
}
