package model

// ExtraType classifies the extra (if any) conceded on a delivery.
type ExtraType int

const (
	ExtraNone ExtraType = iota
	ExtraWide
	ExtraNoBall
	ExtraBye
	ExtraLegBye
)

func (e ExtraType) String() string {
	switch e {
	case ExtraWide:
		return "wides"
	case ExtraNoBall:
		return "noballs"
	case ExtraBye:
		return "byes"
	case ExtraLegBye:
		return "legbyes"
	default:
		return ""
	}
}

// ParseExtraType maps a dataset label to an ExtraType. Unknown labels and
// the empty string both map to ExtraNone.
func ParseExtraType(s string) ExtraType {
	switch s {
	case "wides":
		return ExtraWide
	case "noballs":
		return ExtraNoBall
	case "byes":
		return ExtraBye
	case "legbyes":
		return ExtraLegBye
	default:
		return ExtraNone
	}
}

// Labels used by the source dataset.
const (
	StageFinal      = "Final" // stage label of a season's title match
	ResultNoResult  = "NoResults"
	MethodDL        = "D/L" // rain-adjusted result; excluded from score extremes
	SuperOverInning = 3     // innings numbers above 2 are super-over innings
)

// Delivery is one ball bowled: the atomic, immutable data row. A match is
// the set of deliveries sharing a MatchID; a season the set of matches
// sharing a Season. Teams and players exist only as names matched by exact
// string equality.
type Delivery struct {
	MatchID int
	Season  int
	Innings int

	BattingTeam string
	Team1       string
	Team2       string

	Batter string
	Bowler string

	BatterRuns int // runs credited to the batter on this ball
	BowlerRuns int // runs charged against the bowler on this ball
	TotalRuns  int // all runs on the ball, extras included

	Extra        ExtraType
	IsWicket     bool   // a wicket fell on this ball
	PlayerOut    string // dismissed player; empty if none
	BowlerWicket bool   // wicket credited to the bowler
	NonBoundary  bool   // 4/6 runs that were not an actual boundary (overthrows)

	Stage         string // match label within the season, e.g. "Final", "Qualifier 1", "42"
	WinningTeam   string // empty = drawn / no-result / abandoned
	WonBy         string // "Runs", "Wickets", "NoResults", ...
	Method        string // result adjustment method; "D/L" or empty
	SuperOver     bool   // match went to a super over
	PlayerOfMatch string
}

// LegalBall reports whether the delivery counts as a ball faced by the
// batter (wides do not).
func (d *Delivery) LegalBall() bool {
	return d.Extra != ExtraWide
}

// LegalBowlerBall reports whether the delivery counts as a legal ball bowled
// (wides and no-balls do not).
func (d *Delivery) LegalBowlerBall() bool {
	return d.Extra != ExtraWide && d.Extra != ExtraNoBall
}

// RegularInnings reports whether the delivery belongs to a regulation
// innings (1st or 2nd) rather than a super over.
func (d *Delivery) RegularInnings() bool {
	return d.Innings > 0 && d.Innings < SuperOverInning
}

// Opponent returns the team d's batting side was playing against, or "" if
// team is neither contestant.
func (d *Delivery) Opponent(team string) string {
	switch team {
	case d.Team1:
		return d.Team2
	case d.Team2:
		return d.Team1
	default:
		return ""
	}
}
