// Package metrics computes the derived cricket rates (averages, strike
// rates, economy and bowling figures) from raw run/ball/wicket counts.
// Each rate has a fixed zero-denominator policy, encoded in the returned
// model.Metric, so callers never branch on division by zero themselves.
package metrics

import (
	"fmt"
	"sort"

	"github.com/legside/cricstats/internal/model"
)

// Milestone thresholds for a single-match batting score. A century is not
// also a fifty.
const (
	fiftyFloor   = 50
	centuryFloor = 100
)

// BattingAverage is runs per dismissal. A batter never dismissed in the
// period has an infinite average.
func BattingAverage(runs, dismissals int) model.Metric {
	if dismissals == 0 {
		return model.Infinite()
	}
	return model.Finite(float64(runs) / float64(dismissals))
}

// BattingStrikeRate is runs per hundred balls faced. Wides do not count as
// balls faced; callers pass the legal-ball count. Zero balls yields 0.
func BattingStrikeRate(runs, balls int) model.Metric {
	if balls == 0 {
		return model.Finite(0)
	}
	return model.Finite(float64(runs) / float64(balls) * 100)
}

// BowlingEconomy is runs conceded per over. Wides and no-balls are not
// balls of the over; callers pass the legal-ball count. Zero balls yields 0.
func BowlingEconomy(runs, legalBalls int) model.Metric {
	if legalBalls == 0 {
		return model.Finite(0)
	}
	return model.Finite(float64(runs) * 6 / float64(legalBalls))
}

// BowlingAverage is runs conceded per wicket. A wicketless bowler has an
// infinite average.
func BowlingAverage(runs, wickets int) model.Metric {
	if wickets == 0 {
		return model.Infinite()
	}
	return model.Finite(float64(runs) / float64(wickets))
}

// BowlingStrikeRate is balls per wicket. With zero wickets the rate is
// undefined, not infinite: no meaningful ball count can be attributed.
func BowlingStrikeRate(balls, wickets int) model.Metric {
	if wickets == 0 {
		return model.Undefined()
	}
	return model.Finite(float64(balls) / float64(wickets))
}

// IsFifty reports whether a single-match score is a fifty (50–99).
func IsFifty(runs int) bool { return runs >= fiftyFloor && runs < centuryFloor }

// IsCentury reports whether a single-match score is a century (100+).
func IsCentury(runs int) bool { return runs >= centuryFloor }

// Milestones counts fifties and centuries over per-match scores.
func Milestones(scores []int) (fifties, centuries int) {
	for _, r := range scores {
		switch {
		case IsCentury(r):
			centuries++
		case IsFifty(r):
			fifties++
		}
	}
	return fifties, centuries
}

// Figure is a bowler's single-match return.
type Figure struct {
	Wickets int
	Runs    int
}

// String renders the figure in the conventional wickets/runs form, "3/21".
func (f Figure) String() string {
	return fmt.Sprintf("%d/%d", f.Wickets, f.Runs)
}

// Better reports whether f beats o: more wickets, or the same wickets for
// fewer runs.
func (f Figure) Better(o Figure) bool {
	if f.Wickets != o.Wickets {
		return f.Wickets > o.Wickets
	}
	return f.Runs < o.Runs
}

// BestFigure selects the best single-match figure. Equal figures are broken
// by match id ascending so the answer is deterministic; a wicketless
// bowler's best is simply their cheapest match. ok is false when the map is
// empty.
func BestFigure(byMatch map[int]Figure) (best Figure, matchID int, ok bool) {
	if len(byMatch) == 0 {
		return Figure{}, 0, false
	}
	ids := make([]int, 0, len(byMatch))
	for id := range byMatch {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	matchID = ids[0]
	best = byMatch[matchID]
	for _, id := range ids[1:] {
		if f := byMatch[id]; f.Better(best) {
			best, matchID = f, id
		}
	}
	return best, matchID, true
}
