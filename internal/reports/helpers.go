package reports

import (
	"sort"

	"github.com/legside/cricstats/internal/model"
	"github.com/legside/cricstats/internal/query"
	"github.com/legside/cricstats/internal/rank"
)

const leaderboardSize = 5

func batterRuns(d *model.Delivery) int { return d.BatterRuns }
func bowlerRuns(d *model.Delivery) int { return d.BowlerRuns }

func wicketFell(d *model.Delivery) int {
	if d.IsWicket {
		return 1
	}
	return 0
}

func bowlerWicket(d *model.Delivery) int {
	if d.BowlerWicket {
		return 1
	}
	return 0
}

func byBatter(d *model.Delivery) string { return d.Batter }
func byBowler(d *model.Delivery) string { return d.Bowler }

// fieldingTeam is the side the bowler represents on a delivery.
func fieldingTeam(d *model.Delivery) string { return d.Opponent(d.BattingTeam) }

func superOverPlayed(d *model.Delivery) bool { return d.SuperOver }

func wonBy(team string) query.Predicate {
	return func(d *model.Delivery) bool { return d.WinningTeam == team }
}

func playerOfMatchIs(name string) query.Predicate {
	return func(d *model.Delivery) bool { return d.PlayerOfMatch == name }
}

// topBatsmen is the runs leaderboard over the view.
func topBatsmen(v query.View) []rank.Entry {
	return rank.TopN(query.SumBy(v, byBatter, batterRuns), leaderboardSize)
}

// topBowlers is the wickets leaderboard over the view. Team and tournament
// views credit every dismissal on a bowler's delivery, matching the source
// data's per-delivery wicket flag.
func topBowlers(v query.View) []rank.Entry {
	return rank.TopN(query.SumBy(v, byBowler, wicketFell), leaderboardSize)
}

// bestBatterMatch is the highest single-match run total in the view.
func bestBatterMatch(v query.View) (query.MatchPerformance, bool) {
	return query.TopEntityMatch(query.SumByEntityMatch(v, byBatter, batterRuns))
}

// bestBowlerMatch is the highest single-match wicket haul in the view.
func bestBowlerMatch(v query.View) (query.MatchPerformance, bool) {
	return query.TopEntityMatch(query.SumByEntityMatch(v, byBowler, wicketFell))
}

// scoreExtremes finds the highest and lowest innings total in the view,
// restricted to regular innings of matches with a definitive, unadjusted
// result.
func scoreExtremes(v query.View) (hi, lo query.InningsScore, ok bool) {
	eligible := v.Where(query.And(query.RegularInnings(), query.DecidedNormally()))
	return query.ScoreExtremes(query.TeamInningsTotals(eligible))
}

// superOverCount counts distinct matches in the view that went to a super
// over.
func superOverCount(v query.View) int {
	return query.DistinctMatches(v, superOverPlayed)
}

// winDrawLoss derives one team's outcome line: losses are whatever is left
// after wins and drawn or abandoned matches (empty winner).
func winDrawLoss(v query.View, team string) WinDrawLoss {
	total := query.DistinctMatches(v, nil)
	won := query.DistinctMatches(v, wonBy(team))
	drawn := query.DistinctMatches(v, wonBy(""))
	return WinDrawLoss{Won: won, Drawn: drawn, Lost: total - won - drawn}
}

// titleWinners counts championship titles per team over the view: one title
// per season, read from that season's final. Finals without a recorded
// winner count for nobody.
func titleWinners(v query.View) map[string]int {
	winnerBySeason := make(map[int]string)
	v.Each(func(_ int32, d *model.Delivery) {
		if d.Stage != model.StageFinal || d.WinningTeam == "" {
			return
		}
		if _, seen := winnerBySeason[d.Season]; !seen {
			winnerBySeason[d.Season] = d.WinningTeam
		}
	})
	titles := make(map[string]int, len(winnerBySeason))
	for _, team := range winnerBySeason {
		titles[team]++
	}
	return titles
}

// teamRoster lists one side's players in the view: its batters plus the
// bowlers it fielded, sorted and deduplicated.
func teamRoster(v query.View, team string) []string {
	seen := make(map[string]struct{})
	v.Each(func(_ int32, d *model.Delivery) {
		if d.BattingTeam == team {
			seen[d.Batter] = struct{}{}
		} else {
			seen[d.Bowler] = struct{}{}
		}
	})
	roster := make([]string, 0, len(seen))
	for name := range seen {
		roster = append(roster, name)
	}
	sort.Strings(roster)
	return roster
}

// teamHistory reconstructs the sides a player represented from side, the
// per-delivery team extractor. current is the side on the player's most
// recent delivery; former lists the rest in first-appearance order.
func teamHistory(v query.View, side func(*model.Delivery) string) (current string, former []string) {
	var order []string
	seen := make(map[string]struct{})
	v.Each(func(_ int32, d *model.Delivery) {
		t := side(d)
		current = t
		if _, dup := seen[t]; !dup {
			seen[t] = struct{}{}
			order = append(order, t)
		}
	})
	former = make([]string, 0, len(order))
	for _, t := range order {
		if t != current {
			former = append(former, t)
		}
	}
	return current, former
}

// opponentTeams lists the sides other than own appearing in the view's
// matches, sorted.
func opponentTeams(v query.View, own string) []string {
	seen := make(map[string]struct{})
	v.Each(func(_ int32, d *model.Delivery) {
		if d.Team1 != own {
			seen[d.Team1] = struct{}{}
		}
		if d.Team2 != own {
			seen[d.Team2] = struct{}{}
		}
	})
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// perTeamSeries sums val over the view once per opposing team, in team-name
// order.
func perTeamSeries(v query.View, own string, val func(*model.Delivery) int) TeamSeries {
	teams := opponentTeams(v, own)
	series := TeamSeries{Teams: teams, Values: make([]int, len(teams))}
	for i, t := range teams {
		n := 0
		v.Each(func(_ int32, d *model.Delivery) {
			if d.Team1 == t || d.Team2 == t {
				n += val(d)
			}
		})
		series.Values[i] = n
	}
	return series
}

// seasonSeries sums val per season, seasons ascending.
func seasonSeries(v query.View, val func(*model.Delivery) int) SeasonSeries {
	totals := make(map[int]int)
	v.Each(func(_ int32, d *model.Delivery) {
		totals[d.Season] += val(d)
	})
	seasons := make([]int, 0, len(totals))
	for y := range totals {
		seasons = append(seasons, y)
	}
	sort.Ints(seasons)
	series := SeasonSeries{Seasons: seasons, Values: make([]int, len(seasons))}
	for i, y := range seasons {
		series.Values[i] = totals[y]
	}
	return series
}

// matchSeries numbers the view's matches 1..n in match-id order and pairs
// each with its total of val.
func matchSeries(v query.View, val func(*model.Delivery) int) MatchSeries {
	totals := query.SumByMatch(v, val)
	ids := make([]int, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	series := MatchSeries{Matches: make([]int, len(ids)), Values: make([]int, len(ids))}
	for i, id := range ids {
		series.Matches[i] = i + 1
		series.Values[i] = totals[id]
	}
	return series
}

// maxMatchTotal is the highest per-match total of val in the view.
func maxMatchTotal(v query.View, val func(*model.Delivery) int) int {
	best := 0
	first := true
	for _, n := range query.SumByMatch(v, val) {
		if first || n > best {
			best = n
			first = false
		}
	}
	return best
}

// matchScores flattens per-match totals into a slice, order-independent.
func matchScores(v query.View, val func(*model.Delivery) int) []int {
	totals := query.SumByMatch(v, val)
	out := make([]int, 0, len(totals))
	for _, n := range totals {
		out = append(out, n)
	}
	return out
}
