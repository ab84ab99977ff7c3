package query

import (
	"sort"

	"github.com/legside/cricstats/internal/model"
)

// The reducers below are the whole aggregation engine: sum, count-of-rows
// and count-of-distinct over a view, keyed by caller-supplied extractors.
// The two-pass shape (rows to per-(entity, match) totals, then per-entity
// totals) is the pattern nearly every report is built from.

// EntityMatch keys the first pass of a two-level aggregation.
type EntityMatch struct {
	Entity  string
	MatchID int
}

// InningsKey identifies one team's batting turn within one match.
type InningsKey struct {
	MatchID int
	Innings int
	Team    string
}

// SumBy sums val over the view grouped by key.
func SumBy(v View, key func(*model.Delivery) string, val func(*model.Delivery) int) map[string]int {
	out := make(map[string]int)
	v.Each(func(_ int32, d *model.Delivery) {
		out[key(d)] += val(d)
	})
	return out
}

// CountRows counts deliveries satisfying keep (all rows when keep is nil).
func CountRows(v View, keep Predicate) int {
	n := 0
	v.Each(func(_ int32, d *model.Delivery) {
		if keep == nil || keep(d) {
			n++
		}
	})
	return n
}

// SumByEntityMatch sums val per (entity, match). Single-match records and
// fifty/century classification are read from these per-match totals.
func SumByEntityMatch(v View, entity func(*model.Delivery) string, val func(*model.Delivery) int) map[EntityMatch]int {
	out := make(map[EntityMatch]int)
	v.Each(func(_ int32, d *model.Delivery) {
		out[EntityMatch{Entity: entity(d), MatchID: d.MatchID}] += val(d)
	})
	return out
}

// CollapseByEntity folds per-(entity, match) totals into per-entity totals,
// the second pass of the two-level aggregation.
func CollapseByEntity(totals map[EntityMatch]int) map[string]int {
	out := make(map[string]int, len(totals))
	for k, n := range totals {
		out[k.Entity] += n
	}
	return out
}

// SumByMatch sums val per match over a view already restricted to a single
// entity.
func SumByMatch(v View, val func(*model.Delivery) int) map[int]int {
	out := make(map[int]int)
	v.Each(func(_ int32, d *model.Delivery) {
		out[d.MatchID] += val(d)
	})
	return out
}

// DistinctMatches counts distinct match ids, optionally restricted by keep.
func DistinctMatches(v View, keep Predicate) int {
	seen := make(map[int]struct{})
	v.Each(func(_ int32, d *model.Delivery) {
		if keep == nil || keep(d) {
			seen[d.MatchID] = struct{}{}
		}
	})
	return len(seen)
}

// DistinctStrings returns the sorted distinct non-empty values of key.
func DistinctStrings(v View, key func(*model.Delivery) string) []string {
	seen := make(map[string]struct{})
	v.Each(func(_ int32, d *model.Delivery) {
		if s := key(d); s != "" {
			seen[s] = struct{}{}
		}
	})
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// DistinctSeasons returns the sorted distinct season years in the view.
func DistinctSeasons(v View) []int {
	seen := make(map[int]struct{})
	v.Each(func(_ int32, d *model.Delivery) {
		seen[d.Season] = struct{}{}
	})
	out := make([]int, 0, len(seen))
	for y := range seen {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

// MatchPerformance is the winner of a per-(entity, match) ranking: the best
// single-match total. Tied is set when more than one entity shares the top
// value; the answer is then order-dependent in the source data, so callers
// can surface the ambiguity.
type MatchPerformance struct {
	Entity  string
	MatchID int
	Value   int
	Tied    bool
}

// TopEntityMatch returns the highest per-match total. Ties on the value are
// broken by entity name ascending, then match id ascending, so the result
// is deterministic. ok is false for an empty input.
func TopEntityMatch(totals map[EntityMatch]int) (MatchPerformance, bool) {
	if len(totals) == 0 {
		return MatchPerformance{}, false
	}
	keys := make([]EntityMatch, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if totals[a] != totals[b] {
			return totals[a] > totals[b]
		}
		if a.Entity != b.Entity {
			return a.Entity < b.Entity
		}
		return a.MatchID < b.MatchID
	})
	best := keys[0]
	top := MatchPerformance{Entity: best.Entity, MatchID: best.MatchID, Value: totals[best]}
	for _, k := range keys[1:] {
		if totals[k] != top.Value {
			break
		}
		if k.Entity != top.Entity {
			top.Tied = true
			break
		}
	}
	return top, true
}

// TeamInningsTotals sums total runs per (match, innings, batting team).
// Callers are expected to pre-filter the view (regular innings, definitive
// results) before computing extremes from it.
func TeamInningsTotals(v View) map[InningsKey]int {
	out := make(map[InningsKey]int)
	v.Each(func(_ int32, d *model.Delivery) {
		out[InningsKey{MatchID: d.MatchID, Innings: d.Innings, Team: d.BattingTeam}] += d.TotalRuns
	})
	return out
}

// InningsScore is one team's total in one innings.
type InningsScore struct {
	Team string
	Runs int
}

// ScoreExtremes extracts the highest and lowest innings score from one
// totals map in a single pass. Ties are broken by team name then match id
// so both extremes are deterministic.
func ScoreExtremes(totals map[InningsKey]int) (highest, lowest InningsScore, ok bool) {
	if len(totals) == 0 {
		return InningsScore{}, InningsScore{}, false
	}
	var hiKey, loKey InningsKey
	first := true
	better := func(k, cur InningsKey, wantHigher bool) bool {
		a, b := totals[k], totals[cur]
		if a != b {
			if wantHigher {
				return a > b
			}
			return a < b
		}
		if k.Team != cur.Team {
			return k.Team < cur.Team
		}
		if k.MatchID != cur.MatchID {
			return k.MatchID < cur.MatchID
		}
		return k.Innings < cur.Innings
	}
	for k := range totals {
		if first {
			hiKey, loKey = k, k
			first = false
			continue
		}
		if better(k, hiKey, true) {
			hiKey = k
		}
		if better(k, loKey, false) {
			loKey = k
		}
	}
	return InningsScore{Team: hiKey.Team, Runs: totals[hiKey]},
		InningsScore{Team: loKey.Team, Runs: totals[loKey]},
		true
}
