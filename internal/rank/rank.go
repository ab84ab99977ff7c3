// Package rank turns per-entity totals into ordered leaderboards. All
// orderings break value ties by name ascending so a ranking over the same
// totals is always the same slice.
package rank

import "sort"

// Entry is one row of a leaderboard.
type Entry struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func sorted(totals map[string]int, descending bool) []Entry {
	out := make([]Entry, 0, len(totals))
	for name, v := range totals {
		out = append(out, Entry{Name: name, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			if descending {
				return out[i].Value > out[j].Value
			}
			return out[i].Value < out[j].Value
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// TopN returns the n highest-valued entries, best first. Fewer than n
// entities yields a shorter slice, never padding.
func TopN(totals map[string]int, n int) []Entry {
	out := sorted(totals, true)
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// BottomN returns the n lowest-valued entries, worst first.
func BottomN(totals map[string]int, n int) []Entry {
	out := sorted(totals, false)
	if len(out) > n {
		out = out[:n]
	}
	return out
}
