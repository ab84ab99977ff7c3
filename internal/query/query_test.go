package query

import (
	"reflect"
	"testing"

	"github.com/legside/cricstats/internal/dataset"
	"github.com/legside/cricstats/internal/model"
)

// ball builds a minimal delivery for grouping tests.
func ball(matchID, season, innings int, battingTeam, batter, bowler string, runs int) model.Delivery {
	return model.Delivery{
		MatchID:     matchID,
		Season:      season,
		Innings:     innings,
		BattingTeam: battingTeam,
		Team1:       "Alpha",
		Team2:       "Beta",
		Batter:      batter,
		Bowler:      bowler,
		BatterRuns:  runs,
		TotalRuns:   runs,
	}
}

func testView(rows []model.Delivery) View {
	return All(dataset.New(rows))
}

func TestParseSeason(t *testing.T) {
	if _, err := ParseSeason("2020"); err != nil {
		t.Fatalf("valid season: %v", err)
	}
	_, err := ParseSeason("twenty20")
	if err == nil {
		t.Fatal("expected ValidationError")
	}
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Param != "season" || ve.Value != "twenty20" {
		t.Errorf("error context: %+v", ve)
	}
}

func TestWhereComposesWithAnd(t *testing.T) {
	rows := []model.Delivery{
		ball(1, 2020, 1, "Alpha", "A", "X", 4),
		ball(1, 2020, 2, "Beta", "B", "Y", 6),
		ball(2, 2021, 1, "Alpha", "A", "X", 1),
	}
	v := testView(rows).Where(And(SeasonIs(2020), BattingTeamIs("Alpha")))
	if v.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", v.Len())
	}
	v.Each(func(_ int32, d *model.Delivery) {
		if d.Batter != "A" || d.Season != 2020 {
			t.Errorf("wrong row in view: %+v", d)
		}
	})
}

func TestEmptyViewPropagates(t *testing.T) {
	v := testView([]model.Delivery{ball(1, 2020, 1, "Alpha", "A", "X", 4)}).
		Where(SeasonIs(1999))
	if !v.Empty() {
		t.Fatal("expected empty view")
	}
	// Downstream reducers must cope, not crash.
	if got := SumBy(v, func(d *model.Delivery) string { return d.Batter }, func(d *model.Delivery) int { return d.BatterRuns }); len(got) != 0 {
		t.Errorf("SumBy on empty view: %v", got)
	}
	if _, ok := TopEntityMatch(SumByEntityMatch(v, func(d *model.Delivery) string { return d.Batter }, func(d *model.Delivery) int { return d.BatterRuns })); ok {
		t.Error("TopEntityMatch on empty input should report !ok")
	}
	if _, _, ok := ScoreExtremes(TeamInningsTotals(v)); ok {
		t.Error("ScoreExtremes on empty input should report !ok")
	}
}

func TestTwoLevelAggregation(t *testing.T) {
	// A: 30 in match 1, 50 in match 2. B: 45 in match 1.
	rows := []model.Delivery{
		ball(1, 2020, 1, "Alpha", "A", "X", 10),
		ball(1, 2020, 1, "Alpha", "A", "X", 20),
		ball(1, 2020, 2, "Beta", "B", "Y", 45),
		ball(2, 2020, 1, "Alpha", "A", "X", 50),
	}
	v := testView(rows)
	perMatch := SumByEntityMatch(v,
		func(d *model.Delivery) string { return d.Batter },
		func(d *model.Delivery) int { return d.BatterRuns })

	want := map[EntityMatch]int{
		{Entity: "A", MatchID: 1}: 30,
		{Entity: "A", MatchID: 2}: 50,
		{Entity: "B", MatchID: 1}: 45,
	}
	if !reflect.DeepEqual(perMatch, want) {
		t.Errorf("per-match totals: want %v, got %v", want, perMatch)
	}

	perEntity := CollapseByEntity(perMatch)
	if perEntity["A"] != 80 || perEntity["B"] != 45 {
		t.Errorf("per-entity totals: %v", perEntity)
	}

	top, ok := TopEntityMatch(perMatch)
	if !ok {
		t.Fatal("expected a top performance")
	}
	if top.Entity != "A" || top.MatchID != 2 || top.Value != 50 || top.Tied {
		t.Errorf("top performance: %+v", top)
	}
}

func TestTopEntityMatchTieBreak(t *testing.T) {
	totals := map[EntityMatch]int{
		{Entity: "Zed", MatchID: 1}: 50,
		{Entity: "Ann", MatchID: 2}: 50,
		{Entity: "Mid", MatchID: 3}: 40,
	}
	top, ok := TopEntityMatch(totals)
	if !ok {
		t.Fatal("expected a result")
	}
	if top.Entity != "Ann" {
		t.Errorf("tie should break by name ascending, got %q", top.Entity)
	}
	if !top.Tied {
		t.Error("equal-value entities should set Tied")
	}
}

func TestScoreExtremesSinglePass(t *testing.T) {
	rows := []model.Delivery{
		ball(1, 2020, 1, "Alpha", "A", "X", 120),
		ball(1, 2020, 2, "Beta", "B", "Y", 80),
		ball(2, 2020, 1, "Beta", "B", "Y", 200),
	}
	hi, lo, ok := ScoreExtremes(TeamInningsTotals(testView(rows)))
	if !ok {
		t.Fatal("expected extremes")
	}
	if hi.Team != "Beta" || hi.Runs != 200 {
		t.Errorf("highest: %+v", hi)
	}
	if lo.Team != "Beta" || lo.Runs != 80 {
		t.Errorf("lowest: %+v", lo)
	}
}

func TestDistinctReducers(t *testing.T) {
	rows := []model.Delivery{
		ball(1, 2020, 1, "Alpha", "A", "X", 1),
		ball(1, 2020, 1, "Alpha", "B", "X", 2),
		ball(2, 2021, 1, "Beta", "A", "Y", 3),
	}
	v := testView(rows)
	if got := DistinctMatches(v, nil); got != 2 {
		t.Errorf("DistinctMatches: want 2, got %d", got)
	}
	if got := DistinctStrings(v, func(d *model.Delivery) string { return d.Batter }); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("DistinctStrings: %v", got)
	}
	if got := DistinctSeasons(v); !reflect.DeepEqual(got, []int{2020, 2021}) {
		t.Errorf("DistinctSeasons: %v", got)
	}
}

func TestOrPredicate(t *testing.T) {
	rows := []model.Delivery{
		ball(1, 2020, 1, "Alpha", "A", "X", 1),
		ball(2, 2021, 1, "Beta", "B", "Y", 2),
		ball(3, 2022, 1, "Alpha", "C", "Z", 3),
	}
	v := testView(rows).Where(Or(SeasonIs(2020), SeasonIs(2022)))
	if v.Len() != 2 {
		t.Errorf("Or view: want 2 rows, got %d", v.Len())
	}
}
