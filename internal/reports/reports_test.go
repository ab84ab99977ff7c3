package reports

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/legside/cricstats/internal/dataset"
	"github.com/legside/cricstats/internal/model"
	"github.com/legside/cricstats/internal/query"
)

// matchFixture accumulates the deliveries of one match; match-level fields
// (winner, stage, player of the match) ride on every ball.
type matchFixture struct {
	id     int
	season int
	team1  string
	team2  string
	winner string
	stage  string
	wonBy  string
	method string
	pom    string
	super  bool
	rows   []model.Delivery
}

func newMatch(id, season int, team1, team2, winner string) *matchFixture {
	return &matchFixture{
		id: id, season: season,
		team1: team1, team2: team2,
		winner: winner,
		stage:  "League",
		wonBy:  "Runs",
	}
}

func (m *matchFixture) ball(innings int, battingTeam, batter, bowler string, runs int, mut ...func(*model.Delivery)) *matchFixture {
	d := model.Delivery{
		MatchID:     m.id,
		Season:      m.season,
		Innings:     innings,
		BattingTeam: battingTeam,
		Team1:       m.team1,
		Team2:       m.team2,
		Batter:      batter,
		Bowler:      bowler,
		BatterRuns:  runs,
		BowlerRuns:  runs,
		TotalRuns:   runs,
		Stage:       m.stage,
		WinningTeam: m.winner,
		WonBy:       m.wonBy,
		Method:      m.method,
		SuperOver:   m.super,
	}
	d.PlayerOfMatch = m.pom
	for _, f := range mut {
		f(&d)
	}
	m.rows = append(m.rows, d)
	return m
}

// balls adds n identical deliveries, runs each.
func (m *matchFixture) balls(n, innings int, battingTeam, batter, bowler string, runs int) *matchFixture {
	for i := 0; i < n; i++ {
		m.ball(innings, battingTeam, batter, bowler, runs)
	}
	return m
}

func wicket(out string) func(*model.Delivery) {
	return func(d *model.Delivery) {
		d.IsWicket = true
		d.PlayerOut = out
		d.BowlerWicket = true
	}
}

func buildService(matches ...*matchFixture) *Service {
	var rows []model.Delivery
	for _, m := range matches {
		rows = append(rows, m.rows...)
	}
	return New(dataset.New(rows))
}

// leagueFixture is the shared scenario: two seasons, three teams, two finals.
func leagueFixture() *Service {
	// Season 2020. Vik scores 30 off 20 balls in match 1 and is dismissed
	// once; Astra wins.
	m1 := newMatch(1, 2020, "Astra", "Borea", "Astra")
	m1.pom = "Vik"
	m1.balls(9, 1, "Astra", "Vik", "Zorn", 3)
	m1.ball(1, "Astra", "Vik", "Zorn", 3, wicket("Vik"))
	m1.balls(10, 1, "Astra", "Vik", "Zorn", 0)
	m1.balls(10, 2, "Borea", "Bram", "Quill", 4)

	// Vik adds 20 off 20 in match 2, unbeaten. Borea wins.
	m2 := newMatch(2, 2020, "Astra", "Borea", "Borea")
	m2.pom = "Bram"
	m2.balls(20, 1, "Astra", "Vik", "Zorn", 1)
	m2.balls(5, 2, "Borea", "Bram", "Quill", 6)

	// Match 3 is abandoned: no winner, no result.
	m3 := newMatch(3, 2020, "Astra", "Cyra", "")
	m3.wonBy = "NoResults"
	m3.balls(6, 1, "Cyra", "Cole", "Quill", 2)

	// The 2020 final: Astra beats Cyra.
	f1 := newMatch(4, 2020, "Astra", "Cyra", "Astra")
	f1.stage = "Final"
	f1.pom = "Vik"
	f1.balls(10, 1, "Astra", "Vik", "Cole", 5)
	f1.balls(8, 2, "Cyra", "Cole", "Zorn", 3)

	// Season 2021: one league match and a final, both Astra wins.
	m4 := newMatch(5, 2021, "Astra", "Borea", "Astra")
	m4.balls(12, 1, "Borea", "Bram", "Zorn", 2)
	m4.ball(1, "Borea", "Bram", "Zorn", 0, wicket("Bram"))
	m4.balls(6, 2, "Astra", "Vik", "Quill", 4)

	f2 := newMatch(6, 2021, "Astra", "Cyra", "Astra")
	f2.stage = "Final"
	f2.balls(9, 1, "Cyra", "Cole", "Zorn", 1)
	f2.balls(9, 2, "Astra", "Vik", "Cole", 2)

	return buildService(m1, m2, m3, m4, f1, f2)
}

func TestBatsmanCareerRates(t *testing.T) {
	svc := leagueFixture()
	r, err := svc.BatsmanOverall("Vik")
	if err != nil {
		t.Fatalf("BatsmanOverall: %v", err)
	}
	// 2020: 30 off 20 (one dismissal) + 20 off 20. Later seasons excluded
	// from the rate check by restricting to the season report.
	season, err := svc.BatsmanSeason("Vik", 2020)
	if err != nil {
		t.Fatalf("BatsmanSeason: %v", err)
	}
	if season.TotalRuns != 50+50 {
		// match 1+2 give 50; the final adds 50 more.
		t.Errorf("season runs: got %d", season.TotalRuns)
	}
	if avg, ok := season.Average.Value(); !ok || avg != 100.0 {
		t.Errorf("season average: got %v (100 runs, 1 dismissal)", season.Average)
	}
	if r.TotalSeasonsPlayed != 2 {
		t.Errorf("seasons played: got %d, want 2", r.TotalSeasonsPlayed)
	}
	if r.PlayingIn != "Astra" || len(r.PlayedIn) != 0 {
		t.Errorf("teams: playing %q, played %v", r.PlayingIn, r.PlayedIn)
	}
}

func TestBattingRateScenario(t *testing.T) {
	// Isolated two-match career: 30+20 runs over 40 balls, one dismissal.
	m1 := newMatch(1, 2020, "Astra", "Borea", "Astra")
	m1.balls(10, 1, "Astra", "Vik", "Zorn", 3)
	m1.balls(9, 1, "Astra", "Vik", "Zorn", 0)
	m1.ball(1, "Astra", "Vik", "Zorn", 0, wicket("Vik"))

	m2 := newMatch(2, 2020, "Astra", "Borea", "Borea")
	m2.balls(20, 1, "Astra", "Vik", "Zorn", 1)

	svc := buildService(m1, m2)
	r, err := svc.BatsmanOverall("Vik")
	if err != nil {
		t.Fatalf("BatsmanOverall: %v", err)
	}
	if r.TotalRuns != 50 {
		t.Fatalf("total runs: got %d, want 50", r.TotalRuns)
	}
	if avg, ok := r.Average.Value(); !ok || avg != 50.0 {
		t.Errorf("average: got %v, want 50.00", r.Average)
	}
	if sr, ok := r.StrikeRate.Value(); !ok || sr != 125.0 {
		t.Errorf("strike rate: got %v, want 125.00", r.StrikeRate)
	}
	if r.HighestScore != 30 {
		t.Errorf("highest score: got %d, want 30", r.HighestScore)
	}
}

func TestWidesNotBallsFaced(t *testing.T) {
	m := newMatch(1, 2020, "Astra", "Borea", "Astra")
	m.balls(10, 1, "Astra", "Vik", "Zorn", 1)
	m.ball(1, "Astra", "Vik", "Zorn", 0, func(d *model.Delivery) {
		d.Extra = model.ExtraWide
		d.TotalRuns = 1
	})
	r, err := buildService(m).BatsmanOverall("Vik")
	if err != nil {
		t.Fatalf("BatsmanOverall: %v", err)
	}
	if sr, ok := r.StrikeRate.Value(); !ok || sr != 100.0 {
		t.Errorf("strike rate over 10 legal balls: got %v, want 100.00", r.StrikeRate)
	}
}

func TestTeamOutcomeIdentity(t *testing.T) {
	svc := leagueFixture()
	r, err := svc.TeamOverall("Astra")
	if err != nil {
		t.Fatalf("TeamOverall: %v", err)
	}
	o := r.Outcomes
	if o.Won+o.Drawn+o.Lost != r.TotalMatchesPlayed {
		t.Errorf("outcome identity broken: %+v over %d matches", o, r.TotalMatchesPlayed)
	}
	// Astra: wins in matches 1, 4, 5, 6; loses match 2; match 3 abandoned.
	if o.Won != 4 || o.Drawn != 1 || o.Lost != 1 {
		t.Errorf("outcomes: %+v, want 4/1/1", o)
	}
	if r.TotalTitlesWon != 2 {
		t.Errorf("titles: got %d, want 2", r.TotalTitlesWon)
	}
}

func TestNullWinnerIsDraw(t *testing.T) {
	m := newMatch(1, 2020, "Astra", "Borea", "")
	m.wonBy = "NoResults"
	m.balls(6, 1, "Astra", "Vik", "Zorn", 1)
	r, err := buildService(m).TeamOverall("Astra")
	if err != nil {
		t.Fatalf("TeamOverall: %v", err)
	}
	if r.Outcomes.Drawn != 1 || r.Outcomes.Won != 0 || r.Outcomes.Lost != 0 {
		t.Errorf("abandoned match should count as a draw: %+v", r.Outcomes)
	}
}

func TestZeroWicketBowler(t *testing.T) {
	m1 := newMatch(1, 2020, "Astra", "Borea", "Astra")
	m1.balls(6, 1, "Astra", "Vik", "Mist", 4) // 24 runs, no wicket
	m2 := newMatch(2, 2020, "Astra", "Borea", "Astra")
	m2.balls(6, 1, "Astra", "Vik", "Mist", 2) // 12 runs, no wicket

	r, err := buildService(m1, m2).BowlerOverall("Mist")
	if err != nil {
		t.Fatalf("BowlerOverall: %v", err)
	}
	if r.TotalWickets != 0 {
		t.Fatalf("wickets: got %d", r.TotalWickets)
	}
	if !r.Average.IsInfinite() {
		t.Errorf("wicketless average should be infinite, got %v", r.Average)
	}
	if !r.StrikeRate.IsUndefined() {
		t.Errorf("wicketless strike rate should be undefined, got %v", r.StrikeRate)
	}
	if r.BestFigure != "0/12" {
		t.Errorf("wicketless best figure: got %q, want 0/12", r.BestFigure)
	}
	if econ, ok := r.Economy.Value(); !ok || econ != 18.0 {
		t.Errorf("economy: got %v, want 18.00", r.Economy)
	}
}

func TestUnknownEntitiesReturnEmptyResult(t *testing.T) {
	svc := leagueFixture()
	if _, err := svc.BatsmanOverall("Nobody"); err == nil {
		t.Error("unknown batsman should fail")
	} else if _, ok := err.(*query.EmptyResultError); !ok {
		t.Errorf("want *query.EmptyResultError, got %T", err)
	}
	if _, err := svc.TeamSeason("Astra", 1999); err == nil {
		t.Error("empty season should fail")
	}
	if _, err := svc.Matchup("Astra", "Nothing FC"); err == nil {
		t.Error("unknown matchup should fail")
	}
}

func TestOverallSummary(t *testing.T) {
	svc := leagueFixture()
	r, err := svc.Overall()
	if err != nil {
		t.Fatalf("Overall: %v", err)
	}
	if r.TotalSeasonsPlayed != 2 || r.TotalMatchesPlayed != 6 {
		t.Errorf("totals: %d seasons, %d matches", r.TotalSeasonsPlayed, r.TotalMatchesPlayed)
	}
	if !reflect.DeepEqual(r.Teams, []string{"Astra", "Borea", "Cyra"}) {
		t.Errorf("teams: %v", r.Teams)
	}
	if len(r.Top5Batsmen) == 0 || r.Top5Batsmen[0].Name != "Vik" {
		t.Errorf("top batsmen: %v", r.Top5Batsmen)
	}
	// Two finals, both won by Astra; rows within a final must not double
	// count.
	if len(r.TitleWinners) != 1 || r.TitleWinners[0].Name != "Astra" || r.TitleWinners[0].Value != 2 {
		t.Errorf("title winners: %v", r.TitleWinners)
	}
}

func TestOverallSeasonWinner(t *testing.T) {
	svc := leagueFixture()
	r, err := svc.OverallSeason(2020)
	if err != nil {
		t.Fatalf("OverallSeason: %v", err)
	}
	if r.WinningTeam != "Astra" {
		t.Errorf("season winner: got %q, want Astra", r.WinningTeam)
	}
	if r.TotalMatchesPlayed != 4 {
		t.Errorf("season matches: got %d, want 4", r.TotalMatchesPlayed)
	}
}

func TestScoreExtremesExclusions(t *testing.T) {
	// A normal match, a D/L match with a huge total, and a super-over
	// innings. Only the normal innings may set the extremes.
	// Astra 100 then Borea 80.
	normal := newMatch(1, 2020, "Astra", "Borea", "Astra")
	normal.balls(10, 1, "Astra", "Vik", "Zorn", 10)
	normal.balls(10, 2, "Borea", "Bram", "Quill", 8)

	// Borea 300, but the result was adjusted.
	dl := newMatch(2, 2020, "Astra", "Borea", "Astra")
	dl.method = "D/L"
	dl.balls(10, 1, "Borea", "Bram", "Quill", 30)

	// Astra 90 in the regular innings; the innings-3 ball is a super over.
	superOver := newMatch(3, 2020, "Astra", "Borea", "Astra")
	superOver.super = true
	superOver.balls(10, 1, "Astra", "Vik", "Zorn", 9)
	superOver.balls(1, 3, "Borea", "Bram", "Quill", 1)

	r, err := buildService(normal, dl, superOver).Overall()
	if err != nil {
		t.Fatalf("Overall: %v", err)
	}
	if r.HighestTeamScore != 100 || r.HighestTeamScoreName != "Astra" {
		t.Errorf("highest: %q %d, want Astra 100", r.HighestTeamScoreName, r.HighestTeamScore)
	}
	if r.LowestTeamScore != 80 || r.LowestTeamScoreName != "Borea" {
		t.Errorf("lowest: %q %d, want Borea 80", r.LowestTeamScoreName, r.LowestTeamScore)
	}
}

func TestMatchupOutcomes(t *testing.T) {
	svc := leagueFixture()
	r, err := svc.Matchup("Astra", "Borea")
	if err != nil {
		t.Fatalf("Matchup: %v", err)
	}
	if r.TotalMatchesPlayed != 3 {
		t.Errorf("head-to-head matches: got %d, want 3", r.TotalMatchesPlayed)
	}
	if r.WonByTeam1 != 2 || r.WonByTeam2 != 1 || r.Drawn != 0 {
		t.Errorf("outcomes: %d/%d/%d, want 2/1/0", r.WonByTeam1, r.WonByTeam2, r.Drawn)
	}
}

func TestTeamListsExcludeSelf(t *testing.T) {
	svc := leagueFixture()
	r, err := svc.TeamsPerTeam("Astra")
	if err != nil {
		t.Fatalf("TeamsPerTeam: %v", err)
	}
	for _, team := range r.Teams {
		if team == "Astra" {
			t.Fatalf("self in opponent list: %v", r.Teams)
		}
	}
	if !reflect.DeepEqual(r.Teams, []string{"Borea", "Cyra"}) {
		t.Errorf("opponents: %v", r.Teams)
	}
}

func TestReportsAreIdempotent(t *testing.T) {
	svc := leagueFixture()
	first, err := svc.Overall()
	if err != nil {
		t.Fatalf("Overall: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := svc.Overall()
		if err != nil {
			t.Fatalf("Overall (repeat): %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("report differs between runs")
		}
	}
}

func TestZeroScoresSurviveJSON(t *testing.T) {
	// Astra's batters never score. The zero totals are real results and must
	// stay in the wire body instead of vanishing like missing data.
	m := newMatch(1, 2020, "Astra", "Borea", "Borea")
	m.balls(6, 1, "Astra", "Vik", "Zorn", 0)
	m.balls(6, 2, "Borea", "Bram", "Quill", 1)

	r, err := buildService(m).TeamOverall("Astra")
	if err != nil {
		t.Fatalf("TeamOverall: %v", err)
	}
	if r.HighestRunsBatsmanName != "Vik" || r.HighestRuns != 0 {
		t.Fatalf("best batting: %q %d, want Vik 0", r.HighestRunsBatsmanName, r.HighestRuns)
	}
	body, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, want := range []string{`"highestRuns":0`, `"highestWickets":0`, `"highestScore":0`, `"lowestScore":0`} {
		if !strings.Contains(string(body), want) {
			t.Errorf("missing %s in %s", want, body)
		}
	}

	// A rain-adjusted result leaves Astra with no eligible innings, so the
	// extremes drop out of the body entirely.
	dl := newMatch(2, 2020, "Astra", "Borea", "Astra")
	dl.method = "D/L"
	dl.balls(6, 1, "Astra", "Vik", "Zorn", 4)

	r2, err := buildService(dl).TeamOverall("Astra")
	if err != nil {
		t.Fatalf("TeamOverall: %v", err)
	}
	if r2.HighestScore != nil || r2.LowestScore != nil {
		t.Fatalf("extremes should be absent: %v %v", r2.HighestScore, r2.LowestScore)
	}
	body2, err := json.Marshal(r2)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(body2), "highestScore") || strings.Contains(string(body2), "lowestScore") {
		t.Errorf("absent extremes leaked into %s", body2)
	}
}

func TestTiedBestPerformanceFlagged(t *testing.T) {
	// Vik and Wes both make 12; the name tie-break answers Vik but the tie
	// must be surfaced on the team and head-to-head reports alike.
	m := newMatch(1, 2020, "Astra", "Borea", "Astra")
	m.balls(6, 1, "Astra", "Vik", "Zorn", 2)
	m.balls(6, 1, "Astra", "Wes", "Zorn", 2)
	m.balls(6, 2, "Borea", "Bram", "Quill", 1)

	team, err := buildService(m).TeamOverall("Astra")
	if err != nil {
		t.Fatalf("TeamOverall: %v", err)
	}
	if team.HighestRunsBatsmanName != "Vik" || !team.HighestRunsTied {
		t.Errorf("team best batting: %q tied=%v, want Vik tied", team.HighestRunsBatsmanName, team.HighestRunsTied)
	}

	h2h, err := buildService(m).Matchup("Astra", "Borea")
	if err != nil {
		t.Fatalf("Matchup: %v", err)
	}
	if h2h.HighestRunsBatsmanName != "Vik" || !h2h.HighestRunsTied {
		t.Errorf("head-to-head best batting: %q tied=%v, want Vik tied", h2h.HighestRunsBatsmanName, h2h.HighestRunsTied)
	}
}

func TestBowlerSeasonSeries(t *testing.T) {
	svc := leagueFixture()
	r, err := svc.BowlerOverall("Zorn")
	if err != nil {
		t.Fatalf("BowlerOverall: %v", err)
	}
	if r.PlayingIn != "Astra" {
		t.Errorf("bowler side: got %q, want Astra", r.PlayingIn)
	}
	// Zorn's wickets: Vik in match 1 (2020), Bram in match 5 (2021).
	want := SeasonSeries{Seasons: []int{2020, 2021}, Values: []int{1, 1}}
	if !reflect.DeepEqual(r.SeasonWiseWickets, want) {
		t.Errorf("season wickets: %+v", r.SeasonWiseWickets)
	}
	if r.TotalW3 != 0 {
		t.Errorf("three-wicket hauls: got %d", r.TotalW3)
	}
}
