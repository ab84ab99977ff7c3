// Package reports assembles the named report shapes from a Dataset. Every
// report is a pure function of the dataset and its parameters: filter to a
// view, reduce, rank, derive rates, fill the result struct. Nothing here
// mutates the dataset, so a Service is safe for concurrent use.
package reports

import (
	"github.com/legside/cricstats/internal/dataset"
	"github.com/legside/cricstats/internal/model"
	"github.com/legside/cricstats/internal/rank"
)

// Service answers report queries against one immutable dataset.
type Service struct {
	ds *dataset.Dataset
}

// New returns a Service reading from ds.
func New(ds *dataset.Dataset) *Service {
	return &Service{ds: ds}
}

// TeamList is the result of the team-enumeration reports.
type TeamList struct {
	Teams []string `json:"teams"`
}

// NameList is the result of the player-enumeration reports.
type NameList struct {
	Names []string `json:"names"`
}

// WinDrawLoss is one team's match outcomes over a view. Losses are derived:
// total − won − drawn.
type WinDrawLoss struct {
	Won   int `json:"matchesWon"`
	Drawn int `json:"matchesDraw"`
	Lost  int `json:"matchesLoss"`
}

// SeasonSeries pairs seasons with a per-season total, both in season order.
type SeasonSeries struct {
	Seasons []int `json:"seasons"`
	Values  []int `json:"values"`
}

// MatchSeries pairs match ordinals (1..n in match order) with a per-match
// total.
type MatchSeries struct {
	Matches []int `json:"matches"`
	Values  []int `json:"values"`
}

// TeamSeries pairs opposing teams with a per-team total, in team-name order.
type TeamSeries struct {
	Teams  []string `json:"teams"`
	Values []int    `json:"values"`
}

// Overall is the tournament-wide summary across every season.
type Overall struct {
	TotalSeasonsPlayed       int          `json:"totalSeasonsPlayed"`
	TotalTeamsPlayed         int          `json:"totalTeamsPlayed"`
	TotalMatchesPlayed       int          `json:"totalMatchesPlayed"`
	HighestRunsBatsmanName   string       `json:"highestRunsBatsmanName"`
	HighestRuns              int          `json:"highestRuns"`
	HighestRunsTied          bool         `json:"highestRunsTied,omitempty"`
	HighestWicketsBowlerName string       `json:"highestWicketsBowlerName"`
	HighestWickets           int          `json:"highestWickets"`
	HighestWicketsTied       bool         `json:"highestWicketsTied,omitempty"`
	// An empty score name marks "no eligible innings"; the totals stay in
	// the body so a genuine 0 is not mistaken for absence.
	HighestTeamScoreName     string       `json:"highestTeamScoreName,omitempty"`
	HighestTeamScore         int          `json:"highestTeamScore"`
	LowestTeamScoreName      string       `json:"lowestTeamScoreName,omitempty"`
	LowestTeamScore          int          `json:"lowestTeamScore"`
	Teams                    []string     `json:"teams"`
	Top5Batsmen              []rank.Entry `json:"top5Batsmen"`
	Top5Bowlers              []rank.Entry `json:"top5Bowlers"`
	TitleWinners             []rank.Entry `json:"winningTeams"`
}

// OverallSeason is the tournament summary for one season.
type OverallSeason struct {
	TotalMatchesPlayed       int          `json:"totalMatchesPlayed"`
	TotalTeamsPlayed         int          `json:"totalTeamsPlayed"`
	TotalSuperOversPlayed    int          `json:"totalSuperOversPlayed"`
	HighestRunsBatsmanName   string       `json:"highestRunsBatsmanName"`
	HighestRuns              int          `json:"highestRuns"`
	HighestRunsTied          bool         `json:"highestRunsTied,omitempty"`
	HighestWicketsBowlerName string       `json:"highestWicketsBowlerName"`
	HighestWickets           int          `json:"highestWickets"`
	HighestWicketsTied       bool         `json:"highestWicketsTied,omitempty"`
	HighestTeamScoreName     string       `json:"highestTeamScoreName,omitempty"`
	HighestTeamScore         int          `json:"highestTeamScore"`
	LowestTeamScoreName      string       `json:"lowestTeamScoreName,omitempty"`
	LowestTeamScore          int          `json:"lowestTeamScore"`
	PlayingTeams             []string     `json:"playingTeams"`
	Top5Batsmen              []rank.Entry `json:"top5Batsmen"`
	Top5Bowlers              []rank.Entry `json:"top5Bowlers"`
	// Empty when the season's final has no recorded winner (or was not
	// played).
	WinningTeam string `json:"winningTeam,omitempty"`
}

// TeamOverall is one team's career summary across every season.
type TeamOverall struct {
	Team                     string       `json:"team"`
	TotalSeasonsPlayed       int          `json:"totalSeasonsPlayed"`
	TotalMatchesPlayed       int          `json:"totalMatchesPlayed"`
	TotalTitlesWon           int          `json:"totalTitlesWon"`
	HighestRunsBatsmanName   string       `json:"highestRunsBatsmanName,omitempty"`
	HighestRuns              int          `json:"highestRuns"`
	HighestRunsTied          bool         `json:"highestRunsTied,omitempty"`
	HighestWicketsBowlerName string       `json:"highestWicketsBowlerName,omitempty"`
	HighestWickets           int          `json:"highestWickets"`
	HighestWicketsTied       bool         `json:"highestWicketsTied,omitempty"`
	// Innings extremes are nil when the team has no regulation innings with
	// a definitive result, keeping a real 0 distinct from "no data".
	HighestScore             *int         `json:"highestScore,omitempty"`
	LowestScore              *int         `json:"lowestScore,omitempty"`
	Top5Batsmen              []rank.Entry `json:"top5Batsmen"`
	Top5Bowlers              []rank.Entry `json:"top5Bowlers"`
	Outcomes                 WinDrawLoss  `json:"matchesWinDrawLoss"`
}

// TeamSeason is one team's summary for one season.
type TeamSeason struct {
	Team                     string       `json:"team"`
	Season                   int          `json:"season"`
	TotalMatchesPlayed       int          `json:"totalMatchesPlayed"`
	TotalSuperOversPlayed    int          `json:"totalSuperOversPlayed"`
	TitlesWon                int          `json:"titlesWon"`
	HighestRunsBatsmanName   string       `json:"highestRunsBatsmanName,omitempty"`
	HighestRuns              int          `json:"highestRuns"`
	HighestRunsTied          bool         `json:"highestRunsTied,omitempty"`
	HighestWicketsBowlerName string       `json:"highestWicketsBowlerName,omitempty"`
	HighestWickets           int          `json:"highestWickets"`
	HighestWicketsTied       bool         `json:"highestWicketsTied,omitempty"`
	HighestScore             *int         `json:"highestScore,omitempty"`
	LowestScore              *int         `json:"lowestScore,omitempty"`
	Players                  []string     `json:"players"`
	Top5Batsmen              []rank.Entry `json:"top5Batsmen"`
	Top5Bowlers              []rank.Entry `json:"top5Bowlers"`
	Outcomes                 WinDrawLoss  `json:"matchesWinDrawLoss"`
}

// Matchup is the head-to-head summary of two teams across every season.
type Matchup struct {
	Team1                    string       `json:"team1Name"`
	Team2                    string       `json:"team2Name"`
	TotalSeasonsPlayed       int          `json:"totalSeasonsPlayed"`
	TotalMatchesPlayed       int          `json:"totalMatchesPlayed"`
	TotalSuperOversPlayed    int          `json:"totalSuperOversPlayed"`
	HighestRunsBatsmanName   string       `json:"highestRunsBatsmanName"`
	HighestRuns              int          `json:"highestRuns"`
	HighestRunsTied          bool         `json:"highestRunsTied,omitempty"`
	HighestWicketsBowlerName string       `json:"highestWicketsBowlerName"`
	HighestWickets           int          `json:"highestWickets"`
	HighestWicketsTied       bool         `json:"highestWicketsTied,omitempty"`
	HighestScoreName         string       `json:"highestScoreName,omitempty"`
	HighestScore             int          `json:"highestScore"`
	LowestScoreName          string       `json:"lowestScoreName,omitempty"`
	LowestScore              int          `json:"lowestScore"`
	Top5Batsmen              []rank.Entry `json:"top5Batsmen"`
	Top5Bowlers              []rank.Entry `json:"top5Bowlers"`
	WonByTeam1               int          `json:"matchesWonByTeam1"`
	WonByTeam2               int          `json:"matchesWonByTeam2"`
	Drawn                    int          `json:"matchesDraw"`
}

// MatchupSeason is the head-to-head summary of two teams in one season.
type MatchupSeason struct {
	Team1                    string       `json:"team1Name"`
	Team2                    string       `json:"team2Name"`
	Season                   int          `json:"season"`
	TotalMatchesPlayed       int          `json:"totalMatchesPlayed"`
	TotalSuperOversPlayed    int          `json:"totalSuperOversPlayed"`
	HighestRunsBatsmanName   string       `json:"highestRunsBatsmanName"`
	HighestRuns              int          `json:"highestRuns"`
	HighestRunsTied          bool         `json:"highestRunsTied,omitempty"`
	HighestWicketsBowlerName string       `json:"highestWicketsBowlerName"`
	HighestWickets           int          `json:"highestWickets"`
	HighestWicketsTied       bool         `json:"highestWicketsTied,omitempty"`
	HighestScoreName         string       `json:"highestScoreName,omitempty"`
	HighestScore             int          `json:"highestScore"`
	LowestScoreName          string       `json:"lowestScoreName,omitempty"`
	LowestScore              int          `json:"lowestScore"`
	Team1Players             []string     `json:"team1Players"`
	Team2Players             []string     `json:"team2Players"`
	Top5Batsmen              []rank.Entry `json:"top5Batsmen"`
	Top5Bowlers              []rank.Entry `json:"top5Bowlers"`
	WonByTeam1               int          `json:"matchesWonByTeam1"`
	WonByTeam2               int          `json:"matchesWonByTeam2"`
	Drawn                    int          `json:"matchesDraw"`
}

// BatsmanOverall is a batter's career summary across every season.
type BatsmanOverall struct {
	Batsman            string       `json:"batsman"`
	TotalSeasonsPlayed int          `json:"totalSeasonsPlayed"`
	TotalMatchesPlayed int          `json:"totalMatchesPlayed"`
	TotalRuns          int          `json:"totalRuns"`
	TotalFours         int          `json:"totalFours"`
	TotalSixes         int          `json:"totalSixes"`
	Average            model.Metric `json:"average"`
	StrikeRate         model.Metric `json:"strikeRate"`
	TotalFifties       int          `json:"totalFifties"`
	TotalCenturies     int          `json:"totalCenturies"`
	HighestScore       int          `json:"highestScore"`
	TotalMOM           int          `json:"totalMOM"`
	PlayingIn          string       `json:"playingIn"`
	PlayedIn           []string     `json:"playedIn"`
	SeasonWiseRuns     SeasonSeries `json:"seasonWiseRuns"`
}

// BatsmanSeason is a batter's summary for one season.
type BatsmanSeason struct {
	Batsman             string       `json:"batsman"`
	Season              int          `json:"season"`
	TotalMatchesPlayed  int          `json:"totalMatchesPlayed"`
	TotalRuns           int          `json:"totalRuns"`
	TotalFours          int          `json:"totalFours"`
	TotalSixes          int          `json:"totalSixes"`
	Average             model.Metric `json:"average"`
	StrikeRate          model.Metric `json:"strikeRate"`
	TotalFifties        int          `json:"totalFifties"`
	TotalCenturies      int          `json:"totalCenturies"`
	HighestScore        int          `json:"highestScore"`
	TotalMOM            int          `json:"totalMOM"`
	PlayingIn           string       `json:"playingIn"`
	RunsAgainstAllTeams TeamSeries   `json:"runsAgainstAllTeams"`
	MatchWiseRuns       MatchSeries  `json:"matchWiseRuns"`
}

// BowlerOverall is a bowler's career summary across every season.
type BowlerOverall struct {
	Bowler             string       `json:"bowler"`
	TotalSeasonsPlayed int          `json:"totalSeasonsPlayed"`
	TotalMatchesPlayed int          `json:"totalMatchesPlayed"`
	TotalWickets       int          `json:"totalWickets"`
	Economy            model.Metric `json:"economy"`
	Average            model.Metric `json:"average"`
	StrikeRate         model.Metric `json:"strikeRate"`
	TotalFours         int          `json:"totalFours"`
	TotalSixes         int          `json:"totalSixes"`
	BestFigure         string       `json:"bestFigure"`
	TotalW3            int          `json:"totalW3"`
	TotalMOM           int          `json:"totalMOM"`
	PlayingIn          string       `json:"playingIn"`
	PlayedIn           []string     `json:"playedIn"`
	SeasonWiseWickets  SeasonSeries `json:"seasonWiseWickets"`
}

// BowlerSeason is a bowler's summary for one season.
type BowlerSeason struct {
	Bowler                 string       `json:"bowler"`
	Season                 int          `json:"season"`
	TotalMatchesPlayed     int          `json:"totalMatchesPlayed"`
	TotalWickets           int          `json:"totalWickets"`
	Economy                model.Metric `json:"economy"`
	Average                model.Metric `json:"average"`
	StrikeRate             model.Metric `json:"strikeRate"`
	TotalFours             int          `json:"totalFours"`
	TotalSixes             int          `json:"totalSixes"`
	BestFigure             string       `json:"bestFigure"`
	TotalW3                int          `json:"totalW3"`
	TotalMOM               int          `json:"totalMOM"`
	PlayingIn              string       `json:"playingIn"`
	WicketsAgainstAllTeams TeamSeries   `json:"wicketsAgainstAllTeams"`
	MatchWiseWickets       MatchSeries  `json:"matchWiseWickets"`
}
