package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/legside/cricstats/internal/reports"
)

var chartOutFlag string

var chartCmd = &cobra.Command{
	Use:   "chart <batsman|bowler> <name>",
	Short: "Write a season-wise HTML bar chart for a player",
	Long: `Render a player's season-by-season record as an HTML bar chart:
runs per season for a batsman, wickets per season for a bowler.`,
	Args: cobra.ExactArgs(2),
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringVar(&chartOutFlag, "out", "", "output HTML path (default from config)")
}

func runChart(cmd *cobra.Command, args []string) error {
	cfg, err := settings()
	if err != nil {
		return err
	}
	svc, closeDB, err := openService(cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeDB()

	role, name := args[0], args[1]

	var title, seriesName string
	var series reports.SeasonSeries
	switch role {
	case "batsman":
		r, err := svc.BatsmanOverall(name)
		if err != nil {
			return err
		}
		title = fmt.Sprintf("%s: runs per season", name)
		seriesName = "Runs"
		series = r.SeasonWiseRuns
	case "bowler":
		r, err := svc.BowlerOverall(name)
		if err != nil {
			return err
		}
		title = fmt.Sprintf("%s: wickets per season", name)
		seriesName = "Wickets"
		series = r.SeasonWiseWickets
	default:
		return fmt.Errorf("unknown role %q: want batsman or bowler", role)
	}

	out := cfg.ChartPath
	if chartOutFlag != "" {
		out = chartOutFlag
	}

	labels := make([]string, len(series.Seasons))
	data := make([]opts.BarData, len(series.Seasons))
	for i, year := range series.Seasons {
		labels[i] = strconv.Itoa(year)
		data[i] = opts.BarData{Value: series.Values[i]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Season"}),
		charts.WithYAxisOpts(opts.YAxis{Name: seriesName}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries(seriesName, data)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Wrote %s\n", out)
	return nil
}
