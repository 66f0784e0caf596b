package cmd

import (
	"context"
	"strings"
	"time"

	"github.com/luispauloloureiro/unfdashboard/internal/aggregator"
	"github.com/luispauloloureiro/unfdashboard/internal/filter"
	"github.com/luispauloloureiro/unfdashboard/internal/model"
	"github.com/luispauloloureiro/unfdashboard/internal/output"
	"github.com/luispauloloureiro/unfdashboard/internal/store"
	"github.com/spf13/cobra"
)

var statsPeriod string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print a one-shot activity report",
	Long: `Load the activity log once and print the KPI summary and player
ranking for the chosen period to the terminal.

Examples:
  unfdash stats
  unfdash stats --period monthly
  unfdash stats --csv "exports/*.csv" -o json`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsPeriod, "period", "total", "period: total, annual, monthly, weekly, daily")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	src, _, err := buildSource()
	if err != nil {
		return err
	}

	st := store.New(src)
	st.Load(ctx)

	now := time.Now()
	period := model.ParsePeriod(statsPeriod)
	records := filter.ByPeriod(st.Records(), period, now)

	rep := output.Report{
		Summary:     aggregator.Aggregate(records),
		Ranking:     aggregator.Rank(st.Records(), period, now),
		Period:      period,
		GeneratedAt: now,
		Fallback:    st.UsingFallback(),
	}

	var renderer output.Renderer
	switch strings.ToLower(outputFmt) {
	case "json":
		renderer = output.NewJSONRenderer()
	default:
		renderer = output.NewTextRenderer()
	}
	return renderer.Render(rep)
}
