package main

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"uxmetrics/internal/analytics"
)

// filterFlags binds the shared metric-filter flags to a command.
type filterFlags struct {
	participant string
	task        string
	from        string
	to          string
}

func (f *filterFlags) register(cmd *cobra.Command, prefix string) {
	cmd.Flags().StringVar(&f.participant, prefix+"participant", "", "filter by participant id")
	cmd.Flags().StringVar(&f.task, prefix+"task", "", "filter by task description substring")
	cmd.Flags().StringVar(&f.from, prefix+"from", "", "earliest session date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, prefix+"to", "", "latest session date (YYYY-MM-DD)")
}

func (f *filterFlags) filters() (analytics.Filters, error) {
	from, err := parseDate(f.from)
	if err != nil {
		return analytics.Filters{}, err
	}
	to, err := parseDate(f.to)
	if err != nil {
		return analytics.Filters{}, err
	}
	return analytics.Filters{
		ParticipantID: f.participant,
		TaskQuery:     f.task,
		From:          from,
		To:            to,
	}, nil
}

func metricsCmd() *cobra.Command {
	var study string
	var ff filterFlags
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Show aggregated metrics for a study",
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := ff.filters()
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				agg, err := a.metrics.StudyMetrics(ctx, study, filters)
				if err != nil {
					return err
				}
				return printResult(agg, func() { renderMetrics(agg) })
			})
		},
	}
	cmd.Flags().StringVar(&study, "study", "", "study id")
	_ = cmd.MarkFlagRequired("study")
	ff.register(cmd, "")
	return cmd
}

func renderMetrics(agg *analytics.AggregatedMetrics) {
	fmt.Printf("Study %s: %d sessions, %d participants, %s - %s\n",
		agg.StudyID, agg.SessionCount, agg.ParticipantCount,
		fmtTime(agg.DateRange.Start), fmtTime(agg.DateRange.End))

	t := newTable(table.Row{"Metric", "Statistic", "Value", "Responses"})
	t.AppendRow(table.Row{"Task Success Rate", "mean", fmtStat(agg.Metrics.TaskSuccessRate.Mean), agg.Metrics.TaskSuccessRate.Count})
	t.AppendRow(table.Row{"Time on Task", "median", fmtStat(agg.Metrics.TimeOnTask.Median), agg.Metrics.TimeOnTask.Count})
	t.AppendRow(table.Row{"Task Efficiency", "mean", fmtStat(agg.Metrics.TaskEfficiency.Mean), agg.Metrics.TaskEfficiency.Count})
	t.AppendRow(table.Row{"Error Rate", "mean", fmtStat(agg.Metrics.ErrorRate.Mean), agg.Metrics.ErrorRate.Count})
	t.AppendRow(table.Row{"SEQ", "mean", fmtStat(agg.Metrics.SEQ.Mean), agg.Metrics.SEQ.Count})
	t.Render()
}

func compareCmd() *cobra.Command {
	var baselineStudy, comparisonStudy string
	var base, comp filterFlags
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two metric sets",
		Long: `Compare aggregated metrics between two studies, or between two
date windows of the same study by passing the same id for both sides.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			baseFilters, err := base.filters()
			if err != nil {
				return err
			}
			compFilters, err := comp.filters()
			if err != nil {
				return err
			}
			if comparisonStudy == "" {
				comparisonStudy = baselineStudy
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				result, err := a.metrics.Compare(ctx,
					analytics.MetricSet{StudyID: baselineStudy, Filters: baseFilters},
					analytics.MetricSet{StudyID: comparisonStudy, Filters: compFilters},
				)
				if err != nil {
					return err
				}
				return printResult(result, func() { renderComparison(result) })
			})
		},
	}
	cmd.Flags().StringVar(&baselineStudy, "baseline", "", "baseline study id")
	cmd.Flags().StringVar(&comparisonStudy, "comparison", "", "comparison study id (defaults to baseline)")
	_ = cmd.MarkFlagRequired("baseline")
	base.register(cmd, "baseline-")
	comp.register(cmd, "comparison-")
	return cmd
}

func renderComparison(c *analytics.Comparison) {
	t := newTable(table.Row{"Metric", "Baseline", "Comparison", "Difference", "Change %"})
	rows := []struct {
		name       string
		baseline   *float64
		comparison *float64
		diff       *float64
		pct        *float64
	}{
		{"Task Success Rate", c.Baseline.Metrics.TaskSuccessRate.Mean, c.Comparison.Metrics.TaskSuccessRate.Mean, c.Difference.TaskSuccessRate, c.PercentageChange.TaskSuccessRate},
		{"Time on Task", c.Baseline.Metrics.TimeOnTask.Median, c.Comparison.Metrics.TimeOnTask.Median, c.Difference.TimeOnTask, c.PercentageChange.TimeOnTask},
		{"Task Efficiency", c.Baseline.Metrics.TaskEfficiency.Mean, c.Comparison.Metrics.TaskEfficiency.Mean, c.Difference.TaskEfficiency, c.PercentageChange.TaskEfficiency},
		{"Error Rate", c.Baseline.Metrics.ErrorRate.Mean, c.Comparison.Metrics.ErrorRate.Mean, c.Difference.ErrorRate, c.PercentageChange.ErrorRate},
		{"SEQ", c.Baseline.Metrics.SEQ.Mean, c.Comparison.Metrics.SEQ.Mean, c.Difference.SEQ, c.PercentageChange.SEQ},
	}
	for _, r := range rows {
		t.AppendRow(table.Row{r.name, fmtStat(r.baseline), fmtStat(r.comparison), fmtStat(r.diff), fmtStat(r.pct)})
	}
	t.Render()
}
