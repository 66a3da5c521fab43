package analytics

import "context"

// MetricSet describes one side of a comparison: a study plus optional
// filters. Comparing one study against itself with two date ranges is the
// over-time case.
type MetricSet struct {
	StudyID string  `json:"studyId"`
	Filters Filters `json:"filters"`
}

// Deltas carries one derived value per instrument kind. A nil entry means
// the sides are not comparable for that kind.
type Deltas struct {
	TaskSuccessRate *float64 `json:"taskSuccessRate"`
	TimeOnTask      *float64 `json:"timeOnTask"`
	TaskEfficiency  *float64 `json:"taskEfficiency"`
	ErrorRate       *float64 `json:"errorRate"`
	SEQ             *float64 `json:"seq"`
}

// Comparison exposes both raw aggregated sets and the derived deltas, so a
// caller renders all three without recomputation.
type Comparison struct {
	Baseline         AggregatedMetrics `json:"baseline"`
	Comparison       AggregatedMetrics `json:"comparison"`
	Difference       Deltas            `json:"difference"`
	PercentageChange Deltas            `json:"percentageChange"`
}

// Compare assembles both metric sets and derives per-kind differences and
// percentage changes. Time on task compares each side's median; the other
// kinds compare means.
func (s *Service) Compare(ctx context.Context, baseline, comparison MetricSet) (*Comparison, error) {
	base, err := s.StudyMetrics(ctx, baseline.StudyID, baseline.Filters)
	if err != nil {
		return nil, err
	}
	comp, err := s.StudyMetrics(ctx, comparison.StudyID, comparison.Filters)
	if err != nil {
		return nil, err
	}

	result := &Comparison{Baseline: *base, Comparison: *comp}

	pairs := []struct {
		baseline   *float64
		comparison *float64
		diff       **float64
		pct        **float64
	}{
		{base.Metrics.TaskSuccessRate.Mean, comp.Metrics.TaskSuccessRate.Mean,
			&result.Difference.TaskSuccessRate, &result.PercentageChange.TaskSuccessRate},
		{base.Metrics.TimeOnTask.Median, comp.Metrics.TimeOnTask.Median,
			&result.Difference.TimeOnTask, &result.PercentageChange.TimeOnTask},
		{base.Metrics.TaskEfficiency.Mean, comp.Metrics.TaskEfficiency.Mean,
			&result.Difference.TaskEfficiency, &result.PercentageChange.TaskEfficiency},
		{base.Metrics.ErrorRate.Mean, comp.Metrics.ErrorRate.Mean,
			&result.Difference.ErrorRate, &result.PercentageChange.ErrorRate},
		{base.Metrics.SEQ.Mean, comp.Metrics.SEQ.Mean,
			&result.Difference.SEQ, &result.PercentageChange.SEQ},
	}
	for _, p := range pairs {
		*p.diff = difference(p.baseline, p.comparison)
		*p.pct = percentageChange(p.baseline, p.comparison)
	}

	return result, nil
}

// difference is comparison - baseline, nil when either side has no data.
func difference(baseline, comparison *float64) *float64 {
	if baseline == nil || comparison == nil {
		return nil
	}
	d := *comparison - *baseline
	return &d
}

// percentageChange is ((comparison - baseline) / baseline) * 100. A zero
// baseline never divides: against a zero comparison the change is 0,
// against anything else the sides are not comparable.
func percentageChange(baseline, comparison *float64) *float64 {
	if baseline == nil || comparison == nil {
		return nil
	}
	if *baseline == 0 {
		if *comparison == 0 {
			zero := 0.0
			return &zero
		}
		return nil
	}
	pct := (*comparison - *baseline) / *baseline * 100
	return &pct
}
