package analytics

import (
	"context"
	"time"

	"go.uber.org/zap"

	"uxmetrics/internal/models"
)

// MeanMetric is the aggregate for a mean-based instrument. Count is never
// absent; only the statistic may be.
type MeanMetric struct {
	Mean  *float64 `json:"mean"`
	Count int      `json:"count"`
}

// DurationMetric is the time-on-task aggregate. The median is the
// designated statistic (durations are outlier-heavy); the mean rides along
// for display.
type DurationMetric struct {
	Median *float64 `json:"median"`
	Mean   *float64 `json:"mean"`
	Count  int      `json:"count"`
}

// MetricSummaries holds one aggregate per instrument kind.
type MetricSummaries struct {
	TaskSuccessRate MeanMetric     `json:"taskSuccessRate"`
	TimeOnTask      DurationMetric `json:"timeOnTask"`
	TaskEfficiency  MeanMetric     `json:"taskEfficiency"`
	ErrorRate       MeanMetric     `json:"errorRate"`
	SEQ             MeanMetric     `json:"seq"`
}

// DateRange covers the creation timestamps of the surviving sessions. Both
// endpoints are unset when no session survives.
type DateRange struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

// AggregatedMetrics is the study-level summary the assembler produces.
type AggregatedMetrics struct {
	StudyID          string          `json:"studyId"`
	SessionCount     int             `json:"sessionCount"`
	ParticipantCount int             `json:"participantCount"`
	DateRange        DateRange       `json:"dateRange"`
	Metrics          MetricSummaries `json:"metrics"`
}

// StudyMetrics resolves the study's sessions, applies the filters, and
// aggregates every instrument kind. An unknown study degrades to zero
// counts and nil statistics; it is not an error. The call is idempotent and
// side-effect free.
func (s *Service) StudyMetrics(ctx context.Context, studyID string, filters Filters) (*AggregatedMetrics, error) {
	sessions, err := s.src.SessionsForStudy(ctx, studyID)
	if err != nil {
		return nil, err
	}
	sessions = filters.Sessions(sessions)

	var responses []models.AssessmentResponse
	for _, sess := range sessions {
		rs, err := s.src.ResponsesForSession(ctx, sess.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, rs...)
	}
	responses = filters.Responses(responses)

	agg := &AggregatedMetrics{
		StudyID:      studyID,
		SessionCount: len(sessions),
	}

	participants := make(map[string]struct{})
	for _, sess := range sessions {
		participants[sess.ParticipantID] = struct{}{}
		created := sess.CreatedAt
		if agg.DateRange.Start == nil || created.Before(*agg.DateRange.Start) {
			agg.DateRange.Start = &created
		}
		if agg.DateRange.End == nil || created.After(*agg.DateRange.End) {
			agg.DateRange.End = &created
		}
	}
	agg.ParticipantCount = len(participants)

	byType := make(map[string][]models.AssessmentResponse)
	for _, resp := range responses {
		byType[resp.AssessmentTypeID] = append(byType[resp.AssessmentTypeID], resp)
	}

	for _, kind := range models.AllKinds() {
		at, err := s.src.TypeByKind(ctx, kind)
		if err != nil {
			return nil, err
		}
		var values []float64
		if at != nil {
			values = ExtractValues(byType[at.ID], kind)
		}

		switch kind {
		case models.KindTaskSuccessRate:
			agg.Metrics.TaskSuccessRate = MeanMetric{Mean: Mean(values), Count: len(values)}
		case models.KindTimeOnTask:
			agg.Metrics.TimeOnTask = DurationMetric{Median: Median(values), Mean: Mean(values), Count: len(values)}
		case models.KindTaskEfficiency:
			agg.Metrics.TaskEfficiency = MeanMetric{Mean: Mean(values), Count: len(values)}
		case models.KindErrorRate:
			agg.Metrics.ErrorRate = MeanMetric{Mean: Mean(values), Count: len(values)}
		case models.KindSEQ:
			agg.Metrics.SEQ = MeanMetric{Mean: Mean(values), Count: len(values)}
		}
	}

	s.log.Debug("Assembled study metrics",
		zap.String("study", studyID),
		zap.Int("sessions", agg.SessionCount),
		zap.Int("responses", len(responses)),
	)
	return agg, nil
}
