// Package analytics is the read-only compute path that turns captured
// assessment responses into study-level summary statistics and comparisons.
// It never writes; all data arrives through the Source contract.
package analytics

import (
	"context"

	"go.uber.org/zap"

	"uxmetrics/internal/models"
)

// Source is the narrow data contract the analytics layer consumes. The
// repository Store satisfies it.
type Source interface {
	SessionsForStudy(ctx context.Context, studyID string) ([]models.Session, error)
	ResponsesForSession(ctx context.Context, sessionID string) ([]models.AssessmentResponse, error)
	// TypeByKind returns nil (no error) when the instrument is not defined.
	TypeByKind(ctx context.Context, kind models.AssessmentKind) (*models.AssessmentType, error)
}

// Service computes aggregated metrics over a Source.
type Service struct {
	src Source
	log *zap.Logger
}

func NewService(src Source, log *zap.Logger) *Service {
	return &Service{src: src, log: log.With(zap.String("component", "analytics"))}
}
