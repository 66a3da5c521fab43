package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"uxmetrics/internal/models"
)

type ResponseRepo interface {
	Record(ctx context.Context, response *models.AssessmentResponse) error
	ListBySession(ctx context.Context, sessionID string) ([]models.AssessmentResponse, error)
}

type responseRepo struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewResponseRepo(db *gorm.DB, log *zap.Logger) ResponseRepo {
	return &responseRepo{db: db, log: log.With(zap.String("repo", "response"))}
}

// Record persists one instrument administration. The task description is
// trimmed before storage. SEQ responses are range-checked against the
// instrument and limited to one per task per session, keyed on the
// lowercased task description.
func (r *responseRepo) Record(ctx context.Context, response *models.AssessmentResponse) error {
	var sessionCount int64
	if err := r.db.WithContext(ctx).Model(&models.Session{}).Where("id = ?", response.SessionID).Count(&sessionCount).Error; err != nil {
		return err
	}
	if sessionCount == 0 {
		return ErrNotFound
	}

	var at models.AssessmentType
	err := r.db.WithContext(ctx).First(&at, "id = ?", response.AssessmentTypeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUnknownKind
	}
	if err != nil {
		return err
	}

	response.TaskDescription = strings.TrimSpace(response.TaskDescription)

	if at.Kind == models.KindSEQ {
		if err := r.checkSEQ(ctx, response, &at); err != nil {
			return err
		}
	}

	if response.ID == "" {
		id, err := generateID(ctx, r.db, &models.AssessmentResponse{})
		if err != nil {
			return err
		}
		response.ID = id
	}

	if err := r.db.WithContext(ctx).Create(response).Error; err != nil {
		return err
	}
	r.log.Info("Response recorded",
		zap.String("id", response.ID),
		zap.String("session", response.SessionID),
		zap.String("kind", string(at.Kind)),
	)
	return nil
}

// checkSEQ enforces the 1-7 range and the one-rating-per-task rule. The
// uniqueness key is exact lowercase equality of the trimmed description;
// near-duplicates are distinct tasks on purpose.
func (r *responseRepo) checkSEQ(ctx context.Context, response *models.AssessmentResponse, at *models.AssessmentType) error {
	if v, ok := numericField(response.Metrics, at.MetricKey); ok && !at.InRange(v) {
		return ErrValueOutOfRange
	}
	if v, ok := numericField(response.RawAnswers, "rating"); ok && !at.InRange(v) {
		return ErrValueOutOfRange
	}

	// Lowercasing happens in Go: sqlite's LOWER() folds ASCII only and
	// would let non-ASCII duplicates through.
	task := strings.ToLower(response.TaskDescription)
	var existing []string
	err := r.db.WithContext(ctx).Model(&models.AssessmentResponse{}).
		Where("session_id = ? AND assessment_type_id = ?", response.SessionID, response.AssessmentTypeID).
		Pluck("task_description", &existing).Error
	if err != nil {
		return err
	}
	for _, t := range existing {
		if strings.ToLower(t) == task {
			return ErrDuplicateSEQTask
		}
	}
	return nil
}

func (r *responseRepo) ListBySession(ctx context.Context, sessionID string) ([]models.AssessmentResponse, error) {
	var responses []models.AssessmentResponse
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at").
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// numericField coerces a JSON map entry to float64. Database scans hand
// back json.Number, JSON round-trips float64; direct assignment may carry
// ints.
func numericField(m map[string]interface{}, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
