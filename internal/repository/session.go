package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"uxmetrics/internal/models"
)

type SessionRepo interface {
	Start(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	ListByStudy(ctx context.Context, studyID string) ([]models.Session, error)
	Complete(ctx context.Context, id string, at time.Time) error
}

type sessionRepo struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSessionRepo(db *gorm.DB, log *zap.Logger) SessionRepo {
	return &sessionRepo{db: db, log: log.With(zap.String("repo", "session"))}
}

// Start persists a new in-progress session after checking its references.
func (r *sessionRepo) Start(ctx context.Context, session *models.Session) error {
	var studyCount int64
	if err := r.db.WithContext(ctx).Model(&models.Study{}).Where("id = ?", session.StudyID).Count(&studyCount).Error; err != nil {
		return err
	}
	if studyCount == 0 {
		return ErrNotFound
	}

	for _, personID := range append([]string{session.ParticipantID, session.FacilitatorID}, session.ObserverIDs...) {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Person{}).Where("id = ?", personID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
	}

	if session.ID == "" {
		id, err := generateID(ctx, r.db, &models.Session{})
		if err != nil {
			return err
		}
		session.ID = id
	}
	session.Status = models.SessionInProgress
	session.CompletedAt = nil

	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return err
	}
	r.log.Info("Session started",
		zap.String("id", session.ID),
		zap.String("study", session.StudyID),
		zap.String("participant", session.ParticipantID),
	)
	return nil
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) ListByStudy(ctx context.Context, studyID string) ([]models.Session, error) {
	var sessions []models.Session
	err := r.db.WithContext(ctx).
		Where("study_id = ?", studyID).
		Order("created_at").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// Complete stamps the completion time and flips the status in one update,
// keeping the "completed iff stamped" invariant.
func (r *sessionRepo) Complete(ctx context.Context, id string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&models.Session{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":       models.SessionCompleted,
		"completed_at": at,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
