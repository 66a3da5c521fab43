package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"uxmetrics/internal/models"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrInvalidRole      = errors.New("invalid person role")
	ErrPersonReferenced = errors.New("person is referenced by one or more sessions")
	ErrDuplicateSEQTask = errors.New("a SEQ rating for this task already exists in the session")
	ErrValueOutOfRange  = errors.New("value outside the instrument's valid range")
	ErrUnknownKind      = errors.New("unknown assessment kind")
)

// Store bundles the per-entity repositories over one database handle. It
// also satisfies the analytics Source contract, so the read/compute path
// consumes it directly.
type Store struct {
	db *gorm.DB

	Studies   StudyRepo
	People    PersonRepo
	Sessions  SessionRepo
	Responses ResponseRepo
	Types     AssessmentTypeRepo
}

// New wires the repositories with a shared database handle and logger.
func New(db *gorm.DB, log *zap.Logger) *Store {
	return &Store{
		db:        db,
		Studies:   NewStudyRepo(db, log),
		People:    NewPersonRepo(db, log),
		Sessions:  NewSessionRepo(db, log),
		Responses: NewResponseRepo(db, log),
		Types:     NewAssessmentTypeRepo(db, log),
	}
}

// SessionsForStudy returns every session recorded under the study.
func (s *Store) SessionsForStudy(ctx context.Context, studyID string) ([]models.Session, error) {
	return s.Sessions.ListByStudy(ctx, studyID)
}

// ResponsesForSession returns every assessment response captured in the session.
func (s *Store) ResponsesForSession(ctx context.Context, sessionID string) ([]models.AssessmentResponse, error) {
	return s.Responses.ListBySession(ctx, sessionID)
}

// TypeByKind resolves an instrument by kind. A missing instrument is not an
// error; callers see nil and treat the kind as having no data.
func (s *Store) TypeByKind(ctx context.Context, kind models.AssessmentKind) (*models.AssessmentType, error) {
	at, err := s.Types.ByKind(ctx, kind)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return at, err
}

// generateID returns a fresh UUID confirmed unused as a primary key for the
// given model.
func generateID(ctx context.Context, db *gorm.DB, model any) (string, error) {
	for i := 0; i < 5; i++ {
		id := uuid.NewString()
		var count int64
		if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return id, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique id")
}
