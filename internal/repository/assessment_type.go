package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"uxmetrics/internal/models"
)

type AssessmentTypeRepo interface {
	ByKind(ctx context.Context, kind models.AssessmentKind) (*models.AssessmentType, error)
	List(ctx context.Context) ([]models.AssessmentType, error)
}

type assessmentTypeRepo struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAssessmentTypeRepo(db *gorm.DB, log *zap.Logger) AssessmentTypeRepo {
	return &assessmentTypeRepo{db: db, log: log.With(zap.String("repo", "assessment_type"))}
}

func (r *assessmentTypeRepo) ByKind(ctx context.Context, kind models.AssessmentKind) (*models.AssessmentType, error) {
	var at models.AssessmentType
	err := r.db.WithContext(ctx).First(&at, "kind = ?", kind).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &at, nil
}

func (r *assessmentTypeRepo) List(ctx context.Context) ([]models.AssessmentType, error) {
	var types []models.AssessmentType
	if err := r.db.WithContext(ctx).Order("kind").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}
