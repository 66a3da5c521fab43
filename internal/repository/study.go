package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"uxmetrics/internal/models"
)

type StudyRepo interface {
	Create(ctx context.Context, study *models.Study) error
	GetByID(ctx context.Context, id string) (*models.Study, error)
	List(ctx context.Context, includeArchived bool) ([]models.Study, error)
	Update(ctx context.Context, study *models.Study) error
	SetArchived(ctx context.Context, id string, archived bool) error
}

type studyRepo struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewStudyRepo(db *gorm.DB, log *zap.Logger) StudyRepo {
	return &studyRepo{db: db, log: log.With(zap.String("repo", "study"))}
}

// Create persists a new study, assigning an ID when none is set.
func (r *studyRepo) Create(ctx context.Context, study *models.Study) error {
	if study.ID == "" {
		id, err := generateID(ctx, r.db, &models.Study{})
		if err != nil {
			return err
		}
		study.ID = id
	}
	if err := r.db.WithContext(ctx).Create(study).Error; err != nil {
		return err
	}
	r.log.Info("Study created", zap.String("id", study.ID), zap.String("name", study.Name))
	return nil
}

func (r *studyRepo) GetByID(ctx context.Context, id string) (*models.Study, error) {
	var study models.Study
	err := r.db.WithContext(ctx).First(&study, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &study, nil
}

func (r *studyRepo) List(ctx context.Context, includeArchived bool) ([]models.Study, error) {
	var studies []models.Study
	q := r.db.WithContext(ctx).Order("created_at")
	if !includeArchived {
		q = q.Where("archived = ?", false)
	}
	if err := q.Find(&studies).Error; err != nil {
		return nil, err
	}
	return studies, nil
}

func (r *studyRepo) Update(ctx context.Context, study *models.Study) error {
	res := r.db.WithContext(ctx).Model(&models.Study{}).Where("id = ?", study.ID).Updates(map[string]interface{}{
		"name":       study.Name,
		"product_id": study.ProductID,
		"feature_id": study.FeatureID,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *studyRepo) SetArchived(ctx context.Context, id string, archived bool) error {
	res := r.db.WithContext(ctx).Model(&models.Study{}).Where("id = ?", id).Update("archived", archived)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
