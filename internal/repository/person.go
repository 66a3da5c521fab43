package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"uxmetrics/internal/models"
)

type PersonRepo interface {
	Create(ctx context.Context, person *models.Person) error
	GetByID(ctx context.Context, id string) (*models.Person, error)
	List(ctx context.Context, role models.PersonRole) ([]models.Person, error)
	Delete(ctx context.Context, id string) error
}

type personRepo struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewPersonRepo(db *gorm.DB, log *zap.Logger) PersonRepo {
	return &personRepo{db: db, log: log.With(zap.String("repo", "person"))}
}

func (r *personRepo) Create(ctx context.Context, person *models.Person) error {
	if !person.Role.Valid() {
		return ErrInvalidRole
	}
	if person.ID == "" {
		id, err := generateID(ctx, r.db, &models.Person{})
		if err != nil {
			return err
		}
		person.ID = id
	}
	return r.db.WithContext(ctx).Create(person).Error
}

func (r *personRepo) GetByID(ctx context.Context, id string) (*models.Person, error) {
	var person models.Person
	err := r.db.WithContext(ctx).First(&person, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// List returns people, optionally narrowed to one role.
func (r *personRepo) List(ctx context.Context, role models.PersonRole) ([]models.Person, error) {
	var people []models.Person
	q := r.db.WithContext(ctx).Order("name")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if err := q.Find(&people).Error; err != nil {
		return nil, err
	}
	return people, nil
}

// Delete removes a person unless a session still references them as
// participant, facilitator, or observer.
func (r *personRepo) Delete(ctx context.Context, id string) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Session{}).
		Where("participant_id = ? OR facilitator_id = ? OR observer_ids LIKE ?", id, id, `%"`+id+`"%`).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrPersonReferenced
	}

	res := r.db.WithContext(ctx).Delete(&models.Person{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	r.log.Info("Person deleted", zap.String("id", id))
	return nil
}
