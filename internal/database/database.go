package database

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"uxmetrics/internal/logging"
	"uxmetrics/internal/models"
)

// Open connects to the workspace SQLite database and runs migrations.
func Open(path string, log *zap.Logger) (*gorm.DB, error) {
	gormLogger := logging.NewGormZapLogger(log)
	gormLogger.LogLevel = gormlogger.Warn

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	// Single-user tool; one connection keeps SQLite happy.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := migrate(db, log); err != nil {
		return nil, err
	}

	return db, nil
}

func migrate(db *gorm.DB, log *zap.Logger) error {
	err := db.AutoMigrate(
		&models.Study{},
		&models.Person{},
		&models.Session{},
		&models.AssessmentType{},
		&models.AssessmentResponse{},
	)
	if err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	log.Debug("Database migrations completed")
	return nil
}

// SeedAssessmentTypes upserts the fixed instrument rows from the
// definitions file. Existing rows keep their IDs so responses stay linked;
// names, keys, and ranges refresh from the file.
func SeedAssessmentTypes(db *gorm.DB, set *models.InstrumentSet, log *zap.Logger) error {
	for _, def := range set.Instruments {
		kind := models.AssessmentKind(def.Kind)

		var existing models.AssessmentType
		err := db.Where("kind = ?", kind).First(&existing).Error
		switch {
		case err == nil:
			existing.Name = def.Name
			existing.Description = def.Description
			existing.MetricKey = def.MetricKey
			existing.Unit = def.Unit
			existing.RangeMin = def.Min
			existing.RangeMax = def.Max
			if err := db.Save(&existing).Error; err != nil {
				return fmt.Errorf("failed to update assessment type %s: %w", kind, err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			at := models.AssessmentType{
				ID:          uuid.NewString(),
				Kind:        kind,
				Name:        def.Name,
				Description: def.Description,
				MetricKey:   def.MetricKey,
				Unit:        def.Unit,
				RangeMin:    def.Min,
				RangeMax:    def.Max,
			}
			if err := db.Create(&at).Error; err != nil {
				return fmt.Errorf("failed to create assessment type %s: %w", kind, err)
			}
			log.Debug("Seeded assessment type", zap.String("kind", string(kind)))
		default:
			return err
		}
	}
	return nil
}
