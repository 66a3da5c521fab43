// Package exchange moves the full workspace dataset in and out as a
// versioned JSON archive.
package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"uxmetrics/internal/models"
)

const FormatVersion = "1"

// Archive is the full-dataset export document.
type Archive struct {
	Version    string                      `json:"version"`
	ExportedAt time.Time                   `json:"exportedAt"`
	Studies    []models.Study              `json:"studies"`
	People     []models.Person             `json:"people"`
	Sessions   []models.Session            `json:"sessions"`
	Responses  []models.AssessmentResponse `json:"responses"`
}

// ImportStats counts what an import touched.
type ImportStats struct {
	Studies   int `json:"studies"`
	People    int `json:"people"`
	Sessions  int `json:"sessions"`
	Responses int `json:"responses"`
	Skipped   int `json:"skipped"`
}

// Export snapshots every entity in the workspace.
func Export(ctx context.Context, db *gorm.DB) (*Archive, error) {
	archive := &Archive{
		Version:    FormatVersion,
		ExportedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Order("created_at").Find(&archive.Studies).Error; err != nil {
		return nil, fmt.Errorf("export studies: %w", err)
	}
	if err := db.WithContext(ctx).Order("created_at").Find(&archive.People).Error; err != nil {
		return nil, fmt.Errorf("export people: %w", err)
	}
	if err := db.WithContext(ctx).Order("created_at").Find(&archive.Sessions).Error; err != nil {
		return nil, fmt.Errorf("export sessions: %w", err)
	}
	if err := db.WithContext(ctx).Order("created_at").Find(&archive.Responses).Error; err != nil {
		return nil, fmt.Errorf("export responses: %w", err)
	}
	return archive, nil
}

// Write serializes an archive as indented JSON.
func Write(w io.Writer, archive *Archive) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(archive)
}

// Read parses an archive and checks the format version.
func Read(r io.Reader) (*Archive, error) {
	var archive Archive
	if err := json.NewDecoder(r).Decode(&archive); err != nil {
		return nil, fmt.Errorf("failed to parse archive: %w", err)
	}
	if archive.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported archive version %q", archive.Version)
	}
	return &archive, nil
}

// Import adds the archive's entities to the workspace. Entities whose ID
// already exists are skipped, so importing the same archive twice is safe.
func Import(ctx context.Context, db *gorm.DB, archive *Archive, log *zap.Logger) (*ImportStats, error) {
	stats := &ImportStats{}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range archive.Studies {
			created, err := insertIfAbsent(tx, &models.Study{}, archive.Studies[i].ID, &archive.Studies[i])
			if err != nil {
				return err
			}
			if created {
				stats.Studies++
			} else {
				stats.Skipped++
			}
		}
		for i := range archive.People {
			created, err := insertIfAbsent(tx, &models.Person{}, archive.People[i].ID, &archive.People[i])
			if err != nil {
				return err
			}
			if created {
				stats.People++
			} else {
				stats.Skipped++
			}
		}
		for i := range archive.Sessions {
			created, err := insertIfAbsent(tx, &models.Session{}, archive.Sessions[i].ID, &archive.Sessions[i])
			if err != nil {
				return err
			}
			if created {
				stats.Sessions++
			} else {
				stats.Skipped++
			}
		}
		for i := range archive.Responses {
			created, err := insertIfAbsent(tx, &models.AssessmentResponse{}, archive.Responses[i].ID, &archive.Responses[i])
			if err != nil {
				return err
			}
			if created {
				stats.Responses++
			} else {
				stats.Skipped++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Archive imported",
		zap.Int("studies", stats.Studies),
		zap.Int("people", stats.People),
		zap.Int("sessions", stats.Sessions),
		zap.Int("responses", stats.Responses),
		zap.Int("skipped", stats.Skipped),
	)
	return stats, nil
}

func insertIfAbsent(tx *gorm.DB, model any, id string, row any) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	return true, tx.Create(row).Error
}
