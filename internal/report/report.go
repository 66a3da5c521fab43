// Package report renders a study's aggregated metrics as a flat, versioned,
// human-readable JSON document intended for file download.
package report

import (
	"encoding/json"
	"io"
	"time"

	"uxmetrics/internal/analytics"
	"uxmetrics/internal/models"
)

// FormatVersion is carried as a plain string field; nothing enforces it
// beyond readers knowing what they support.
const FormatVersion = "1"

// StudyInfo is the study metadata embedded in a report.
type StudyInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ProductID string `json:"productId"`
	FeatureID string `json:"featureId,omitempty"`
	Archived  bool   `json:"archived"`
}

// Document is the exported report.
type Document struct {
	Version     string                      `json:"version"`
	GeneratedAt time.Time                   `json:"generatedAt"`
	Study       StudyInfo                   `json:"study"`
	Filters     analytics.Filters           `json:"filters"`
	Commentary  string                      `json:"commentary,omitempty"`
	Metrics     analytics.AggregatedMetrics `json:"metrics"`
}

// Build assembles a report document from a study and its computed metrics.
func Build(study *models.Study, metrics *analytics.AggregatedMetrics, filters analytics.Filters, commentary string) *Document {
	return &Document{
		Version:     FormatVersion,
		GeneratedAt: time.Now().UTC(),
		Study: StudyInfo{
			ID:        study.ID,
			Name:      study.Name,
			ProductID: study.ProductID,
			FeatureID: study.FeatureID,
			Archived:  study.Archived,
		},
		Filters:    filters,
		Commentary: commentary,
		Metrics:    *metrics,
	}
}

// Write serializes the document as indented JSON.
func Write(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
