package models

import (
	"time"

	"gorm.io/datatypes"
)

// AssessmentResponse is one instrument administration for one task within a
// session. RawAnswers holds the instrument's question answers as captured;
// Metrics holds pre-computed numeric values keyed by the kind's canonical
// metric key and, when present, takes precedence over deriving a value from
// RawAnswers.
type AssessmentResponse struct {
	ID               string            `gorm:"primaryKey" json:"id"`
	SessionID        string            `gorm:"not null;index" json:"sessionId"`
	Session          *Session          `gorm:"foreignKey:SessionID" json:"-"`
	AssessmentTypeID string            `gorm:"not null;index" json:"assessmentTypeId"`
	AssessmentType   *AssessmentType   `gorm:"foreignKey:AssessmentTypeID" json:"-"`
	TaskDescription  string            `gorm:"not null" json:"taskDescription"`
	RawAnswers       datatypes.JSONMap `json:"rawAnswers,omitempty"`
	Metrics          datatypes.JSONMap `json:"metrics,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
}
