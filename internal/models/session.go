package models

import (
	"time"

	"gorm.io/datatypes"
)

// SessionStatus is the lifecycle state of an evaluation session.
type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
)

// Session is one sitting of one participant under a study.
// Invariant: CompletedAt is set iff Status == SessionCompleted.
type Session struct {
	ID            string                      `gorm:"primaryKey" json:"id"`
	StudyID       string                      `gorm:"not null;index" json:"studyId"`
	Study         *Study                      `gorm:"foreignKey:StudyID" json:"-"`
	ParticipantID string                      `gorm:"not null;index" json:"participantId"`
	Participant   *Person                     `gorm:"foreignKey:ParticipantID" json:"-"`
	FacilitatorID string                      `gorm:"not null" json:"facilitatorId"`
	Facilitator   *Person                     `gorm:"foreignKey:FacilitatorID" json:"-"`
	ObserverIDs   datatypes.JSONSlice[string] `json:"observerIds,omitempty"`
	Status        SessionStatus               `gorm:"not null;default:in_progress" json:"status"`
	CreatedAt     time.Time                   `gorm:"index" json:"createdAt"`
	CompletedAt   *time.Time                  `json:"completedAt,omitempty"`
}
