package models

import "time"

// Study is the top-level container a research team runs sessions under.
type Study struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	ProductID string    `gorm:"not null;index" json:"productId"`
	FeatureID string    `json:"featureId,omitempty"`
	Archived  bool      `gorm:"not null;default:false" json:"archived"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
