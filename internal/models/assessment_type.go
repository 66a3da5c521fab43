package models

import "time"

// AssessmentType is one of the five fixed instruments. Rows are seeded from
// the instruments definition file at migration time; Kind is unique.
type AssessmentType struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	Kind        AssessmentKind `gorm:"not null;uniqueIndex" json:"kind"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description,omitempty"`
	MetricKey   string         `gorm:"not null" json:"metricKey"`
	Unit        string         `json:"unit,omitempty"`
	RangeMin    *float64       `json:"rangeMin,omitempty"`
	RangeMax    *float64       `json:"rangeMax,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// InRange reports whether v falls inside the instrument's valid numeric
// range. An unset bound does not constrain.
func (t *AssessmentType) InRange(v float64) bool {
	if t.RangeMin != nil && v < *t.RangeMin {
		return false
	}
	if t.RangeMax != nil && v > *t.RangeMax {
		return false
	}
	return true
}
