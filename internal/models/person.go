package models

import "time"

// PersonRole describes how a person takes part in sessions.
type PersonRole string

const (
	RoleParticipant PersonRole = "participant"
	RoleFacilitator PersonRole = "facilitator"
	RoleObserver    PersonRole = "observer"
)

// Valid reports whether r is a known role.
func (r PersonRole) Valid() bool {
	switch r {
	case RoleParticipant, RoleFacilitator, RoleObserver:
		return true
	}
	return false
}

// Person is anyone referenced by a session. Deletion is blocked while any
// session still references the person.
type Person struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Role      PersonRole `gorm:"not null;index" json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
}
