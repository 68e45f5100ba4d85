package models

import "time"

// Maintenance ticket statuses. The UI walks them forward only; the
// server stores whatever status it is told (overwrite semantics).
const (
	MaintenanceStatusPending    = "Pending"
	MaintenanceStatusInProgress = "In Progress"
	MaintenanceStatusResolved   = "Resolved"
)

type Maintenance struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Title           string     `gorm:"not null" json:"title"`
	Description     string     `gorm:"type:text;not null" json:"description"`
	Status          string     `gorm:"default:'Pending'" json:"status"`
	RequestedBy     uint       `gorm:"index;not null" json:"requestedBy"`
	Requester       *User      `json:"requester,omitempty" gorm:"foreignKey:RequestedBy"`
	RoomID          *uint      `json:"roomId"`
	Room            *Room      `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	AssignedTo      *uint      `json:"assignedTo"`
	Assignee        *User      `json:"assignee,omitempty" gorm:"foreignKey:AssignedTo"`
	ResolutionNotes string     `gorm:"type:text" json:"resolutionNotes"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty"`
}

func ValidMaintenanceStatus(status string) bool {
	switch status {
	case MaintenanceStatusPending, MaintenanceStatusInProgress, MaintenanceStatusResolved:
		return true
	}
	return false
}
