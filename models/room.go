package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

type Room struct {
	RoomId           uint          `json:"id" gorm:"primaryKey"`
	Number           string        `gorm:"unique;not null" json:"number"`
	Type             string        `json:"type"`
	Capacity         int           `gorm:"not null" json:"capacity"`
	AssignedTo       pq.Int64Array `gorm:"type:integer[]" json:"assignedTo"`
	CurrentOccupancy int           `gorm:"default:0" json:"currentOccupancy"`
	IsOccupied       bool          `gorm:"default:false" json:"isOccupied"`
	CreatedAt        time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) ValidateCapacity() error {
	if r.Capacity <= 0 {
		return fmt.Errorf("invalid capacity: %d, must be positive", r.Capacity)
	}
	return nil
}

// HasOccupant reports whether the user already sits in the occupant set.
func (r *Room) HasOccupant(userID uint) bool {
	for _, id := range r.AssignedTo {
		if uint(id) == userID {
			return true
		}
	}
	return false
}

func (r *Room) AddOccupant(userID uint) {
	if !r.HasOccupant(userID) {
		r.AssignedTo = append(r.AssignedTo, int64(userID))
	}
}

func (r *Room) RemoveOccupant(userID uint) {
	kept := r.AssignedTo[:0]
	for _, id := range r.AssignedTo {
		if uint(id) != userID {
			kept = append(kept, id)
		}
	}
	r.AssignedTo = kept
}
