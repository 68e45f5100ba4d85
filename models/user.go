package models

import (
	"time"
)

// Role values carried in the JWT and checked by the auth middleware.
const (
	RoleResident = 0
	RoleAdmin    = 1
	RoleStaff    = 2
)

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name           string    `gorm:"not null" json:"name"`
	Email          string    `gorm:"unique;not null" json:"email"`
	Password       string    `json:"-"`
	PhoneNumber    string    `gorm:"type:varchar(15)" json:"phoneNumber"`
	Role           int       `gorm:"default:0" json:"role"`
	IsVerified     bool      `gorm:"default:false" json:"isVerified"`
	Avatar         string    `json:"avatar"`
	RoomPreference string    `json:"roomPreference"`
	AssignedRoomID *uint     `json:"assignedRoomId"`
	AssignedRoom   *Room     `gorm:"foreignKey:AssignedRoomID" json:"assignedRoom,omitempty"`
	CheckedIn      bool      `gorm:"default:false" json:"checkedIn"`
}
