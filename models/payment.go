package models

import "time"

const (
	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
	PaymentStatusFailed    = "Failed"
)

const (
	PaymentCategoryRoomRent        = "Room Rent"
	PaymentCategoryFood            = "Food"
	PaymentCategoryElectricity     = "Electricity"
	PaymentCategoryPreviousBalance = "Previous Balance"
	PaymentCategoryOthers          = "Others"
)

type Payment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ResidentID uint      `gorm:"index;not null" json:"residentId"`
	Resident   *User     `json:"resident,omitempty" gorm:"foreignKey:ResidentID"`
	Category   string    `gorm:"not null" json:"category"`
	Amount     float64   `json:"amount"`
	Status     string    `gorm:"default:'Pending'" json:"status"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func ValidPaymentStatus(status string) bool {
	switch status {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

func ValidPaymentCategory(category string) bool {
	switch category {
	case PaymentCategoryRoomRent, PaymentCategoryFood, PaymentCategoryElectricity,
		PaymentCategoryPreviousBalance, PaymentCategoryOthers:
		return true
	}
	return false
}
