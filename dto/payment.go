package dto

import "time"

type PaymentInput struct {
	ResidentID uint      `json:"residentId"`
	Category   string    `json:"category"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	Date       time.Time `json:"date"`
}

type CheckoutInput struct {
	PaymentID   uint   `json:"paymentId" binding:"required"`
	Description string `json:"description"`
}

type CheckoutCompleteInput struct {
	PaymentID uint `json:"paymentId" binding:"required"`
}
