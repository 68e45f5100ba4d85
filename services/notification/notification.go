package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

type RoomAssignedMessage struct {
	userName   string
	roomNumber string
	roomType   string
}

func NewRoomAssignedMessage(userName, roomNumber, roomType string) *RoomAssignedMessage {
	return &RoomAssignedMessage{
		userName:   userName,
		roomNumber: roomNumber,
		roomType:   roomType,
	}
}

func (b *RoomAssignedMessage) Build() string {
	return fmt.Sprintf("Hi %s, you have been assigned Room %s (%s).", b.userName, b.roomNumber, b.roomType)
}

type PaymentCompletedMessage struct {
	category string
	amount   float64
}

func NewPaymentCompletedMessage(category string, amount float64) *PaymentCompletedMessage {
	return &PaymentCompletedMessage{
		category: category,
		amount:   amount,
	}
}

func (b *PaymentCompletedMessage) Build() string {
	return fmt.Sprintf("Your %s payment of %.2f has been completed.", b.category, b.amount)
}
