package services

import (
	"hostel/models"
	"hostel/services/logger"
	"hostel/services/notification"
	"hostel/validator"

	"gorm.io/gorm"
)

const (
	NotificationTypeRoom    = "room"
	NotificationTypePayment = "payment"
)

type NotifierOptions struct {
	DB        *gorm.DB
	Logger    logger.Logger
	Broadcast notification.Service
}

// Notifier fans a domain event out to the notification log, websocket,
// email and SMS. Every channel is best-effort: failures are logged and
// never surfaced to the caller, and nothing is rolled back.
type Notifier struct {
	db        *gorm.DB
	logger    logger.Logger
	broadcast notification.Service
}

func NewNotifier(opts NotifierOptions) *Notifier {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &Notifier{
		db:        opts.DB,
		logger:    l,
		broadcast: opts.Broadcast,
	}
}

func (n *Notifier) RoomAssigned(user models.User, room models.Room) {
	message := notification.NewRoomAssignedMessage(user.Name, room.Number, room.Type).Build()
	n.record(user.ID, message, NotificationTypeRoom)

	if err := SendEmail(user.Email, "Room Assigned Successfully", message); err != nil {
		n.logger.Error("room-assigned email to %s failed: %v", user.Email, err)
	}

	if validator.IsValidPhone(user.PhoneNumber) {
		smsText := "Room " + room.Number + " assigned. Welcome to the hostel!"
		if err := SendSMS(user.PhoneNumber, smsText); err != nil {
			n.logger.Error("room-assigned sms to %s failed: %v", user.PhoneNumber, err)
		}
	}
}

func (n *Notifier) PaymentCompleted(user models.User, payment models.Payment) {
	message := notification.NewPaymentCompletedMessage(payment.Category, payment.Amount).Build()
	n.record(user.ID, message, NotificationTypePayment)

	if err := SendEmail(user.Email, "Payment Completed", message); err != nil {
		n.logger.Error("payment email to %s failed: %v", user.Email, err)
	}
}

// record appends the notification row and pushes it over the websocket.
func (n *Notifier) record(userID uint, message, notificationType string) {
	row := models.Notification{
		UserID:  userID,
		Message: message,
		Type:    notificationType,
	}
	if err := n.db.Create(&row).Error; err != nil {
		n.logger.Error("failed to store notification for user %d: %v", userID, err)
		return
	}

	if n.broadcast != nil {
		if err := n.broadcast.SendMessage(message); err != nil {
			n.logger.Error("failed to broadcast notification: %v", err)
		}
	}
}
