package services

import (
	"context"
	"testing"
	"time"

	apperrors "hostel/errors"
	"hostel/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestPaymentService(db *gorm.DB) *PaymentService {
	return NewPaymentService(PaymentServiceOptions{DB: db})
}

func createPayment(t *testing.T, db *gorm.DB, residentID uint, category string, amount float64, status string, date time.Time) models.Payment {
	t.Helper()
	payment := models.Payment{
		ResidentID: residentID,
		Category:   category,
		Amount:     amount,
		Status:     status,
		Date:       date,
		CreatedAt:  date,
	}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatalf("failed to create payment: %v", err)
	}
	return payment
}

func TestCreatePaymentDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestPaymentService(db)
	resident := createResident(t, db, "Alice", "alice@example.com", "")

	payment, err := svc.Create(context.Background(), models.Payment{
		ResidentID: resident.ID,
		Category:   models.PaymentCategoryRoomRent,
		Amount:     1500,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
	assert.False(t, payment.Date.IsZero())
}

func TestCreatePaymentRejectsUnknownResident(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestPaymentService(db)

	_, err := svc.Create(context.Background(), models.Payment{
		ResidentID: 42,
		Category:   models.PaymentCategoryFood,
		Amount:     100,
	})

	assert.Error(t, err)
	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeUserNotFound, appErr.Code)
}

func TestCreatePaymentRejectsBadCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestPaymentService(db)
	resident := createResident(t, db, "Alice", "alice@example.com", "")

	_, err := svc.Create(context.Background(), models.Payment{
		ResidentID: resident.ID,
		Category:   "Laundry",
		Amount:     100,
	})

	assert.Error(t, err)
}

func TestCompleteLatestPendingFlipsNewestPendingOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestPaymentService(db)
	resident := createResident(t, db, "Alice", "alice@example.com", "")

	jan := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC)

	done := createPayment(t, db, resident.ID, models.PaymentCategoryRoomRent, 100, models.PaymentStatusCompleted, jan)
	pending := createPayment(t, db, resident.ID, models.PaymentCategoryRoomRent, 200, models.PaymentStatusPending, feb)

	completed, err := svc.CompleteLatestPending(context.Background(), resident.ID)

	assert.NoError(t, err)
	assert.Equal(t, pending.ID, completed.ID)
	assert.Equal(t, models.PaymentStatusCompleted, completed.Status)

	var untouched models.Payment
	assert.NoError(t, db.First(&untouched, done.ID).Error)
	assert.Equal(t, models.PaymentStatusCompleted, untouched.Status)
}

func TestCompleteLatestPendingWithoutPending(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestPaymentService(db)
	resident := createResident(t, db, "Alice", "alice@example.com", "")

	createPayment(t, db, resident.ID, models.PaymentCategoryFood, 50, models.PaymentStatusCompleted, time.Now())

	_, err := svc.CompleteLatestPending(context.Background(), resident.ID)

	assert.Error(t, err)
	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeDBNotFound, appErr.Code)
}

func TestCompleteByIDRecordsNotification(t *testing.T) {
	db := setupTestDB(t)
	resident := createResident(t, db, "Alice", "alice@example.com", "")
	notifier := NewNotifier(NotifierOptions{DB: db})
	svc := NewPaymentService(PaymentServiceOptions{DB: db, Notifier: notifier})

	pending := createPayment(t, db, resident.ID, models.PaymentCategoryElectricity, 300, models.PaymentStatusPending, time.Now())

	completed, err := svc.Complete(context.Background(), pending.ID)

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, completed.Status)

	var notifications []models.Notification
	assert.NoError(t, db.Where("user_id = ?", resident.ID).Find(&notifications).Error)
	assert.Len(t, notifications, 1)
	assert.Equal(t, NotificationTypePayment, notifications[0].Type)
}

func TestMonthlySummaryGroupsByMonth(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestPaymentService(db)
	resident := createResident(t, db, "Alice", "alice@example.com", "")

	jan5 := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	jan20 := time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC)
	feb1 := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	createPayment(t, db, resident.ID, models.PaymentCategoryRoomRent, 100, models.PaymentStatusCompleted, jan5)
	createPayment(t, db, resident.ID, models.PaymentCategoryFood, 50, models.PaymentStatusCompleted, jan20)
	createPayment(t, db, resident.ID, models.PaymentCategoryRoomRent, 200, models.PaymentStatusPending, feb1)

	summary, err := svc.MonthlySummary(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []MonthlyTotal{
		{Month: "2026-01", Total: 150},
		{Month: "2026-02", Total: 200},
	}, summary)
}

func TestListPaged(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestPaymentService(db)
	resident := createResident(t, db, "Alice", "alice@example.com", "")

	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		createPayment(t, db, resident.ID, models.PaymentCategoryFood, float64(10*(i+1)),
			models.PaymentStatusCompleted, base.Add(time.Duration(i)*time.Hour))
	}

	first, total, err := svc.ListPaged(context.Background(), 1, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, first, 2)
	// Newest first.
	assert.Equal(t, 50.0, first[0].Amount)

	last, total, err := svc.ListPaged(context.Background(), 3, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, last, 1)
	assert.Equal(t, 10.0, last[0].Amount)
}

func TestUpdatePaymentOverwrites(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestPaymentService(db)
	resident := createResident(t, db, "Alice", "alice@example.com", "")

	payment := createPayment(t, db, resident.ID, models.PaymentCategoryRoomRent, 100, models.PaymentStatusPending, time.Now())

	updated, err := svc.Update(context.Background(), payment.ID, models.Payment{
		Category: models.PaymentCategoryOthers,
		Amount:   75,
		Status:   models.PaymentStatusFailed,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentCategoryOthers, updated.Category)
	assert.Equal(t, 75.0, updated.Amount)
	assert.Equal(t, models.PaymentStatusFailed, updated.Status)
}

func TestDeletePaymentNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestPaymentService(db)

	err := svc.Delete(context.Background(), 123)

	assert.Error(t, err)
	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeDBNotFound, appErr.Code)
}

func TestCheckoutSessionRequiresPending(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestPaymentService(db)
	resident := createResident(t, db, "Alice", "alice@example.com", "")

	done := createPayment(t, db, resident.ID, models.PaymentCategoryRoomRent, 100, models.PaymentStatusCompleted, time.Now())

	_, err := svc.CreateCheckoutSession(context.Background(), done.ID, "")

	assert.Error(t, err)
	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeInvalidOperation, appErr.Code)
}
