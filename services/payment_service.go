package services

import (
	"context"
	"errors"
	"os"
	"sort"
	"strconv"
	"time"

	apperrors "hostel/errors"
	"hostel/models"
	"hostel/services/logger"
	"hostel/validator"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/checkout/session"
	"gorm.io/gorm"
)

type PaymentServiceOptions struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Notifier *Notifier
}

type PaymentService struct {
	db       *gorm.DB
	logger   logger.Logger
	notifier *Notifier
}

func NewPaymentService(opts PaymentServiceOptions) *PaymentService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &PaymentService{
		db:       opts.DB,
		logger:   l,
		notifier: opts.Notifier,
	}
}

func (s *PaymentService) Create(ctx context.Context, payment models.Payment) (*models.Payment, error) {
	if payment.Status == "" {
		payment.Status = models.PaymentStatusPending
	}
	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}

	if err := validator.ValidatePayment(&payment); err != nil {
		return nil, err
	}

	var resident models.User
	if err := s.db.WithContext(ctx).First(&resident, payment.ResidentID).Error; err != nil {
		return nil, userLookupError(err)
	}

	if err := s.db.WithContext(ctx).Create(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentService) List(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.db.WithContext(ctx).
		Preload("Resident").
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// ListPaged returns one page of the global listing plus the total row
// count for the pagination envelope.
func (s *PaymentService) ListPaged(ctx context.Context, page, limit int) ([]models.Payment, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Payment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []models.Payment
	if err := s.db.WithContext(ctx).
		Preload("Resident").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&payments).Error; err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

func (s *PaymentService) ListByResident(ctx context.Context, residentID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.db.WithContext(ctx).
		Where("resident_id = ?", residentID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Update overwrites the stored fields with whatever the caller sends;
// no recomputation happens beyond validation.
func (s *PaymentService) Update(ctx context.Context, id uint, input models.Payment) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.WithContext(ctx).First(&payment, id).Error; err != nil {
		return nil, paymentLookupError(err)
	}

	if input.Category != "" {
		payment.Category = input.Category
	}
	if input.Status != "" {
		payment.Status = input.Status
	}
	if !input.Date.IsZero() {
		payment.Date = input.Date
	}
	payment.Amount = input.Amount

	if err := validator.ValidatePayment(&payment); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Save(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Payment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Payment not found", nil)
	}
	return nil
}

type MonthlyTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// MonthlySummary groups all payments by calendar month and returns the
// totals in chronological order. Aggregation happens in Go so the query
// stays portable across database engines.
func (s *PaymentService) MonthlySummary(ctx context.Context) ([]MonthlyTotal, error) {
	var payments []models.Payment
	if err := s.db.WithContext(ctx).Find(&payments).Error; err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	for _, p := range payments {
		totals[p.Date.Format("2006-01")] += p.Amount
	}

	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Strings(months)

	summary := make([]MonthlyTotal, 0, len(months))
	for _, month := range months {
		summary = append(summary, MonthlyTotal{Month: month, Total: totals[month]})
	}
	return summary, nil
}

// CompleteLatestPending flips the most recent pending payment of the
// resident to Completed. This is the legacy checkout callback path; it
// assumes a single outstanding payment per resident.
func (s *PaymentService) CompleteLatestPending(ctx context.Context, residentID uint) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.WithContext(ctx).
		Where("resident_id = ? AND status = ?", residentID, models.PaymentStatusPending).
		Order("created_at DESC").
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "No pending payment found", nil)
		}
		return nil, err
	}

	return s.complete(ctx, &payment)
}

// Complete marks the identified payment as Completed. The checkout flow
// carries the payment id through the session so the callback lands here.
func (s *PaymentService) Complete(ctx context.Context, paymentID uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.WithContext(ctx).First(&payment, paymentID).Error; err != nil {
		return nil, paymentLookupError(err)
	}
	return s.complete(ctx, &payment)
}

func (s *PaymentService) complete(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	payment.Status = models.PaymentStatusCompleted
	if err := s.db.WithContext(ctx).Save(payment).Error; err != nil {
		return nil, err
	}

	if s.notifier != nil {
		var resident models.User
		if err := s.db.WithContext(ctx).First(&resident, payment.ResidentID).Error; err == nil {
			s.notifier.PaymentCompleted(resident, *payment)
		}
	}

	return payment, nil
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreateCheckoutSession opens a Stripe card-checkout session for the
// payment. The payment id travels in the session metadata and client
// reference so the success callback completes exactly this record.
func (s *PaymentService) CreateCheckoutSession(ctx context.Context, paymentID uint, description string) (*CheckoutSession, error) {
	var payment models.Payment
	if err := s.db.WithContext(ctx).First(&payment, paymentID).Error; err != nil {
		return nil, paymentLookupError(err)
	}

	if payment.Status != models.PaymentStatusPending {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidOperation, "Payment is not pending", nil)
	}

	if description == "" {
		description = "Hostel Payment"
	}

	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	clientURL := os.Getenv("CLIENT_URL")
	reference := strconv.FormatUint(uint64(payment.ID), 10)

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("inr"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(description),
					},
					UnitAmount: stripe.Int64(int64(payment.Amount * 100)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		ClientReferenceID: stripe.String(reference),
		SuccessURL:        stripe.String(clientURL + "/payment-success"),
		CancelURL:         stripe.String(clientURL + "/payment-cancel"),
	}
	params.AddMetadata("payment_id", reference)

	sess, err := session.New(params)
	if err != nil {
		s.logger.Error("stripe checkout session failed for payment %d: %v", payment.ID, err)
		return nil, err
	}

	return &CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

func paymentLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Payment not found", nil)
	}
	return err
}
