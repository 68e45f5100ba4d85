package services

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "hostel/errors"
	"hostel/models"
	"hostel/services/logger"
	"hostel/validator"

	"gorm.io/gorm"
)

type MaintenanceServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

type MaintenanceService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewMaintenanceService(opts MaintenanceServiceOptions) *MaintenanceService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &MaintenanceService{db: opts.DB, logger: l}
}

// Create validates and stores a ticket, snapshotting the requester's
// room at creation time.
func (s *MaintenanceService) Create(ctx context.Context, userID uint, title, description string) (*models.Maintenance, error) {
	ticket := models.Maintenance{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		RequestedBy: userID,
		Status:      models.MaintenanceStatusPending,
	}

	if err := validator.ValidateMaintenance(&ticket); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, userLookupError(err)
	}
	ticket.RoomID = user.AssignedRoomID

	if err := s.db.WithContext(ctx).Create(&ticket).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

// ListByStatus returns tickets newest first, optionally filtered.
func (s *MaintenanceService) ListByStatus(ctx context.Context, status string) ([]models.Maintenance, error) {
	tx := s.db.WithContext(ctx).
		Preload("Requester").
		Preload("Room").
		Preload("Assignee").
		Order("created_at DESC")
	if status != "" {
		tx = tx.Where("status = ?", status)
	}

	var tickets []models.Maintenance
	if err := tx.Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (s *MaintenanceService) ListByRequester(ctx context.Context, userID uint) ([]models.Maintenance, error) {
	var tickets []models.Maintenance
	if err := s.db.WithContext(ctx).
		Where("requested_by = ?", userID).
		Order("created_at DESC").
		Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

// Search matches the query case-insensitively against title and
// description, newest first.
func (s *MaintenanceService) Search(ctx context.Context, query string) ([]models.Maintenance, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Search query is required", nil)
	}

	pattern := "%" + strings.ToLower(query) + "%"
	var tickets []models.Maintenance
	if err := s.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Preload("Requester").
		Preload("Room").
		Preload("Assignee").
		Order("created_at DESC").
		Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

// UpdateStatus overwrites the status unconditionally; there is no
// forward-only check on the server side.
func (s *MaintenanceService) UpdateStatus(ctx context.Context, id uint, status, resolutionNotes string, assignedTo *uint) (*models.Maintenance, error) {
	if !models.ValidMaintenanceStatus(status) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidStatus, "Status is not valid: "+status, nil)
	}

	var ticket models.Maintenance
	if err := s.db.WithContext(ctx).First(&ticket, id).Error; err != nil {
		return nil, ticketLookupError(err)
	}

	ticket.Status = status
	if resolutionNotes != "" {
		ticket.ResolutionNotes = resolutionNotes
	}
	if assignedTo != nil {
		ticket.AssignedTo = assignedTo
	}
	if status == models.MaintenanceStatusResolved && ticket.ResolvedAt == nil {
		now := time.Now()
		ticket.ResolvedAt = &now
	}

	if err := s.db.WithContext(ctx).Save(&ticket).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (s *MaintenanceService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Maintenance{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Maintenance request not found", nil)
	}
	return nil
}

func ticketLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "Maintenance request not found", nil)
	}
	return err
}
