package services

import (
	"context"
	"testing"

	apperrors "hostel/errors"
	"hostel/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateMaintenanceSnapshotsRoom(t *testing.T) {
	db := setupTestDB(t)
	rooms := newTestRoomService(db)
	svc := NewMaintenanceService(MaintenanceServiceOptions{DB: db})

	resident := createResident(t, db, "Alice", "alice@example.com", "single")
	room := createRoom(t, db, "101", "single", 1)
	_, _, err := rooms.AssignRoom(context.Background(), resident.ID, room.RoomId)
	assert.NoError(t, err)

	ticket, err := svc.Create(context.Background(), resident.ID, "  Broken fan  ", "The ceiling fan stopped working.")

	assert.NoError(t, err)
	assert.Equal(t, "Broken fan", ticket.Title)
	assert.Equal(t, models.MaintenanceStatusPending, ticket.Status)
	assert.NotNil(t, ticket.RoomID)
	assert.Equal(t, room.RoomId, *ticket.RoomID)
}

func TestCreateMaintenanceRequiresTitle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMaintenanceService(MaintenanceServiceOptions{DB: db})
	resident := createResident(t, db, "Alice", "alice@example.com", "")

	_, err := svc.Create(context.Background(), resident.ID, "   ", "Something broke.")

	assert.Error(t, err)
	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeRequiredField, appErr.Code)

	var count int64
	assert.NoError(t, db.Model(&models.Maintenance{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListByStatusFilters(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMaintenanceService(MaintenanceServiceOptions{DB: db})
	resident := createResident(t, db, "Alice", "alice@example.com", "")

	_, err := svc.Create(context.Background(), resident.ID, "Leaky tap", "Water everywhere.")
	assert.NoError(t, err)
	ticket, err := svc.Create(context.Background(), resident.ID, "Broken lock", "Door will not close.")
	assert.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), ticket.ID, models.MaintenanceStatusResolved, "", nil)
	assert.NoError(t, err)

	pending, err := svc.ListByStatus(context.Background(), models.MaintenanceStatusPending)
	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, "Leaky tap", pending[0].Title)

	all, err := svc.ListByStatus(context.Background(), "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSearchMatchesTitleAndDescription(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMaintenanceService(MaintenanceServiceOptions{DB: db})
	resident := createResident(t, db, "Alice", "alice@example.com", "")

	_, err := svc.Create(context.Background(), resident.ID, "Leaky Tap", "Water everywhere.")
	assert.NoError(t, err)
	_, err = svc.Create(context.Background(), resident.ID, "Broken lock", "The tap handle snapped.")
	assert.NoError(t, err)
	_, err = svc.Create(context.Background(), resident.ID, "Flickering light", "Tube light blinks at night.")
	assert.NoError(t, err)

	results, err := svc.Search(context.Background(), "TAP")
	assert.NoError(t, err)
	assert.Len(t, results, 2)

	_, err = svc.Search(context.Background(), "  ")
	assert.Error(t, err)
}

func TestUpdateStatusOverwritesAndStampsResolution(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMaintenanceService(MaintenanceServiceOptions{DB: db})
	resident := createResident(t, db, "Alice", "alice@example.com", "")
	staff := models.User{Name: "Staff", Email: "staff@example.com", Password: "hashed", Role: models.RoleStaff}
	assert.NoError(t, db.Create(&staff).Error)

	ticket, err := svc.Create(context.Background(), resident.ID, "Leaky tap", "Water everywhere.")
	assert.NoError(t, err)

	resolved, err := svc.UpdateStatus(context.Background(), ticket.ID, models.MaintenanceStatusResolved, "Replaced washer", &staff.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.MaintenanceStatusResolved, resolved.Status)
	assert.Equal(t, "Replaced washer", resolved.ResolutionNotes)
	assert.NotNil(t, resolved.ResolvedAt)
	assert.Equal(t, staff.ID, *resolved.AssignedTo)

	// Overwrite semantics: moving back to Pending is allowed.
	reopened, err := svc.UpdateStatus(context.Background(), ticket.ID, models.MaintenanceStatusPending, "", nil)
	assert.NoError(t, err)
	assert.Equal(t, models.MaintenanceStatusPending, reopened.Status)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMaintenanceService(MaintenanceServiceOptions{DB: db})

	_, err := svc.UpdateStatus(context.Background(), 1, "Done", "", nil)

	assert.Error(t, err)
	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeInvalidStatus, appErr.Code)
}

func TestDeleteMaintenanceNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMaintenanceService(MaintenanceServiceOptions{DB: db})

	err := svc.Delete(context.Background(), 77)

	assert.Error(t, err)
	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeDBNotFound, appErr.Code)
}
