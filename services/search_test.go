package services

import (
	"testing"

	apperrors "hostel/errors"
	"hostel/models"

	"github.com/stretchr/testify/assert"
)

func TestFindResidentByExactEmail(t *testing.T) {
	db := setupTestDB(t)
	createResident(t, db, "Alice Johnson", "alice@example.com", "")
	createResident(t, db, "Bob Smith", "bob@example.com", "")

	found, err := FindResident(db, "Alice@Example.COM")

	assert.NoError(t, err)
	assert.Equal(t, "Alice Johnson", found.Name)
}

func TestFindResidentByFuzzyName(t *testing.T) {
	db := setupTestDB(t)
	createResident(t, db, "Alice Johnson", "alice@example.com", "")
	createResident(t, db, "Bob Smith", "bob@example.com", "")

	found, err := FindResident(db, "alice johnsen")

	assert.NoError(t, err)
	assert.Equal(t, "Alice Johnson", found.Name)
}

func TestFindResidentAccentInsensitive(t *testing.T) {
	db := setupTestDB(t)
	createResident(t, db, "José García", "jose@example.com", "")

	found, err := FindResident(db, "jose garcia")

	assert.NoError(t, err)
	assert.Equal(t, "José García", found.Name)
}

func TestFindResidentSkipsStaffNames(t *testing.T) {
	db := setupTestDB(t)
	staff := models.User{Name: "Charlie Staff", Email: "charlie@example.com", Password: "hashed", Role: models.RoleStaff}
	assert.NoError(t, db.Create(&staff).Error)

	_, err := FindResident(db, "charlie staff")

	assert.Error(t, err)
	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeUserNotFound, appErr.Code)
}

func TestFindResidentRequiresQuery(t *testing.T) {
	db := setupTestDB(t)

	_, err := FindResident(db, "   ")

	assert.Error(t, err)
	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeRequiredField, appErr.Code)
}

func TestFindResidentNoMatch(t *testing.T) {
	db := setupTestDB(t)
	createResident(t, db, "Alice Johnson", "alice@example.com", "")

	_, err := FindResident(db, "zzzzqqqq")

	assert.Error(t, err)
	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeUserNotFound, appErr.Code)
}
