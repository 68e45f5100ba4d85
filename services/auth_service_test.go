package services

import (
	"testing"

	apperrors "hostel/errors"
	"hostel/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterNormalizesEmailAndHashesPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(AuthServiceOptions{DB: db})

	user, err := svc.Register(models.User{
		Name:     "Alice",
		Email:    "  Alice@Example.COM ",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
	assert.Equal(t, models.RoleResident, user.Role)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(AuthServiceOptions{DB: db})

	_, err := svc.Register(models.User{Name: "Alice", Email: "alice@example.com", Password: "secret123"})
	assert.NoError(t, err)

	_, err = svc.Register(models.User{Name: "Alice Again", Email: "ALICE@example.com", Password: "secret456"})
	assert.Error(t, err)
	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeUserExists, appErr.Code)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(AuthServiceOptions{DB: db})

	_, err := svc.Register(models.User{Name: "Alice", Email: "alice@example.com", Password: "abc"})

	assert.Error(t, err)
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(AuthServiceOptions{DB: db})

	_, err := svc.Register(models.User{Name: "Alice", Email: "alice@example.com", Password: "secret123"})
	assert.NoError(t, err)

	user, err := svc.Authenticate("Alice@example.com", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = svc.Authenticate("alice@example.com", "wrong-password")
	assert.Error(t, err)
	appErr := apperrors.GetAppError(err)
	assert.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrCodeInvalidPassword, appErr.Code)
}

func TestCreateWithDefaultPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(AuthServiceOptions{DB: db})

	user, err := svc.CreateWithDefaultPassword(models.User{
		Name:  "Bob",
		Email: "bob@example.com",
		Role:  models.RoleStaff,
	})

	assert.NoError(t, err)
	assert.Equal(t, models.RoleStaff, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(DefaultPassword)))
}

func TestCreateGoogleUserIsVerifiedResident(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(AuthServiceOptions{DB: db})

	user, err := svc.CreateGoogleUser("Carol", "Carol@Example.com", "https://example.com/avatar.png")

	assert.NoError(t, err)
	assert.Equal(t, "carol@example.com", user.Email)
	assert.True(t, user.IsVerified)
	assert.Equal(t, models.RoleResident, user.Role)

	// No local password works against the stored hash.
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("")))
}
