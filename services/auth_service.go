package services

import (
	"fmt"
	"log"
	"strings"

	"hostel/errors"
	"hostel/models"
	"hostel/validator"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is given to accounts created by an admin; the user is
// expected to change it after first login.
const DefaultPassword = "Default1234"

type AuthServiceOptions struct {
	DB *gorm.DB
}

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	return &AuthService{db: opts.DB}
}

// Register creates a self-service account. Role defaults to Resident.
func (s *AuthService) Register(input models.User) (models.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)

	if err := validator.ValidateUser(&input); err != nil {
		return models.User{}, err
	}

	var existing models.User
	if err := s.db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeUserExists,
			fmt.Sprintf("Email %s is already registered", input.Email), nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	input.Password = string(hashed)

	if err := s.db.Create(&input).Error; err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Failed to create user", err)
	}

	// Best-effort welcome mail.
	go func(u models.User) {
		if err := SendEmail(u.Email, "Welcome to the hostel",
			fmt.Sprintf("Hi %s, your account has been created.", u.Name)); err != nil {
			log.Printf("welcome email to %s failed: %v", u.Email, err)
		}
	}(input)

	return input, nil
}

// Authenticate checks email + password and returns the account.
func (s *AuthService) Authenticate(email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeInvalidPassword, "Invalid email or password", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeInvalidPassword, "Invalid email or password", nil)
	}

	return user, nil
}

// CreateWithDefaultPassword is the admin path: the account starts with
// DefaultPassword already hashed.
func (s *AuthService) CreateWithDefaultPassword(input models.User) (models.User, error) {
	input.Password = DefaultPassword
	user, err := s.Register(input)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// CreateGoogleUser provisions a verified Resident from a Google profile.
func (s *AuthService) CreateGoogleUser(name, email, avatar string) (models.User, error) {
	user := models.User{
		Name:       name,
		Email:      strings.ToLower(email),
		Avatar:     avatar,
		Role:       models.RoleResident,
		IsVerified: true,
	}

	// Google accounts have no local password; store an unusable hash.
	hashed, err := bcrypt.GenerateFromPassword([]byte(fmt.Sprintf("google:%s", email)), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user.Password = string(hashed)

	if err := s.db.Create(&user).Error; err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "Failed to create user", err)
	}
	return user, nil
}
