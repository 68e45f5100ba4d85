package validator

import (
	"hostel/errors"
	"hostel/models"
	"regexp"
)

// ValidateUser checks a registration payload.
func ValidateUser(user *models.User) error {
	if user.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Name must not be empty", nil)
	}

	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email must not be empty", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email is not valid", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password must not be empty", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must have at least 6 characters", nil)
	}

	// Phone is optional; validate only when provided.
	if user.PhoneNumber != "" && !IsValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Phone number is not valid", nil)
	}

	if user.Role < models.RoleResident || user.Role > models.RoleStaff {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role is not valid", nil)
	}

	return nil
}

// ValidateMaintenance checks a ticket creation payload.
func ValidateMaintenance(ticket *models.Maintenance) error {
	if ticket.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Title must not be empty", nil)
	}

	if ticket.Description == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Description must not be empty", nil)
	}

	if ticket.Status != "" && !models.ValidMaintenanceStatus(ticket.Status) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Status is not valid: "+ticket.Status, nil)
	}

	return nil
}

// ValidatePayment checks a payment creation or update payload.
func ValidatePayment(payment *models.Payment) error {
	if payment.ResidentID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Resident is required", nil)
	}

	if !models.ValidPaymentCategory(payment.Category) {
		return errors.NewAppError(errors.ErrCodeValidation, "Category is not valid: "+payment.Category, nil)
	}

	if payment.Amount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Amount must not be negative", nil)
	}

	if payment.Status != "" && !models.ValidPaymentStatus(payment.Status) {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Status is not valid: "+payment.Status, nil)
	}

	return nil
}

func ValidateRoom(room *models.Room) error {
	if room.Number == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room number must not be empty", nil)
	}

	if err := room.ValidateCapacity(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}

	return nil
}

func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// IsValidPhone accepts an optional + prefix followed by 10 to 14 digits.
func IsValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^\+?[0-9]{10,14}$`)
	return phoneRegex.MatchString(phone)
}
