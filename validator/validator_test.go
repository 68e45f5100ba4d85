package validator

import (
	"testing"

	"hostel/errors"
	"hostel/models"

	"github.com/stretchr/testify/assert"
)

func validUser() models.User {
	return models.User{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     models.RoleResident,
	}
}

func TestValidateUser(t *testing.T) {
	user := validUser()
	assert.NoError(t, ValidateUser(&user))

	noName := validUser()
	noName.Name = ""
	assert.Error(t, ValidateUser(&noName))

	badEmail := validUser()
	badEmail.Email = "not-an-email"
	err := ValidateUser(&badEmail)
	assert.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidEmail, errors.GetAppError(err).Code)

	shortPassword := validUser()
	shortPassword.Password = "abc"
	assert.Error(t, ValidateUser(&shortPassword))

	badRole := validUser()
	badRole.Role = 5
	assert.Error(t, ValidateUser(&badRole))

	badPhone := validUser()
	badPhone.PhoneNumber = "12ab"
	assert.Error(t, ValidateUser(&badPhone))

	withPhone := validUser()
	withPhone.PhoneNumber = "+919876543210"
	assert.NoError(t, ValidateUser(&withPhone))
}

func TestValidateMaintenance(t *testing.T) {
	ticket := models.Maintenance{Title: "Leaky tap", Description: "Water everywhere."}
	assert.NoError(t, ValidateMaintenance(&ticket))

	noTitle := models.Maintenance{Description: "Water everywhere."}
	assert.Error(t, ValidateMaintenance(&noTitle))

	noDescription := models.Maintenance{Title: "Leaky tap"}
	assert.Error(t, ValidateMaintenance(&noDescription))

	badStatus := models.Maintenance{Title: "Leaky tap", Description: "Water.", Status: "Done"}
	err := ValidateMaintenance(&badStatus)
	assert.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidStatus, errors.GetAppError(err).Code)
}

func TestValidatePayment(t *testing.T) {
	payment := models.Payment{ResidentID: 1, Category: models.PaymentCategoryRoomRent, Amount: 100}
	assert.NoError(t, ValidatePayment(&payment))

	noResident := models.Payment{Category: models.PaymentCategoryFood, Amount: 100}
	assert.Error(t, ValidatePayment(&noResident))

	badCategory := models.Payment{ResidentID: 1, Category: "Laundry", Amount: 100}
	assert.Error(t, ValidatePayment(&badCategory))

	negative := models.Payment{ResidentID: 1, Category: models.PaymentCategoryFood, Amount: -5}
	err := ValidatePayment(&negative)
	assert.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidAmount, errors.GetAppError(err).Code)

	badStatus := models.Payment{ResidentID: 1, Category: models.PaymentCategoryFood, Amount: 5, Status: "Paid"}
	assert.Error(t, ValidatePayment(&badStatus))
}

func TestValidateRoom(t *testing.T) {
	room := models.Room{Number: "101", Capacity: 2}
	assert.NoError(t, ValidateRoom(&room))

	noNumber := models.Room{Capacity: 2}
	assert.Error(t, ValidateRoom(&noNumber))

	zeroCapacity := models.Room{Number: "101"}
	assert.Error(t, ValidateRoom(&zeroCapacity))
}
