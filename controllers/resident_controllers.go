package controllers

import (
	"hostel/dto"
	"hostel/models"
	"hostel/response"
	"hostel/services"
	"hostel/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ResidentController is the self-service surface: profile, own tickets
// and own payments. Staff reach residents through SearchResident.
type ResidentController struct {
	db                 *gorm.DB
	roomService        *services.RoomService
	maintenanceService *services.MaintenanceService
	paymentService     *services.PaymentService
}

func NewResidentController(db *gorm.DB, roomService *services.RoomService, maintenanceService *services.MaintenanceService, paymentService *services.PaymentService) *ResidentController {
	return &ResidentController{
		db:                 db,
		roomService:        roomService,
		maintenanceService: maintenanceService,
		paymentService:     paymentService,
	}
}

func (ctrl *ResidentController) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := ctrl.db.Preload("AssignedRoom").First(&user, userID).Error; err != nil {
		response.NotFoundMessage(c, "User not found")
		return
	}

	c.Header("Cache-Control", "no-store")
	response.Success(c, user)
}

// UpdateProfile lets a resident change name and phone. A room change is
// requested by room number and goes through the assignment service so
// occupancy bookkeeping stays correct.
func (ctrl *ResidentController) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := ctrl.db.First(&user, userID).Error; err != nil {
		response.NotFoundMessage(c, "User not found")
		return
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.PhoneNumber != "" {
		if !validator.IsValidPhone(input.PhoneNumber) {
			response.ValidationError(c, "Phone number is not valid")
			return
		}
		user.PhoneNumber = input.PhoneNumber
	}
	if err := ctrl.db.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	if input.Room != "" {
		var room models.Room
		if err := ctrl.db.Where("number = ?", input.Room).First(&room).Error; err != nil {
			response.NotFoundMessage(c, "Room not found")
			return
		}

		updated, _, err := ctrl.roomService.AssignRoom(c.Request.Context(), userID, room.RoomId)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		user = *updated
	}

	response.SuccessWithMessage(c, "Profile updated", user)
}

func (ctrl *ResidentController) GetMyMaintenance(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	tickets, err := ctrl.maintenanceService.ListByRequester(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, tickets)
}

func (ctrl *ResidentController) CreateMaintenance(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var input dto.CreateMaintenanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ticket, err := ctrl.maintenanceService.Create(c.Request.Context(), userID, input.Title, input.Description)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, ticket)
}

func (ctrl *ResidentController) GetMyPayments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	payments, err := ctrl.paymentService.ListByResident(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, payments)
}

// SearchResident resolves a resident by email or fuzzy name and returns
// the profile together with the payment history.
func (ctrl *ResidentController) SearchResident(c *gin.Context) {
	resident, err := services.FindResident(ctrl.db, c.Query("query"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	payments, err := ctrl.paymentService.ListByResident(c.Request.Context(), resident.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, gin.H{
		"resident": resident,
		"payments": payments,
	})
}
