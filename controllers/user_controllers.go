package controllers

import (
	"strconv"
	"strings"

	"hostel/dto"
	"hostel/models"
	"hostel/response"
	"hostel/services"
	"hostel/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserController covers the admin-facing account management surface,
// including room assignment and the occupancy repair tool.
type UserController struct {
	db          *gorm.DB
	roomService *services.RoomService
	authService *services.AuthService
}

func NewUserController(db *gorm.DB, roomService *services.RoomService, authService *services.AuthService) *UserController {
	return &UserController{
		db:          db,
		roomService: roomService,
		authService: authService,
	}
}

// GetUsers lists accounts, optionally filtered by role.
func (ctrl *UserController) GetUsers(c *gin.Context) {
	tx := ctrl.db.Preload("AssignedRoom").Order("created_at DESC")

	if roleParam := c.Query("role"); roleParam != "" {
		role, err := strconv.Atoi(roleParam)
		if err != nil {
			response.BadRequest(c, "Invalid role filter")
			return
		}
		tx = tx.Where("role = ?", role)
	}

	var users []models.User
	if err := tx.Find(&users).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, users)
}

// CreateUser provisions an account with the default password.
func (ctrl *UserController) CreateUser(c *gin.Context) {
	var input dto.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := ctrl.authService.CreateWithDefaultPassword(models.User{
		Name:           input.Name,
		Email:          input.Email,
		PhoneNumber:    input.PhoneNumber,
		Role:           input.Role,
		RoomPreference: input.RoomPreference,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "User created with default password: "+services.DefaultPassword, user)
}

func (ctrl *UserController) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := ctrl.db.First(&user, id).Error; err != nil {
		response.NotFoundMessage(c, "User not found")
		return
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = strings.ToLower(input.Email)
	}
	if input.PhoneNumber != "" {
		if !validator.IsValidPhone(input.PhoneNumber) {
			response.ValidationError(c, "Phone number is not valid")
			return
		}
		user.PhoneNumber = input.PhoneNumber
	}
	if input.Role != nil {
		if *input.Role < models.RoleResident || *input.Role > models.RoleStaff {
			response.ValidationError(c, "Role is not valid")
			return
		}
		user.Role = *input.Role
	}

	if err := ctrl.db.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, user)
}

// DeleteUser releases the account's room slot first, then removes the
// account. Payments and tickets are left in place.
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.roomService.CheckOut(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	if err := ctrl.db.Delete(&models.User{}, id).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "User deleted successfully", nil)
}

func (ctrl *UserController) AssignRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.AssignRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, _, err := ctrl.roomService.AssignRoom(c.Request.Context(), id, input.RoomID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "Room assigned and notifications sent", user)
}

func (ctrl *UserController) AutoAssignRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, room, err := ctrl.roomService.AutoAssignRoom(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "Room auto-assigned and checked-in", gin.H{
		"user": user,
		"room": room,
	})
}

func (ctrl *UserController) CheckInUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := ctrl.roomService.CheckIn(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "User checked in", user)
}

func (ctrl *UserController) CheckOutUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.roomService.CheckOut(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "User checked out successfully", nil)
}

func (ctrl *UserController) RecalculateOccupancy(c *gin.Context) {
	if err := ctrl.roomService.RecalculateOccupancy(c.Request.Context()); err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Room occupancy recalculated", nil)
}
