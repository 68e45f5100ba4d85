package controllers

import (
	"hostel/models"
	"hostel/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NotificationController struct {
	db *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{db: db}
}

// GetNotifications lists the caller's notifications, newest first.
func (ctrl *NotificationController) GetNotifications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var notifications []models.Notification
	if err := ctrl.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, notifications)
}

// MarkRead flips a notification to read. Only the owner can mark it.
func (ctrl *NotificationController) MarkRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	res := ctrl.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if res.Error != nil {
		response.ServerError(c)
		return
	}
	if res.RowsAffected == 0 {
		response.NotFoundMessage(c, "Notification not found")
		return
	}

	response.SuccessWithMessage(c, "Notification marked as read", nil)
}
