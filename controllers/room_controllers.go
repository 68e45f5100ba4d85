package controllers

import (
	"log"
	"time"

	"hostel/config"
	"hostel/dto"
	"hostel/models"
	"hostel/response"
	"hostel/services"
	"hostel/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const roomsCacheKey = "rooms:all"

type RoomController struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewRoomController(db *gorm.DB, rdb *redis.Client) *RoomController {
	return &RoomController{db: db, rdb: rdb}
}

// GetAllRooms serves the room list from Redis when possible.
func (ctrl *RoomController) GetAllRooms(c *gin.Context) {
	var rooms []models.Room

	if ctrl.rdb != nil {
		if err := services.GetFromRedis(config.Ctx, ctrl.rdb, roomsCacheKey, &rooms); err == nil && len(rooms) > 0 {
			response.Success(c, rooms)
			return
		}
	}

	if err := ctrl.db.Order("number").Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	if ctrl.rdb != nil {
		if err := services.SetToRedis(config.Ctx, ctrl.rdb, roomsCacheKey, rooms, 10*time.Minute); err != nil {
			log.Printf("Failed to cache rooms: %v", err)
		}
	}

	response.Success(c, rooms)
}

func (ctrl *RoomController) GetRoomDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var room models.Room
	if err := ctrl.db.First(&room, id).Error; err != nil {
		response.NotFoundMessage(c, "Room not found")
		return
	}

	response.Success(c, room)
}

func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var input dto.RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	room := models.Room{
		Number:   input.Number,
		Type:     input.Type,
		Capacity: input.Capacity,
	}

	if err := validator.ValidateRoom(&room); err != nil {
		handleServiceError(c, err)
		return
	}

	var existing models.Room
	if err := ctrl.db.Where("number = ?", room.Number).First(&existing).Error; err == nil {
		response.BadRequest(c, "Room number already exists")
		return
	}

	if err := ctrl.db.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctrl.invalidateCache()
	response.Created(c, room)
}

func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.UpdateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var room models.Room
	if err := ctrl.db.First(&room, id).Error; err != nil {
		response.NotFoundMessage(c, "Room not found")
		return
	}

	if input.Number != "" {
		room.Number = input.Number
	}
	if input.Type != "" {
		room.Type = input.Type
	}
	if input.Capacity != nil {
		room.Capacity = *input.Capacity
	}

	if err := validator.ValidateRoom(&room); err != nil {
		handleServiceError(c, err)
		return
	}

	room.IsOccupied = room.CurrentOccupancy >= room.Capacity
	if err := ctrl.db.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctrl.invalidateCache()
	response.Success(c, room)
}

// DeleteRoom detaches any remaining occupants before removing the room
// so no account keeps a dangling assignment.
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := ctrl.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Room{}, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).
			Where("assigned_room_id = ?", id).
			Updates(map[string]interface{}{"assigned_room_id": nil, "checked_in": false}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Room{}, id).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFoundMessage(c, "Room not found")
			return
		}
		response.ServerError(c)
		return
	}

	ctrl.invalidateCache()
	response.SuccessWithMessage(c, "Room deleted successfully", nil)
}

func (ctrl *RoomController) invalidateCache() {
	if ctrl.rdb == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, ctrl.rdb, roomsCacheKey); err != nil {
		log.Printf("Failed to invalidate rooms cache: %v", err)
	}
}
