package services

import (
	"context"
	"errors"

	apperrors "hostel/errors"
	"hostel/models"
	"hostel/services/logger"

	"gorm.io/gorm"
)

type RoomServiceOptions struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Notifier *Notifier
	// InvalidateCache is called after any mutation of room rows so
	// cached room listings never outlive an occupancy change.
	InvalidateCache func(ctx context.Context) error
}

// RoomService owns the two-sided bookkeeping between users and rooms.
// Both sides of an assignment are written inside one transaction, and
// the occupancy counter is bumped with a conditional update so two
// requests cannot both take the last free slot.
type RoomService struct {
	db              *gorm.DB
	logger          logger.Logger
	notifier        *Notifier
	invalidateCache func(ctx context.Context) error
}

func NewRoomService(opts RoomServiceOptions) *RoomService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &RoomService{
		db:              opts.DB,
		logger:          l,
		notifier:        opts.Notifier,
		invalidateCache: opts.InvalidateCache,
	}
}

// flushRoomCache drops cached room listings. Cache failures only get
// logged; the database write already succeeded.
func (s *RoomService) flushRoomCache(ctx context.Context) {
	if s.invalidateCache == nil {
		return
	}
	if err := s.invalidateCache(ctx); err != nil {
		s.logger.Error("room cache invalidation failed: %v", err)
	}
}

// AssignRoom links the user to the room and marks them checked in.
// Appending the user to the occupant set is idempotent.
func (s *RoomService) AssignRoom(ctx context.Context, userID, roomID uint) (*models.User, *models.Room, error) {
	var user models.User
	var room models.Room

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			return userLookupError(err)
		}
		if err := tx.First(&room, roomID).Error; err != nil {
			return roomLookupError(err)
		}

		if room.CurrentOccupancy >= room.Capacity && !room.HasOccupant(user.ID) {
			return apperrors.NewAppError(apperrors.ErrCodeCapacityExceeded, "Room is fully occupied", nil)
		}

		return s.linkRoom(tx, &user, &room)
	})
	if err != nil {
		return nil, nil, err
	}

	s.flushRoomCache(ctx)
	if s.notifier != nil {
		s.notifier.RoomAssigned(user, room)
	}

	return &user, &room, nil
}

// AutoAssignRoom scans rooms of the resident's preferred type in
// storage order and takes the first one with spare capacity.
func (s *RoomService) AutoAssignRoom(ctx context.Context, userID uint) (*models.User, *models.Room, error) {
	var user models.User
	var assigned models.Room

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			return userLookupError(err)
		}
		if user.Role != models.RoleResident {
			return apperrors.NewAppError(apperrors.ErrCodeUserNotFound, "Resident not found", nil)
		}

		var rooms []models.Room
		if err := tx.Where("type = ?", user.RoomPreference).Find(&rooms).Error; err != nil {
			return err
		}

		for i := range rooms {
			if rooms[i].CurrentOccupancy < rooms[i].Capacity {
				if err := s.linkRoom(tx, &user, &rooms[i]); err != nil {
					return err
				}
				assigned = rooms[i]
				return nil
			}
		}

		return apperrors.NewAppError(apperrors.ErrCodeNoCapacity, "No available rooms for preference", nil)
	})
	if err != nil {
		return nil, nil, err
	}

	s.flushRoomCache(ctx)
	if s.notifier != nil {
		s.notifier.RoomAssigned(user, assigned)
	}

	return &user, &assigned, nil
}

// linkRoom performs the shared assignment steps inside the caller's
// transaction. The guarded UPDATE is what makes the last slot safe
// under concurrent assigns.
func (s *RoomService) linkRoom(tx *gorm.DB, user *models.User, room *models.Room) error {
	if !room.HasOccupant(user.ID) {
		if err := s.reserveSlot(tx, room.RoomId); err != nil {
			return err
		}

		if err := tx.First(room, room.RoomId).Error; err != nil {
			return err
		}
		room.AddOccupant(user.ID)
	}

	room.IsOccupied = room.CurrentOccupancy >= room.Capacity
	if err := tx.Save(room).Error; err != nil {
		return err
	}

	user.AssignedRoomID = &room.RoomId
	user.CheckedIn = true
	return tx.Save(user).Error
}

// reserveSlot bumps the occupancy counter only while a free slot
// exists. RowsAffected tells whether this request won the slot; a full
// room, even one filled after the caller's read, affects no rows.
func (s *RoomService) reserveSlot(tx *gorm.DB, roomID uint) error {
	res := tx.Model(&models.Room{}).
		Where("room_id = ? AND current_occupancy < capacity", roomID).
		Update("current_occupancy", gorm.Expr("current_occupancy + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeCapacityExceeded, "Room is fully occupied", nil)
	}
	return nil
}

// CheckIn only flips the flag; it does not touch room bookkeeping.
func (s *RoomService) CheckIn(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, userLookupError(err)
	}

	user.CheckedIn = true
	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckOut clears the assignment and releases the room slot. Safe to
// call on an account that is already checked out.
func (s *RoomService) CheckOut(ctx context.Context, userID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return userLookupError(err)
		}

		if user.AssignedRoomID != nil {
			var room models.Room
			if err := tx.First(&room, *user.AssignedRoomID).Error; err == nil {
				room.RemoveOccupant(user.ID)
				room.CurrentOccupancy = room.CurrentOccupancy - 1
				if room.CurrentOccupancy < 0 {
					room.CurrentOccupancy = 0
				}
				room.IsOccupied = room.CurrentOccupancy >= room.Capacity
				if err := tx.Save(&room).Error; err != nil {
					return err
				}
			}
		}

		user.CheckedIn = false
		user.AssignedRoomID = nil
		return tx.Save(&user).Error
	})
	if err != nil {
		return err
	}

	s.flushRoomCache(ctx)
	return nil
}

// RecalculateOccupancy rebuilds every room's counter and occupant set
// from the authoritative assignedRoom links. Exposed as an admin repair
// tool and run nightly by the cron job.
func (s *RoomService) RecalculateOccupancy(ctx context.Context) error {
	var rooms []models.Room
	if err := s.db.WithContext(ctx).Find(&rooms).Error; err != nil {
		return err
	}

	for i := range rooms {
		var userIDs []int64
		if err := s.db.WithContext(ctx).Model(&models.User{}).
			Where("assigned_room_id = ?", rooms[i].RoomId).
			Pluck("id", &userIDs).Error; err != nil {
			return err
		}

		rooms[i].AssignedTo = userIDs
		rooms[i].CurrentOccupancy = len(userIDs)
		rooms[i].IsOccupied = rooms[i].CurrentOccupancy >= rooms[i].Capacity
		if err := s.db.WithContext(ctx).Save(&rooms[i]).Error; err != nil {
			return err
		}
	}

	s.flushRoomCache(ctx)
	s.logger.Info("room occupancy recalculated for %d rooms", len(rooms))
	return nil
}

func userLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewAppError(apperrors.ErrCodeUserNotFound, "User not found", nil)
	}
	return err
}

func roomLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Room not found", nil)
	}
	return err
}
