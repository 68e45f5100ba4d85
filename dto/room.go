package dto

type RoomInput struct {
	Number   string `json:"number" binding:"required"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity" binding:"required"`
}

type UpdateRoomInput struct {
	Number   string `json:"number"`
	Type     string `json:"type"`
	Capacity *int   `json:"capacity"`
}
