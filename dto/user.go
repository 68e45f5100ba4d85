package dto

type CreateUserInput struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	PhoneNumber    string `json:"phoneNumber"`
	Role           int    `json:"role"`
	RoomPreference string `json:"roomPreference"`
}

type UpdateUserInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        *int   `json:"role"`
}

type AssignRoomInput struct {
	RoomID uint `json:"roomId" binding:"required"`
}

type UpdateProfileInput struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Room        string `json:"room"`
}
