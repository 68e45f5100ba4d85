package dto

type CreateMaintenanceInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type UpdateMaintenanceInput struct {
	Status          string `json:"status" binding:"required"`
	ResolutionNotes string `json:"resolutionNotes"`
	AssignedTo      *uint  `json:"assignedTo"`
}
