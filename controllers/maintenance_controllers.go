package controllers

import (
	"hostel/dto"
	"hostel/response"
	"hostel/services"

	"github.com/gin-gonic/gin"
)

// MaintenanceController covers the staff/admin side of the ticket
// workflow. Residents file tickets through the resident surface.
type MaintenanceController struct {
	maintenanceService *services.MaintenanceService
}

func NewMaintenanceController(maintenanceService *services.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{maintenanceService: maintenanceService}
}

func (ctrl *MaintenanceController) GetMaintenance(c *gin.Context) {
	tickets, err := ctrl.maintenanceService.ListByStatus(c.Request.Context(), c.Query("status"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, tickets)
}

func (ctrl *MaintenanceController) SearchMaintenance(c *gin.Context) {
	tickets, err := ctrl.maintenanceService.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, tickets)
}

func (ctrl *MaintenanceController) UpdateMaintenance(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input dto.UpdateMaintenanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ticket, err := ctrl.maintenanceService.UpdateStatus(c.Request.Context(), id, input.Status, input.ResolutionNotes, input.AssignedTo)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "Maintenance request updated", ticket)
}

func (ctrl *MaintenanceController) DeleteMaintenance(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.maintenanceService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SuccessWithMessage(c, "Maintenance request deleted", nil)
}
