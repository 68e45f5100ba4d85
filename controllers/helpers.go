package controllers

import (
	"strconv"

	"hostel/errors"
	"hostel/response"

	"github.com/gin-gonic/gin"
)

// handleServiceError maps an AppError onto the HTTP envelope. Anything
// that is not an AppError counts as an internal failure.
func handleServiceError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		switch appErr.Code {
		case errors.ErrCodeUserNotFound, errors.ErrCodeRoomNotFound, errors.ErrCodeDBNotFound:
			response.NotFoundMessage(c, appErr.Message)
		case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken, errors.ErrCodeMissingToken:
			response.Unauthorized(c)
		default:
			response.BadRequest(c, appErr.Message)
		}
		return
	}
	response.ServerError(c)
}

// currentUserID reads the id the auth middleware stored on the context.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
