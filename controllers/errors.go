package controllers

import (
	"errors"
	"log"
	"net/http"

	"hospitality-backend/services"
	"hospitality-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondEngineError is the single place engine errors become HTTP statuses.
// Storage internals never reach the client.
func respondEngineError(c *gin.Context, err error) {
	if ve := services.IsValidationError(err); ve != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "validation failed",
			"fields":  ve.Fields(),
		})
		return
	}
	if services.IsNotFound(err) {
		utils.JSONError(c, http.StatusNotFound, err.Error())
		return
	}
	if ru := services.IsRoomUnavailable(err); ru != nil {
		c.JSON(http.StatusConflict, gin.H{
			"success":                 false,
			"message":                 "room is not available for the selected dates",
			"conflictingReservations": ru.ConflictingCount,
		})
		return
	}
	if it := services.IsInvalidTransition(err); it != nil {
		c.JSON(http.StatusConflict, gin.H{
			"success":   false,
			"message":   "invalid status transition",
			"current":   it.Current,
			"requested": it.Requested,
		})
		return
	}
	if errors.Is(err, services.ErrStorageConflict) {
		utils.JSONError(c, http.StatusServiceUnavailable, "temporary contention, please retry")
		return
	}

	log.Printf("❌ internal error: %v", err)
	utils.JSONError(c, http.StatusInternalServerError, "Server error")
}
