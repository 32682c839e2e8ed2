package controllers

import (
	"net/http"

	"hotel-ops-backend/services"
	"hotel-ops-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	AvailabilitySvc *services.AvailabilityService
}

func NewRoomController(svc *services.AvailabilityService) *RoomController {
	return &RoomController{AvailabilitySvc: svc}
}

// GetAvailableRooms answers the reservation form's room search. An empty list
// is a valid "no inventory" answer, distinct from a validation failure.
func (ctrl *RoomController) GetAvailableRooms(c *gin.Context) {
	rooms, err := ctrl.AvailabilitySvc.FindAvailableRooms(
		c.Query("type"),
		c.Query("check_in"),
		c.Query("check_out"),
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}
