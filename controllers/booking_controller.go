package controllers

import (
	"net/http"

	"hotel-ops-backend/models"
	"hotel-ops-backend/services"
	"hotel-ops-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CreateBookingRequest struct {
	RoomID   uint   `json:"roomId" binding:"required"`
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
	Guests   int    `json:"guests" binding:"required"`
}

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	customerID, ok := requireCallerID(c)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	booking, err := ctrl.BookingSvc.CreateBooking(customerID, req.RoomID, req.CheckIn, req.CheckOut, req.Guests)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, booking)
}

func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.GetBookingByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// GetBookings lists the caller's bookings with the same status filters the
// booking list view offers: a concrete status, Active (Confirmed ∪
// Checked-In) or All.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	customerID, ok := requireCallerID(c)
	if !ok {
		return
	}

	bookings, err := ctrl.BookingSvc.GetUserBookings(customerID)
	if err != nil {
		// Read-only listing degrades instead of blocking the view.
		logrus.WithError(err).Warn("booking listing failed, serving empty result")
		utils.JSONSuccess(c, http.StatusOK, []models.Booking{})
		return
	}

	utils.JSONSuccess(c, http.StatusOK, filterBookingsByStatus(bookings, c.Query("status")))
}

func filterBookingsByStatus(bookings []models.Booking, status string) []models.Booking {
	if status == "" || status == "All" {
		return bookings
	}
	filtered := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if status == "Active" {
			if models.StayActive(b.Status) {
				filtered = append(filtered, b)
			}
			continue
		}
		if b.Status == status {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// GetConfirmedBookings feeds the staff pickers (food orders, service
// requests): every booking currently holding a room.
func (ctrl *BookingController) GetConfirmedBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.GetConfirmedBookings()
	if err != nil {
		logrus.WithError(err).Warn("confirmed booking listing failed, serving empty result")
		utils.JSONSuccess(c, http.StatusOK, []models.Booking{})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

func (ctrl *BookingController) GetActiveBookings(c *gin.Context) {
	customerID, ok := requireCallerID(c)
	if !ok {
		return
	}
	bookings, err := ctrl.BookingSvc.GetActiveBookings(customerID)
	if err != nil {
		logrus.WithError(err).Warn("active booking listing failed, serving empty result")
		utils.JSONSuccess(c, http.StatusOK, []models.Booking{})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.CancelBooking(callerID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id, "status": models.BookingStatusCancelled})
}

func (ctrl *BookingController) CheckInBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.CheckInBooking(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id, "status": models.BookingStatusCheckedIn})
}

func (ctrl *BookingController) CheckOutBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.CheckOutBooking(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id, "status": models.BookingStatusCheckedOut})
}
