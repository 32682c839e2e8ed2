package services

import (
	"errors"
	"fmt"

	"hotel-ops-backend/apperrors"
	"hotel-ops-backend/models"
	"hotel-ops-backend/utils"
	"hotel-ops-backend/viewcache"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService owns the booking lifecycle: creation, pricing and every
// status transition. CreateBooking is the serialization point that prevents
// two clients from reserving the same room for overlapping dates.
type BookingService struct {
	DB    *gorm.DB
	Views *viewcache.Coordinator
}

func NewBookingService(db *gorm.DB, views *viewcache.Coordinator) *BookingService {
	return &BookingService{DB: db, Views: views}
}

// CreateBooking validates the request, re-checks availability for the room
// under a row lock, prices the stay and persists it as Confirmed. The
// check-then-reserve sequence runs inside one transaction with the room row
// locked FOR UPDATE, so concurrent attempts on the same room serialize and
// exactly one of two overlapping requests wins.
func (s *BookingService) CreateBooking(customerID, roomID uint, checkIn, checkOut string, guests int) (*models.Booking, error) {
	ci, co, err := parseStayRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if guests < 1 {
		return nil, apperrors.NewValidation("guests", "at least 1 guest is required")
	}

	var booking models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("room", roomID)
			}
			return apperrors.NewBackend("load room", err)
		}

		if guests > room.Capacity {
			return apperrors.NewValidation("guests",
				fmt.Sprintf("maximum %d guests per room", room.Capacity))
		}

		var conflicts int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ?", room.ID).
			Where("status IN ?", models.StayActiveStatuses).
			Where("check_in_date < ? AND check_out_date > ?", co, ci).
			Count(&conflicts).Error; err != nil {
			return apperrors.NewBackend("check room availability", err)
		}
		if conflicts > 0 {
			return apperrors.NewStateConflict("room no longer available for the selected dates")
		}

		nights := utils.Nights(ci, co)
		if nights <= 0 {
			// The range validation above makes this unreachable for caller
			// input; reaching it is a programming error, not a user error.
			return apperrors.NewBackend("compute nights",
				fmt.Errorf("non-positive night count %d for validated range", nights))
		}

		booking = models.Booking{
			ReferenceCode: uuid.NewString(),
			RoomID:        room.ID,
			CustomerID:    customerID,
			CheckInDate:   datatypes.Date(ci),
			CheckOutDate:  datatypes.Date(co),
			Guests:        guests,
			Nights:        nights,
			TotalAmount:   float64(nights) * room.PricePerNight,
			Status:        models.BookingStatusConfirmed,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return apperrors.NewBackend("create booking", err)
		}
		booking.Room = room
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.Views.Invalidate(viewcache.KindBooking, 0)
	s.Views.Invalidate(viewcache.KindRoom, booking.RoomID)
	return &booking, nil
}

func (s *BookingService) GetBookingByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Room").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("booking", bookingID)
		}
		return nil, apperrors.NewBackend("load booking", err)
	}
	return &booking, nil
}

// CancelBooking transitions any non-terminal booking → Cancelled. It does not
// cascade into the booking's food orders or service requests: their own
// status gates block new activity once the booking is no longer active.
// customerID 0 is the staff path; a customer can only cancel their own
// bookings, anyone else's reads as not found.
func (s *BookingService) CancelBooking(customerID, bookingID uint) error {
	return s.transition(customerID, bookingID,
		func(status string) bool { return !models.BookingTerminal(status) },
		models.BookingStatusCancelled,
		"booking already cancelled or checked-out")
}

// CheckInBooking is the staff-driven Confirmed → Checked-In transition.
func (s *BookingService) CheckInBooking(bookingID uint) error {
	return s.transition(0, bookingID,
		func(status string) bool { return status == models.BookingStatusConfirmed },
		models.BookingStatusCheckedIn,
		"only a confirmed booking can be checked in")
}

// CheckOutBooking is the staff-driven Checked-In → Checked-Out transition.
func (s *BookingService) CheckOutBooking(bookingID uint) error {
	return s.transition(0, bookingID,
		func(status string) bool { return status == models.BookingStatusCheckedIn },
		models.BookingStatusCheckedOut,
		"only a checked-in booking can be checked out")
}

// transition applies a status change under a row lock so concurrent
// transitions on the same booking serialize. A disallowed current status
// fails with StateConflictError and mutates nothing.
func (s *BookingService) transition(customerID, bookingID uint, allowed func(string) bool, next, conflictMsg string) error {
	var roomID uint
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("booking", bookingID)
			}
			return apperrors.NewBackend("load booking", err)
		}
		if customerID != 0 && booking.CustomerID != customerID {
			// Not visible to this caller.
			return apperrors.NewNotFound("booking", bookingID)
		}
		if !allowed(booking.Status) {
			return apperrors.NewStateConflict(conflictMsg)
		}
		if err := tx.Model(&booking).Update("status", next).Error; err != nil {
			return apperrors.NewBackend("update booking status", err)
		}
		roomID = booking.RoomID
		return nil
	})
	if txErr != nil {
		return txErr
	}

	s.Views.Invalidate(viewcache.KindBooking, bookingID)
	s.Views.Invalidate(viewcache.KindRoom, roomID)
	return nil
}

// GetUserBookings lists the caller's bookings, newest first.
func (s *BookingService) GetUserBookings(customerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.
		Preload("Room").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, apperrors.NewBackend("list bookings", err)
	}
	return bookings, nil
}

// GetConfirmedBookings is the staff-facing picker: every booking currently
// holding a room (Confirmed or Checked-In), any customer.
func (s *BookingService) GetConfirmedBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.
		Preload("Room").
		Where("status IN ?", models.StayActiveStatuses).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, apperrors.NewBackend("list confirmed bookings", err)
	}
	return bookings, nil
}

// GetActiveBookings lists the caller's Confirmed/Checked-In bookings.
func (s *BookingService) GetActiveBookings(customerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.
		Preload("Room").
		Where("customer_id = ? AND status IN ?", customerID, models.StayActiveStatuses).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, apperrors.NewBackend("list active bookings", err)
	}
	return bookings, nil
}
