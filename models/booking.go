package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	BookingStatusConfirmed  = "Confirmed"
	BookingStatusCheckedIn  = "Checked-In"
	BookingStatusCheckedOut = "Checked-Out"
	BookingStatusCancelled  = "Cancelled"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;uniqueIndex;size:64" json:"referenceCode"`
	RoomID        uint   `gorm:"column:room_id;index" json:"roomId"`
	CustomerID    uint   `gorm:"column:customer_id;index" json:"customerId"`

	// Half-open stay range [CheckInDate, CheckOutDate): a checkout on the same
	// day as another booking's check-in does not conflict.
	CheckInDate  datatypes.Date `gorm:"column:check_in_date" json:"checkInDate"`
	CheckOutDate datatypes.Date `gorm:"column:check_out_date" json:"checkOutDate"`

	Guests      int     `gorm:"column:number_of_guests" json:"guests"`
	Nights      int     `gorm:"column:nights" json:"nights"`
	TotalAmount float64 `gorm:"column:total_amount" json:"totalAmount"`
	Status      string  `gorm:"column:status;size:32;index" json:"status"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}

// StayActiveStatuses are the statuses that hold room inventory and allow
// dependent food orders and service requests.
var StayActiveStatuses = []string{BookingStatusConfirmed, BookingStatusCheckedIn}

// StayActive reports whether the booking currently occupies its room's
// date range and accepts dependent orders/requests.
func StayActive(status string) bool {
	return status == BookingStatusConfirmed || status == BookingStatusCheckedIn
}

// BookingTerminal reports whether the status can never transition again.
func BookingTerminal(status string) bool {
	return status == BookingStatusCheckedOut || status == BookingStatusCancelled
}
