package models

import (
	"gorm.io/gorm"
)

const (
	CaseStatusOpen   = "Open"
	CaseStatusClosed = "Closed"
)

const (
	RequestTypeCleaning    = "Cleaning"
	RequestTypeMaintenance = "Maintenance"
	RequestTypeBilling     = "Billing"
	RequestTypeRoomService = "Room Service"
	RequestTypeRefund      = "Refund"
)

// ServiceRequest is a staff-visible case filed by a guest against a booking.
type ServiceRequest struct {
	gorm.Model

	BookingID   uint   `gorm:"column:booking_id;index" json:"bookingId"`
	Subject     string `gorm:"column:subject;size:255" json:"subject"`
	Comments    string `gorm:"column:comments;type:text" json:"comments"`
	RequestType string `gorm:"column:request_type;size:32" json:"requestType"`
	Status      string `gorm:"column:status;size:16;index" json:"status"`

	Booking Booking `gorm:"foreignKey:BookingID;references:ID" json:"booking,omitempty"`
}

func ValidRequestType(t string) bool {
	switch t {
	case RequestTypeCleaning, RequestTypeMaintenance, RequestTypeBilling,
		RequestTypeRoomService, RequestTypeRefund:
		return true
	}
	return false
}
