package models

import (
	"gorm.io/gorm"
)

const (
	RoomTypeSingle = "Single"
	RoomTypeDouble = "Double"
	RoomTypeSuite  = "Suite"
)

// DefaultRoomCapacity is the guest ceiling every seeded room carries.
const DefaultRoomCapacity = 4

// Room is reference data for this service: created by seeding (or an external
// inventory tool), never mutated by the booking flow.
type Room struct {
	gorm.Model

	RoomNumber    string  `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Type          string  `json:"type" gorm:"column:room_type;size:32;index"`
	PricePerNight float64 `json:"pricePerNight" gorm:"column:price_per_night"`
	Capacity      int     `json:"capacity" gorm:"column:capacity;default:4"`
}

func ValidRoomType(t string) bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite:
		return true
	}
	return false
}
