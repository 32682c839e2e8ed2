package services

import (
	"hotel-ops-backend/apperrors"
	"hotel-ops-backend/models"

	"gorm.io/gorm"
)

// AvailabilityService answers "which rooms of this type are free for these
// dates". An empty result means no inventory, not an error.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// FindAvailableRooms returns every room of the given type with no Confirmed
// or Checked-In booking overlapping the half-open range [checkIn, checkOut),
// in room creation order.
func (s *AvailabilityService) FindAvailableRooms(roomType, checkIn, checkOut string) ([]models.Room, error) {
	if !models.ValidRoomType(roomType) {
		return nil, apperrors.NewValidation("roomType", "room type must be Single, Double or Suite")
	}
	ci, co, err := parseStayRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	var rooms []models.Room
	if err := s.DB.
		Where("room_type = ?", roomType).
		Order("id ASC").
		Find(&rooms).Error; err != nil {
		return nil, apperrors.NewBackend("list rooms", err)
	}

	// One pass over the holding bookings instead of a query per room.
	var busyRoomIDs []uint
	if err := s.DB.Model(&models.Booking{}).
		Where("status IN ?", models.StayActiveStatuses).
		Where("check_in_date < ? AND check_out_date > ?", co, ci).
		Pluck("room_id", &busyRoomIDs).Error; err != nil {
		return nil, apperrors.NewBackend("list conflicting bookings", err)
	}

	busy := make(map[uint]struct{}, len(busyRoomIDs))
	for _, id := range busyRoomIDs {
		busy[id] = struct{}{}
	}

	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if _, taken := busy[room.ID]; !taken {
			available = append(available, room)
		}
	}
	return available, nil
}
