package services

import (
	"testing"

	"hotel-ops-backend/apperrors"
	"hotel-ops-backend/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAvailableRoomsValidation(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAvailabilityService(db)

	t.Run("unknown room type", func(t *testing.T) {
		_, err := svc.FindAvailableRooms("Penthouse", futureDate(3), futureDate(5))
		require.Error(t, err)
		var vErr *apperrors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "roomType", vErr.Field)
	})

	t.Run("check-in in the past", func(t *testing.T) {
		_, err := svc.FindAvailableRooms(models.RoomTypeSingle, "2020-01-01", futureDate(5))
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("checkout equal to check-in", func(t *testing.T) {
		_, err := svc.FindAvailableRooms(models.RoomTypeSingle, futureDate(3), futureDate(3))
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAvailableRoomsFiltersConflicts(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAvailabilityService(db)

	rooms := sqlmock.NewRows(roomColumns)
	roomRow(rooms, 1, "101", models.RoomTypeSingle, 1000, 4)
	roomRow(rooms, 2, "102", models.RoomTypeSingle, 1000, 4)
	mock.ExpectQuery("SELECT (.+) FROM `rooms`").WillReturnRows(rooms)

	// Room 1 has a holding booking overlapping the requested range.
	mock.ExpectQuery("SELECT `room_id` FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"room_id"}).AddRow(1))

	available, err := svc.FindAvailableRooms(models.RoomTypeSingle, futureDate(7), futureDate(10))
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, uint(2), available[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAvailableRoomsEmptyIsNotAnError(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAvailabilityService(db)

	rooms := sqlmock.NewRows(roomColumns)
	roomRow(rooms, 1, "301", models.RoomTypeSuite, 3500, 4)
	mock.ExpectQuery("SELECT (.+) FROM `rooms`").WillReturnRows(rooms)
	mock.ExpectQuery("SELECT `room_id` FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"room_id"}).AddRow(1))

	available, err := svc.FindAvailableRooms(models.RoomTypeSuite, futureDate(7), futureDate(10))
	require.NoError(t, err)
	assert.Empty(t, available, "no inventory is a valid result, not a failure")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAvailableRoomsKeepsCreationOrder(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAvailabilityService(db)

	rooms := sqlmock.NewRows(roomColumns)
	roomRow(rooms, 1, "201", models.RoomTypeDouble, 1800, 4)
	roomRow(rooms, 2, "202", models.RoomTypeDouble, 1800, 4)
	roomRow(rooms, 3, "203", models.RoomTypeDouble, 1800, 4)
	mock.ExpectQuery("SELECT (.+) FROM `rooms`").WillReturnRows(rooms)
	mock.ExpectQuery("SELECT `room_id` FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"room_id"}))

	available, err := svc.FindAvailableRooms(models.RoomTypeDouble, futureDate(7), futureDate(10))
	require.NoError(t, err)
	require.Len(t, available, 3)
	assert.Equal(t, []uint{1, 2, 3}, []uint{available[0].ID, available[1].ID, available[2].ID})
}
