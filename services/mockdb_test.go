package services

import (
	"testing"
	"time"

	"hotel-ops-backend/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB opens gorm over a sqlmock connection so service logic and the
// shape of its SQL can be exercised without a live MySQL.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

var (
	roomColumns = []string{
		"id", "created_at", "updated_at", "deleted_at",
		"room_number", "room_type", "price_per_night", "capacity",
	}
	bookingColumns = []string{
		"id", "created_at", "updated_at", "deleted_at",
		"reference_code", "room_id", "customer_id",
		"check_in_date", "check_out_date",
		"number_of_guests", "nights", "total_amount", "status",
	}
	orderColumns = []string{
		"id", "created_at", "updated_at", "deleted_at",
		"booking_id", "special_notes", "status",
	}
	foodItemColumns = []string{
		"id", "created_at", "updated_at", "deleted_at", "name", "price",
	}
	caseColumns = []string{
		"id", "created_at", "updated_at", "deleted_at",
		"booking_id", "subject", "comments", "request_type", "status",
	}
)

func roomRow(mockRows *sqlmock.Rows, id uint, number, roomType string, price float64, capacity int) *sqlmock.Rows {
	now := time.Now()
	return mockRows.AddRow(id, now, now, nil, number, roomType, price, capacity)
}

func bookingRow(mockRows *sqlmock.Rows, id, roomID, customerID uint, status string) *sqlmock.Rows {
	now := time.Now()
	ci := utils.Today().AddDate(0, 0, 7)
	co := ci.AddDate(0, 0, 3)
	return mockRows.AddRow(id, now, now, nil, "ref", roomID, customerID, ci, co, 2, 3, 3000.0, status)
}

// futureDate formats a day N days from today in the wire layout.
func futureDate(days int) string {
	return utils.Today().AddDate(0, 0, days).Format(utils.DateLayout)
}

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count(*)"}).AddRow(n)
}
