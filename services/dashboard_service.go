package services

import (
	"hotel-ops-backend/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DashboardStats are the aggregate counts the staff dashboard shows.
type DashboardStats struct {
	TotalRooms         int64 `json:"totalRooms"`
	TotalBookings      int64 `json:"totalBookings"`
	ActiveBookings     int64 `json:"activeBookings"`
	CancelledBookings  int64 `json:"cancelledBookings"`
	CheckedOutBookings int64 `json:"checkedOutBookings"`
	TotalOrders        int64 `json:"totalOrders"`
	ActiveOrders       int64 `json:"activeOrders"`
	CompletedOrders    int64 `json:"completedOrders"`
	TotalCases         int64 `json:"totalCases"`
	OpenCases          int64 `json:"openCases"`
}

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

// GetDashboardStats never fails the caller: a count that errors is logged
// and left at zero, so a flaky secondary view cannot block the rest of the
// dashboard. Mutating paths must not copy this policy.
func (s *DashboardService) GetDashboardStats() DashboardStats {
	var stats DashboardStats

	count := func(name string, q *gorm.DB, out *int64) {
		if err := q.Count(out).Error; err != nil {
			logrus.WithError(err).WithField("stat", name).Warn("dashboard count failed")
			*out = 0
		}
	}

	count("totalRooms", s.DB.Model(&models.Room{}), &stats.TotalRooms)
	count("totalBookings", s.DB.Model(&models.Booking{}), &stats.TotalBookings)
	count("activeBookings", s.DB.Model(&models.Booking{}).
		Where("status IN ?", models.StayActiveStatuses), &stats.ActiveBookings)
	count("cancelledBookings", s.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusCancelled), &stats.CancelledBookings)
	count("checkedOutBookings", s.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusCheckedOut), &stats.CheckedOutBookings)
	count("totalOrders", s.DB.Model(&models.FoodOrder{}), &stats.TotalOrders)
	count("activeOrders", s.DB.Model(&models.FoodOrder{}).
		Where("status IN ?", models.ActiveOrderStatuses), &stats.ActiveOrders)
	count("completedOrders", s.DB.Model(&models.FoodOrder{}).
		Where("status IN ?", []string{models.OrderStatusCompleted, models.OrderStatusReached}), &stats.CompletedOrders)
	count("totalCases", s.DB.Model(&models.ServiceRequest{}), &stats.TotalCases)
	count("openCases", s.DB.Model(&models.ServiceRequest{}).
		Where("status = ?", models.CaseStatusOpen), &stats.OpenCases)

	return stats
}
