package services

import (
	"time"

	"hotel-ops-backend/apperrors"
	"hotel-ops-backend/utils"
)

// parseStayRange validates a yyyy-mm-dd check-in/check-out pair the same way
// for availability search and booking creation: parseable, check-in not in
// the past, check-out strictly after check-in.
func parseStayRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	ci, err := utils.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidation("checkIn", err.Error())
	}
	co, err := utils.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidation("checkOut", err.Error())
	}
	if utils.BeforeToday(ci) {
		return time.Time{}, time.Time{}, apperrors.NewValidation("checkIn", "check-in date cannot be in the past")
	}
	if !co.After(ci) {
		return time.Time{}, time.Time{}, apperrors.NewValidation("checkOut", "checkout must be after check-in")
	}
	return ci, co, nil
}
