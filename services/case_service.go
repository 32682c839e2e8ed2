package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-ops-backend/apperrors"
	"hotel-ops-backend/models"
	"hotel-ops-backend/viewcache"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CaseService owns service requests (cases) filed against bookings.
type CaseService struct {
	DB    *gorm.DB
	Views *viewcache.Coordinator
}

func NewCaseService(db *gorm.DB, views *viewcache.Coordinator) *CaseService {
	return &CaseService{DB: db, Views: views}
}

// CreateCase files a service request against an active stay. Subject,
// comments and request type are all required.
func (s *CaseService) CreateCase(bookingID uint, subject, comments, requestType string) (*models.ServiceRequest, error) {
	subject = strings.TrimSpace(subject)
	comments = strings.TrimSpace(comments)
	requestType = strings.TrimSpace(requestType)

	if subject == "" {
		return nil, apperrors.NewValidation("subject", "subject is required")
	}
	if comments == "" {
		return nil, apperrors.NewValidation("comments", "comments are required")
	}
	if !models.ValidRequestType(requestType) {
		return nil, apperrors.NewValidation("requestType",
			"request type must be Cleaning, Maintenance, Billing, Room Service or Refund")
	}

	var request models.ServiceRequest
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
		if !models.StayActive(booking.Status) {
			return apperrors.NewStateConflict(
				fmt.Sprintf("cannot file a service request against a %s booking", booking.Status))
		}

		request = models.ServiceRequest{
			BookingID:   bookingID,
			Subject:     subject,
			Comments:    comments,
			RequestType: requestType,
			Status:      models.CaseStatusOpen,
		}
		if err := tx.Create(&request).Error; err != nil {
			return apperrors.NewBackend("create service request", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.Views.Invalidate(viewcache.KindCase, 0)
	return &request, nil
}

// CloseCase is the staff-side Open → Closed transition.
func (s *CaseService) CloseCase(caseID uint) error {
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var request models.ServiceRequest
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&request, caseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("service request", caseID)
			}
			return apperrors.NewBackend("load service request", err)
		}
		if request.Status != models.CaseStatusOpen {
			return apperrors.NewStateConflict("service request is already closed")
		}
		if err := tx.Model(&request).Update("status", models.CaseStatusClosed).Error; err != nil {
			return apperrors.NewBackend("update service request status", err)
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	s.Views.Invalidate(viewcache.KindCase, caseID)
	return nil
}

// GetCases returns every case, most recent first: the staff-facing order.
func (s *CaseService) GetCases() ([]models.ServiceRequest, error) {
	var cases []models.ServiceRequest
	if err := s.DB.
		Preload("Booking").
		Preload("Booking.Room").
		Order("created_at DESC").
		Find(&cases).Error; err != nil {
		return nil, apperrors.NewBackend("list service requests", err)
	}
	return cases, nil
}
