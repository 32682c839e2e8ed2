package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-ops-backend/apperrors"
	"hotel-ops-backend/middleware"
	"hotel-ops-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, rec
}

func TestRespondServiceError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", apperrors.NewValidation("checkIn", "bad date"), http.StatusBadRequest},
		{"not found", apperrors.NewNotFound("booking", 7), http.StatusNotFound},
		{"state conflict", apperrors.NewStateConflict("already cancelled"), http.StatusConflict},
		{"backend", apperrors.NewBackend("load booking", errors.New("gone")), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := testContext()
			respondServiceError(c, tc.err)
			assert.Equal(t, tc.code, rec.Code)
			assert.Contains(t, rec.Body.String(), `"success":false`)
		})
	}

	t.Run("validation response names the field", func(t *testing.T) {
		c, rec := testContext()
		respondServiceError(c, apperrors.NewValidation("guests", "too many"))
		assert.Contains(t, rec.Body.String(), `"field":"guests"`)
	})

	t.Run("wrapped service errors still map", func(t *testing.T) {
		c, rec := testContext()
		wrapped := apperrors.NewBackend("cancel booking", apperrors.NewStateConflict("already cancelled"))
		respondServiceError(c, wrapped)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestParseIDParam(t *testing.T) {
	run := func(raw string) (uint, bool, *httptest.ResponseRecorder) {
		c, rec := testContext()
		c.Params = gin.Params{{Key: "id", Value: raw}}
		id, ok := parseIDParam(c, "id")
		return id, ok, rec
	}

	t.Run("valid", func(t *testing.T) {
		id, ok, _ := run("42")
		require.True(t, ok)
		assert.Equal(t, uint(42), id)
	})

	for _, raw := range []string{"0", "-1", "abc", ""} {
		t.Run("rejects "+raw, func(t *testing.T) {
			_, ok, rec := run(raw)
			assert.False(t, ok)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRequireCallerID(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		c, _ := testContext()
		c.Set(middleware.CustomerIDKey, uint(42))
		id, ok := requireCallerID(c)
		require.True(t, ok)
		assert.Equal(t, uint(42), id)
	})

	t.Run("missing", func(t *testing.T) {
		c, rec := testContext()
		_, ok := requireCallerID(c)
		assert.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestFilterBookingsByStatus(t *testing.T) {
	bookings := []models.Booking{
		{Status: models.BookingStatusConfirmed},
		{Status: models.BookingStatusCheckedIn},
		{Status: models.BookingStatusCheckedOut},
		{Status: models.BookingStatusCancelled},
	}

	t.Run("empty keeps all", func(t *testing.T) {
		assert.Len(t, filterBookingsByStatus(bookings, ""), 4)
	})

	t.Run("All keeps all", func(t *testing.T) {
		assert.Len(t, filterBookingsByStatus(bookings, "All"), 4)
	})

	t.Run("Active keeps confirmed and checked-in", func(t *testing.T) {
		got := filterBookingsByStatus(bookings, "Active")
		require.Len(t, got, 2)
		assert.Equal(t, models.BookingStatusConfirmed, got[0].Status)
		assert.Equal(t, models.BookingStatusCheckedIn, got[1].Status)
	})

	t.Run("exact status", func(t *testing.T) {
		got := filterBookingsByStatus(bookings, models.BookingStatusCancelled)
		require.Len(t, got, 1)
		assert.Equal(t, models.BookingStatusCancelled, got[0].Status)
	})

	t.Run("unknown status matches nothing", func(t *testing.T) {
		assert.Empty(t, filterBookingsByStatus(bookings, "Pending"))
	})
}
