package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-ops-backend/apperrors"
	"hotel-ops-backend/middleware"
	"hotel-ops-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Mutating failures always surface; listing handlers that want to degrade
// instead call degradeListError.
func respondServiceError(c *gin.Context, err error) {
	var vErr *apperrors.ValidationError
	var nfErr *apperrors.NotFoundError
	var scErr *apperrors.StateConflictError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "error.validation",
				"field":   vErr.Field,
				"message": vErr.Message,
			},
		})
	case errors.As(err, &nfErr):
		utils.JSONError(c, http.StatusNotFound, "error.notFound", nfErr.Error())
	case errors.As(err, &scErr):
		utils.JSONError(c, http.StatusConflict, "error.stateConflict", scErr.Message)
	default:
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", err.Error())
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}

// callerID returns the customer identity the auth layer injected, or 0 when
// the request carries none (staff endpoints).
func callerID(c *gin.Context) uint {
	return c.GetUint(middleware.CustomerIDKey)
}

// requireCallerID rejects requests with no caller identity.
func requireCallerID(c *gin.Context) (uint, bool) {
	id := callerID(c)
	if id == 0 {
		utils.JSONError(c, http.StatusUnauthorized, "error.missingIdentity",
			"caller identity is required for this operation")
		return 0, false
	}
	return id, true
}
