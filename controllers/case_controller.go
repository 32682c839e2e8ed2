package controllers

import (
	"net/http"

	"hotel-ops-backend/models"
	"hotel-ops-backend/services"
	"hotel-ops-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CreateCaseRequest struct {
	BookingID   uint   `json:"bookingId" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	Comments    string `json:"comments" binding:"required"`
	RequestType string `json:"requestType" binding:"required"`
}

type CaseController struct {
	CaseSvc *services.CaseService
}

func NewCaseController(svc *services.CaseService) *CaseController {
	return &CaseController{CaseSvc: svc}
}

func (ctrl *CaseController) CreateCase(c *gin.Context) {
	var req CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	request, err := ctrl.CaseSvc.CreateCase(req.BookingID, req.Subject, req.Comments, req.RequestType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, request)
}

func (ctrl *CaseController) CloseCase(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.CaseSvc.CloseCase(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id, "status": models.CaseStatusClosed})
}

func (ctrl *CaseController) GetCases(c *gin.Context) {
	cases, err := ctrl.CaseSvc.GetCases()
	if err != nil {
		logrus.WithError(err).Warn("case listing failed, serving empty result")
		utils.JSONSuccess(c, http.StatusOK, []models.ServiceRequest{})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, cases)
}
