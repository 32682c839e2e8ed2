package controllers

import (
	"net/http"

	"hotel-ops-backend/models"
	"hotel-ops-backend/services"
	"hotel-ops-backend/utils"
	"hotel-ops-backend/viewcache"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type PlaceOrderRequest struct {
	BookingID    uint                      `json:"bookingId" binding:"required"`
	SpecialNotes string                    `json:"specialNotes"`
	Items        []services.OrderItemInput `json:"items" binding:"required"`
}

type AdvanceOrderRequest struct {
	Status string `json:"status" binding:"required"`
}

type FoodOrderController struct {
	OrderSvc *services.FoodOrderService

	// catalogSub caches the menu; the catalog is reference data for this
	// core, so the subscription has no invalidation dependencies and only
	// refreshes on first use.
	catalogSub *viewcache.Subscription
}

func NewFoodOrderController(svc *services.FoodOrderService, views *viewcache.Coordinator) *FoodOrderController {
	ctrl := &FoodOrderController{OrderSvc: svc}
	ctrl.catalogSub = views.Register(func() (interface{}, error) {
		return svc.GetFoodItems()
	})
	return ctrl
}

// GetFoodItems serves the cached catalog snapshot, refreshing it when stale.
// A failed refresh degrades to the last-known menu.
func (ctrl *FoodOrderController) GetFoodItems(c *gin.Context) {
	snap, err := ctrl.catalogSub.Serve()
	if err != nil {
		logrus.WithError(err).Warn("food catalog refresh failed, serving last-known snapshot")
	}
	if snap == nil {
		snap = []models.FoodItem{}
	}
	utils.JSONSuccess(c, http.StatusOK, snap)
}

func (ctrl *FoodOrderController) PlaceOrder(c *gin.Context) {
	customerID, ok := requireCallerID(c)
	if !ok {
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	order, err := ctrl.OrderSvc.PlaceOrder(customerID, req.BookingID, req.SpecialNotes, req.Items)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, order)
}

func (ctrl *FoodOrderController) CancelOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.OrderSvc.CancelOrder(callerID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id, "status": models.OrderStatusCancelled})
}

func (ctrl *FoodOrderController) AdvanceOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AdvanceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	if err := ctrl.OrderSvc.AdvanceOrder(id, req.Status); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"id": id, "status": req.Status})
}

func (ctrl *FoodOrderController) GetActiveOrders(c *gin.Context) {
	orders, err := ctrl.OrderSvc.GetActiveOrders(callerID(c))
	if err != nil {
		logrus.WithError(err).Warn("active order listing failed, serving empty result")
		utils.JSONSuccess(c, http.StatusOK, []models.FoodOrder{})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, orders)
}

func (ctrl *FoodOrderController) GetOrderHistory(c *gin.Context) {
	orders, err := ctrl.OrderSvc.GetOrderHistory(callerID(c))
	if err != nil {
		logrus.WithError(err).Warn("order history listing failed, serving empty result")
		utils.JSONSuccess(c, http.StatusOK, []models.FoodOrder{})
		return
	}
	utils.JSONSuccess(c, http.StatusOK, orders)
}
