package controllers

import (
	"net/http"

	"hotel-ops-backend/services"
	"hotel-ops-backend/utils"
	"hotel-ops-backend/viewcache"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DashboardController struct {
	// statsSub depends on every mutable entity kind: any booking, food order
	// or case mutation marks it stale, and the next dashboard request
	// re-reads the counts.
	statsSub *viewcache.Subscription
}

func NewDashboardController(svc *services.DashboardService, views *viewcache.Coordinator) *DashboardController {
	sub := views.Register(func() (interface{}, error) {
		return svc.GetDashboardStats(), nil
	},
		viewcache.Dep{Kind: viewcache.KindBooking},
		viewcache.Dep{Kind: viewcache.KindFoodOrder},
		viewcache.Dep{Kind: viewcache.KindCase},
	)
	return &DashboardController{statsSub: sub}
}

func (ctrl *DashboardController) GetDashboardStats(c *gin.Context) {
	snap, err := ctrl.statsSub.Serve()
	if err != nil {
		logrus.WithError(err).Warn("dashboard refresh failed, serving last-known snapshot")
	}
	if snap == nil {
		snap = services.DashboardStats{}
	}
	utils.JSONSuccess(c, http.StatusOK, snap)
}
