package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-ops-backend/controllers"
	"hotel-ops-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	fc *controllers.FoodOrderController,
	cc *controllers.CaseController,
	dc *controllers.DashboardController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Identity())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Customer-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("/available", rc.GetAvailableRooms)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)

			// fixed segments before /:id so they never shadow each other
			bookings.GET("/confirmed", bc.GetConfirmedBookings)
			bookings.GET("/active", bc.GetActiveBookings)

			bookings.GET("/:id", bc.GetBookingDetails)
			bookings.POST("/:id/cancel", bc.CancelBooking)
			bookings.POST("/:id/checkin", bc.CheckInBooking)
			bookings.POST("/:id/checkout", bc.CheckOutBooking)
		}

		api.GET("/food-items", fc.GetFoodItems)

		orders := api.Group("/food-orders")
		{
			orders.POST("", fc.PlaceOrder)
			orders.GET("/active", fc.GetActiveOrders)
			orders.GET("/history", fc.GetOrderHistory)
			orders.POST("/:id/cancel", fc.CancelOrder)
			orders.POST("/:id/status", fc.AdvanceOrder)
		}

		cases := api.Group("/cases")
		{
			cases.GET("", cc.GetCases)
			cases.POST("", cc.CreateCase)
			cases.POST("/:id/close", cc.CloseCase)
		}

		api.GET("/dashboard/stats", dc.GetDashboardStats)
	}

	return r
}
