package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"hotel-ops-backend/config"
	"hotel-ops-backend/controllers"
	"hotel-ops-backend/routes"
	"hotel-ops-backend/services"
	"hotel-ops-backend/viewcache"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		logrus.WithError(err).Fatal("database connect failed")
	}
	db := config.DB
	if db == nil {
		logrus.Fatal("config.DB is nil after ConnectDatabase()")
	}
	logrus.Info("database connection established and migrations applied")

	views := viewcache.NewCoordinator()

	availabilitySvc := services.NewAvailabilityService(db)
	bookingSvc := services.NewBookingService(db, views)
	orderSvc := services.NewFoodOrderService(db, views)
	caseSvc := services.NewCaseService(db, views)
	dashboardSvc := services.NewDashboardService(db)

	roomController := controllers.NewRoomController(availabilitySvc)
	bookingController := controllers.NewBookingController(bookingSvc)
	orderController := controllers.NewFoodOrderController(orderSvc, views)
	caseController := controllers.NewCaseController(caseSvc)
	dashboardController := controllers.NewDashboardController(dashboardSvc, views)

	router := routes.SetupRouter(roomController, bookingController, orderController, caseController, dashboardController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logrus.WithField("addr", addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Fatal("server forced to shutdown")
	}

	logrus.Info("server stopped gracefully")
}
