package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-ops-backend/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_ops")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase is idempotent: it only inserts reference data missing from the
// target, so restarts never duplicate rooms or menu items.
func SeedDatabase() {
	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{RoomNumber: "101", Type: models.RoomTypeSingle, PricePerNight: 1000, Capacity: models.DefaultRoomCapacity},
			{RoomNumber: "102", Type: models.RoomTypeSingle, PricePerNight: 1000, Capacity: models.DefaultRoomCapacity},
			{RoomNumber: "201", Type: models.RoomTypeDouble, PricePerNight: 1800, Capacity: models.DefaultRoomCapacity},
			{RoomNumber: "202", Type: models.RoomTypeDouble, PricePerNight: 1800, Capacity: models.DefaultRoomCapacity},
			{RoomNumber: "301", Type: models.RoomTypeSuite, PricePerNight: 3500, Capacity: models.DefaultRoomCapacity},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			logrus.WithError(err).Warn("failed to seed rooms")
		} else {
			logrus.Info("rooms seeded")
		}
	}

	var itemCount int64
	DB.Model(&models.FoodItem{}).Count(&itemCount)
	if itemCount == 0 {
		items := []models.FoodItem{
			{Name: "Club Sandwich", Price: 250},
			{Name: "Margherita Pizza", Price: 400},
			{Name: "Paneer Tikka", Price: 320},
			{Name: "Masala Chai", Price: 60},
			{Name: "Fresh Juice", Price: 120},
		}
		if err := DB.Create(&items).Error; err != nil {
			logrus.WithError(err).Warn("failed to seed food items")
		} else {
			logrus.Info("food catalog seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	gormLogger := logger.New(
		log.New(logrus.StandardLogger().Writer(), "", 0),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.Room{},
		&models.Booking{},
		&models.FoodItem{},
		&models.FoodOrder{},
		&models.FoodOrderItem{},
		&models.ServiceRequest{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
