package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hospitality-backend/models"
	"hospitality-backend/utils"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

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

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "hospitality_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// Parent tables first so FK creation succeeds.
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Room{},
		&models.Reservation{},
		&models.Bill{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

func mustRate(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		log.Fatalf("Error parsing seed rate %q: %v", s, err)
	}
	return d
}

// SeedDatabase fills empty tables with a usable demo catalog. Each block is
// count-guarded, so restarting against an existing database changes nothing.
func SeedDatabase() {
	// ---------------- Users ----------------
	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("frontdesk123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default staff password: %v", err)
		} else {
			user := models.User{
				Username: "frontdesk",
				Password: string(hash),
				Role:     "Receptionist",
			}
			if err := DB.Create(&user).Error; err != nil {
				log.Printf("warning: failed to create default staff user: %v", err)
			} else {
				log.Println("Default staff user seeded")
			}
		}
	}

	// ---------------- Hotels & Rooms ----------------
	var hotelCount int64
	DB.Model(&models.Hotel{}).Count(&hotelCount)
	if hotelCount > 0 {
		log.Println("Hotels already seeded")
		return
	}

	hotels := []models.Hotel{
		{Name: "Grand Palace Hotel", Address: "1 Riverside Road", Phone: "02-111-2222"},
		{Name: "City Garden Inn", Address: "99 Market Street", Phone: "02-333-4444"},
	}
	if err := DB.Create(&hotels).Error; err != nil {
		log.Fatalf("Failed to seed hotels: %v", err)
	}

	rooms := []models.Room{
		{HotelID: hotels[0].ID, RoomNumber: "101", RoomType: "Standard", RatePerNight: mustRate("100.00"), MaxOccupancy: 2},
		{HotelID: hotels[0].ID, RoomNumber: "102", RoomType: "Standard", RatePerNight: mustRate("100.00"), MaxOccupancy: 2},
		{HotelID: hotels[0].ID, RoomNumber: "201", RoomType: "Deluxe", RatePerNight: mustRate("180.00"), MaxOccupancy: 3},
		{HotelID: hotels[0].ID, RoomNumber: "301", RoomType: "Suite", RatePerNight: mustRate("320.00"), MaxOccupancy: 4},
		{HotelID: hotels[1].ID, RoomNumber: "101", RoomType: "Standard", RatePerNight: mustRate("85.00"), MaxOccupancy: 2},
		{HotelID: hotels[1].ID, RoomNumber: "102", RoomType: "Deluxe", RatePerNight: mustRate("150.00"), MaxOccupancy: 3},
	}
	if err := DB.Create(&rooms).Error; err != nil {
		log.Fatalf("Failed to seed rooms: %v", err)
	}

	log.Println("Hotels and rooms seeded")
}
