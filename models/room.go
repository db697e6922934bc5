package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Room struct {
	ID      uint `gorm:"primaryKey" json:"RoomID"`
	HotelID uint `gorm:"column:hotel_id;not null;uniqueIndex:idx_hotel_room_number,priority:1" json:"HotelID"`

	// Room numbers are unique within a hotel, not globally.
	RoomNumber string `json:"RoomNumber" gorm:"column:room_number;type:varchar(50);uniqueIndex:idx_hotel_room_number,priority:2"`
	RoomType   string `json:"RoomType" gorm:"column:room_type;type:varchar(50)"`

	RatePerNight decimal.Decimal `json:"RatePerNight" gorm:"column:rate_per_night;type:decimal(10,2);not null"`
	MaxOccupancy int             `json:"MaxOccupancy" gorm:"column:max_occupancy;default:2"`

	Hotel Hotel `gorm:"foreignKey:HotelID" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
