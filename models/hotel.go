package models

import (
	"time"

	"gorm.io/gorm"
)

type Hotel struct {
	ID      uint   `gorm:"primaryKey" json:"HotelID"`
	Name    string `gorm:"size:255;not null" json:"HotelName"`
	Address string `gorm:"type:text" json:"Address"`
	Phone   string `gorm:"size:50" json:"Phone"`

	Rooms []Room `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
