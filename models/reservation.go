package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"ReservationID"`

	RoomID uint `gorm:"index;column:room_id;not null" json:"RoomID"`
	UserID uint `gorm:"column:user_id;not null" json:"UserID"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"ReferenceCode"`

	GuestName  string `gorm:"column:guest_name;size:255;not null" json:"GuestName"`
	GuestPhone string `gorm:"column:guest_phone;size:50" json:"GuestPhone,omitempty"`
	GuestEmail string `gorm:"column:guest_email;size:150" json:"GuestEmail,omitempty"`

	// Date-only values stored at midnight UTC; the range is immutable after creation.
	CheckInDate  time.Time `gorm:"column:check_in_date;not null" json:"CheckInDate"`
	CheckOutDate time.Time `gorm:"column:check_out_date;not null" json:"CheckOutDate"`

	Status ReservationStatus `gorm:"column:status;size:32;index;not null" json:"Status"`

	// StatusHistory is an append-only JSON log of applied transitions.
	StatusHistory datatypes.JSON `gorm:"column:status_history" json:"StatusHistory,omitempty"`

	Room Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// StatusChange is one entry of Reservation.StatusHistory.
type StatusChange struct {
	From ReservationStatus `json:"from"`
	To   ReservationStatus `json:"to"`
	At   time.Time         `json:"at"`
}
