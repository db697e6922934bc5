package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "Unpaid"
	PaymentPaid   PaymentStatus = "Paid"
)

// Bill is written once at checkout and never mutated afterwards (payment status aside).
type Bill struct {
	ID            uint `gorm:"primaryKey" json:"BillID"`
	ReservationID uint `gorm:"column:reservation_id;uniqueIndex;not null" json:"ReservationID"`

	Nights int `gorm:"column:nights;not null" json:"Nights"`

	// RatePerNight is the room's rate at checkout time, not at booking time.
	RatePerNight decimal.Decimal `gorm:"column:rate_per_night;type:decimal(10,2);not null" json:"RatePerNight"`
	TotalAmount  decimal.Decimal `gorm:"column:total_amount;type:decimal(12,2);not null" json:"TotalAmount"`

	PaymentStatus PaymentStatus `gorm:"column:payment_status;size:32;default:Unpaid" json:"PaymentStatus"`

	CreatedAt time.Time `json:"created_at"`
}
