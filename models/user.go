package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a staff account. The engine itself never checks credentials; it trusts the
// user id handed to it by the caller.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"UserID"`
	Username string `gorm:"uniqueIndex;size:150" json:"Username"`
	Password string `gorm:"size:255" json:"-"` // bcrypt hash, never returned in JSON
	Role     string `gorm:"size:50" json:"Role"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
