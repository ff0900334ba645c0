// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// ReservedAdminUsername is the fixed username that is granted admin rights at
// registration time and seeded as the built-in admin account.
const ReservedAdminUsername = "sota"

// User represents a registered account in the Clipnest application.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:50;unique;not null" json:"username"`
	Password  string    `gorm:"size:200;not null" json:"-"`
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Videos   []Video   `gorm:"foreignKey:UserID" json:"videos,omitempty"`
	Comments []Comment `gorm:"foreignKey:UserID" json:"comments,omitempty"`
}
