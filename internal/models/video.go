// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Video represents an uploaded video in the Clipnest application.
// Filename and Thumbnail are relative paths under the upload root
// (e.g. "Life/a.mp4" and "thumbnails/a.mp4_thumb.jpg").
type Video struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:100;not null" json:"title"`
	Filename   string    `gorm:"size:200;not null" json:"filename"`
	Thumbnail  string    `gorm:"size:200;not null" json:"thumbnail"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	Category   Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ViewCount  int       `gorm:"default:0" json:"view_count"`
	CreatedAt  time.Time `json:"created_at"`

	Comments []Comment `gorm:"foreignKey:VideoID" json:"comments,omitempty"`
}
