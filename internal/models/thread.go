// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Thread is a discussion topic scoped to a category.
type Thread struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Title      string   `gorm:"size:100;not null" json:"title"`
	CategoryID uint     `gorm:"not null;index" json:"category_id"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	Posts []Post `gorm:"foreignKey:ThreadID" json:"posts,omitempty"`
}

// Post is a message inside a thread. Posts carry no author and require no
// authentication, unlike video comments.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ThreadID  uint      `gorm:"not null;index" json:"thread_id"`
	CreatedAt time.Time `json:"created_at"`
}
