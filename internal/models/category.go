// Package models contains data structures for the application's domain models.
package models

// Category is a top-level grouping (genre) for videos and discussion threads.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;unique;not null" json:"name"`

	Videos  []Video  `gorm:"foreignKey:CategoryID" json:"videos,omitempty"`
	Threads []Thread `gorm:"foreignKey:CategoryID" json:"threads,omitempty"`
}

// DefaultCategories are created on first startup when the table is empty.
var DefaultCategories = []string{"Life", "War"}
