package models

import "time"

// Taxonomy is a named grouping (e.g. "Category", "Brand") that owns a forest of taxons
type Taxonomy struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:255" json:"name"`
	Slug      string    `gorm:"size:255" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for Taxonomy
func (Taxonomy) TableName() string {
	return "taxonomies"
}
