package models

import "time"

// Taxon is a single node of a taxonomy tree. Relations are resolved
// explicitly through the category service, not through GORM associations.
type Taxon struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TaxonomyID uint      `gorm:"not null;index" json:"taxonomy_id"`
	ParentID   *uint     `gorm:"index" json:"parent_id"`
	Name       string    `gorm:"not null;size:255" json:"name"`
	Slug       string    `gorm:"size:255" json:"slug"`
	Priority   *int      `json:"priority"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName returns the table name for Taxon
func (Taxon) TableName() string {
	return "taxons"
}

// IsRoot reports whether the taxon sits at the top level of its taxonomy
func (t Taxon) IsRoot() bool {
	return t.ParentID == nil
}
