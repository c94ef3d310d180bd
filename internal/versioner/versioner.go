package versioner

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// DefaultTable is the ledger table used when none is configured
const DefaultTable = "_taxongorm_migrations"

// MigrationRecord is one applied schema migration
type MigrationRecord struct {
	Version   string    `gorm:"primaryKey;size:64;column:version"`
	Name      string    `gorm:"size:255;column:name"`
	AppliedAt time.Time `gorm:"column:applied_at"`
}

// Versioner keeps the ledger of applied schema migrations
type Versioner struct {
	db    *gorm.DB
	table string
}

// NewVersioner creates a new versioner; an empty table name selects DefaultTable
func NewVersioner(db *gorm.DB, tableName string) *Versioner {
	if tableName == "" {
		tableName = DefaultTable
	}
	return &Versioner{
		db:    db,
		table: tableName,
	}
}

// WithDB returns a copy of the versioner bound to db, typically a transaction
func (v *Versioner) WithDB(db *gorm.DB) *Versioner {
	return &Versioner{db: db, table: v.table}
}

// Table returns the ledger table name
func (v *Versioner) Table() string {
	return v.table
}

// Initialize creates the ledger table if it does not exist yet
func (v *Versioner) Initialize() error {
	if err := v.db.Table(v.table).AutoMigrate(&MigrationRecord{}); err != nil {
		return fmt.Errorf("failed to create migration table: %w", err)
	}
	return nil
}

// GetAppliedVersions returns all applied migration versions in ascending order
func (v *Versioner) GetAppliedVersions() ([]string, error) {
	var records []MigrationRecord
	if err := v.db.Table(v.table).Order("version ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}

	versions := make([]string, len(records))
	for i, r := range records {
		versions[i] = r.Version
	}
	return versions, nil
}

// IsApplied checks if a migration version is already applied
func (v *Versioner) IsApplied(version string) (bool, error) {
	var count int64
	if err := v.db.Table(v.table).Where("version = ?", version).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return count > 0, nil
}

// RecordApplied records a migration as applied
func (v *Versioner) RecordApplied(version, name string) error {
	record := MigrationRecord{
		Version:   version,
		Name:      name,
		AppliedAt: time.Now().UTC(),
	}
	if err := v.db.Table(v.table).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return nil
}

// RemoveApplied removes a migration record (for rollback)
func (v *Versioner) RemoveApplied(version string) error {
	if err := v.db.Table(v.table).Where("version = ?", version).Delete(&MigrationRecord{}).Error; err != nil {
		return fmt.Errorf("failed to remove migration record: %w", err)
	}
	return nil
}

// GetLatestVersion returns the latest applied version, or "" when none
func (v *Versioner) GetLatestVersion() (string, error) {
	var record MigrationRecord
	if err := v.db.Table(v.table).Order("version DESC").First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get latest version: %w", err)
	}
	return record.Version, nil
}

// GetAppliedCount returns the number of applied migrations
func (v *Versioner) GetAppliedCount() (int64, error) {
	var count int64
	if err := v.db.Table(v.table).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count applied migrations: %w", err)
	}
	return count, nil
}
