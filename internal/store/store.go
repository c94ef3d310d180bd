// Package store is the relational persistence layer the taxonomy service
// reads from and writes to.
package store

import (
	"fmt"

	"gorm.io/gorm"
)

// Store is the persistence contract used by the category service
type Store interface {
	// Insert persists record and fills in its generated primary key. Columns
	// listed in omit are left out of the statement so the database applies
	// its own default (or rejects the row when the column is NOT NULL).
	Insert(record any, omit ...string) error
	// FindByID loads the row with the given primary key into dest
	FindByID(dest any, id uint) (bool, error)
	// FindWhere loads every row whose field equals value. A slice value
	// matches any of its elements.
	FindWhere(dest any, field string, value any) error
	// FindAll loads every row of dest's table in the given order
	FindAll(dest any, order string) error
	// Update writes fields to the row identified by record's primary key
	Update(record any, fields map[string]any) error
	// Delete removes the rows of model's table with the given primary keys
	Delete(model any, ids ...uint) error
	// DeleteWhere removes the rows of model's table whose field equals value
	DeleteWhere(model any, field string, value any) error
	// Transaction runs fn against a store bound to a single transaction
	Transaction(fn func(Store) error) error
}

// GormStore implements Store on top of a *gorm.DB
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM backed store
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// DB returns the underlying connection
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

func (s *GormStore) Insert(record any, omit ...string) error {
	tx := s.db
	if len(omit) > 0 {
		tx = tx.Omit(omit...)
	}
	if err := tx.Create(record).Error; err != nil {
		return Translate(err)
	}
	return nil
}

// FindByID reports a missing row as false rather than through
// gorm.ErrRecordNotFound, which gorm's default logger prints as an error.
func (s *GormStore) FindByID(dest any, id uint) (bool, error) {
	result := s.db.Limit(1).Find(dest, id)
	if result.Error != nil {
		return false, fmt.Errorf("failed to find record %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (s *GormStore) FindWhere(dest any, field string, value any) error {
	if err := s.db.Where(map[string]any{field: value}).Order("id ASC").Find(dest).Error; err != nil {
		return fmt.Errorf("failed to query by %s: %w", field, err)
	}
	return nil
}

func (s *GormStore) FindAll(dest any, order string) error {
	tx := s.db
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Find(dest).Error; err != nil {
		return fmt.Errorf("failed to query records: %w", err)
	}
	return nil
}

func (s *GormStore) Update(record any, fields map[string]any) error {
	if err := s.db.Model(record).Updates(fields).Error; err != nil {
		return Translate(err)
	}
	return nil
}

func (s *GormStore) Delete(model any, ids ...uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := s.db.Delete(model, ids).Error; err != nil {
		return Translate(err)
	}
	return nil
}

func (s *GormStore) DeleteWhere(model any, field string, value any) error {
	if err := s.db.Where(map[string]any{field: value}).Delete(model).Error; err != nil {
		return Translate(err)
	}
	return nil
}

func (s *GormStore) Transaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
