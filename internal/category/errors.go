package category

import (
	"errors"
	"fmt"

	"github.com/pankajredekar/taxongorm/internal/store"
)

// Sentinel errors for broad classification.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrCycle      = errors.New("taxon cannot be its own ancestor")

	// ErrConstraint is the storage-layer rejection sentinel
	ErrConstraint = store.ErrConstraint
)

// ValidationError reports a field that was rejected before reaching storage
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func required(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "required"}
}

// NotFoundError names the missing record
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// missingReference is the foreign key failure reported when a referenced row
// is checked for and not found before the insert is attempted
func missingReference(table, column string) *store.ConstraintViolation {
	return &store.ConstraintViolation{Kind: store.ForeignKey, Table: table, Column: column}
}

// withTable fills in the table of a constraint violation when the driver
// did not report one
func withTable(err error, table string) error {
	var cv *store.ConstraintViolation
	if errors.As(err, &cv) && cv.Table == "" {
		cv.Table = table
	}
	return err
}
