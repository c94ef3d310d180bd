// Package category implements taxonomies and their taxon trees on top of
// the store package.
package category

import (
	"github.com/pankajredekar/taxongorm/internal/logger"
	"github.com/pankajredekar/taxongorm/internal/store"
)

// Options tune which rules are checked in Go before a write reaches storage
type Options struct {
	// SameTaxonomyParent rejects parents that belong to another taxonomy
	SameTaxonomyParent bool
	// DeferValidation skips the required field checks and lets the
	// database NOT NULL constraints reject the row instead
	DeferValidation bool
	Logger          *logger.Logger
}

// Service manages taxonomies and taxons
type Service struct {
	store store.Store
	opts  Options
	log   *logger.Logger
}

// NewService creates a new category service
func NewService(s store.Store, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		store: s,
		opts:  opts,
		log:   log,
	}
}

// withStore returns a copy of the service bound to s, typically a transaction
func (svc *Service) withStore(s store.Store) *Service {
	clone := *svc
	clone.store = s
	return &clone
}

// transaction runs fn with a service bound to a single transaction
func (svc *Service) transaction(fn func(*Service) error) error {
	return svc.store.Transaction(func(tx store.Store) error {
		return fn(svc.withStore(tx))
	})
}
