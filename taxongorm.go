// Package taxongorm manages taxonomies and their trees of taxons on top of
// GORM. Taxon names are turned into URL-safe slugs at creation time, and the
// taxonomy and parent references are enforced both in Go and by the schema.
package taxongorm

import (
	"github.com/pankajredekar/taxongorm/internal/category"
	"github.com/pankajredekar/taxongorm/internal/migrations"
	"github.com/pankajredekar/taxongorm/internal/models"
	"github.com/pankajredekar/taxongorm/internal/slug"
	"github.com/pankajredekar/taxongorm/internal/store"
	"gorm.io/gorm"
)

type (
	Taxonomy      = models.Taxonomy
	Taxon         = models.Taxon
	Service       = category.Service
	Options       = category.Options
	TaxonomyInput = category.TaxonomyInput
	TaxonInput    = category.TaxonInput
	TaxonUpdate   = category.TaxonUpdate
	TreeNode      = category.TreeNode

	ValidationError     = category.ValidationError
	NotFoundError       = category.NotFoundError
	ConstraintViolation = store.ConstraintViolation
)

// Sentinel errors, usable with errors.Is
var (
	ErrValidation = category.ErrValidation
	ErrConstraint = category.ErrConstraint
	ErrNotFound   = category.ErrNotFound
	ErrCycle      = category.ErrCycle
)

// Connect opens a postgres://, mysql:// or sqlite:// database URL
func Connect(databaseURL string) (*gorm.DB, error) {
	return store.Connect(databaseURL, nil)
}

// Migrate creates or upgrades the taxonomies and taxons tables. An empty
// table name uses the default migration ledger table.
func Migrate(db *gorm.DB, migrationTable string) error {
	_, err := migrations.Apply(db, migrationTable)
	return err
}

// Open returns a service working on db
func Open(db *gorm.DB, opts Options) *Service {
	return category.NewService(store.NewGormStore(db), opts)
}

// Slugify returns the slug a taxon named name would get
func Slugify(name string) string {
	return slug.Make(name)
}
