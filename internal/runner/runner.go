package runner

import (
	"fmt"
	"sort"

	"github.com/pankajredekar/taxongorm/internal/schema"
	"github.com/pankajredekar/taxongorm/internal/versioner"
	"gorm.io/gorm"
)

// Migration interface that all schema migrations must implement
type Migration interface {
	Version() string
	Name() string
	Up(db *gorm.DB) error
	Down(db *gorm.DB) error
	// Describe applies the migration to an in-memory schema
	Describe(b *schema.SchemaBuilder)
}

// Registry holds all registered migrations
type Registry struct {
	migrations map[string]Migration
}

// NewRegistry creates a new migration registry
func NewRegistry(migrations ...Migration) *Registry {
	r := &Registry{
		migrations: make(map[string]Migration),
	}
	for _, m := range migrations {
		r.RegisterMigration(m)
	}
	return r
}

// RegisterMigration registers a migration
func (r *Registry) RegisterMigration(m Migration) {
	r.migrations[m.Version()] = m
}

// GetMigration returns a migration by version
func (r *Registry) GetMigration(version string) (Migration, bool) {
	m, ok := r.migrations[version]
	return m, ok
}

// GetAllMigrations returns all migrations sorted by version
func (r *Registry) GetAllMigrations() []Migration {
	migrations := make([]Migration, 0, len(r.migrations))
	for _, m := range r.migrations {
		migrations = append(migrations, m)
	}
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version() < migrations[j].Version()
	})
	return migrations
}

// Runner executes migrations
type Runner struct {
	db        *gorm.DB
	registry  *Registry
	versioner *versioner.Versioner
}

// NewRunner creates a new migration runner
func NewRunner(db *gorm.DB, registry *Registry, versioner *versioner.Versioner) *Runner {
	return &Runner{
		db:        db,
		registry:  registry,
		versioner: versioner,
	}
}

// Migrate applies all pending migrations and returns the ones it applied.
// Each migration and its ledger entry are committed together.
func (r *Runner) Migrate() ([]Migration, error) {
	pending, err := r.GetPendingMigrations()
	if err != nil {
		return nil, err
	}

	applied := make([]Migration, 0, len(pending))
	for _, m := range pending {
		err := r.db.Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return fmt.Errorf("failed to apply migration %s: %w", m.Version(), err)
			}
			if err := r.versioner.WithDB(tx).RecordApplied(m.Version(), m.Name()); err != nil {
				return fmt.Errorf("failed to record migration %s: %w", m.Version(), err)
			}
			return nil
		})
		if err != nil {
			return applied, err
		}
		applied = append(applied, m)
	}

	return applied, nil
}

// Rollback rolls back the last n migrations, newest first
func (r *Runner) Rollback(n int) error {
	applied, err := r.versioner.GetAppliedVersions()
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	if len(applied) == 0 {
		return fmt.Errorf("no migrations to rollback")
	}

	if n > len(applied) {
		n = len(applied)
	}

	for i := len(applied) - 1; i >= len(applied)-n; i-- {
		version := applied[i]
		m, ok := r.registry.GetMigration(version)
		if !ok {
			return fmt.Errorf("migration %s not found in registry", version)
		}

		err := r.db.Transaction(func(tx *gorm.DB) error {
			if err := m.Down(tx); err != nil {
				return fmt.Errorf("failed to rollback migration %s: %w", version, err)
			}
			if err := r.versioner.WithDB(tx).RemoveApplied(version); err != nil {
				return fmt.Errorf("failed to remove migration record %s: %w", version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// GetPendingMigrations returns migrations that haven't been applied
func (r *Runner) GetPendingMigrations() ([]Migration, error) {
	applied, err := r.versioner.GetAppliedVersions()
	if err != nil {
		return nil, fmt.Errorf("failed to get applied migrations: %w", err)
	}

	appliedMap := make(map[string]bool, len(applied))
	for _, v := range applied {
		appliedMap[v] = true
	}

	var pending []Migration
	for _, m := range r.registry.GetAllMigrations() {
		if !appliedMap[m.Version()] {
			pending = append(pending, m)
		}
	}

	return pending, nil
}

// GetAppliedMigrations returns migrations that have been applied
func (r *Runner) GetAppliedMigrations() ([]Migration, error) {
	applied, err := r.versioner.GetAppliedVersions()
	if err != nil {
		return nil, fmt.Errorf("failed to get applied migrations: %w", err)
	}

	var migrations []Migration
	for _, v := range applied {
		if m, ok := r.registry.GetMigration(v); ok {
			migrations = append(migrations, m)
		}
	}

	return migrations, nil
}

// SimulateSchema builds the schema every registered migration describes
func (r *Runner) SimulateSchema() *schema.SchemaBuilder {
	builder := schema.NewSchemaBuilder()
	for _, m := range r.registry.GetAllMigrations() {
		m.Describe(builder)
	}
	return builder
}
