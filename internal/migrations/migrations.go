// Package migrations holds the schema migrations for the taxonomy tables.
// They are compiled into the binary, so no migration files are loaded at
// runtime.
package migrations

import (
	"fmt"
	"strings"

	"github.com/pankajredekar/taxongorm/internal/runner"
	"github.com/pankajredekar/taxongorm/internal/versioner"
	"gorm.io/gorm"
)

// All returns every built-in migration, oldest first
func All() []runner.Migration {
	return []runner.Migration{
		CreateTaxonomies{},
		CreateTaxons{},
	}
}

// Registry returns a registry holding every built-in migration
func Registry() *runner.Registry {
	return runner.NewRegistry(All()...)
}

// Apply brings db up to date, recording applied versions in table
// (versioner.DefaultTable when empty)
func Apply(db *gorm.DB, table string) ([]runner.Migration, error) {
	ver := versioner.NewVersioner(db, table)
	if err := ver.Initialize(); err != nil {
		return nil, err
	}
	return runner.NewRunner(db, Registry(), ver).Migrate()
}

// exec runs the statements for db's dialect in order
func exec(db *gorm.DB, statements map[string][]string) error {
	dialect := db.Dialector.Name()
	stmts, ok := statements[dialect]
	if !ok {
		return fmt.Errorf("unsupported dialect %q", dialect)
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to execute %q: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(stmt string) string {
	stmt = strings.TrimSpace(stmt)
	if i := strings.IndexByte(stmt, '\n'); i >= 0 {
		return stmt[:i]
	}
	return stmt
}
