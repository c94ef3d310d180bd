package runner

import (
	"errors"
	"testing"

	"github.com/pankajredekar/taxongorm/internal/schema"
	"github.com/pankajredekar/taxongorm/internal/store"
	"github.com/pankajredekar/taxongorm/internal/versioner"
	"gorm.io/gorm"
)

// TestMigration implements the Migration interface
type TestMigration struct {
	version  string
	name     string
	upFunc   func(*gorm.DB) error
	downFunc func(*gorm.DB) error
}

func (m TestMigration) Version() string { return m.version }
func (m TestMigration) Name() string    { return m.name }
func (m TestMigration) Up(db *gorm.DB) error {
	if m.upFunc != nil {
		return m.upFunc(db)
	}
	return nil
}
func (m TestMigration) Down(db *gorm.DB) error {
	if m.downFunc != nil {
		return m.downFunc(db)
	}
	return nil
}
func (m TestMigration) Describe(b *schema.SchemaBuilder) {
	b.CreateTable(m.name).PrimaryKey("id")
}

func setupTestRunner(t *testing.T, migrations ...Migration) (*Runner, *versioner.Versioner, *gorm.DB) {
	db, err := store.OpenSQLite(":memory:", nil)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	ver := versioner.NewVersioner(db, "_test_migrations")
	if err := ver.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return NewRunner(db, NewRegistry(migrations...), ver), ver, db
}

func TestRegisterMigration(t *testing.T) {
	registry := NewRegistry()
	registry.RegisterMigration(TestMigration{version: "20250101000000", name: "test"})

	m, ok := registry.GetMigration("20250101000000")
	if !ok {
		t.Fatal("Migration not found after registration")
	}
	if m.Name() != "test" {
		t.Errorf("Expected name 'test', got '%s'", m.Name())
	}
}

func TestGetAllMigrationsSorted(t *testing.T) {
	registry := NewRegistry(
		TestMigration{version: "20250103000000", name: "third"},
		TestMigration{version: "20250101000000", name: "first"},
		TestMigration{version: "20250102000000", name: "second"},
	)

	all := registry.GetAllMigrations()
	if len(all) != 3 {
		t.Fatalf("Expected 3 migrations, got %d", len(all))
	}
	if all[0].Version() != "20250101000000" || all[2].Version() != "20250103000000" {
		t.Errorf("Migrations not sorted by version: %s, %s, %s", all[0].Version(), all[1].Version(), all[2].Version())
	}
}

func TestMigrate(t *testing.T) {
	run, ver, db := setupTestRunner(t, TestMigration{
		version: "20250101000000",
		name:    "test",
		upFunc: func(db *gorm.DB) error {
			return db.Exec("CREATE TABLE test_table (id INTEGER)").Error
		},
	})

	applied, err := run.Migrate()
	if err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	if len(applied) != 1 {
		t.Errorf("Expected 1 applied migration, got %d", len(applied))
	}
	if !db.Migrator().HasTable("test_table") {
		t.Error("Migration should have created test_table")
	}

	ok, err := ver.IsApplied("20250101000000")
	if err != nil {
		t.Fatalf("IsApplied failed: %v", err)
	}
	if !ok {
		t.Error("Migration should be marked as applied")
	}

	// Second run is a no-op
	applied, err = run.Migrate()
	if err != nil {
		t.Fatalf("Second Migrate failed: %v", err)
	}
	if len(applied) != 0 {
		t.Errorf("Expected nothing to apply, got %d", len(applied))
	}
}

func TestMigrateStopsOnFailure(t *testing.T) {
	boom := errors.New("boom")
	run, ver, _ := setupTestRunner(t,
		TestMigration{version: "20250101000000", name: "first"},
		TestMigration{version: "20250102000000", name: "broken", upFunc: func(*gorm.DB) error { return boom }},
		TestMigration{version: "20250103000000", name: "third"},
	)

	applied, err := run.Migrate()
	if !errors.Is(err, boom) {
		t.Fatalf("Expected boom error, got %v", err)
	}
	if len(applied) != 1 {
		t.Errorf("Expected 1 applied migration before failure, got %d", len(applied))
	}

	count, err := ver.GetAppliedCount()
	if err != nil {
		t.Fatalf("GetAppliedCount failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 recorded migration, got %d", count)
	}
}

func TestGetPendingMigrations(t *testing.T) {
	run, ver, _ := setupTestRunner(t,
		TestMigration{version: "20250101000000", name: "first"},
		TestMigration{version: "20250102000000", name: "second"},
	)

	if err := ver.RecordApplied("20250101000000", "first"); err != nil {
		t.Fatalf("RecordApplied failed: %v", err)
	}

	pending, err := run.GetPendingMigrations()
	if err != nil {
		t.Fatalf("GetPendingMigrations failed: %v", err)
	}
	if len(pending) != 1 || pending[0].Version() != "20250102000000" {
		t.Errorf("Expected only 20250102000000 pending, got %v", pending)
	}
}

func TestRollback(t *testing.T) {
	var downCalls []string
	down := func(name string) func(*gorm.DB) error {
		return func(*gorm.DB) error {
			downCalls = append(downCalls, name)
			return nil
		}
	}
	run, ver, _ := setupTestRunner(t,
		TestMigration{version: "20250101000000", name: "first", downFunc: down("first")},
		TestMigration{version: "20250102000000", name: "second", downFunc: down("second")},
	)

	if _, err := run.Migrate(); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}

	if err := run.Rollback(1); err != nil {
		t.Fatalf("Rollback failed: %v", err)
	}
	if len(downCalls) != 1 || downCalls[0] != "second" {
		t.Errorf("Expected only 'second' rolled back, got %v", downCalls)
	}

	applied, err := ver.IsApplied("20250102000000")
	if err != nil {
		t.Fatalf("IsApplied failed: %v", err)
	}
	if applied {
		t.Error("Rolled back migration should not be applied")
	}

	if err := run.Rollback(5); err != nil {
		t.Fatalf("Rollback failed: %v", err)
	}
	if err := run.Rollback(1); err == nil {
		t.Error("Rollback with nothing applied should error")
	}
}

func TestSimulateSchema(t *testing.T) {
	run, _, _ := setupTestRunner(t,
		TestMigration{version: "20250101000000", name: "taxonomies"},
		TestMigration{version: "20250102000000", name: "taxons"},
	)

	builder := run.SimulateSchema()
	if !builder.TableExists("taxonomies") || !builder.TableExists("taxons") {
		t.Errorf("Expected both tables in simulated schema:\n%s", builder.Schema.String())
	}
}
