package migrations

import (
	"github.com/pankajredekar/taxongorm/internal/schema"
	"gorm.io/gorm"
)

// CreateTaxons creates the taxon tree table. Both references cascade on
// delete: removing a taxonomy removes its taxons, removing a taxon removes
// its subtree.
type CreateTaxons struct{}

func (m CreateTaxons) Version() string { return "202511071114460002" }

func (m CreateTaxons) Name() string { return "create_taxons" }

func (m CreateTaxons) Up(db *gorm.DB) error {
	return exec(db, map[string][]string{
		"sqlite": {`
			CREATE TABLE taxons (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				taxonomy_id INTEGER NOT NULL REFERENCES taxonomies(id) ON DELETE CASCADE,
				parent_id INTEGER REFERENCES taxons(id) ON DELETE CASCADE,
				name VARCHAR(255) NOT NULL,
				slug VARCHAR(255),
				priority INTEGER,
				created_at DATETIME,
				updated_at DATETIME
			)`,
			`CREATE INDEX idx_taxons_taxonomy_id ON taxons (taxonomy_id)`,
			`CREATE INDEX idx_taxons_parent_id ON taxons (parent_id)`,
		},
		"postgres": {`
			CREATE TABLE taxons (
				id BIGSERIAL PRIMARY KEY,
				taxonomy_id BIGINT NOT NULL,
				parent_id BIGINT,
				name VARCHAR(255) NOT NULL,
				slug VARCHAR(255),
				priority INTEGER,
				created_at TIMESTAMPTZ,
				updated_at TIMESTAMPTZ,
				CONSTRAINT fk_taxons_taxonomy FOREIGN KEY (taxonomy_id) REFERENCES taxonomies(id) ON DELETE CASCADE,
				CONSTRAINT fk_taxons_parent FOREIGN KEY (parent_id) REFERENCES taxons(id) ON DELETE CASCADE
			)`,
			`CREATE INDEX idx_taxons_taxonomy_id ON taxons (taxonomy_id)`,
			`CREATE INDEX idx_taxons_parent_id ON taxons (parent_id)`,
		},
		"mysql": {`
			CREATE TABLE taxons (
				id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
				taxonomy_id BIGINT UNSIGNED NOT NULL,
				parent_id BIGINT UNSIGNED,
				name VARCHAR(255) NOT NULL,
				slug VARCHAR(255),
				priority INT,
				created_at DATETIME(3),
				updated_at DATETIME(3),
				KEY idx_taxons_taxonomy_id (taxonomy_id),
				KEY idx_taxons_parent_id (parent_id),
				CONSTRAINT fk_taxons_taxonomy FOREIGN KEY (taxonomy_id) REFERENCES taxonomies(id) ON DELETE CASCADE,
				CONSTRAINT fk_taxons_parent FOREIGN KEY (parent_id) REFERENCES taxons(id) ON DELETE CASCADE
			) ENGINE=InnoDB`,
		},
	})
}

func (m CreateTaxons) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("taxons")
}

func (m CreateTaxons) Describe(b *schema.SchemaBuilder) {
	b.CreateTable("taxons").
		PrimaryKey("id").
		Required("taxonomy_id", "uint").
		Nullable("parent_id", "uint").
		Required("name", "string").
		Nullable("slug", "string").
		Nullable("priority", "int").
		Nullable("created_at", "time").
		Nullable("updated_at", "time").
		References("taxonomy_id", "taxonomies", "CASCADE").
		References("parent_id", "taxons", "CASCADE").
		AddIndex("idx_taxons_taxonomy_id").
		AddIndex("idx_taxons_parent_id")
}
