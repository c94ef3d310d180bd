package migrations

import (
	"github.com/pankajredekar/taxongorm/internal/schema"
	"gorm.io/gorm"
)

type CreateTaxonomies struct{}

func (m CreateTaxonomies) Version() string { return "202511071114460001" }

func (m CreateTaxonomies) Name() string { return "create_taxonomies" }

func (m CreateTaxonomies) Up(db *gorm.DB) error {
	return exec(db, map[string][]string{
		"sqlite": {`
			CREATE TABLE taxonomies (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name VARCHAR(255) NOT NULL,
				slug VARCHAR(255),
				created_at DATETIME,
				updated_at DATETIME
			)`,
		},
		"postgres": {`
			CREATE TABLE taxonomies (
				id BIGSERIAL PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				slug VARCHAR(255),
				created_at TIMESTAMPTZ,
				updated_at TIMESTAMPTZ
			)`,
		},
		"mysql": {`
			CREATE TABLE taxonomies (
				id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				slug VARCHAR(255),
				created_at DATETIME(3),
				updated_at DATETIME(3)
			) ENGINE=InnoDB`,
		},
	})
}

func (m CreateTaxonomies) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("taxonomies")
}

func (m CreateTaxonomies) Describe(b *schema.SchemaBuilder) {
	b.CreateTable("taxonomies").
		PrimaryKey("id").
		Required("name", "string").
		Nullable("slug", "string").
		Nullable("created_at", "time").
		Nullable("updated_at", "time")
}
