package category

import (
	"testing"

	"github.com/pankajredekar/taxongorm/internal/migrations"
	"github.com/pankajredekar/taxongorm/internal/models"
	"github.com/pankajredekar/taxongorm/internal/store"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T, opts Options) *Service {
	t.Helper()
	db, err := store.OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	_, err = migrations.Apply(db, "")
	require.NoError(t, err)
	return NewService(store.NewGormStore(db), opts)
}

func mustTaxonomy(t *testing.T, svc *Service, name string) *models.Taxonomy {
	t.Helper()
	taxonomy, err := svc.CreateTaxonomy(TaxonomyInput{Name: name})
	require.NoError(t, err)
	return taxonomy
}

func mustTaxon(t *testing.T, svc *Service, taxonomy *models.Taxonomy, name string, parent *models.Taxon) *models.Taxon {
	t.Helper()
	in := TaxonInput{TaxonomyID: taxonomy.ID, Name: name}
	if parent != nil {
		in.ParentID = &parent.ID
	}
	taxon, err := svc.CreateTaxon(in)
	require.NoError(t, err)
	return taxon
}

func uintPtr(v uint) *uint { return &v }

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
