package category

import (
	"errors"
	"testing"

	"github.com/pankajredekar/taxongorm/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTaxonomy(t *testing.T) {
	svc := setupService(t, Options{})

	taxonomy, err := svc.CreateTaxonomy(TaxonomyInput{Name: "Product Category"})
	require.NoError(t, err)
	assert.NotZero(t, taxonomy.ID)
	assert.Equal(t, "product-category", taxonomy.Slug)

	found, err := svc.FindTaxonomy(taxonomy.ID)
	require.NoError(t, err)
	assert.Equal(t, "Product Category", found.Name)
}

func TestTaxonomiesMustHaveAName(t *testing.T) {
	svc := setupService(t, Options{})
	_, err := svc.CreateTaxonomy(TaxonomyInput{})
	assert.ErrorIs(t, err, ErrValidation)

	deferred := setupService(t, Options{DeferValidation: true})
	_, err = deferred.CreateTaxonomy(TaxonomyInput{})
	require.Error(t, err)

	var cv *store.ConstraintViolation
	require.True(t, errors.As(err, &cv))
	assert.Equal(t, "NOT NULL constraint failed: taxonomies.name", cv.Error())
}

func TestTaxonomySlugs(t *testing.T) {
	svc := setupService(t, Options{})

	taxonomy, err := svc.CreateTaxonomy(TaxonomyInput{Name: "Книга"})
	require.NoError(t, err)
	assert.Equal(t, "kniga", taxonomy.Slug)

	taxonomy, err = svc.CreateTaxonomy(TaxonomyInput{Name: "Brand", Slug: "brands"})
	require.NoError(t, err)
	assert.Equal(t, "brands", taxonomy.Slug)

	_, err = svc.CreateTaxonomy(TaxonomyInput{Name: "Brand", Slug: "Brands!"})
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "slug", ve.Field)

	_, err = svc.CreateTaxonomy(TaxonomyInput{Name: "???"})
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "slug", ve.Field)
}

func TestListTaxonomies(t *testing.T) {
	svc := setupService(t, Options{})
	mustTaxonomy(t, svc, "Category")
	mustTaxonomy(t, svc, "Brand")

	taxonomies, err := svc.ListTaxonomies()
	require.NoError(t, err)
	require.Len(t, taxonomies, 2)
	assert.Equal(t, "Brand", taxonomies[0].Name)
	assert.Equal(t, "Category", taxonomies[1].Name)
}

func TestDeleteTaxonomyCascades(t *testing.T) {
	svc := setupService(t, Options{})
	taxonomy := mustTaxonomy(t, svc, "Category")
	keep := mustTaxonomy(t, svc, "Brand")
	root := mustTaxon(t, svc, taxonomy, "Root", nil)
	mustTaxon(t, svc, taxonomy, "Child", root)
	survivor := mustTaxon(t, svc, keep, "Acme", nil)

	require.NoError(t, svc.DeleteTaxonomy(taxonomy.ID))

	_, err := svc.FindTaxonomy(taxonomy.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	taxons, err := svc.Taxons(taxonomy.ID)
	require.NoError(t, err)
	assert.Empty(t, taxons)

	_, err = svc.FindTaxon(survivor.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteTaxonomy(taxonomy.ID), ErrNotFound)
}
