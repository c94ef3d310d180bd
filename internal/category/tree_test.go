package category

import (
	"testing"

	"github.com/pankajredekar/taxongorm/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree(t *testing.T) {
	svc := setupService(t, Options{})
	taxonomy := mustTaxonomy(t, svc, "Category")
	clothing := mustTaxon(t, svc, taxonomy, "Clothing", nil)
	men := mustTaxon(t, svc, taxonomy, "Men", clothing)
	mustTaxon(t, svc, taxonomy, "Shirts", men)
	mustTaxon(t, svc, taxonomy, "Women", clothing)
	mustTaxon(t, svc, taxonomy, "Books", nil)

	tree, err := svc.Tree(taxonomy.ID)
	require.NoError(t, err)
	require.Len(t, tree, 2)

	assert.Equal(t, "Clothing", tree[0].Name)
	assert.Equal(t, 0, tree[0].Level)
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, "Men", tree[0].Children[0].Name)
	assert.Equal(t, 1, tree[0].Children[0].Level)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, 2, tree[0].Children[0].Children[0].Level)
	assert.Empty(t, tree[1].Children)

	var visited []string
	Walk(tree, func(n TreeNode) { visited = append(visited, n.Slug) })
	assert.Equal(t, []string{"clothing", "men", "shirts", "women", "books"}, visited)
}

func TestTreeUnknownTaxonomy(t *testing.T) {
	svc := setupService(t, Options{})
	_, err := svc.Tree(3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBuildTreeForeignParentBecomesRoot(t *testing.T) {
	outside := uint(100)
	nodes := buildTree([]models.Taxon{
		{ID: 1, Name: "Local"},
		{ID: 2, Name: "Borrowed", ParentID: &outside},
	})
	require.Len(t, nodes, 2)
	assert.Equal(t, "Local", nodes[0].Name)
	assert.Equal(t, "Borrowed", nodes[1].Name)
}
