package category

import (
	"github.com/pankajredekar/taxongorm/internal/models"
)

// TreeNode is a taxon with its nested children
type TreeNode struct {
	models.Taxon
	Level    int        `json:"level"`
	Children []TreeNode `json:"children,omitempty"`
}

// Tree loads a whole taxonomy in one query and nests it. Taxons whose parent
// lives in another taxonomy are shown at the top level.
func (svc *Service) Tree(taxonomyID uint) ([]TreeNode, error) {
	if _, err := svc.FindTaxonomy(taxonomyID); err != nil {
		return nil, err
	}

	taxons, err := svc.Taxons(taxonomyID)
	if err != nil {
		return nil, err
	}
	return buildTree(taxons), nil
}

func buildTree(taxons []models.Taxon) []TreeNode {
	present := make(map[uint]bool, len(taxons))
	for _, t := range taxons {
		present[t.ID] = true
	}

	byParent := make(map[uint][]models.Taxon)
	var roots []models.Taxon
	for _, t := range taxons {
		if t.ParentID == nil || !present[*t.ParentID] {
			roots = append(roots, t)
			continue
		}
		byParent[*t.ParentID] = append(byParent[*t.ParentID], t)
	}

	var build func(level int, siblings []models.Taxon) []TreeNode
	build = func(level int, siblings []models.Taxon) []TreeNode {
		sortSiblings(siblings)
		nodes := make([]TreeNode, 0, len(siblings))
		for _, t := range siblings {
			nodes = append(nodes, TreeNode{
				Taxon:    t,
				Level:    level,
				Children: build(level+1, byParent[t.ID]),
			})
		}
		return nodes
	}
	return build(0, roots)
}

// Walk visits every node depth first, parents before children
func Walk(nodes []TreeNode, fn func(TreeNode)) {
	for _, n := range nodes {
		fn(n)
		Walk(n.Children, fn)
	}
}
