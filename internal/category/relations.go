package category

import (
	"sort"

	"github.com/pankajredekar/taxongorm/internal/models"
)

// Parent returns the taxon's parent, or nil when it is a root taxon
func (svc *Service) Parent(taxon *models.Taxon) (*models.Taxon, error) {
	if taxon.ParentID == nil {
		return nil, nil
	}
	return svc.FindTaxon(*taxon.ParentID)
}

// Children returns the direct children of taxon ordered by priority, then
// creation order. The slice is empty, never nil, for leaf taxons.
func (svc *Service) Children(taxon *models.Taxon) ([]models.Taxon, error) {
	children := []models.Taxon{}
	if err := svc.store.FindWhere(&children, "parent_id", taxon.ID); err != nil {
		return nil, err
	}
	sortSiblings(children)
	return children, nil
}

// Taxonomy returns the taxonomy that owns taxon
func (svc *Service) Taxonomy(taxon *models.Taxon) (*models.Taxonomy, error) {
	return svc.FindTaxonomy(taxon.TaxonomyID)
}

// Taxons returns every taxon of a taxonomy in creation order
func (svc *Service) Taxons(taxonomyID uint) ([]models.Taxon, error) {
	taxons := []models.Taxon{}
	if err := svc.store.FindWhere(&taxons, "taxonomy_id", taxonomyID); err != nil {
		return nil, err
	}
	return taxons, nil
}

// Roots returns the top level taxons of a taxonomy
func (svc *Service) Roots(taxonomyID uint) ([]models.Taxon, error) {
	taxons, err := svc.Taxons(taxonomyID)
	if err != nil {
		return nil, err
	}

	roots := []models.Taxon{}
	for _, t := range taxons {
		if t.IsRoot() {
			roots = append(roots, t)
		}
	}
	sortSiblings(roots)
	return roots, nil
}

// Ancestors returns the chain of parents of taxon, nearest first
func (svc *Service) Ancestors(taxon *models.Taxon) ([]models.Taxon, error) {
	var ancestors []models.Taxon
	seen := map[uint]bool{taxon.ID: true}

	current := taxon
	for current.ParentID != nil {
		parent, err := svc.Parent(current)
		if err != nil {
			return nil, err
		}
		if seen[parent.ID] {
			return nil, ErrCycle
		}
		seen[parent.ID] = true
		ancestors = append(ancestors, *parent)
		current = parent
	}
	return ancestors, nil
}

// Level returns the depth of taxon in its tree; root taxons are level 0
func (svc *Service) Level(taxon *models.Taxon) (int, error) {
	ancestors, err := svc.Ancestors(taxon)
	if err != nil {
		return 0, err
	}
	return len(ancestors), nil
}

// sortSiblings orders taxons by priority ascending with unset priorities
// last, breaking ties by id
func sortSiblings(taxons []models.Taxon) {
	sort.SliceStable(taxons, func(i, j int) bool {
		pi, pj := taxons[i].Priority, taxons[j].Priority
		switch {
		case pi == nil && pj == nil:
			return taxons[i].ID < taxons[j].ID
		case pi == nil:
			return false
		case pj == nil:
			return true
		case *pi != *pj:
			return *pi < *pj
		}
		return taxons[i].ID < taxons[j].ID
	})
}
