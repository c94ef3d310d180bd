package category

import (
	"strings"

	"github.com/pankajredekar/taxongorm/internal/models"
)

// TaxonInput describes a taxon to create. A nil ParentID creates a root
// taxon. An empty Slug is derived from Name; a non-empty Slug is stored as
// given and must already be canonical (see slug.Valid), otherwise
// CreateTaxon fails with a ValidationError on "slug".
type TaxonInput struct {
	TaxonomyID uint
	Name       string
	ParentID   *uint
	Slug       string
	Priority   *int
}

// CreateTaxon validates, slugs and persists a new taxon. The taxonomy and
// parent references are checked inside the same transaction as the insert.
func (svc *Service) CreateTaxon(in TaxonInput) (*models.Taxon, error) {
	name := strings.TrimSpace(in.Name)

	if !svc.opts.DeferValidation {
		if in.TaxonomyID == 0 {
			return nil, required("taxonomy_id")
		}
		if name == "" {
			return nil, required("name")
		}
	}

	// Zero values are left out of the INSERT so NOT NULL columns reject them
	var omit []string
	if in.TaxonomyID == 0 {
		omit = append(omit, "taxonomy_id")
	}
	if name == "" {
		omit = append(omit, "name")
	}

	slugValue, err := resolveSlug(in.Slug, name)
	if err != nil {
		return nil, err
	}

	taxon := &models.Taxon{
		TaxonomyID: in.TaxonomyID,
		ParentID:   in.ParentID,
		Name:       name,
		Slug:       slugValue,
		Priority:   in.Priority,
	}

	// A row missing a required column fails on NOT NULL before any
	// reference is looked at, the same order the database uses.
	err = svc.transaction(func(tx *Service) error {
		if len(omit) == 0 {
			if err := tx.checkReferences(taxon); err != nil {
				return err
			}
		}
		return withTable(tx.store.Insert(taxon, omit...), "taxons")
	})
	if err != nil {
		return nil, err
	}

	svc.log.Debug().
		Uint("taxon_id", taxon.ID).
		Uint("taxonomy_id", taxon.TaxonomyID).
		Str("slug", taxon.Slug).
		Msg("taxon.created")
	return taxon, nil
}

// checkReferences verifies that the taxonomy and parent a taxon points at
// exist. Unset references are left to the NOT NULL constraints.
func (svc *Service) checkReferences(taxon *models.Taxon) error {
	if taxon.TaxonomyID != 0 {
		var taxonomy models.Taxonomy
		ok, err := svc.store.FindByID(&taxonomy, taxon.TaxonomyID)
		if err != nil {
			return err
		}
		if !ok {
			return missingReference("taxons", "taxonomy_id")
		}
	}

	if taxon.ParentID == nil {
		return nil
	}

	var parent models.Taxon
	ok, err := svc.store.FindByID(&parent, *taxon.ParentID)
	if err != nil {
		return err
	}
	if !ok {
		return missingReference("taxons", "parent_id")
	}
	if svc.opts.SameTaxonomyParent && taxon.TaxonomyID != 0 && parent.TaxonomyID != taxon.TaxonomyID {
		return &ValidationError{Field: "parent_id", Message: "must belong to the same taxonomy"}
	}
	return nil
}

// FindTaxon loads a taxon by id
func (svc *Service) FindTaxon(id uint) (*models.Taxon, error) {
	var taxon models.Taxon
	ok, err := svc.store.FindByID(&taxon, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &NotFoundError{Entity: "taxon", ID: id}
	}
	return &taxon, nil
}

// TaxonUpdate lists the attributes to change; nil fields are kept.
// The slug follows a new name only when RegenerateSlug is set, and an
// explicit Slug follows the same rule as TaxonInput.Slug.
type TaxonUpdate struct {
	Name           *string
	Slug           *string
	RegenerateSlug bool
	ParentID       *uint
	MakeRoot       bool
	Priority       *int
}

// UpdateTaxon changes a taxon's name, slug, priority or position in the tree.
// Moving a taxon under itself or one of its descendants fails with ErrCycle.
func (svc *Service) UpdateTaxon(id uint, in TaxonUpdate) (*models.Taxon, error) {
	var updated *models.Taxon
	err := svc.transaction(func(tx *Service) error {
		taxon, err := tx.FindTaxon(id)
		if err != nil {
			return err
		}

		fields := map[string]any{}
		name := taxon.Name
		if in.Name != nil {
			name = strings.TrimSpace(*in.Name)
			if name == "" {
				return required("name")
			}
			fields["name"] = name
		}

		switch {
		case in.Slug != nil:
			slugValue, err := resolveSlug(*in.Slug, name)
			if err != nil {
				return err
			}
			fields["slug"] = slugValue
		case in.RegenerateSlug:
			slugValue, err := deriveSlug(name)
			if err != nil {
				return err
			}
			fields["slug"] = slugValue
		}

		switch {
		case in.MakeRoot:
			fields["parent_id"] = nil
		case in.ParentID != nil:
			if err := tx.checkMove(taxon, *in.ParentID); err != nil {
				return err
			}
			fields["parent_id"] = *in.ParentID
		}

		if in.Priority != nil {
			fields["priority"] = *in.Priority
		}

		if len(fields) > 0 {
			if err := tx.store.Update(taxon, fields); err != nil {
				return withTable(err, "taxons")
			}
		}

		updated, err = tx.FindTaxon(id)
		return err
	})
	if err != nil {
		return nil, err
	}

	svc.log.Debug().Uint("taxon_id", id).Msg("taxon.updated")
	return updated, nil
}

// checkMove validates parentID as the new parent of taxon
func (svc *Service) checkMove(taxon *models.Taxon, parentID uint) error {
	if parentID == taxon.ID {
		return ErrCycle
	}

	candidate := *taxon
	candidate.ParentID = &parentID
	if err := svc.checkReferences(&candidate); err != nil {
		return err
	}

	parent, err := svc.FindTaxon(parentID)
	if err != nil {
		return err
	}
	ancestors, err := svc.Ancestors(parent)
	if err != nil {
		return err
	}
	for _, a := range ancestors {
		if a.ID == taxon.ID {
			return ErrCycle
		}
	}
	return nil
}

// DeleteTaxon removes a taxon and its whole subtree, deepest level first.
// It returns the number of taxons removed.
func (svc *Service) DeleteTaxon(id uint) (int, error) {
	removed := 0
	err := svc.transaction(func(tx *Service) error {
		if _, err := tx.FindTaxon(id); err != nil {
			return err
		}

		levels := [][]uint{{id}}
		for frontier := levels[0]; len(frontier) > 0; {
			var children []models.Taxon
			if err := tx.store.FindWhere(&children, "parent_id", frontier); err != nil {
				return err
			}
			frontier = make([]uint, 0, len(children))
			for _, c := range children {
				frontier = append(frontier, c.ID)
			}
			if len(frontier) > 0 {
				levels = append(levels, frontier)
			}
		}

		for i := len(levels) - 1; i >= 0; i-- {
			if err := tx.store.Delete(&models.Taxon{}, levels[i]...); err != nil {
				return err
			}
			removed += len(levels[i])
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	svc.log.Debug().Uint("taxon_id", id).Int("removed", removed).Msg("taxon.deleted")
	return removed, nil
}
