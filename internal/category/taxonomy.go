package category

import (
	"strings"

	"github.com/pankajredekar/taxongorm/internal/models"
)

// TaxonomyInput describes a taxonomy to create. An empty Slug is derived
// from Name; a non-empty Slug must already be canonical (see slug.Valid)
// and is stored as given.
type TaxonomyInput struct {
	Name string
	Slug string
}

// CreateTaxonomy persists a new taxonomy
func (svc *Service) CreateTaxonomy(in TaxonomyInput) (*models.Taxonomy, error) {
	name := strings.TrimSpace(in.Name)

	var omit []string
	if name == "" {
		if !svc.opts.DeferValidation {
			return nil, required("name")
		}
		omit = append(omit, "name")
	}

	slugValue, err := resolveSlug(in.Slug, name)
	if err != nil {
		return nil, err
	}

	taxonomy := &models.Taxonomy{Name: name, Slug: slugValue}
	if err := svc.store.Insert(taxonomy, omit...); err != nil {
		return nil, withTable(err, "taxonomies")
	}

	svc.log.Debug().Uint("taxonomy_id", taxonomy.ID).Str("slug", taxonomy.Slug).Msg("taxonomy.created")
	return taxonomy, nil
}

// FindTaxonomy loads a taxonomy by id
func (svc *Service) FindTaxonomy(id uint) (*models.Taxonomy, error) {
	var taxonomy models.Taxonomy
	ok, err := svc.store.FindByID(&taxonomy, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &NotFoundError{Entity: "taxonomy", ID: id}
	}
	return &taxonomy, nil
}

// ListTaxonomies returns every taxonomy ordered by name
func (svc *Service) ListTaxonomies() ([]models.Taxonomy, error) {
	taxonomies := []models.Taxonomy{}
	if err := svc.store.FindAll(&taxonomies, "name ASC, id ASC"); err != nil {
		return nil, err
	}
	return taxonomies, nil
}

// DeleteTaxonomy removes a taxonomy together with all of its taxons
func (svc *Service) DeleteTaxonomy(id uint) error {
	return svc.transaction(func(tx *Service) error {
		if _, err := tx.FindTaxonomy(id); err != nil {
			return err
		}
		if err := tx.store.DeleteWhere(&models.Taxon{}, "taxonomy_id", id); err != nil {
			return err
		}
		if err := tx.store.Delete(&models.Taxonomy{}, id); err != nil {
			return err
		}
		tx.log.Debug().Uint("taxonomy_id", id).Msg("taxonomy.deleted")
		return nil
	})
}
