package v1handler

import (
	"context"
	"skillmatch/internal/api/specs/v1specs"
)

// ListSkills returns the catalog and its synonym table.
func (h Handler) ListSkills(_ context.Context) (*v1specs.Catalog, error) {
	return &v1specs.Catalog{
		Skills:   h.deps.Catalog.Skills(),
		Synonyms: v1specs.CatalogSynonyms(h.deps.Catalog.Synonyms()),
	}, nil
}
