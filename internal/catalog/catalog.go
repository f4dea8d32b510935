// Package catalog provides the category-to-provider-types table used by the import preview.
// The table is compiled in and can be overridden from a YAML file at startup.
package catalog

import (
	"context"
	"slices"

	"github.com/qwikker/business-import/internal/domain"
)

// Catalog is an immutable, in-memory domain.CategoryCatalog.
// It is safe for concurrent use.
type Catalog struct {
	profiles [domain.CategoryCount]domain.CategoryProfile
}

// Default returns the catalog built from the compiled-in table.
func Default() *Catalog {
	c := &Catalog{}
	for _, cat := range domain.AllCategories() {
		def := defaultProfiles[cat]
		c.profiles[cat] = domain.CategoryProfile{
			Category:    cat,
			Label:       def.label,
			GoogleTypes: slices.Clone(def.types),
		}
	}
	return c
}

// Lookup implements domain.CategoryCatalog.
func (c *Catalog) Lookup(_ context.Context, cat domain.Category) (domain.CategoryProfile, bool) {
	if !cat.IsValid() {
		return domain.CategoryProfile{}, false
	}
	p := c.profiles[cat]
	if len(p.GoogleTypes) == 0 {
		return domain.CategoryProfile{}, false
	}
	return clone(p), true
}

// All implements domain.CategoryCatalog.
func (c *Catalog) All(_ context.Context) []domain.CategoryProfile {
	out := make([]domain.CategoryProfile, 0, len(c.profiles)-1)
	for _, cat := range domain.AllCategories() {
		out = append(out, clone(c.profiles[cat]))
	}
	return out
}

// clone copies the type slice so callers cannot mutate the catalog.
func clone(p domain.CategoryProfile) domain.CategoryProfile {
	p.GoogleTypes = slices.Clone(p.GoogleTypes)
	return p
}

// Ensure Catalog implements domain.CategoryCatalog at compile time.
var _ domain.CategoryCatalog = (*Catalog)(nil)
