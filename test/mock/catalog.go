// Package mock provides test doubles for the business import system.
// These fakes are designed for integration testing where we need
// configurable behavior (custom profiles, slow lookups, call counting).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/qwikker/business-import/internal/domain"
)

// Catalog is a configurable fake implementation of domain.CategoryCatalog.
// It starts empty; every category is unresolved until configured.
type Catalog struct {
	mu          sync.Mutex
	profiles    map[domain.Category]domain.CategoryProfile
	delay       time.Duration
	lookupCount int
	allCount    int
}

// NewCatalog creates an empty fake catalog.
// The catalog is configured using the builder pattern methods.
func NewCatalog() *Catalog {
	return &Catalog{
		profiles: make(map[domain.Category]domain.CategoryProfile),
	}
}

// WithProfile registers the given place types for a category.
func (c *Catalog) WithProfile(cat domain.Category, types ...string) *Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profiles[cat] = domain.CategoryProfile{
		Category:    cat,
		Label:       cat.String(),
		GoogleTypes: append([]string(nil), types...),
	}
	return c
}

// WithDelay makes every lookup wait d or until the context is done.
// This is useful for testing timeout behavior.
func (c *Catalog) WithDelay(d time.Duration) *Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.delay = d
	return c
}

// Lookup implements domain.CategoryCatalog.Lookup.
// A lookup cut short by the context reports the category as unresolved.
func (c *Catalog) Lookup(ctx context.Context, cat domain.Category) (domain.CategoryProfile, bool) {
	c.mu.Lock()
	c.lookupCount++
	delay := c.delay
	p, ok := c.profiles[cat]
	c.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return domain.CategoryProfile{}, false
		case <-time.After(delay):
		}
	}

	if !ok || len(p.GoogleTypes) == 0 {
		return domain.CategoryProfile{}, false
	}
	p.GoogleTypes = append([]string(nil), p.GoogleTypes...)
	return p, true
}

// All implements domain.CategoryCatalog.All in category order.
func (c *Catalog) All(_ context.Context) []domain.CategoryProfile {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.allCount++

	out := make([]domain.CategoryProfile, 0, len(c.profiles))
	for _, cat := range domain.AllCategories() {
		if p, ok := c.profiles[cat]; ok {
			p.GoogleTypes = append([]string(nil), p.GoogleTypes...)
			out = append(out, p)
		}
	}
	return out
}

// LookupCount returns the number of times Lookup was called.
func (c *Catalog) LookupCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookupCount
}

// AllCount returns the number of times All was called.
func (c *Catalog) AllCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.allCount
}

// Reset resets the call counters to zero.
func (c *Catalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lookupCount = 0
	c.allCount = 0
}

// Ensure Catalog implements domain.CategoryCatalog at compile time.
var _ domain.CategoryCatalog = (*Catalog)(nil)
