// Package domain contains the core business entities and rules for the business import preview.
// These entities are provider-agnostic and form the foundation upon which all other components are built.
package domain

import (
	"context"
	"strings"
)

// Category is a business category that can be imported from the places provider.
type Category int

// Supported categories. The zero value CategoryUnknown never resolves to a profile.
const (
	CategoryUnknown Category = iota
	CategoryRestaurant
	CategoryCafe
	CategoryBar
	CategoryBakery
	CategoryDessert
	CategoryTakeaway
	CategorySalon
	CategoryBarber
	CategoryTattoo
	CategoryWellness
	CategoryFitness
	CategoryRetail
	CategoryHotel
	CategoryVenue
	CategoryEntertainment
	CategoryProfessional

	// CategoryCount is the number of slots in a Category-indexed table,
	// including the CategoryUnknown slot.
	CategoryCount
)

var categoryKeys = [CategoryCount]string{
	CategoryUnknown:       "",
	CategoryRestaurant:    "restaurant",
	CategoryCafe:          "cafe",
	CategoryBar:           "bar",
	CategoryBakery:        "bakery",
	CategoryDessert:       "dessert",
	CategoryTakeaway:      "takeaway",
	CategorySalon:         "salon",
	CategoryBarber:        "barber",
	CategoryTattoo:        "tattoo",
	CategoryWellness:      "wellness",
	CategoryFitness:       "fitness",
	CategoryRetail:        "retail",
	CategoryHotel:         "hotel",
	CategoryVenue:         "venue",
	CategoryEntertainment: "entertainment",
	CategoryProfessional:  "professional",
}

// String returns the wire key of the category (e.g. "restaurant").
func (c Category) String() string {
	if !c.IsValid() {
		return "unknown"
	}
	return categoryKeys[c]
}

// IsValid reports whether c names a real category.
func (c Category) IsValid() bool {
	return c > CategoryUnknown && c < CategoryCount
}

// ParseCategory resolves a wire key to a Category. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseCategory(key string) (Category, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return CategoryUnknown, false
	}
	for c := CategoryRestaurant; c < CategoryCount; c++ {
		if categoryKeys[c] == key {
			return c, true
		}
	}
	return CategoryUnknown, false
}

// AllCategories returns every valid category in declaration order.
func AllCategories() []Category {
	out := make([]Category, 0, int(CategoryCount)-1)
	for c := CategoryRestaurant; c < CategoryCount; c++ {
		out = append(out, c)
	}
	return out
}

// CategoryProfile maps a category to the provider-specific sub-types that
// together approximate it.
type CategoryProfile struct {
	// Category is the category this profile describes
	Category Category `json:"-"`

	// Label is the human-readable category name (e.g. "Restaurants")
	Label string `json:"label"`

	// GoogleTypes are the places-provider type tags searched for this category
	GoogleTypes []string `json:"googleTypes"`
}

// CategoryCatalog resolves categories to their provider profiles.
//
//go:generate mockgen -source=category.go -destination=mock_catalog.go -package=domain
type CategoryCatalog interface {
	// Lookup returns the profile for a category, or false if none is configured.
	Lookup(ctx context.Context, c Category) (CategoryProfile, bool)

	// All returns every configured profile in category order.
	All(ctx context.Context) []CategoryProfile
}
