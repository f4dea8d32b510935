package domain

import "time"

// Fixed limits of a grid-based import preview.
const (
	// MaxGridPoints caps the number of search points in one tiled search.
	MaxGridPoints = 25

	// MaxTypesPerCategory caps how many provider types are searched per category.
	MaxTypesPerCategory = 15

	// MaxRequestsPerPreview is the external request budget of a single preview.
	MaxRequestsPerPreview = 400

	// GridCellSpacingMeters is the distance between adjacent grid search points.
	GridCellSpacingMeters = 3600

	// GridRadiusManyMeters is the grid activation radius for categories with 5 or more types.
	GridRadiusManyMeters = 3000

	// GridRadiusFewMeters is the grid activation radius for categories with fewer than 5 types.
	GridRadiusFewMeters = 5000

	// ManyTypesThreshold is the type count from which a category counts as broad.
	ManyTypesThreshold = 5
)

// Limits bundles the constants the estimator works with.
type Limits struct {
	MaxGridPoints         int
	MaxTypesPerCategory   int
	MaxRequestsPerPreview int
	GridCellSpacingMeters int
	GridRadiusManyMeters  int
	GridRadiusFewMeters   int
}

// DefaultLimits returns the fixed system limits.
func DefaultLimits() Limits {
	return Limits{
		MaxGridPoints:         MaxGridPoints,
		MaxTypesPerCategory:   MaxTypesPerCategory,
		MaxRequestsPerPreview: MaxRequestsPerPreview,
		GridCellSpacingMeters: GridCellSpacingMeters,
		GridRadiusManyMeters:  GridRadiusManyMeters,
		GridRadiusFewMeters:   GridRadiusFewMeters,
	}
}

// SearchParameters is a single grid search request.
type SearchParameters struct {
	Profile      CategoryProfile
	RadiusMeters int
}

// Estimate is the projected cost of a grid search.
type Estimate struct {
	// RequestCount is the number of external search requests (GridPointCount × TypeCount)
	RequestCount int `json:"requests"`

	// GridPointCount is the number of search points; always at least 1
	GridPointCount int `json:"gridPoints"`

	// TypeCount is the number of provider types searched at each point
	TypeCount int `json:"typeCount"`

	// BudgetClamped is set when the grid was reduced to fit the request budget
	BudgetClamped bool `json:"budgetClamped"`
}

// ZeroEstimate is the minimal estimate returned for unresolvable input.
func ZeroEstimate() Estimate {
	return Estimate{RequestCount: 0, GridPointCount: 1, TypeCount: 0}
}

// LatLng is a WGS84 coordinate.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GridPoint is one search point of a tiled search.
type GridPoint struct {
	LatLng

	// Ring is the Chebyshev distance from the center in lattice steps (0 = center)
	Ring int `json:"ring"`

	// DistanceMeters is the great-circle distance from the center
	DistanceMeters float64 `json:"distanceMeters"`
}

// PreviewRequest is the input of an import preview.
type PreviewRequest struct {
	// CategoryKey is the raw category key supplied by the caller
	CategoryKey string

	// RadiusMeters is the search radius around the center
	RadiusMeters int

	// Center is optional; when set the preview includes grid point coordinates
	Center *LatLng
}

// PreviewResult is the outcome of an import preview.
type PreviewResult struct {
	Category         string
	CategoryResolved bool
	RadiusMeters     int
	Estimate         Estimate
	HighCostWarning  bool
	Points           []GridPoint
	GeneratedAt      time.Time
}

// CategorySummary describes a category available for import.
type CategorySummary struct {
	Key         string
	Label       string
	GoogleTypes []string
	TypeCount   int
}
