package usecase

import "github.com/qwikker/business-import/internal/domain"

// EstimateSearchRequests projects how many external requests a grid search
// of the given category and radius will issue. It is pure and never fails:
// an empty type list yields the zero estimate and a non-positive radius
// yields a single-point search.
func EstimateSearchRequests(params domain.SearchParameters, limits domain.Limits) domain.Estimate {
	typeCount := min(len(params.Profile.GoogleTypes), limits.MaxTypesPerCategory)
	if typeCount <= 0 {
		return domain.ZeroEstimate()
	}

	gridPoints := gridPointCount(params.RadiusMeters, typeCount, limits)
	est := domain.Estimate{
		RequestCount:   gridPoints * typeCount,
		GridPointCount: gridPoints,
		TypeCount:      typeCount,
	}

	// Over budget: shrink the grid to fit.
	if est.RequestCount > limits.MaxRequestsPerPreview {
		gridPoints = max(1, limits.MaxRequestsPerPreview/typeCount)
		gridPoints = min(gridPoints, limits.MaxGridPoints)

		est.GridPointCount = gridPoints
		est.RequestCount = gridPoints * typeCount
		est.BudgetClamped = true
	}

	return est
}

// gridPointCount returns the grid size before the budget is applied,
// already capped at MaxGridPoints.
func gridPointCount(radiusMeters, typeCount int, limits domain.Limits) int {
	steps := gridSteps(radiusMeters, typeCount, limits)
	if steps == 0 {
		return 1
	}
	// From MaxGridPoints steps on, 1+(2·steps)² already exceeds the cap.
	if steps >= limits.MaxGridPoints {
		return max(limits.MaxGridPoints, 1)
	}
	perAxis := 2 * steps
	return min(1+perAxis*perAxis, limits.MaxGridPoints)
}

// gridSteps returns how many lattice steps the grid extends from the
// center along each axis direction; 0 means a single-point search.
func gridSteps(radiusMeters, typeCount int, limits domain.Limits) int {
	threshold := limits.GridRadiusFewMeters
	if typeCount >= domain.ManyTypesThreshold {
		threshold = limits.GridRadiusManyMeters
	}
	if radiusMeters <= threshold || limits.GridCellSpacingMeters <= 0 {
		return 0
	}
	return ceilDiv(radiusMeters, limits.GridCellSpacingMeters)
}

// ceilDiv returns ceil(a / b) for a ≥ 0 and b > 0 without overflowing.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}
