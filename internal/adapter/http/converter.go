package http

import (
	"time"

	"github.com/qwikker/business-import/internal/domain"
)

// ToDomainPreviewRequest converts a PreviewImportRequest to domain.PreviewRequest.
func ToDomainPreviewRequest(req *PreviewImportRequest) domain.PreviewRequest {
	out := domain.PreviewRequest{
		CategoryKey:  req.Category,
		RadiusMeters: req.RadiusMeters,
	}
	if req.Center != nil {
		out.Center = &domain.LatLng{Lat: req.Center.Lat, Lng: req.Center.Lng}
	}
	return out
}

// PreviewResponse is the JSON body returned by the preview endpoint.
type PreviewResponse struct {
	Category         string         `json:"category" example:"restaurant"`
	CategoryResolved bool           `json:"categoryResolved" example:"true"`
	RadiusMeters     int            `json:"radiusMeters" example:"8000"`
	Requests         int            `json:"requests" example:"200"`
	GridPoints       int            `json:"gridPoints" example:"25"`
	TypeCount        int            `json:"typeCount" example:"8"`
	BudgetClamped    bool           `json:"budgetClamped" example:"false"`
	HighCostWarning  bool           `json:"highCostWarning" example:"false"`
	GeneratedAt      string         `json:"generatedAt" example:"2025-06-01T09:00:00Z"`
	Points           []GridPointDTO `json:"points,omitempty"`
}

// GridPointDTO is one planned search center.
type GridPointDTO struct {
	Lat            float64 `json:"lat" example:"51.9318"`
	Lng            float64 `json:"lng" example:"-2.0783"`
	Ring           int     `json:"ring" example:"1"`
	DistanceMeters float64 `json:"distanceMeters" example:"3600"`
}

// CategoryDTO describes one importable category.
type CategoryDTO struct {
	Key         string   `json:"key" example:"cafe"`
	Label       string   `json:"label" example:"Cafes"`
	GoogleTypes []string `json:"googleTypes" example:"cafe,coffee_shop,tea_house"`
	TypeCount   int      `json:"typeCount" example:"3"`
}

// CategoriesResponse is the JSON body returned by the categories endpoint.
type CategoriesResponse struct {
	Categories []CategoryDTO `json:"categories"`
	Total      int           `json:"total" example:"16"`
}

// ToPreviewResponse converts a domain.PreviewResult to its API shape.
func ToPreviewResponse(r *domain.PreviewResult) PreviewResponse {
	resp := PreviewResponse{
		Category:         r.Category,
		CategoryResolved: r.CategoryResolved,
		RadiusMeters:     r.RadiusMeters,
		Requests:         r.Estimate.RequestCount,
		GridPoints:       r.Estimate.GridPointCount,
		TypeCount:        r.Estimate.TypeCount,
		BudgetClamped:    r.Estimate.BudgetClamped,
		HighCostWarning:  r.HighCostWarning,
		GeneratedAt:      r.GeneratedAt.UTC().Format(time.RFC3339),
	}

	if len(r.Points) > 0 {
		resp.Points = make([]GridPointDTO, len(r.Points))
		for i, p := range r.Points {
			resp.Points[i] = GridPointDTO{
				Lat:            p.Lat,
				Lng:            p.Lng,
				Ring:           p.Ring,
				DistanceMeters: p.DistanceMeters,
			}
		}
	}

	return resp
}

// ToCategoriesResponse converts category summaries to their API shape.
func ToCategoriesResponse(summaries []domain.CategorySummary) CategoriesResponse {
	out := CategoriesResponse{
		Categories: make([]CategoryDTO, len(summaries)),
		Total:      len(summaries),
	}
	for i, s := range summaries {
		out.Categories[i] = CategoryDTO{
			Key:         s.Key,
			Label:       s.Label,
			GoogleTypes: s.GoogleTypes,
			TypeCount:   s.TypeCount,
		}
	}
	return out
}
