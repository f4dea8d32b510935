package usecase

import (
	"context"
	"strings"

	"github.com/qwikker/business-import/internal/domain"
	"github.com/qwikker/business-import/internal/infrastructure/logger"
	"github.com/qwikker/business-import/internal/infrastructure/timeutil"
)

// ImportPreviewUseCase defines the import preview operations.
type ImportPreviewUseCase interface {
	// Preview estimates the external request cost of importing a category
	// around a point. Unknown categories and non-positive radii are not
	// errors; they produce the minimal estimate.
	Preview(ctx context.Context, req domain.PreviewRequest) (*domain.PreviewResult, error)

	// Categories lists every category available for import.
	Categories(ctx context.Context) ([]domain.CategorySummary, error)
}

// importPreviewUseCase implements ImportPreviewUseCase over a category catalog.
type importPreviewUseCase struct {
	catalog          domain.CategoryCatalog
	limits           domain.Limits
	warningThreshold int
	clock            timeutil.Clock
	log              *logger.Logger
}

// NewImportPreviewUseCase creates a new ImportPreviewUseCase backed by the given catalog.
// If config is nil, default values are used.
func NewImportPreviewUseCase(catalog domain.CategoryCatalog, config *Config) ImportPreviewUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.WarningThreshold > 0 {
			cfg.WarningThreshold = config.WarningThreshold
		}
		if config.Limits != (domain.Limits{}) {
			cfg.Limits = config.Limits
		}
		if config.Clock != nil {
			cfg.Clock = config.Clock
		}
		if config.Logger != nil {
			cfg.Logger = config.Logger
		}
	}

	return &importPreviewUseCase{
		catalog:          catalog,
		limits:           cfg.Limits,
		warningThreshold: cfg.WarningThreshold,
		clock:            cfg.Clock,
		log:              cfg.Logger,
	}
}

// Preview implements ImportPreviewUseCase.Preview.
func (uc *importPreviewUseCase) Preview(ctx context.Context, req domain.PreviewRequest) (*domain.PreviewResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result := &domain.PreviewResult{
		Category:     strings.ToLower(strings.TrimSpace(req.CategoryKey)),
		RadiusMeters: req.RadiusMeters,
		Estimate:     domain.ZeroEstimate(),
	}

	log := logger.FromContext(ctx, uc.log).WithCategory(result.Category)

	profile, ok := uc.resolve(ctx, req.CategoryKey)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ok {
		result.CategoryResolved = true
		result.Estimate = EstimateSearchRequests(domain.SearchParameters{
			Profile:      profile,
			RadiusMeters: req.RadiusMeters,
		}, uc.limits)
	} else {
		log.Debug().Msg("Category not resolved, returning zero estimate")
	}

	if result.Estimate.BudgetClamped {
		log.Warn().
			Int("radius_meters", req.RadiusMeters).
			Int("grid_points", result.Estimate.GridPointCount).
			Int("type_count", result.Estimate.TypeCount).
			Int("requests", result.Estimate.RequestCount).
			Msg("Grid reduced to fit request budget")
	}

	result.HighCostWarning = result.Estimate.RequestCount > uc.warningThreshold

	if req.Center != nil {
		result.Points = PlanGrid(*req.Center, req.RadiusMeters, result.Estimate, uc.limits)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	result.GeneratedAt = uc.clock.Now()
	return result, nil
}

// Categories implements ImportPreviewUseCase.Categories.
func (uc *importPreviewUseCase) Categories(ctx context.Context) ([]domain.CategorySummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	profiles := uc.catalog.All(ctx)
	out := make([]domain.CategorySummary, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, domain.CategorySummary{
			Key:         p.Category.String(),
			Label:       p.Label,
			GoogleTypes: p.GoogleTypes,
			TypeCount:   min(len(p.GoogleTypes), uc.limits.MaxTypesPerCategory),
		})
	}
	return out, nil
}

func (uc *importPreviewUseCase) resolve(ctx context.Context, key string) (domain.CategoryProfile, bool) {
	c, ok := domain.ParseCategory(key)
	if !ok {
		return domain.CategoryProfile{}, false
	}
	return uc.catalog.Lookup(ctx, c)
}

// Ensure importPreviewUseCase implements ImportPreviewUseCase at compile time.
var _ ImportPreviewUseCase = (*importPreviewUseCase)(nil)
