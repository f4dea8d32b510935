// Package usecase contains the business logic of the import preview.
// It projects the external request cost of a grid search before any request is made.
package usecase

import (
	"github.com/qwikker/business-import/internal/domain"
	"github.com/qwikker/business-import/internal/infrastructure/logger"
	"github.com/qwikker/business-import/internal/infrastructure/timeutil"
)

// DefaultWarningThreshold is the request count above which a preview is flagged as costly.
const DefaultWarningThreshold = 300

// Config contains configuration options for the use case.
type Config struct {
	// WarningThreshold flags previews whose request count exceeds it
	WarningThreshold int

	// Limits overrides the estimator limits; zero value means domain.DefaultLimits()
	Limits domain.Limits

	// Clock stamps preview results; nil means the system clock
	Clock timeutil.Clock

	// Logger receives budget clamp events; nil means a no-op logger
	Logger *logger.Logger
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		WarningThreshold: DefaultWarningThreshold,
		Limits:           domain.DefaultLimits(),
		Clock:            timeutil.NewRealClock(),
		Logger:           logger.Nop(),
	}
}
