package middleware

import (
	"fmt"
	"runtime"

	"github.com/labstack/echo/v4"

	"github.com/qwikker/business-import/internal/adapter/http/response"
	"github.com/qwikker/business-import/internal/infrastructure/logger"
)

// RecoveryConfig controls how much stack is captured for a recovered panic.
type RecoveryConfig struct {
	// StackSize caps the captured stack in bytes
	StackSize int

	// DisableStackAll limits the capture to the panicking goroutine
	DisableStackAll bool

	// DisablePrintStack omits the stack from the log entry entirely
	DisablePrintStack bool
}

// DefaultRecoveryConfig returns the default recovery configuration.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{
		StackSize:         4 << 10,
		DisableStackAll:   false,
		DisablePrintStack: false,
	}
}

// Recover returns middleware that recovers from panics in the handler chain.
// It logs the panic with stack trace and returns a 500 Internal Server Error.
// The server continues to handle subsequent requests.
func Recover(log *logger.Logger) echo.MiddlewareFunc {
	return RecoverWithConfig(log, DefaultRecoveryConfig())
}

// RecoverWithConfig returns recovery middleware with custom configuration.
func RecoverWithConfig(log *logger.Logger, config RecoveryConfig) echo.MiddlewareFunc {
	if log == nil {
		log = logger.Nop()
	}
	if config.StackSize <= 0 {
		config.StackSize = DefaultRecoveryConfig().StackSize
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				var panicMsg string
				if e, ok := r.(error); ok {
					panicMsg = e.Error()
				} else {
					panicMsg = fmt.Sprintf("%v", r)
				}

				event := log.WithRequestID(GetRequestID(c)).Error().
					Str("panic", panicMsg)

				if !config.DisablePrintStack {
					stack := make([]byte, config.StackSize)
					n := runtime.Stack(stack, !config.DisableStackAll)
					event = event.Str("stack", string(stack[:n]))
				}

				event.Msg("Panic recovered")

				// Generic body so internal details never leak
				if !c.Response().Committed {
					err = response.InternalServerError(c)
				}
			}()

			return next(c)
		}
	}
}
