package observability

import (
	"fmt"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	apierrors "github.com/freelanceflow/freelance-flow-api/internal/errors"
)

var sentryEnabled bool

// InitSentry configures error reporting. A blank DSN leaves it disabled,
// which is the local-dev default.
func InitSentry(dsn, environment string) error {
	if dsn == "" {
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	})
	if err != nil {
		return fmt.Errorf("failed to init sentry: %w", err)
	}

	sentryEnabled = true
	return nil
}

// FlushSentry drains pending events on shutdown.
func FlushSentry() {
	if sentryEnabled {
		sentry.Flush(2 * time.Second)
	}
}

// Recovery turns panics into a 500 in the uniform error envelope and
// reports them when Sentry is configured.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				if sentryEnabled {
					sentry.CurrentHub().Recover(recovered)
				}
				log.Printf("panic recovered: %v", recovered)
				apierrors.InternalError(c, "")
				c.Abort()
			}
		}()
		c.Next()
	}
}
