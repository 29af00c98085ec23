package site

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// AccessLogger logs one line per request.
func AccessLogger(logger *log.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			keyvals := []interface{}{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"remote_ip", v.RemoteIP,
				"latency", v.Latency.Round(time.Microsecond),
				"user_agent", v.UserAgent,
			}
			if v.Error != nil {
				logger.Warn("request", append(keyvals, "error", v.Error)...)
				return nil
			}
			logger.Info("request", keyvals...)
			return nil
		},
	})
}

// RateLimit allows perSecond requests per client IP with a burst of the
// same size.
func RateLimit(perSecond float64) echo.MiddlewareFunc {
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})
	return middleware.RateLimiter(store)
}
