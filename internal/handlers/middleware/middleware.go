package middleware

import (
	"time"

	"server/config"
	"server/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type Middleware struct {
	Config config.Config
	log    logger.Logger
}

func New(config config.Config) Middleware {
	return Middleware{
		Config: config,
		log:    logger.New("middleware"),
	}
}

// RequestLogger logs every request with its status and latency. Errors are
// passed through untouched so fiber's error handler still shapes the body.
func (m Middleware) RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		log := m.log.Function("RequestLogger")
		fields := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", time.Since(start).String(),
		}

		if status >= fiber.StatusInternalServerError {
			log.Warn("request failed", fields...)
		} else {
			log.Info("request", fields...)
		}

		return err
	}
}
