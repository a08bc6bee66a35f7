package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/agrilconnect-api/pkg/logger"
)

// AccessLog registra método, ruta, estado, latencia y usuario de cada petición.
func AccessLog(log *logger.Logger) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("user_id", GetSession(c).UserID).
			Msg("request")
		return err
	}
}
