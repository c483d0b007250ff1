package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-almacen/pkg/logger"
)

// RequestLogger registra cada petición: método, ruta, status, latencia, request id y usuario.
// Debe registrarse después de requestid para que el id esté disponible.
func RequestLogger(log *logger.Logger) fiber.Handler {
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
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		requestID, _ := c.Locals("requestid").(string)
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", requestID).
			Str("user", GetUserName(c)).
			Msg("petición HTTP")
		return err
	}
}
