package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-almacen/internal/domain/entity"
)

// RequireSection autoriza según la tabla de secciones por rol. Debe usarse DESPUÉS de AuthMiddleware.
func RequireSection(section string) fiber.Handler {
	return RequireRole(entity.RolesFor(section)...)
}
