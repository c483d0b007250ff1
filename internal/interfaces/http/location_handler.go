package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-almacen/internal/application/dto"
	"github.com/jhoicas/wms-almacen/internal/application/usecase"
)

// LocationHandler endpoints de ubicaciones.
type LocationHandler struct {
	uc *usecase.LocationUseCase
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// List GET /api/locations
func (h *LocationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Available GET /api/locations/available
func (h *LocationHandler) Available(c *fiber.Ctx) error {
	out, err := h.uc.Available()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Summary GET /api/locations/summary
func (h *LocationHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Suggest GET /api/locations/suggest?rotation_type=&volume=
// Sin ubicaciones libres responde 409 NO_CAPACITY.
func (h *LocationHandler) Suggest(c *fiber.Ctx) error {
	out, err := h.uc.Suggest(c.Query("rotation_type"), c.Query("volume"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear ubicación
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocationRequest  true  "Código zona-rack-nivel y capacidad"
// @Success      201   {object}  dto.LocationResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locations [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Assign POST /api/locations/:id/assign marca la ubicación como ocupada.
func (h *LocationHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignLocationRequest
	if len(c.Body()) > 0 {
		if e := parseBody(c, &in); e != nil {
			return c.Status(fiber.StatusBadRequest).JSON(e)
		}
	}
	out, err := h.uc.Assign(c.Params("id"), in.ProductID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
