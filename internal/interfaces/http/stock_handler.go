package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-almacen/internal/application/usecase"
)

// StockHandler vista de disponibilidad para ventas.
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List GET /api/stock?q=
func (h *StockHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"items": items, "total": len(items)})
}

// Summary GET /api/stock/summary
func (h *StockHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
