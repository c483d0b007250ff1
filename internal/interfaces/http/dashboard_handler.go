package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/wms-almacen/internal/application/analytics"
)

// DashboardHandler maneja el endpoint del Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen operativo del almacén.
// GET /api/dashboard
//
// Respuesta: DashboardResponse (total_products, low_stock_products, pending_orders,
// completed_orders_today, total_stock, recent_movements[5], movement_stats).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
