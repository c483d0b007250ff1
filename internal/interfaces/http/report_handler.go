package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-almacen/internal/application/dto"
	"github.com/jhoicas/wms-almacen/internal/application/inventory"
	"github.com/jhoicas/wms-almacen/internal/application/usecase"
)

// StockReportBuilder arma el libro xlsx del reporte de stock.
type StockReportBuilder interface {
	Build(products []dto.ProductResponse, movements []dto.MovementResponse) ([]byte, error)
}

// ReportHandler reportes descargables.
type ReportHandler struct {
	products      *usecase.ProductUseCase
	ledger        *inventory.LedgerUseCase
	replenishment *inventory.ReplenishmentUseCase
	builder       StockReportBuilder
}

// NewReportHandler construye el handler.
func NewReportHandler(
	products *usecase.ProductUseCase,
	ledger *inventory.LedgerUseCase,
	replenishment *inventory.ReplenishmentUseCase,
	builder StockReportBuilder,
) *ReportHandler {
	return &ReportHandler{products: products, ledger: ledger, replenishment: replenishment, builder: builder}
}

// StockWorkbook GET /api/reports/stock.xlsx
func (h *ReportHandler) StockWorkbook(c *fiber.Ctx) error {
	products, err := h.products.List()
	if err != nil {
		return writeError(c, err)
	}
	movements, err := h.ledger.List(dto.MovementFilter{})
	if err != nil {
		return writeError(c, err)
	}
	doc, err := h.builder.Build(products.Items, movements.Items)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="stock-%s.xlsx"`, time.Now().Format(dto.DateLayout)))
	return c.Send(doc)
}

// Replenishment GET /api/reports/replenishment
func (h *ReportHandler) Replenishment(c *fiber.Ctx) error {
	items, err := h.replenishment.GenerateReplenishmentList()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"items": items, "total": len(items)})
}
