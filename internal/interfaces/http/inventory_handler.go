package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-almacen/internal/application/dto"
	"github.com/jhoicas/wms-almacen/internal/application/inventory"
)

// InventoryHandler endpoints del libro de movimientos y de recepción.
type InventoryHandler struct {
	ledger    *inventory.LedgerUseCase
	reception *inventory.ReceptionUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *inventory.LedgerUseCase, reception *inventory.ReceptionUseCase) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, reception: reception}
}

// RecordMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  Entrada suma stock y fija last_entry; salida resta. El usuario se toma del token.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "type, product_id, quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.ledger.Record(c.UserContext(), inventory.MovementInput{
		Type:        in.Type,
		ProductID:   in.ProductID,
		ProductName: in.ProductName,
		Quantity:    in.Quantity,
		Location:    in.Location,
		User:        GetUserName(c),
		Reference:   in.Reference,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements GET /api/movements?type=&product_id=
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	filter := dto.MovementFilter{
		Type:      c.Query("type"),
		ProductID: int64(c.QueryInt("product_id", 0)),
	}
	out, err := h.ledger.List(filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Stats GET /api/movements/stats?days=7
func (h *InventoryHandler) Stats(c *fiber.Ctx) error {
	out, err := h.ledger.SummaryStats(c.QueryInt("days", inventory.DefaultStatsWindowDays))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Receive godoc
// @Summary      Recepción por código escaneado
// @Tags         reception
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceptionRequest  true  "code (SKU o EAN), quantity, location opcional"
// @Success      201   {object}  dto.ReceptionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/reception [post]
func (h *InventoryHandler) Receive(c *fiber.Ctx) error {
	var in dto.ReceptionRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.reception.Receive(c.UserContext(), inventory.ReceptionInput{
		Code:      in.Code,
		Quantity:  in.Quantity,
		Location:  in.Location,
		User:      GetUserName(c),
		Reference: in.Reference,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
