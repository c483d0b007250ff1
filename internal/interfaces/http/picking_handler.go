package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-almacen/internal/application/dto"
	"github.com/jhoicas/wms-almacen/internal/application/picking"
	"github.com/jhoicas/wms-almacen/internal/domain/entity"
	"github.com/jhoicas/wms-almacen/pkg/logger"
)

// PickingSheetGenerator genera la hoja de picking imprimible.
type PickingSheetGenerator interface {
	Generate(order *entity.PickingOrder) ([]byte, error)
}

// PickingHandler endpoints de órdenes de picking.
type PickingHandler struct {
	uc     *picking.UseCase
	sheets PickingSheetGenerator
	log    *logger.Logger
}

// NewPickingHandler construye el handler.
func NewPickingHandler(uc *picking.UseCase, sheets PickingSheetGenerator, log *logger.Logger) *PickingHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &PickingHandler{uc: uc, sheets: sheets, log: log}
}

// Create godoc
// @Summary      Crear orden de picking
// @Tags         picking
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePickingOrderRequest  true  "Ítems, prioridad y número opcional"
// @Success      201   {object}  dto.PickingOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/picking-orders [post]
func (h *PickingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePickingOrderRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/picking-orders?status=
func (h *PickingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/picking-orders/:id
func (h *PickingHandler) GetByID(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badID(c, "id")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Assign POST /api/picking-orders/:id/assign. Sin user_name se asigna al usuario del token.
func (h *PickingHandler) Assign(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badID(c, "id")
	}
	var in dto.AssignOrderRequest
	if len(c.Body()) > 0 {
		if e := parseBody(c, &in); e != nil {
			return c.Status(fiber.StatusBadRequest).JSON(e)
		}
	}
	if in.UserName == "" {
		in.UserName = GetUserName(c)
	}
	out, err := h.uc.Assign(c.UserContext(), id, in.UserName)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateItemPicked PUT /api/picking-orders/:id/items/:product_id
func (h *PickingHandler) UpdateItemPicked(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badID(c, "id")
	}
	productID, ok := idParam(c, "product_id")
	if !ok {
		return badID(c, "product_id")
	}
	var in dto.UpdatePickedRequest
	if e := parseBody(c, &in); e != nil {
		return c.Status(fiber.StatusBadRequest).JSON(e)
	}
	res, err := h.uc.UpdateItemPicked(c.UserContext(), id, productID, in.Picked)
	if err != nil {
		return writeError(c, err)
	}
	if res.AutoCompleted && !res.Order.StockApplied {
		h.log.Warn().
			Int64("order_id", res.Order.ID).
			Str("order_number", res.Order.OrderNumber).
			Msg("orden completada por picking sin descuento de stock; usar /complete para aplicarlo")
	}
	return c.JSON(res.Order)
}

// Complete POST /api/picking-orders/:id/complete
func (h *PickingHandler) Complete(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badID(c, "id")
	}
	out, err := h.uc.Complete(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Sheet GET /api/picking-orders/:id/sheet.pdf
func (h *PickingHandler) Sheet(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return badID(c, "id")
	}
	order, err := h.uc.Order(id)
	if err != nil {
		return writeError(c, err)
	}
	doc, err := h.sheets.Generate(order)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s.pdf"`, order.OrderNumber))
	return c.Send(doc)
}
