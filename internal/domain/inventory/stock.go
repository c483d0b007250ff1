package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/wms-almacen/internal/domain"
	"github.com/jhoicas/wms-almacen/internal/domain/entity"
)

// Estados de disponibilidad de un producto.
const (
	StatusOutOfStock = "out_of_stock"
	StatusLowStock   = "low_stock"
	StatusAvailable  = "available"
)

// ApplyMovement aplica el efecto de un movimiento sobre el stock del producto.
// Entrada: suma y fija LastEntry al día de now. Salida: resta; con strict=true rechaza
// con ErrInsufficientStock si el stock quedaría negativo (el producto no se modifica).
func ApplyMovement(p *entity.Product, movementType string, quantity int, now time.Time, strict bool) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	switch movementType {
	case entity.MovementInbound:
		p.Stock += quantity
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		p.LastEntry = &day
	case entity.MovementOutbound:
		if strict && p.Stock < quantity {
			return domain.ErrInsufficientStock
		}
		p.Stock -= quantity
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

// IsLowStock stock <= mínimo.
func IsLowStock(p *entity.Product) bool {
	return p.Stock <= p.MinStock
}

// IsOutOfStock stock == 0.
func IsOutOfStock(p *entity.Product) bool {
	return p.Stock == 0
}

// StockStatus clasifica la disponibilidad: sin stock, stock bajo o disponible.
func StockStatus(p *entity.Product) string {
	switch {
	case IsOutOfStock(p):
		return StatusOutOfStock
	case IsLowStock(p):
		return StatusLowStock
	default:
		return StatusAvailable
	}
}

// OccupancyRate porcentaje de ocupación redondeado a un decimal (0 si no hay ubicaciones).
func OccupancyRate(occupied, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(occupied)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(1)
}
