package entity

import (
	"strings"
	"time"
)

// Estados de una orden de picking: pending -> in_process -> completed (terminal).
const (
	OrderPending   = "pending"
	OrderInProcess = "in_process"
	OrderCompleted = "completed"
)

// Prioridad informativa, no afecta la planificación.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// OrderItem línea de una orden de picking. ProductName y Location son copias tomadas al crear la orden.
type OrderItem struct {
	ProductID   int64
	ProductName string
	Location    string
	Quantity    int
	Picked      int
}

// PickingOrder orden de recolección de productos en el almacén.
type PickingOrder struct {
	ID          int64
	OrderNumber string
	Status      string
	Priority    string
	CreatedAt   time.Time
	CompletedAt *time.Time
	AssignedTo  string
	Items       []OrderItem
	// StockApplied indica que el descuento de stock de la orden ya se aplicó.
	StockApplied bool
}

// Clone devuelve una copia profunda de la orden (incluye los ítems).
func (o *PickingOrder) Clone() *PickingOrder {
	if o == nil {
		return nil
	}
	c := *o
	c.Items = append([]OrderItem(nil), o.Items...)
	return &c
}

// Item devuelve el índice del ítem del producto indicado, o -1.
func (o *PickingOrder) Item(productID int64) int {
	for i := range o.Items {
		if o.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AllPicked indica si todos los ítems tienen picked >= quantity.
func (o *PickingOrder) AllPicked() bool {
	for _, it := range o.Items {
		if it.Picked < it.Quantity {
			return false
		}
	}
	return true
}

// IsCompleted indica si la orden está en su estado terminal.
func (o *PickingOrder) IsCompleted() bool {
	return o.Status == OrderCompleted
}

// NormalizeOrderStatus traduce alias (pendiente/en_proceso/completado); "" si no es válido.
func NormalizeOrderStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case OrderPending, "pendiente":
		return OrderPending
	case OrderInProcess, "en_proceso":
		return OrderInProcess
	case OrderCompleted, "completado":
		return OrderCompleted
	}
	return ""
}

// NormalizePriority traduce alias (alta/media/baja); "" si no es válido.
func NormalizePriority(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case PriorityHigh, "alta":
		return PriorityHigh
	case PriorityMedium, "media":
		return PriorityMedium
	case PriorityLow, "baja":
		return PriorityLow
	}
	return ""
}
