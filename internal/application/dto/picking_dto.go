package dto

import "time"

// CreateOrderItemRequest línea de una nueva orden.
type CreateOrderItemRequest struct {
	ProductID int64  `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
	Location  string `json:"location"` // vacío = ubicación del producto
}

// CreatePickingOrderRequest body para POST /api/picking-orders.
type CreatePickingOrderRequest struct {
	OrderNumber string                   `json:"order_number" validate:"max=32"`
	Priority    string                   `json:"priority"`
	Items       []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// AssignOrderRequest body para asignar una orden; vacío = usuario del token.
type AssignOrderRequest struct {
	UserName string `json:"user_name" validate:"max=200"`
}

// UpdatePickedRequest cantidad recogida (valor absoluto).
type UpdatePickedRequest struct {
	Picked int `json:"picked"`
}

// OrderItemResponse línea de orden.
type OrderItemResponse struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Location    string `json:"location"`
	Quantity    int    `json:"quantity"`
	Picked      int    `json:"picked"`
}

// PickingOrderResponse salida de una orden de picking.
type PickingOrderResponse struct {
	ID           int64               `json:"id"`
	OrderNumber  string              `json:"order_number"`
	Status       string              `json:"status"`
	Priority     string              `json:"priority"`
	CreatedAt    time.Time           `json:"created_at"`
	CompletedAt  *time.Time          `json:"completed_at"`
	AssignedTo   *string             `json:"assigned_to"`
	Items        []OrderItemResponse `json:"items"`
	StockApplied bool                `json:"stock_applied"`
}

// PickingOrderListResponse lista de órdenes con conteo por estado.
type PickingOrderListResponse struct {
	Items  []PickingOrderResponse `json:"items"`
	Total  int                    `json:"total"`
	Counts map[string]int         `json:"counts"`
}
