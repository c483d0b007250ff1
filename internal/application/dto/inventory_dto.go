package dto

import "time"

// RecordMovementRequest body para POST /api/movements. El usuario se toma del token.
type RecordMovementRequest struct {
	Type        string `json:"type" validate:"required"`
	ProductID   int64  `json:"product_id" validate:"required"`
	ProductName string `json:"product_name"` // solo se usa si el producto no existe
	Quantity    int    `json:"quantity"`
	Location    string `json:"location"`
	Reference   string `json:"reference" validate:"max=100"`
}

// ReceptionRequest body para POST /api/reception: recepción por SKU o EAN.
type ReceptionRequest struct {
	Code      string `json:"code" validate:"required"`
	Quantity  int    `json:"quantity"`
	Location  string `json:"location"` // vacío = ubicación sugerida
	Reference string `json:"reference" validate:"max=100"`
}

// MovementFilter filtros de listado de movimientos (vacío = sin filtro).
type MovementFilter struct {
	Type      string
	ProductID int64
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID            int64     `json:"id"`
	TransactionID string    `json:"transaction_id,omitempty"`
	Type          string    `json:"type"`
	ProductID     int64     `json:"product_id"`
	ProductName   string    `json:"product_name"`
	Quantity      int       `json:"quantity"`
	Location      string    `json:"location"`
	User          string    `json:"user"`
	Reference     string    `json:"reference"`
	Date          time.Time `json:"date"`
}

// MovementListResponse lista de movimientos (más recientes primero).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// MovementStatsResponse agregados de la ventana reciente.
type MovementStatsResponse struct {
	WindowDays       int `json:"window_days"`
	TotalEntries     int `json:"total_entries"`
	TotalExits       int `json:"total_exits"`
	TotalQuantityIn  int `json:"total_quantity_in"`
	TotalQuantityOut int `json:"total_quantity_out"`
}

// ReceptionResponse resultado de una recepción.
type ReceptionResponse struct {
	Movement MovementResponse `json:"movement"`
	Product  ProductResponse  `json:"product"`
	Location LocationResponse `json:"location"`
}
