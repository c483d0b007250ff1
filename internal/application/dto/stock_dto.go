package dto

import "github.com/shopspring/decimal"

// StockItemResponse disponibilidad de un producto (vista de vendedor).
type StockItemResponse struct {
	ProductID   int64   `json:"product_id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	MinStock    int     `json:"min_stock"`
	Status      string  `json:"status"`
	Location    string  `json:"location,omitempty"`
	NextArrival *string `json:"next_arrival"`
}

// StockSummaryResponse conteos por estado de disponibilidad.
type StockSummaryResponse struct {
	Total      int `json:"total"`
	Available  int `json:"available"`    // stock > mínimo
	LowStock   int `json:"low_stock"`    // 0 < stock <= mínimo
	OutOfStock int `json:"out_of_stock"` // stock == 0
}

// ReplenishmentSuggestion producto a reponer con la cantidad sugerida.
type ReplenishmentSuggestion struct {
	Priority          int              `json:"priority"`
	ProductID         int64            `json:"product_id"`
	SKU               string           `json:"sku"`
	ProductName       string           `json:"product_name"`
	CurrentStock      int              `json:"current_stock"`
	MinStock          int              `json:"min_stock"`
	IdealStock        int              `json:"ideal_stock"`
	SuggestedOrderQty int              `json:"suggested_order_qty"`
	OutboundLastDays  int              `json:"outbound_last_days"`
	DailyUsage        decimal.Decimal  `json:"daily_usage"`
	DaysOfCover       *decimal.Decimal `json:"days_of_cover"` // nil sin consumo o sin stock
	NextArrival       *string          `json:"next_arrival"`
}
