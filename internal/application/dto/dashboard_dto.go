package dto

// DashboardResponse respuesta de GET /api/dashboard.
type DashboardResponse struct {
	TotalProducts        int                   `json:"total_products"`
	LowStockProducts     int                   `json:"low_stock_products"`
	PendingOrders        int                   `json:"pending_orders"`
	CompletedOrdersToday int                   `json:"completed_orders_today"`
	TotalStock           int                   `json:"total_stock"`
	RecentMovements      []MovementResponse    `json:"recent_movements"` // últimos 5
	MovementStats        MovementStatsResponse `json:"movement_stats"`
}
