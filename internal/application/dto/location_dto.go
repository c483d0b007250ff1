package dto

import "github.com/shopspring/decimal"

// CreateLocationRequest alta de una ubicación con código zona-rack-nivel (ej. "B-03-02").
type CreateLocationRequest struct {
	ID       string `json:"id" validate:"required,min=5,max=32"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
}

// AssignLocationRequest producto que se ubica (la ubicación queda ocupada).
type AssignLocationRequest struct {
	ProductID int64 `json:"product_id"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID       string `json:"id"`
	Zone     string `json:"zone"`
	Rack     string `json:"rack"`
	Level    string `json:"level"`
	Capacity int    `json:"capacity"`
	Occupied bool   `json:"occupied"`
}

// LocationListResponse lista de ubicaciones.
type LocationListResponse struct {
	Items []LocationResponse `json:"items"`
	Total int                `json:"total"`
}

// ZoneLocations ubicaciones de una zona.
type ZoneLocations struct {
	Zone      string             `json:"zone"`
	Locations []LocationResponse `json:"locations"`
}

// LocationSummaryResponse ocupación general y agrupación por zona.
type LocationSummaryResponse struct {
	Total         int             `json:"total"`
	Occupied      int             `json:"occupied"`
	Available     int             `json:"available"`
	OccupancyRate decimal.Decimal `json:"occupancy_rate"` // porcentaje, un decimal
	Zones         []ZoneLocations `json:"zones"`
}
