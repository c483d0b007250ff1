package dto

// CreateProductRequest entrada para crear un producto. El stock siempre inicia en 0.
type CreateProductRequest struct {
	SKU          string  `json:"sku" validate:"required,min=1,max=64"`
	EAN          string  `json:"ean" validate:"required,min=1,max=64"`
	Name         string  `json:"name" validate:"required,min=1,max=200"`
	Category     string  `json:"category" validate:"max=100"`
	Description  string  `json:"description"`
	MinStock     int     `json:"min_stock" validate:"min=0"`
	RotationType string  `json:"rotation_type" validate:"required"`
	Volume       string  `json:"volume" validate:"required"`
	Location     string  `json:"location"`
	NextArrival  *string `json:"next_arrival"` // YYYY-MM-DD
}

// UpdateProductRequest campos editables de un producto (sin Stock ni LastEntry).
type UpdateProductRequest struct {
	SKU          *string `json:"sku" validate:"omitempty,min=1,max=64"`
	EAN          *string `json:"ean" validate:"omitempty,min=1,max=64"`
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	Category     *string `json:"category" validate:"omitempty,max=100"`
	Description  *string `json:"description"`
	MinStock     *int    `json:"min_stock" validate:"omitempty,min=0"`
	RotationType *string `json:"rotation_type"`
	Volume       *string `json:"volume"`
	Location     *string `json:"location"`
	NextArrival  *string `json:"next_arrival"` // YYYY-MM-DD, "" la borra
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           int64   `json:"id"`
	SKU          string  `json:"sku"`
	EAN          string  `json:"ean"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	Stock        int     `json:"stock"`
	MinStock     int     `json:"min_stock"`
	RotationType string  `json:"rotation_type"`
	Volume       string  `json:"volume"`
	Location     string  `json:"location,omitempty"`
	LastEntry    *string `json:"last_entry"`
	NextArrival  *string `json:"next_arrival"`
	Status       string  `json:"status"` // out_of_stock, low_stock, available
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
