package dto

import (
	"github.com/jhoicas/wms-almacen/internal/domain/entity"
	"github.com/jhoicas/wms-almacen/internal/domain/inventory"
)

// FromProduct convierte la entidad a su respuesta.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		EAN:          p.EAN,
		Name:         p.Name,
		Category:     p.Category,
		Description:  p.Description,
		Stock:        p.Stock,
		MinStock:     p.MinStock,
		RotationType: p.RotationType,
		Volume:       p.Volume,
		Location:     p.Location,
		LastEntry:    FormatDate(p.LastEntry),
		NextArrival:  FormatDate(p.NextArrival),
		Status:       inventory.StockStatus(p),
	}
}

// FromProducts convierte una lista de productos.
func FromProducts(list []*entity.Product) ProductListResponse {
	items := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, FromProduct(p))
	}
	return ProductListResponse{Items: items, Total: len(items)}
}

// FromLocation convierte la entidad a su respuesta.
func FromLocation(l *entity.Location) LocationResponse {
	return LocationResponse{
		ID:       l.ID,
		Zone:     l.Zone,
		Rack:     l.Rack,
		Level:    l.Level,
		Capacity: l.Capacity,
		Occupied: l.Occupied,
	}
}

// FromLocations convierte una lista de ubicaciones.
func FromLocations(list []*entity.Location) LocationListResponse {
	items := make([]LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, FromLocation(l))
	}
	return LocationListResponse{Items: items, Total: len(items)}
}

// FromMovement convierte la entidad a su respuesta.
func FromMovement(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		Type:          m.Type,
		ProductID:     m.ProductID,
		ProductName:   m.ProductName,
		Quantity:      m.Quantity,
		Location:      m.Location,
		User:          m.User,
		Reference:     m.Reference,
		Date:          m.Date,
	}
}

// FromMovements convierte una lista de movimientos conservando el orden.
func FromMovements(list []*entity.Movement) MovementListResponse {
	items := make([]MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, FromMovement(m))
	}
	return MovementListResponse{Items: items, Total: len(items)}
}

// FromPickingOrder convierte la entidad a su respuesta.
func FromPickingOrder(o *entity.PickingOrder) PickingOrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Location:    it.Location,
			Quantity:    it.Quantity,
			Picked:      it.Picked,
		})
	}
	var assigned *string
	if o.AssignedTo != "" {
		a := o.AssignedTo
		assigned = &a
	}
	return PickingOrderResponse{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		Status:       o.Status,
		Priority:     o.Priority,
		CreatedAt:    o.CreatedAt,
		CompletedAt:  o.CompletedAt,
		AssignedTo:   assigned,
		Items:        items,
		StockApplied: o.StockApplied,
	}
}

// FromUser convierte la entidad a su respuesta (sin hash).
func FromUser(u *entity.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
