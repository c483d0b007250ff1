package repository

import "github.com/jhoicas/wms-almacen/internal/domain/entity"

// PickingOrderRepository define el puerto de persistencia para órdenes de picking.
type PickingOrderRepository interface {
	Create(order *entity.PickingOrder) error
	GetByID(id int64) (*entity.PickingOrder, error)
	Update(order *entity.PickingOrder) error
	List() ([]*entity.PickingOrder, error)
}
