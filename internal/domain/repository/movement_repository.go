package repository

import "github.com/jhoicas/wms-almacen/internal/domain/entity"

// MovementRepository define el puerto de persistencia para movimientos (solo inserción).
type MovementRepository interface {
	Create(movement *entity.Movement) error
	List() ([]*entity.Movement, error)
}
