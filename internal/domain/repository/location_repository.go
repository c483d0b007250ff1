package repository

import "github.com/jhoicas/wms-almacen/internal/domain/entity"

// LocationRepository define el puerto de persistencia para ubicaciones de rack.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	Update(location *entity.Location) error
	List() ([]*entity.Location, error)
}
