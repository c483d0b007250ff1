package repository

import "github.com/jhoicas/wms-almacen/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Create y Update devuelven domain.ErrDuplicate si SKU o EAN ya pertenecen a otro producto.
// GetByID y GetBySKUOrEAN devuelven (nil, nil) cuando no hay coincidencia.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetBySKUOrEAN(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
	List() ([]*entity.Product, error)
}
