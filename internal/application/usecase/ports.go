package usecase

import (
	"context"

	"github.com/jhoicas/wms-almacen/internal/domain/repository"
)

// ProductTxRunner ejecuta fn con un repositorio de productos atado a una transacción.
// Lectura y escritura del mismo producto no se intercalan con movimientos concurrentes.
type ProductTxRunner interface {
	RunProducts(ctx context.Context, fn func(productRepo repository.ProductRepository) error) error
}
