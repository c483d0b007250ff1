package picking

import (
	"context"

	"github.com/jhoicas/wms-almacen/internal/domain/repository"
)

// TxRunner transacción sobre órdenes y productos: la orden y el descuento de stock se confirman juntos.
type TxRunner interface {
	RunPicking(ctx context.Context, fn func(
		orderRepo repository.PickingOrderRepository,
		productRepo repository.ProductRepository,
	) error) error
}
