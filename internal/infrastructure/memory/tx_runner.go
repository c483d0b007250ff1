package memory

import (
	"context"

	"github.com/jhoicas/wms-almacen/internal/application/inventory"
	"github.com/jhoicas/wms-almacen/internal/application/picking"
	"github.com/jhoicas/wms-almacen/internal/application/usecase"
	"github.com/jhoicas/wms-almacen/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner, picking.TxRunner and usecase.ProductTxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ picking.TxRunner = (*TxRunner)(nil)
var _ usecase.ProductTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción del Store.
// Dentro del callback solo deben usarse los repositorios recibidos.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el Store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con repos atados a la transacción; confirma si fn devuelve nil.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) error) error {
	return r.store.transact(ctx, func(tx *state) error {
		return fn(
			&MovementRepository{store: r.store, tx: tx},
			&ProductRepository{store: r.store, tx: tx},
			&LocationRepository{store: r.store, tx: tx},
		)
	})
}

// RunPicking transacción con repos de órdenes y productos (para completar órdenes).
func (r *TxRunner) RunPicking(ctx context.Context, fn func(
	orderRepo repository.PickingOrderRepository,
	productRepo repository.ProductRepository,
) error) error {
	return r.store.transact(ctx, func(tx *state) error {
		return fn(
			&PickingOrderRepository{store: r.store, tx: tx},
			&ProductRepository{store: r.store, tx: tx},
		)
	})
}

// RunProducts transacción con el repo de productos (altas y ediciones atómicas).
func (r *TxRunner) RunProducts(ctx context.Context, fn func(productRepo repository.ProductRepository) error) error {
	return r.store.transact(ctx, func(tx *state) error {
		return fn(&ProductRepository{store: r.store, tx: tx})
	})
}
