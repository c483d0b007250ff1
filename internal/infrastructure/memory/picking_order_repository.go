package memory

import (
	"github.com/jhoicas/wms-almacen/internal/domain"
	"github.com/jhoicas/wms-almacen/internal/domain/entity"
	"github.com/jhoicas/wms-almacen/internal/domain/repository"
)

var _ repository.PickingOrderRepository = (*PickingOrderRepository)(nil)

// PickingOrderRepository tabla de órdenes de picking en memoria.
type PickingOrderRepository struct {
	store *Store
	tx    *state
}

// NewPickingOrderRepository construye el repositorio sobre el Store.
func NewPickingOrderRepository(store *Store) *PickingOrderRepository {
	return &PickingOrderRepository{store: store}
}

func (r *PickingOrderRepository) run(fn func(st *state) error) error {
	if r.tx != nil {
		return fn(r.tx)
	}
	return r.store.do(fn)
}

// Create asigna el siguiente ID y agrega la orden.
func (r *PickingOrderRepository) Create(o *entity.PickingOrder) error {
	return r.run(func(st *state) error {
		o.ID = st.nextOrderID
		st.nextOrderID++
		st.orders = append(st.orders, o.Clone())
		return nil
	})
}

// GetByID devuelve una copia de la orden o nil si no existe.
func (r *PickingOrderRepository) GetByID(id int64) (*entity.PickingOrder, error) {
	var out *entity.PickingOrder
	err := r.run(func(st *state) error {
		for _, o := range st.orders {
			if o.ID == id {
				out = o.Clone()
				return nil
			}
		}
		return nil
	})
	return out, err
}

// Update reemplaza el registro completo.
func (r *PickingOrderRepository) Update(o *entity.PickingOrder) error {
	return r.run(func(st *state) error {
		for i := range st.orders {
			if st.orders[i].ID == o.ID {
				st.orders[i] = o.Clone()
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// List copia de todas las órdenes en orden de inserción.
func (r *PickingOrderRepository) List() ([]*entity.PickingOrder, error) {
	var out []*entity.PickingOrder
	err := r.run(func(st *state) error {
		out = make([]*entity.PickingOrder, 0, len(st.orders))
		for _, o := range st.orders {
			out = append(out, o.Clone())
		}
		return nil
	})
	return out, err
}
