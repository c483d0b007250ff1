package memory

import (
	"github.com/jhoicas/wms-almacen/internal/domain/entity"
	"github.com/jhoicas/wms-almacen/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepository)(nil)

// MovementRepository libro de movimientos en memoria (solo inserción).
type MovementRepository struct {
	store *Store
	tx    *state
}

// NewMovementRepository construye el repositorio sobre el Store.
func NewMovementRepository(store *Store) *MovementRepository {
	return &MovementRepository{store: store}
}

func (r *MovementRepository) run(fn func(st *state) error) error {
	if r.tx != nil {
		return fn(r.tx)
	}
	return r.store.do(fn)
}

// Create asigna el siguiente ID y agrega el movimiento.
func (r *MovementRepository) Create(m *entity.Movement) error {
	return r.run(func(st *state) error {
		m.ID = st.nextMovementID
		st.nextMovementID++
		st.movements = append(st.movements, m.Clone())
		return nil
	})
}

// List copia de todos los movimientos en orden de inserción.
func (r *MovementRepository) List() ([]*entity.Movement, error) {
	var out []*entity.Movement
	err := r.run(func(st *state) error {
		out = make([]*entity.Movement, 0, len(st.movements))
		for _, m := range st.movements {
			out = append(out, m.Clone())
		}
		return nil
	})
	return out, err
}
