package memory

import (
	"github.com/jhoicas/wms-almacen/internal/domain"
	"github.com/jhoicas/wms-almacen/internal/domain/entity"
	"github.com/jhoicas/wms-almacen/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepository)(nil)

// LocationRepository tabla de ubicaciones en memoria (clave: código de ubicación).
type LocationRepository struct {
	store *Store
	tx    *state
}

// NewLocationRepository construye el repositorio sobre el Store.
func NewLocationRepository(store *Store) *LocationRepository {
	return &LocationRepository{store: store}
}

func (r *LocationRepository) run(fn func(st *state) error) error {
	if r.tx != nil {
		return fn(r.tx)
	}
	return r.store.do(fn)
}

// Create agrega la ubicación; ErrDuplicate si el código ya existe.
func (r *LocationRepository) Create(l *entity.Location) error {
	return r.run(func(st *state) error {
		if st.locationIndex(l.ID) >= 0 {
			return domain.ErrDuplicate
		}
		st.locations = append(st.locations, l.Clone())
		return nil
	})
}

// GetByID devuelve una copia de la ubicación o nil si no existe.
func (r *LocationRepository) GetByID(id string) (*entity.Location, error) {
	var out *entity.Location
	err := r.run(func(st *state) error {
		if i := st.locationIndex(id); i >= 0 {
			out = st.locations[i].Clone()
		}
		return nil
	})
	return out, err
}

// Update reemplaza el registro completo.
func (r *LocationRepository) Update(l *entity.Location) error {
	return r.run(func(st *state) error {
		i := st.locationIndex(l.ID)
		if i < 0 {
			return domain.ErrNotFound
		}
		st.locations[i] = l.Clone()
		return nil
	})
}

// List copia de todas las ubicaciones en orden de inserción.
func (r *LocationRepository) List() ([]*entity.Location, error) {
	var out []*entity.Location
	err := r.run(func(st *state) error {
		out = make([]*entity.Location, 0, len(st.locations))
		for _, l := range st.locations {
			out = append(out, l.Clone())
		}
		return nil
	})
	return out, err
}

func (st *state) locationIndex(id string) int {
	for i, l := range st.locations {
		if l.ID == id {
			return i
		}
	}
	return -1
}
