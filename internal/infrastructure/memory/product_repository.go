package memory

import (
	"github.com/jhoicas/wms-almacen/internal/domain"
	"github.com/jhoicas/wms-almacen/internal/domain/entity"
	"github.com/jhoicas/wms-almacen/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository tabla de productos en memoria.
type ProductRepository struct {
	store *Store
	tx    *state
}

// NewProductRepository construye el repositorio sobre el Store.
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) run(fn func(st *state) error) error {
	if r.tx != nil {
		return fn(r.tx)
	}
	return r.store.do(fn)
}

// Create asigna el siguiente ID y agrega el producto.
// ErrDuplicate si SKU o EAN ya pertenecen a otro producto.
func (r *ProductRepository) Create(p *entity.Product) error {
	return r.run(func(st *state) error {
		if st.codeTaken(0, p.SKU, p.EAN) {
			return domain.ErrDuplicate
		}
		p.ID = st.nextProductID
		st.nextProductID++
		st.products = append(st.products, p.Clone())
		return nil
	})
}

// GetByID devuelve una copia del producto o nil si no existe.
func (r *ProductRepository) GetByID(id int64) (*entity.Product, error) {
	var out *entity.Product
	err := r.run(func(st *state) error {
		if i := st.productIndex(id); i >= 0 {
			out = st.products[i].Clone()
		}
		return nil
	})
	return out, err
}

// GetBySKUOrEAN busca por coincidencia exacta de SKU o EAN; nil si no hay.
func (r *ProductRepository) GetBySKUOrEAN(code string) (*entity.Product, error) {
	var out *entity.Product
	err := r.run(func(st *state) error {
		for _, p := range st.products {
			if p.SKU == code || p.EAN == code {
				out = p.Clone()
				return nil
			}
		}
		return nil
	})
	return out, err
}

// Update reemplaza el registro completo. Mismas reglas de unicidad que Create.
func (r *ProductRepository) Update(p *entity.Product) error {
	return r.run(func(st *state) error {
		i := st.productIndex(p.ID)
		if i < 0 {
			return domain.ErrNotFound
		}
		if st.codeTaken(p.ID, p.SKU, p.EAN) {
			return domain.ErrDuplicate
		}
		st.products[i] = p.Clone()
		return nil
	})
}

// Delete elimina el producto; no limpia referencias en movimientos ni órdenes.
func (r *ProductRepository) Delete(id int64) error {
	return r.run(func(st *state) error {
		i := st.productIndex(id)
		if i < 0 {
			return domain.ErrNotFound
		}
		st.products = append(st.products[:i:i], st.products[i+1:]...)
		return nil
	})
}

// List copia de todos los productos en orden de inserción.
func (r *ProductRepository) List() ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.run(func(st *state) error {
		out = make([]*entity.Product, 0, len(st.products))
		for _, p := range st.products {
			out = append(out, p.Clone())
		}
		return nil
	})
	return out, err
}

func (st *state) productIndex(id int64) int {
	for i, p := range st.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// codeTaken indica si algún producto distinto de selfID usa alguno de los códigos como SKU o EAN.
func (st *state) codeTaken(selfID int64, codes ...string) bool {
	for _, p := range st.products {
		if p.ID == selfID {
			continue
		}
		for _, code := range codes {
			if code != "" && (p.SKU == code || p.EAN == code) {
				return true
			}
		}
	}
	return false
}
