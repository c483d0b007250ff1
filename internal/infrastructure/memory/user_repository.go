package memory

import (
	"strings"

	"github.com/jhoicas/wms-almacen/internal/domain"
	"github.com/jhoicas/wms-almacen/internal/domain/entity"
	"github.com/jhoicas/wms-almacen/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository tabla de usuarios en memoria.
type UserRepository struct {
	store *Store
}

// NewUserRepository construye el repositorio sobre el Store.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create asigna el siguiente ID; ErrDuplicate si el email ya existe.
func (r *UserRepository) Create(u *entity.User) error {
	return r.store.do(func(st *state) error {
		if st.userByEmail(u.Email) != nil {
			return domain.ErrDuplicate
		}
		u.ID = st.nextUserID
		st.nextUserID++
		st.users = append(st.users, u.Clone())
		return nil
	})
}

// GetByID devuelve una copia del usuario o nil si no existe.
func (r *UserRepository) GetByID(id int64) (*entity.User, error) {
	var out *entity.User
	err := r.store.do(func(st *state) error {
		for _, u := range st.users {
			if u.ID == id {
				out = u.Clone()
				return nil
			}
		}
		return nil
	})
	return out, err
}

// FindByEmail busca sin distinguir mayúsculas; nil si no existe.
func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var out *entity.User
	err := r.store.do(func(st *state) error {
		out = st.userByEmail(email).Clone()
		return nil
	})
	return out, err
}

// Update reemplaza el registro completo.
func (r *UserRepository) Update(u *entity.User) error {
	return r.store.do(func(st *state) error {
		for i := range st.users {
			if st.users[i].ID == u.ID {
				st.users[i] = u.Clone()
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// List copia de todos los usuarios.
func (r *UserRepository) List() ([]*entity.User, error) {
	var out []*entity.User
	err := r.store.do(func(st *state) error {
		out = make([]*entity.User, 0, len(st.users))
		for _, u := range st.users {
			out = append(out, u.Clone())
		}
		return nil
	})
	return out, err
}

func (st *state) userByEmail(email string) *entity.User {
	for _, u := range st.users {
		if strings.EqualFold(u.Email, strings.TrimSpace(email)) {
			return u
		}
	}
	return nil
}
