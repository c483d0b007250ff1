// Package memory implementa las tablas del almacén en memoria: repositorios, transacciones
// y datos de demostración. Todas las operaciones se serializan con un mutex; las transacciones
// trabajan sobre una copia del estado que reemplaza al estado vivo solo si no hubo error.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/wms-almacen/internal/domain/entity"
)

// Store dueño de las cinco tablas. Se construye en la raíz de composición y se inyecta.
type Store struct {
	mu      sync.Mutex
	state   *state
	latency time.Duration
}

// Option configura el Store.
type Option func(*Store)

// WithLatency agrega una demora artificial antes de cada operación (simula red).
// Las transacciones (TxRunner) cortan la espera si el contexto se cancela; las lecturas
// y escrituras sueltas de los repositorios no reciben contexto y esperan completa.
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// WithData carga datos iniciales (ver DemoData).
func WithData(d Data) Option {
	return func(s *Store) { s.state.load(d) }
}

// NewStore construye un Store vacío aplicando las opciones.
func NewStore(opts ...Option) *Store {
	s := &Store{state: newState()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// do ejecuta fn sobre el estado vivo bajo el mutex. La latencia no se puede cancelar.
func (s *Store) do(fn func(st *state) error) error {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

// transact ejecuta fn sobre una copia del estado y la confirma si fn no falla.
func (s *Store) transact(ctx context.Context, fn func(tx *state) error) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	tx := s.state.clone()
	if err := fn(tx); err != nil {
		return err
	}
	s.state = tx
	return nil
}

func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Data contenido inicial de las tablas. Los IDs se respetan; los contadores siguen al mayor.
type Data struct {
	Products  []*entity.Product
	Locations []*entity.Location
	Movements []*entity.Movement
	Orders    []*entity.PickingOrder
	Users     []*entity.User
}

type state struct {
	products  []*entity.Product
	locations []*entity.Location
	movements []*entity.Movement
	orders    []*entity.PickingOrder
	users     []*entity.User

	nextProductID  int64
	nextMovementID int64
	nextOrderID    int64
	nextUserID     int64
}

func newState() *state {
	return &state{nextProductID: 1, nextMovementID: 1, nextOrderID: 1, nextUserID: 1}
}

func (st *state) clone() *state {
	c := &state{
		products:       make([]*entity.Product, len(st.products)),
		locations:      make([]*entity.Location, len(st.locations)),
		movements:      make([]*entity.Movement, len(st.movements)),
		orders:         make([]*entity.PickingOrder, len(st.orders)),
		users:          make([]*entity.User, len(st.users)),
		nextProductID:  st.nextProductID,
		nextMovementID: st.nextMovementID,
		nextOrderID:    st.nextOrderID,
		nextUserID:     st.nextUserID,
	}
	for i, p := range st.products {
		c.products[i] = p.Clone()
	}
	for i, l := range st.locations {
		c.locations[i] = l.Clone()
	}
	// los movimientos son inmutables: se comparte el puntero
	copy(c.movements, st.movements)
	for i, o := range st.orders {
		c.orders[i] = o.Clone()
	}
	for i, u := range st.users {
		c.users[i] = u.Clone()
	}
	return c
}

func (st *state) load(d Data) {
	for _, p := range d.Products {
		st.products = append(st.products, p.Clone())
		if p.ID >= st.nextProductID {
			st.nextProductID = p.ID + 1
		}
	}
	for _, l := range d.Locations {
		st.locations = append(st.locations, l.Clone())
	}
	for _, m := range d.Movements {
		st.movements = append(st.movements, m.Clone())
		if m.ID >= st.nextMovementID {
			st.nextMovementID = m.ID + 1
		}
	}
	for _, o := range d.Orders {
		st.orders = append(st.orders, o.Clone())
		if o.ID >= st.nextOrderID {
			st.nextOrderID = o.ID + 1
		}
	}
	for _, u := range d.Users {
		st.users = append(st.users, u.Clone())
		if u.ID >= st.nextUserID {
			st.nextUserID = u.ID + 1
		}
	}
}
