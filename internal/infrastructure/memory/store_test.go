package memory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/wms-almacen/internal/domain"
	"github.com/jhoicas/wms-almacen/internal/domain/entity"
	"github.com/jhoicas/wms-almacen/internal/domain/repository"
	"github.com/jhoicas/wms-almacen/internal/infrastructure/memory"
)

func seededStore(t *testing.T, opts ...memory.Option) *memory.Store {
	t.Helper()
	data, err := memory.DemoData(bcrypt.MinCost)
	require.NoError(t, err)
	return memory.NewStore(append([]memory.Option{memory.WithData(data)}, opts...)...)
}

func TestDemoData_CargaTablas(t *testing.T) {
	store := seededStore(t)

	products, err := memory.NewProductRepository(store).List()
	require.NoError(t, err)
	assert.Len(t, products, 5)

	locations, err := memory.NewLocationRepository(store).List()
	require.NoError(t, err)
	assert.Len(t, locations, 7)
	assert.Equal(t, "A-01-01", locations[0].ID)

	users, err := memory.NewUserRepository(store).List()
	require.NoError(t, err)
	require.Len(t, users, len(memory.DemoUsers))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte("admin123")))
}

func TestProductRepository_CopiasDefensivas(t *testing.T) {
	repo := memory.NewProductRepository(seededStore(t))

	p, err := repo.GetByID(1)
	require.NoError(t, err)
	p.Stock = 9999

	list, err := repo.List()
	require.NoError(t, err)
	list[0].Name = "modificado"

	again, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 150, again.Stock)
	assert.Equal(t, "Producto A - Electrónico", again.Name)
}

func TestProductRepository_IDsMonotonos(t *testing.T) {
	repo := memory.NewProductRepository(seededStore(t))

	require.NoError(t, repo.Delete(5))
	p := &entity.Product{SKU: "N1", EAN: "N1"}
	require.NoError(t, repo.Create(p))
	assert.Equal(t, int64(6), p.ID, "un ID eliminado no se reutiliza")

	assert.ErrorIs(t, repo.Delete(5), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Update(&entity.Product{ID: 42}), domain.ErrNotFound)

	missing, err := repo.GetByID(42)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductRepository_GetBySKUOrEAN(t *testing.T) {
	repo := memory.NewProductRepository(seededStore(t))

	bySKU, err := repo.GetBySKUOrEAN("SKU002")
	require.NoError(t, err)
	require.NotNil(t, bySKU)
	assert.Equal(t, int64(2), bySKU.ID)

	byEAN, err := repo.GetBySKUOrEAN("7501234567892")
	require.NoError(t, err)
	require.NotNil(t, byEAN)
	assert.Equal(t, int64(3), byEAN.ID)

	none, err := repo.GetBySKUOrEAN("NO-EXISTE")
	assert.NoError(t, err, "sin coincidencia no es error")
	assert.Nil(t, none)
}

func TestProductRepository_CodigosUnicos(t *testing.T) {
	repo := memory.NewProductRepository(seededStore(t))

	assert.ErrorIs(t, repo.Create(&entity.Product{SKU: "SKU001", EAN: "NUEVO"}), domain.ErrDuplicate)
	assert.ErrorIs(t, repo.Create(&entity.Product{SKU: "NUEVO", EAN: "SKU002"}), domain.ErrDuplicate, "un EAN no puede repetir un SKU")

	p, err := repo.GetByID(3)
	require.NoError(t, err)
	p.EAN = "7501234567890"
	assert.ErrorIs(t, repo.Update(p), domain.ErrDuplicate)

	p.EAN = "7501234567892"
	p.Name = "renombrado"
	assert.NoError(t, repo.Update(p), "sus propios códigos no cuentan como duplicado")

	list, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, list, 5)
}

func TestProductRepository_CreateConcurrenteMismoSKU(t *testing.T) {
	repo := memory.NewProductRepository(seededStore(t, memory.WithLatency(20*time.Millisecond)))

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(&entity.Product{SKU: "DUP", EAN: fmt.Sprintf("EAN-%d", i)})
		}(i)
	}
	wg.Wait()

	var created int
	for _, err := range errs {
		if err == nil {
			created++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	}
	assert.Equal(t, 1, created)
	p, err := repo.GetBySKUOrEAN("DUP")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, int64(6), p.ID)
}

func TestLocationRepository_CreateDuplicado(t *testing.T) {
	repo := memory.NewLocationRepository(seededStore(t))
	err := repo.Create(&entity.Location{ID: "A-01-01", Zone: "A", Rack: "01", Level: "01", Capacity: 10})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUserRepository_FindByEmailSinMayusculas(t *testing.T) {
	repo := memory.NewUserRepository(seededStore(t))
	u, err := repo.FindByEmail("ADMIN@wms.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, entity.RoleAdmin, u.Role)

	err = repo.Create(&entity.User{Email: "admin@wms.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacciones
// ──────────────────────────────────────────────────────────────────────────────

func TestTxRunner_RollbackDejaTablasIntactas(t *testing.T) {
	store := seededStore(t)
	runner := memory.NewTxRunner(store)
	boom := errors.New("falla simulada")

	err := runner.Run(context.Background(), func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
	) error {
		p, err := productRepo.GetByID(1)
		require.NoError(t, err)
		p.Stock = 0
		require.NoError(t, productRepo.Update(p))
		require.NoError(t, movRepo.Create(&entity.Movement{Type: entity.MovementOutbound, ProductID: 1, Quantity: 150}))
		l, err := locationRepo.GetByID("A-01-02")
		require.NoError(t, err)
		l.Occupied = true
		require.NoError(t, locationRepo.Update(l))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	p, err := memory.NewProductRepository(store).GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 150, p.Stock)

	movements, err := memory.NewMovementRepository(store).List()
	require.NoError(t, err)
	assert.Len(t, movements, 2)

	l, err := memory.NewLocationRepository(store).GetByID("A-01-02")
	require.NoError(t, err)
	assert.False(t, l.Occupied)

	// el contador tampoco avanza
	m := &entity.Movement{Type: entity.MovementInbound, ProductID: 1, Quantity: 1}
	require.NoError(t, memory.NewMovementRepository(store).Create(m))
	assert.Equal(t, int64(3), m.ID)
}

func TestTxRunner_CommitVisibleAlTerminar(t *testing.T) {
	store := seededStore(t)
	runner := memory.NewTxRunner(store)

	err := runner.RunPicking(context.Background(), func(orderRepo repository.PickingOrderRepository, productRepo repository.ProductRepository) error {
		o, err := orderRepo.GetByID(1)
		require.NoError(t, err)
		o.Status = entity.OrderInProcess
		return orderRepo.Update(o)
	})
	require.NoError(t, err)

	o, err := memory.NewPickingOrderRepository(store).GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderInProcess, o.Status)
}

func TestStore_LecturaSimpleEsperaLatencia(t *testing.T) {
	repo := memory.NewProductRepository(seededStore(t, memory.WithLatency(20*time.Millisecond)))

	start := time.Now()
	p, err := repo.GetByID(1)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestTxRunner_RunProductsConfirmaYRevierte(t *testing.T) {
	store := seededStore(t)
	runner := memory.NewTxRunner(store)
	products := memory.NewProductRepository(store)
	ctx := context.Background()

	err := runner.RunProducts(ctx, func(repo repository.ProductRepository) error {
		p, err := repo.GetByID(2)
		if err != nil {
			return err
		}
		p.Description = "primero"
		if err := repo.Update(p); err != nil {
			return err
		}
		return repo.Create(&entity.Product{SKU: "SKU002", EAN: "OTRO"})
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	p, err := products.GetByID(2)
	require.NoError(t, err)
	assert.NotEqual(t, "primero", p.Description, "el alta fallida revierte la edición")

	ctx, cancel := context.WithCancel(ctx)
	cancel()
	err = runner.RunProducts(ctx, func(repository.ProductRepository) error {
		t.Fatal("no debe ejecutarse con el contexto cancelado")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTxRunner_ContextoCancelado(t *testing.T) {
	store := seededStore(t, memory.WithLatency(50*time.Millisecond))
	runner := memory.NewTxRunner(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := runner.Run(ctx, func(repository.MovementRepository, repository.ProductRepository, repository.LocationRepository) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
