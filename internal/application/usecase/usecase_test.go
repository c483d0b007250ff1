package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/wms-almacen/internal/application/dto"
	"github.com/jhoicas/wms-almacen/internal/application/usecase"
	"github.com/jhoicas/wms-almacen/internal/domain"
	"github.com/jhoicas/wms-almacen/internal/domain/entity"
	"github.com/jhoicas/wms-almacen/internal/infrastructure/memory"
)

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	data, err := memory.DemoData(bcrypt.MinCost)
	require.NoError(t, err)
	return memory.NewStore(memory.WithData(data))
}

func newProductUseCase(store *memory.Store) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(memory.NewTxRunner(store), memory.NewProductRepository(store))
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUseCase_Create_StockEnCero(t *testing.T) {
	uc := newProductUseCase(memory.NewStore())
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateProductRequest{
		SKU: "SKU100", EAN: "7500000000100", Name: "Nuevo", MinStock: 20,
		RotationType: "alta", Volume: "grande", NextArrival: strPtr("2024-12-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, 0, out.Stock)
	assert.Nil(t, out.LastEntry)
	assert.Equal(t, entity.RotationHigh, out.RotationType)
	assert.Equal(t, entity.VolumeLarge, out.Volume)
	require.NotNil(t, out.NextArrival)
	assert.Equal(t, "2024-12-01", *out.NextArrival)
	assert.Equal(t, "out_of_stock", out.Status)
}

func TestProductUseCase_Create_Validaciones(t *testing.T) {
	uc := newProductUseCase(seededStore(t))
	ctx := context.Background()
	base := dto.CreateProductRequest{SKU: "X1", EAN: "X1EAN", Name: "X", RotationType: "high", Volume: "small"}

	dup := base
	dup.SKU = "SKU001"
	_, err := uc.Create(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	dupEAN := base
	dupEAN.EAN = "7501234567890"
	_, err = uc.Create(ctx, dupEAN)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	badRotation := base
	badRotation.RotationType = "rapida"
	_, err = uc.Create(ctx, badRotation)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	badDate := base
	badDate.NextArrival = strPtr("01/12/2024")
	_, err = uc.Create(ctx, badDate)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_Update_NoTocaStock(t *testing.T) {
	uc := newProductUseCase(seededStore(t))
	ctx := context.Background()

	out, err := uc.Update(ctx, 1, dto.UpdateProductRequest{
		Name:        strPtr("Producto A renombrado"),
		MinStock:    intPtr(40),
		NextArrival: strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "Producto A renombrado", out.Name)
	assert.Equal(t, 40, out.MinStock)
	assert.Equal(t, 150, out.Stock)
	assert.Nil(t, out.NextArrival, "cadena vacía borra la fecha")
	require.NotNil(t, out.LastEntry)
	assert.Equal(t, "2024-10-15", *out.LastEntry)

	_, err = uc.Update(ctx, 1, dto.UpdateProductRequest{SKU: strPtr("SKU002")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Update(ctx, 99, dto.UpdateProductRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_Create_ConcurrenteMismoCodigo(t *testing.T) {
	store := memory.NewStore(memory.WithLatency(30 * time.Millisecond))
	uc := newProductUseCase(store)
	ctx := context.Background()
	in := dto.CreateProductRequest{SKU: "DUP", EAN: "123", Name: "Duplicado", RotationType: "high", Volume: "small"}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Create(ctx, in)
		}(i)
	}
	wg.Wait()

	var ok, dup int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrDuplicate):
			dup++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, dup)

	found, err := uc.Search("DUP")
	require.NoError(t, err)
	assert.Len(t, found.Items, 1)
}

func TestProductUseCase_Update_ConcurrenteMismoSKU(t *testing.T) {
	data, err := memory.DemoData(bcrypt.MinCost)
	require.NoError(t, err)
	uc := newProductUseCase(memory.NewStore(memory.WithData(data), memory.WithLatency(30*time.Millisecond)))
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, id := range []int64{1, 2} {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			_, errs[i] = uc.Update(ctx, id, dto.UpdateProductRequest{SKU: strPtr("SKU-NUEVO")})
		}(i, id)
	}
	wg.Wait()

	var dup int
	for _, err := range errs {
		if errors.Is(err, domain.ErrDuplicate) {
			dup++
		} else {
			require.NoError(t, err)
		}
	}
	assert.Equal(t, 1, dup)
	found, err := uc.Search("SKU-NUEVO")
	require.NoError(t, err)
	assert.Len(t, found.Items, 1)
}

func TestProductUseCase_GetYDelete(t *testing.T) {
	uc := newProductUseCase(seededStore(t))

	_, err := uc.GetByID(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	byCode, err := uc.GetBySKUOrEAN("7501234567891")
	require.NoError(t, err)
	require.NotNil(t, byCode)
	assert.Equal(t, "SKU002", byCode.SKU)

	none, err := uc.GetBySKUOrEAN("zzz")
	require.NoError(t, err)
	assert.Nil(t, none)

	require.NoError(t, uc.Delete(2))
	assert.ErrorIs(t, uc.Delete(2), domain.ErrNotFound)
	list, err := uc.List()
	require.NoError(t, err)
	assert.Equal(t, 4, list.Total)
}

func TestProductUseCase_Consultas(t *testing.T) {
	uc := newProductUseCase(seededStore(t))

	low, err := uc.LowStock()
	require.NoError(t, err)
	ids := []int64{}
	for _, p := range low.Items {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{3, 5}, ids)

	out, err := uc.OutOfStock()
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(5), out.Items[0].ID)

	found, err := uc.Search("herram")
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "SKU002", found.Items[0].SKU)

	all, err := uc.Search("")
	require.NoError(t, err)
	assert.Equal(t, 5, all.Total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ubicaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestLocationUseCase_SuggestYAssign(t *testing.T) {
	store := seededStore(t)
	uc := usecase.NewLocationUseCase(memory.NewLocationRepository(store))

	s, err := uc.Suggest("high", "small")
	require.NoError(t, err)
	assert.Equal(t, "A-01-02", s.ID)

	// zona B llena en la demo: cae en la primera libre
	s, err = uc.Suggest("medium", "")
	require.NoError(t, err)
	assert.Equal(t, "A-01-02", s.ID)

	assigned, err := uc.Assign("A-01-02", 1)
	require.NoError(t, err)
	assert.True(t, assigned.Occupied)
	again, err := uc.Assign("A-01-02", 1)
	require.NoError(t, err, "asignar es idempotente")
	assert.True(t, again.Occupied)

	_, err = uc.Assign("Z-99-99", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// el producto no interviene: ni se valida ni cambia su ubicación
	_, err = uc.Assign("A-02-01", 999)
	require.NoError(t, err)
	p, err := memory.NewProductRepository(store).GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "A-01-01", p.Location)
	_, err = uc.Suggest("low", "")
	assert.ErrorIs(t, err, domain.ErrNoCapacity)
}

func TestLocationUseCase_CreateYSummary(t *testing.T) {
	uc := usecase.NewLocationUseCase(memory.NewLocationRepository(seededStore(t)))

	created, err := uc.Create(dto.CreateLocationRequest{ID: "c-02-01", Capacity: 80})
	require.NoError(t, err)
	assert.Equal(t, "C-02-01", created.ID)
	assert.Equal(t, "C", created.Zone)
	assert.False(t, created.Occupied)

	_, err = uc.Create(dto.CreateLocationRequest{ID: "C-02-01", Capacity: 80})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	_, err = uc.Create(dto.CreateLocationRequest{ID: "C02", Capacity: 80})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	sum, err := uc.Summary()
	require.NoError(t, err)
	assert.Equal(t, 8, sum.Total)
	assert.Equal(t, 5, sum.Occupied)
	assert.Equal(t, 3, sum.Available)
	assert.Equal(t, "62.5", sum.OccupancyRate.String())
	require.Len(t, sum.Zones, 3)
	assert.Equal(t, "A", sum.Zones[0].Zone)
	assert.Len(t, sum.Zones[0].Locations, 4)
	assert.Len(t, sum.Zones[2].Locations, 2)

	avail, err := uc.Available()
	require.NoError(t, err)
	assert.Equal(t, 3, avail.Total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock
// ──────────────────────────────────────────────────────────────────────────────

func TestStockUseCase_EstadosYResumen(t *testing.T) {
	uc := usecase.NewStockUseCase(memory.NewProductRepository(seededStore(t)))

	items, err := uc.List("")
	require.NoError(t, err)
	require.Len(t, items, 5)
	assert.Equal(t, "available", items[0].Status)
	assert.Equal(t, "low_stock", items[2].Status)
	assert.Equal(t, "out_of_stock", items[4].Status)

	filtered, err := uc.List("consumible")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "SKU005", filtered[0].SKU)

	sum, err := uc.Summary()
	require.NoError(t, err)
	assert.Equal(t, dto.StockSummaryResponse{Total: 5, Available: 3, LowStock: 1, OutOfStock: 1}, *sum)
}

func TestUserUseCase_ListSinCredenciales(t *testing.T) {
	uc := usecase.NewUserUseCase(memory.NewUserRepository(seededStore(t)))
	out, err := uc.List()
	require.NoError(t, err)
	assert.Equal(t, 4, out.Total)
	assert.Equal(t, "admin@wms.com", out.Items[0].Email)

	_, err = uc.GetByID(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
