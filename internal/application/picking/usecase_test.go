package picking_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/wms-almacen/internal/application/dto"
	"github.com/jhoicas/wms-almacen/internal/application/picking"
	"github.com/jhoicas/wms-almacen/internal/domain"
	"github.com/jhoicas/wms-almacen/internal/domain/entity"
	"github.com/jhoicas/wms-almacen/internal/infrastructure/memory"
)

func setup(t *testing.T, strict bool) (*picking.UseCase, *memory.ProductRepository) {
	t.Helper()
	data, err := memory.DemoData(bcrypt.MinCost)
	require.NoError(t, err)
	store := memory.NewStore(memory.WithData(data))
	uc := picking.NewUseCase(memory.NewTxRunner(store), memory.NewPickingOrderRepository(store), strict)
	return uc, memory.NewProductRepository(store)
}

func stockOf(t *testing.T, repo *memory.ProductRepository, id int64) int {
	t.Helper()
	p, err := repo.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta y consulta
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ValoresPorDefectoYCopiaDelProducto(t *testing.T) {
	uc, _ := setup(t, false)
	out, err := uc.Create(context.Background(), dto.CreatePickingOrderRequest{
		Items: []dto.CreateOrderItemRequest{{ProductID: 2, Quantity: 4}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), out.ID)
	assert.Equal(t, "PED-004", out.OrderNumber)
	assert.Equal(t, entity.OrderPending, out.Status)
	assert.Equal(t, entity.PriorityMedium, out.Priority)
	assert.Nil(t, out.AssignedTo)
	assert.Nil(t, out.CompletedAt)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Producto B - Herramienta", out.Items[0].ProductName)
	assert.Equal(t, "B-02-03", out.Items[0].Location)
	assert.Zero(t, out.Items[0].Picked)

	got, err := uc.GetByID(out.ID)
	require.NoError(t, err)
	assert.Equal(t, "PED-004", got.OrderNumber)
}

func TestCreate_Validaciones(t *testing.T) {
	uc, _ := setup(t, false)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreatePickingOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreatePickingOrderRequest{
		Priority: "urgente", Items: []dto.CreateOrderItemRequest{{ProductID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreatePickingOrderRequest{
		Items: []dto.CreateOrderItemRequest{{ProductID: 1, Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.Create(ctx, dto.CreatePickingOrderRequest{
		Items: []dto.CreateOrderItemRequest{{ProductID: 1, Quantity: 1}, {ProductID: 99, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := uc.List("")
	require.NoError(t, err)
	assert.Equal(t, 3, list.Total, "una orden rechazada no queda guardada")
}

func TestList_FiltroYConteos(t *testing.T) {
	uc, _ := setup(t, false)

	pending, err := uc.List("pendiente")
	require.NoError(t, err)
	require.Equal(t, 1, pending.Total)
	assert.Equal(t, "PED-001", pending.Items[0].OrderNumber)
	assert.Equal(t, map[string]int{
		entity.OrderPending: 1, entity.OrderInProcess: 1, entity.OrderCompleted: 1,
	}, pending.Counts)

	_, err = uc.List("cancelada")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetByID(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestAssign_PasaAEnProceso(t *testing.T) {
	uc, _ := setup(t, false)
	ctx := context.Background()

	out, err := uc.Assign(ctx, 1, "Pedro Operario")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderInProcess, out.Status)
	require.NotNil(t, out.AssignedTo)
	assert.Equal(t, "Pedro Operario", *out.AssignedTo)

	out, err = uc.Assign(ctx, 2, "Juan Supervisor")
	require.NoError(t, err, "una orden en proceso se puede reasignar")
	assert.Equal(t, "Juan Supervisor", *out.AssignedTo)

	_, err = uc.Assign(ctx, 3, "Pedro Operario")
	assert.ErrorIs(t, err, domain.ErrOrderCompleted)
	_, err = uc.Assign(ctx, 1, "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Assign(ctx, 99, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateItemPicked_AutoCompletaSinDescontarStock(t *testing.T) {
	uc, products := setup(t, false)
	ctx := context.Background()

	res, err := uc.UpdateItemPicked(ctx, 1, 1, 10)
	require.NoError(t, err)
	assert.False(t, res.AutoCompleted)
	assert.Equal(t, entity.OrderPending, res.Order.Status)

	res, err = uc.UpdateItemPicked(ctx, 1, 4, 5)
	require.NoError(t, err)
	assert.True(t, res.AutoCompleted)
	assert.Equal(t, entity.OrderCompleted, res.Order.Status)
	assert.NotNil(t, res.Order.CompletedAt)
	assert.False(t, res.Order.StockApplied)
	assert.Equal(t, 150, stockOf(t, products, 1))

	res, err = uc.UpdateItemPicked(ctx, 1, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, res.Order.Status, "nunca vuelve atrás")
	assert.False(t, res.AutoCompleted)
}

func TestUpdateItemPicked_RepetirMismaCantidadNoCambiaLaOrden(t *testing.T) {
	uc, _ := setup(t, false)
	ctx := context.Background()

	first, err := uc.UpdateItemPicked(ctx, 1, 1, 7)
	require.NoError(t, err)
	second, err := uc.UpdateItemPicked(ctx, 1, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, first.Order, second.Order)
	assert.Equal(t, first.AutoCompleted, second.AutoCompleted)

	order, err := uc.Order(1)
	require.NoError(t, err)
	assert.Equal(t, 7, order.Items[order.Item(1)].Picked)
}

func TestUpdateItemPicked_RepetirCantidadFinalNoReestampaCompletado(t *testing.T) {
	uc, _ := setup(t, false)
	ctx := context.Background()

	first, err := uc.UpdateItemPicked(ctx, 2, 2, 3)
	require.NoError(t, err)
	require.True(t, first.AutoCompleted)
	require.NotNil(t, first.Order.CompletedAt)

	time.Sleep(5 * time.Millisecond)
	second, err := uc.UpdateItemPicked(ctx, 2, 2, 3)
	require.NoError(t, err)
	assert.False(t, second.AutoCompleted)
	require.NotNil(t, second.Order.CompletedAt)
	assert.Equal(t, first.Order.CompletedAt.UnixNano(), second.Order.CompletedAt.UnixNano())
	assert.Equal(t, entity.OrderCompleted, second.Order.Status)
	assert.Equal(t, first.Order.Items, second.Order.Items)
}

func TestUpdateItemPicked_Errores(t *testing.T) {
	uc, _ := setup(t, false)
	ctx := context.Background()

	_, err := uc.UpdateItemPicked(ctx, 1, 1, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	_, err = uc.UpdateItemPicked(ctx, 1, 2, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.UpdateItemPicked(ctx, 99, 1, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestComplete_DescuentaStockUnaSolaVez(t *testing.T) {
	uc, products := setup(t, false)
	ctx := context.Background()

	out, err := uc.Complete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, out.Status)
	assert.True(t, out.StockApplied)
	require.NotNil(t, out.CompletedAt)
	assert.Equal(t, 140, stockOf(t, products, 1))
	assert.Equal(t, 215, stockOf(t, products, 4))

	again, err := uc.Complete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, out.CompletedAt.UnixNano(), again.CompletedAt.UnixNano())
	assert.Equal(t, 140, stockOf(t, products, 1))
	assert.Equal(t, 215, stockOf(t, products, 4))
}

func TestComplete_TrasAutoCompletarDescuentaUnaVez(t *testing.T) {
	uc, products := setup(t, false)
	ctx := context.Background()

	_, err := uc.UpdateItemPicked(ctx, 2, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 85, stockOf(t, products, 2))

	out, err := uc.Complete(ctx, 2)
	require.NoError(t, err)
	assert.True(t, out.StockApplied)
	assert.Equal(t, 82, stockOf(t, products, 2))

	_, err = uc.Complete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 82, stockOf(t, products, 2))
}

func TestComplete_OrdenDeLaDemoYaAplicada(t *testing.T) {
	uc, products := setup(t, false)
	out, err := uc.Complete(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCompleted, out.Status)
	assert.Equal(t, 150, stockOf(t, products, 1))
}

func TestComplete_ModoEstrictoRechazaYNoCambiaNada(t *testing.T) {
	uc, products := setup(t, true)
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreatePickingOrderRequest{
		Items: []dto.CreateOrderItemRequest{{ProductID: 1, Quantity: 5}, {ProductID: 3, Quantity: 6}},
	})
	require.NoError(t, err)

	_, err = uc.Complete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 150, stockOf(t, products, 1), "el descuento del primer ítem se revierte")
	assert.Equal(t, 5, stockOf(t, products, 3))

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, got.Status)
}

func TestOrder_DevuelveEntidad(t *testing.T) {
	uc, _ := setup(t, false)
	o, err := uc.Order(2)
	require.NoError(t, err)
	assert.Equal(t, "PED-002", o.OrderNumber)
	assert.Len(t, o.Items, 1)
}
