package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/wms-almacen/internal/application/analytics"
	"github.com/jhoicas/wms-almacen/internal/domain/entity"
	"github.com/jhoicas/wms-almacen/internal/infrastructure/memory"
)

func TestGetSummary_DatosDeDemo(t *testing.T) {
	data, err := memory.DemoData(bcrypt.MinCost)
	require.NoError(t, err)
	store := memory.NewStore(memory.WithData(data))
	movements := memory.NewMovementRepository(store)
	orders := memory.NewPickingOrderRepository(store)

	now := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, movements.Create(&entity.Movement{
			Type: entity.MovementInbound, ProductID: 1, Quantity: 2, Date: now.Add(-time.Duration(i) * time.Minute),
		}))
	}
	order, err := orders.GetByID(2)
	require.NoError(t, err)
	order.Status = entity.OrderCompleted
	order.CompletedAt = &now
	require.NoError(t, orders.Update(order))

	uc := analytics.NewDashboardUseCase(memory.NewProductRepository(store), orders, movements)
	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, out.TotalProducts)
	assert.Equal(t, 2, out.LowStockProducts)
	assert.Equal(t, 1, out.PendingOrders)
	assert.Equal(t, 1, out.CompletedOrdersToday, "PED-003 se completó en 2024")
	assert.Equal(t, 150+85+5+220+0, out.TotalStock)

	require.Len(t, out.RecentMovements, 5)
	assert.Equal(t, int64(3), out.RecentMovements[0].ID)
	assert.Equal(t, int64(7), out.RecentMovements[4].ID)

	assert.Equal(t, 7, out.MovementStats.WindowDays)
	assert.Equal(t, 5, out.MovementStats.TotalEntries)
	assert.Equal(t, 10, out.MovementStats.TotalQuantityIn)
	assert.Zero(t, out.MovementStats.TotalExits)
}

func TestGetSummary_ContextoCancelado(t *testing.T) {
	store := memory.NewStore(memory.WithLatency(50 * time.Millisecond))
	uc := analytics.NewDashboardUseCase(
		memory.NewProductRepository(store),
		memory.NewPickingOrderRepository(store),
		memory.NewMovementRepository(store),
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.GetSummary(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
