// Package analytics contiene el resumen operativo del almacén (dashboard).
package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/wms-almacen/internal/application/dto"
	"github.com/jhoicas/wms-almacen/internal/application/inventory"
	"github.com/jhoicas/wms-almacen/internal/domain/entity"
	domaininv "github.com/jhoicas/wms-almacen/internal/domain/inventory"
	"github.com/jhoicas/wms-almacen/internal/domain/repository"
)

const dashboardRecentMovements = 5 // movimientos en el widget del dashboard

// DashboardUseCase genera el resumen del día a partir de las tres tablas operativas.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
	orderRepo   repository.PickingOrderRepository
	movRepo     repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	orderRepo repository.PickingOrderRepository,
	movRepo repository.MovementRepository,
) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, orderRepo: orderRepo, movRepo: movRepo}
}

// GetSummary construye el DashboardResponse.
//
// Tres lecturas en paralelo:
//  1. productos   → totales, stock bajo, stock total
//  2. órdenes     → pendientes, completadas hoy
//  3. movimientos → últimos 5 y estadísticas de 7 días
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	type productsResult struct {
		list []*entity.Product
		err  error
	}
	type ordersResult struct {
		list []*entity.PickingOrder
		err  error
	}
	type movementsResult struct {
		list []*entity.Movement
		err  error
	}

	productsCh := make(chan productsResult, 1)
	ordersCh := make(chan ordersResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		list, err := uc.productRepo.List()
		productsCh <- productsResult{list, err}
	}()
	go func() {
		list, err := uc.orderRepo.List()
		ordersCh <- ordersResult{list, err}
	}()
	go func() {
		list, err := uc.movRepo.List()
		movementsCh <- movementsResult{list, err}
	}()

	var products productsResult
	var orders ordersResult
	var movements movementsResult
	for received := 0; received < 3; received++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case products = <-productsCh:
		case orders = <-ordersCh:
		case movements = <-movementsCh:
		}
	}
	for _, err := range []error{products.err, orders.err, movements.err} {
		if err != nil {
			return nil, err
		}
	}

	out := &dto.DashboardResponse{TotalProducts: len(products.list)}
	for _, p := range products.list {
		out.TotalStock += p.Stock
		if domaininv.IsLowStock(p) {
			out.LowStockProducts++
		}
	}
	for _, o := range orders.list {
		switch {
		case o.Status == entity.OrderPending:
			out.PendingOrders++
		case o.IsCompleted() && o.CompletedAt != nil && !o.CompletedAt.Before(todayStart):
			out.CompletedOrdersToday++
		}
	}

	inventory.SortRecentFirst(movements.list)
	recent := movements.list
	if len(recent) > dashboardRecentMovements {
		recent = recent[:dashboardRecentMovements]
	}
	out.RecentMovements = dto.FromMovements(recent).Items
	out.MovementStats = inventory.Stats(movements.list, inventory.DefaultStatsWindowDays, now)
	return out, nil
}
