// Package picking implementa la máquina de estados de las órdenes de picking:
// pending -> in_process -> completed. completed es terminal.
package picking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/wms-almacen/internal/application/dto"
	"github.com/jhoicas/wms-almacen/internal/domain"
	"github.com/jhoicas/wms-almacen/internal/domain/entity"
	"github.com/jhoicas/wms-almacen/internal/domain/inventory"
	"github.com/jhoicas/wms-almacen/internal/domain/repository"
)

// OrderNumberFormat numeración por defecto a partir del ID de la orden.
const OrderNumberFormat = "PED-%03d"

// UseCase casos de uso de órdenes de picking.
type UseCase struct {
	txRunner  TxRunner
	orderRepo repository.PickingOrderRepository
	strict    bool
}

// NewUseCase construye el caso de uso. strictStock aplica la misma regla que el libro de movimientos.
func NewUseCase(txRunner TxRunner, orderRepo repository.PickingOrderRepository, strictStock bool) *UseCase {
	return &UseCase{txRunner: txRunner, orderRepo: orderRepo, strict: strictStock}
}

// Create crea una orden pendiente. Nombre y ubicación de cada ítem se copian del producto.
func (uc *UseCase) Create(ctx context.Context, in dto.CreatePickingOrderRequest) (*dto.PickingOrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	priority := entity.PriorityMedium
	if strings.TrimSpace(in.Priority) != "" {
		if priority = entity.NormalizePriority(in.Priority); priority == "" {
			return nil, domain.ErrInvalidInput
		}
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	order := &entity.PickingOrder{
		OrderNumber: strings.TrimSpace(in.OrderNumber),
		Status:      entity.OrderPending,
		Priority:    priority,
		CreatedAt:   time.Now(),
		Items:       make([]entity.OrderItem, 0, len(in.Items)),
	}
	err := uc.txRunner.RunPicking(ctx, func(orderRepo repository.PickingOrderRepository, productRepo repository.ProductRepository) error {
		for _, it := range in.Items {
			product, err := productRepo.GetByID(it.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("producto %d: %w", it.ProductID, domain.ErrNotFound)
			}
			location := strings.TrimSpace(it.Location)
			if location == "" {
				location = product.Location
			}
			order.Items = append(order.Items, entity.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Location:    location,
				Quantity:    it.Quantity,
			})
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		if order.OrderNumber == "" {
			order.OrderNumber = fmt.Sprintf(OrderNumberFormat, order.ID)
			return orderRepo.Update(order)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromPickingOrder(order)
	return &out, nil
}

// List órdenes en orden de alta, opcionalmente filtradas por estado. Counts siempre cubre todas.
func (uc *UseCase) List(status string) (*dto.PickingOrderListResponse, error) {
	want := ""
	if strings.TrimSpace(status) != "" {
		if want = entity.NormalizeOrderStatus(status); want == "" {
			return nil, domain.ErrInvalidInput
		}
	}
	list, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.PickingOrderListResponse{
		Items: make([]dto.PickingOrderResponse, 0, len(list)),
		Counts: map[string]int{
			entity.OrderPending:   0,
			entity.OrderInProcess: 0,
			entity.OrderCompleted: 0,
		},
	}
	for _, o := range list {
		out.Counts[o.Status]++
		if want != "" && o.Status != want {
			continue
		}
		out.Items = append(out.Items, dto.FromPickingOrder(o))
	}
	out.Total = len(out.Items)
	return out, nil
}

// GetByID obtiene una orden; ErrNotFound si no existe.
func (uc *UseCase) GetByID(id int64) (*dto.PickingOrderResponse, error) {
	order, err := uc.find(uc.orderRepo, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromPickingOrder(order)
	return &out, nil
}

// Order entidad completa (para la hoja de picking).
func (uc *UseCase) Order(id int64) (*entity.PickingOrder, error) {
	return uc.find(uc.orderRepo, id)
}

// Assign asigna la orden a un usuario y la pasa a in_process. Una orden completada no se reasigna.
func (uc *UseCase) Assign(ctx context.Context, id int64, userName string) (*dto.PickingOrderResponse, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return nil, domain.ErrInvalidInput
	}
	var order *entity.PickingOrder
	err := uc.txRunner.RunPicking(ctx, func(orderRepo repository.PickingOrderRepository, _ repository.ProductRepository) error {
		var err error
		if order, err = uc.find(orderRepo, id); err != nil {
			return err
		}
		if order.IsCompleted() {
			return domain.ErrOrderCompleted
		}
		order.AssignedTo = userName
		order.Status = entity.OrderInProcess
		return orderRepo.Update(order)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromPickingOrder(order)
	return &out, nil
}

// PickResult resultado de actualizar un ítem. AutoCompleted indica que la orden pasó a
// completed en esta llamada; el stock no se descuenta por este camino.
type PickResult struct {
	Order         dto.PickingOrderResponse
	AutoCompleted bool
}

// UpdateItemPicked fija la cantidad recogida de un ítem (valor absoluto). Si todos los ítems
// quedan completos la orden se completa. Nunca revierte una orden completada.
func (uc *UseCase) UpdateItemPicked(ctx context.Context, id, productID int64, picked int) (*PickResult, error) {
	if picked < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	var (
		order *entity.PickingOrder
		auto  bool
	)
	err := uc.txRunner.RunPicking(ctx, func(orderRepo repository.PickingOrderRepository, _ repository.ProductRepository) error {
		var err error
		if order, err = uc.find(orderRepo, id); err != nil {
			return err
		}
		i := order.Item(productID)
		if i < 0 {
			return fmt.Errorf("ítem %d de la orden %d: %w", productID, id, domain.ErrNotFound)
		}
		order.Items[i].Picked = picked
		if !order.IsCompleted() && order.AllPicked() {
			now := time.Now()
			order.Status = entity.OrderCompleted
			order.CompletedAt = &now
			auto = true
		}
		return orderRepo.Update(order)
	})
	if err != nil {
		return nil, err
	}
	return &PickResult{Order: dto.FromPickingOrder(order), AutoCompleted: auto}, nil
}

// Complete completa la orden y descuenta del stock la cantidad de cada ítem.
// El descuento se aplica una sola vez por orden; los productos inexistentes se omiten.
func (uc *UseCase) Complete(ctx context.Context, id int64) (*dto.PickingOrderResponse, error) {
	var order *entity.PickingOrder
	err := uc.txRunner.RunPicking(ctx, func(orderRepo repository.PickingOrderRepository, productRepo repository.ProductRepository) error {
		var err error
		if order, err = uc.find(orderRepo, id); err != nil {
			return err
		}
		if order.IsCompleted() && order.StockApplied {
			return nil
		}
		now := time.Now()
		if !order.StockApplied {
			for _, it := range order.Items {
				product, err := productRepo.GetByID(it.ProductID)
				if err != nil {
					return err
				}
				if product == nil {
					continue
				}
				if err := inventory.ApplyMovement(product, entity.MovementOutbound, it.Quantity, now, uc.strict); err != nil {
					return fmt.Errorf("producto %d: %w", product.ID, err)
				}
				if err := productRepo.Update(product); err != nil {
					return err
				}
			}
			order.StockApplied = true
		}
		order.Status = entity.OrderCompleted
		if order.CompletedAt == nil {
			order.CompletedAt = &now
		}
		return orderRepo.Update(order)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromPickingOrder(order)
	return &out, nil
}

func (uc *UseCase) find(repo repository.PickingOrderRepository, id int64) (*entity.PickingOrder, error) {
	order, err := repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}
