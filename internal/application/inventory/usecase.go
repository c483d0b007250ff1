package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/wms-almacen/internal/application/dto"
	"github.com/jhoicas/wms-almacen/internal/domain"
	"github.com/jhoicas/wms-almacen/internal/domain/entity"
	"github.com/jhoicas/wms-almacen/internal/domain/inventory"
	"github.com/jhoicas/wms-almacen/internal/domain/repository"
)

// DefaultStatsWindowDays ventana por defecto de las estadísticas de movimientos.
const DefaultStatsWindowDays = 7

// DefaultReceptionReference referencia usada cuando la recepción no trae una.
const DefaultReceptionReference = "Sin referencia"

// LedgerUseCase registra movimientos de inventario junto con su efecto en stock
// y resuelve las consultas del libro de movimientos.
type LedgerUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
	strict   bool
}

// NewLedgerUseCase construye el caso de uso. Con strictStock=true una salida que deje
// stock negativo se rechaza con ErrInsufficientStock.
func NewLedgerUseCase(txRunner TxRunner, movRepo repository.MovementRepository, strictStock bool) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, movRepo: movRepo, strict: strictStock}
}

// MovementInput entrada para registrar un movimiento. User es el nombre visible de quien registra.
type MovementInput struct {
	Type        string
	ProductID   int64
	ProductName string // solo se usa si el producto no existe
	Quantity    int
	Location    string
	User        string
	Reference   string
}

// Record registra el movimiento y aplica su efecto sobre el stock en una sola transacción.
// Si el producto no existe el movimiento igual se registra, sin efecto en stock.
func (uc *LedgerUseCase) Record(ctx context.Context, in MovementInput) (*dto.MovementResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	movementType := entity.NormalizeMovementType(in.Type)
	if movementType == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	movement := &entity.Movement{
		TransactionID: uuid.NewString(),
		Type:          movementType,
		ProductID:     in.ProductID,
		ProductName:   strings.TrimSpace(in.ProductName),
		Quantity:      in.Quantity,
		Location:      strings.TrimSpace(in.Location),
		User:          in.User,
		Reference:     strings.TrimSpace(in.Reference),
		Date:          now,
	}
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		_ repository.LocationRepository,
	) error {
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product != nil {
			if err := inventory.ApplyMovement(product, movementType, in.Quantity, now, uc.strict); err != nil {
				return err
			}
			if err := productRepo.Update(product); err != nil {
				return fmt.Errorf("actualizar stock del producto %d: %w", product.ID, err)
			}
			movement.ProductName = product.Name
			if movement.Location == "" {
				movement.Location = product.Location
			}
		}
		return movRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromMovement(movement)
	return &out, nil
}

// List movimientos filtrados, más recientes primero (empate: mayor ID primero).
func (uc *LedgerUseCase) List(filter dto.MovementFilter) (*dto.MovementListResponse, error) {
	list, err := uc.movRepo.List()
	if err != nil {
		return nil, err
	}
	movementType := ""
	if filter.Type != "" {
		if movementType = entity.NormalizeMovementType(filter.Type); movementType == "" {
			return nil, domain.ErrInvalidInput
		}
	}
	selected := make([]*entity.Movement, 0, len(list))
	for _, m := range list {
		if movementType != "" && m.Type != movementType {
			continue
		}
		if filter.ProductID != 0 && m.ProductID != filter.ProductID {
			continue
		}
		selected = append(selected, m)
	}
	SortRecentFirst(selected)
	out := dto.FromMovements(selected)
	return &out, nil
}

// SummaryStats agrega los movimientos con fecha dentro de los últimos windowDays días
// (windowDays <= 0 usa la ventana por defecto).
func (uc *LedgerUseCase) SummaryStats(windowDays int) (*dto.MovementStatsResponse, error) {
	list, err := uc.movRepo.List()
	if err != nil {
		return nil, err
	}
	stats := Stats(list, windowDays, time.Now())
	return &stats, nil
}

// Stats calcula los agregados de la ventana sobre una lista ya leída.
func Stats(list []*entity.Movement, windowDays int, now time.Time) dto.MovementStatsResponse {
	if windowDays <= 0 {
		windowDays = DefaultStatsWindowDays
	}
	since := now.AddDate(0, 0, -windowDays)
	out := dto.MovementStatsResponse{WindowDays: windowDays}
	for _, m := range list {
		if m.Date.Before(since) {
			continue
		}
		switch m.Type {
		case entity.MovementInbound:
			out.TotalEntries++
			out.TotalQuantityIn += m.Quantity
		case entity.MovementOutbound:
			out.TotalExits++
			out.TotalQuantityOut += m.Quantity
		}
	}
	return out
}

// SortRecentFirst ordena por fecha descendente y, a igual fecha, por ID descendente.
func SortRecentFirst(list []*entity.Movement) {
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.After(list[j].Date)
		}
		return list[i].ID > list[j].ID
	})
}
