package inventory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/wms-almacen/internal/application/dto"
	"github.com/jhoicas/wms-almacen/internal/domain/entity"
	"github.com/jhoicas/wms-almacen/internal/domain/inventory"
	"github.com/jhoicas/wms-almacen/internal/domain/repository"
)

// ReplenishmentWindowDays días de salidas considerados para estimar el consumo.
const ReplenishmentWindowDays = 30

// ReplenishmentUseCase genera la lista de reposición: productos en stock bajo
// priorizados por consumo reciente.
type ReplenishmentUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(productRepo repository.ProductRepository, movRepo repository.MovementRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{productRepo: productRepo, movRepo: movRepo}
}

// GenerateReplenishmentList devuelve los productos con stock <= mínimo con la cantidad sugerida
// para volver al doble del mínimo. Orden: mayor consumo en la ventana, luego mayor cantidad sugerida.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList() ([]dto.ReplenishmentSuggestion, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movRepo.List()
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, 0, -ReplenishmentWindowDays)
	outByProduct := make(map[int64]int)
	for _, m := range movements {
		if m.Type == entity.MovementOutbound && !m.Date.Before(since) {
			outByProduct[m.ProductID] += m.Quantity
		}
	}

	window := decimal.NewFromInt(ReplenishmentWindowDays)
	suggestions := make([]dto.ReplenishmentSuggestion, 0)
	for _, p := range products {
		if !inventory.IsLowStock(p) {
			continue
		}
		ideal := p.MinStock * 2
		suggested := ideal - p.Stock
		if suggested < 0 {
			suggested = 0
		}
		out := outByProduct[p.ID]
		daily := decimal.NewFromInt(int64(out)).Div(window).Round(2)

		var cover *decimal.Decimal
		if daily.GreaterThan(decimal.Zero) && p.Stock > 0 {
			d := decimal.NewFromInt(int64(p.Stock)).Div(daily).Round(1)
			cover = &d
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestion{
			ProductID:         p.ID,
			SKU:               p.SKU,
			ProductName:       p.Name,
			CurrentStock:      p.Stock,
			MinStock:          p.MinStock,
			IdealStock:        ideal,
			SuggestedOrderQty: suggested,
			OutboundLastDays:  out,
			DailyUsage:        daily,
			DaysOfCover:       cover,
			NextArrival:       dto.FormatDate(p.NextArrival),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.OutboundLastDays != b.OutboundLastDays {
			return a.OutboundLastDays > b.OutboundLastDays
		}
		return a.SuggestedOrderQty > b.SuggestedOrderQty
	})

	// 1 = más urgente
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}
