package usecase

import (
	"github.com/jhoicas/wms-almacen/internal/application/dto"
	"github.com/jhoicas/wms-almacen/internal/domain/inventory"
	"github.com/jhoicas/wms-almacen/internal/domain/repository"
)

// StockUseCase consulta de disponibilidad para ventas.
type StockUseCase struct {
	repo repository.ProductRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.ProductRepository) *StockUseCase {
	return &StockUseCase{repo: repo}
}

// List disponibilidad de cada producto; si query no es vacío filtra como la búsqueda de productos.
func (uc *StockUseCase) List(query string) ([]dto.StockItemResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	match := inventory.NewProductMatcher(query)
	out := make([]dto.StockItemResponse, 0, len(list))
	for _, p := range list {
		if !match.Match(p) {
			continue
		}
		out = append(out, dto.StockItemResponse{
			ProductID:   p.ID,
			SKU:         p.SKU,
			Name:        p.Name,
			Category:    p.Category,
			Stock:       p.Stock,
			MinStock:    p.MinStock,
			Status:      inventory.StockStatus(p),
			Location:    p.Location,
			NextArrival: dto.FormatDate(p.NextArrival),
		})
	}
	return out, nil
}

// Summary conteos: disponibles (stock > mínimo), bajos (0 < stock <= mínimo), agotados (stock == 0).
func (uc *StockUseCase) Summary() (*dto.StockSummaryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.StockSummaryResponse{Total: len(list)}
	for _, p := range list {
		switch {
		case p.Stock > p.MinStock:
			out.Available++
		case p.Stock == 0:
			out.OutOfStock++
		case p.Stock > 0:
			out.LowStock++
		}
	}
	return out, nil
}
