package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/wms-almacen/internal/application/dto"
	"github.com/jhoicas/wms-almacen/internal/domain"
	"github.com/jhoicas/wms-almacen/internal/domain/entity"
	"github.com/jhoicas/wms-almacen/internal/domain/inventory"
	"github.com/jhoicas/wms-almacen/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD y consultas de productos. Stock se maneja vía movimientos.
type ProductUseCase struct {
	txRunner ProductTxRunner
	repo     repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner ProductTxRunner, repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, repo: repo}
}

// Create crea un nuevo producto. Stock inicia en 0 y LastEntry vacío.
// ErrDuplicate si SKU o EAN ya pertenecen a otro producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	rotation := entity.NormalizeRotation(in.RotationType)
	volume := entity.NormalizeVolume(in.Volume)
	if rotation == "" || volume == "" || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	sku, ean := strings.TrimSpace(in.SKU), strings.TrimSpace(in.EAN)
	if sku == "" || ean == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	nextArrival, err := parseDate(in.NextArrival)
	if err != nil {
		return nil, err
	}
	product := &entity.Product{
		SKU:          sku,
		EAN:          ean,
		Name:         strings.TrimSpace(in.Name),
		Category:     in.Category,
		Description:  in.Description,
		Stock:        0,
		MinStock:     in.MinStock,
		RotationType: rotation,
		Volume:       volume,
		Location:     strings.TrimSpace(in.Location),
		LastEntry:    nil,
		NextArrival:  nextArrival,
	}
	err = uc.txRunner.RunProducts(ctx, func(productRepo repository.ProductRepository) error {
		return productRepo.Create(product)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// GetByID obtiene un producto por ID; ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// GetBySKUOrEAN busca por código escaneado. Sin coincidencia devuelve (nil, nil), no un error.
func (uc *ProductUseCase) GetBySKUOrEAN(code string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetBySKUOrEAN(strings.TrimSpace(code))
	if err != nil || product == nil {
		return nil, err
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// Update aplica solo los campos presentes. No permite modificar Stock ni LastEntry.
// Lectura y escritura ocurren en la misma transacción.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var updated *entity.Product
	err := uc.txRunner.RunProducts(ctx, func(productRepo repository.ProductRepository) error {
		product, err := productRepo.GetByID(id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := applyProductUpdate(product, in); err != nil {
			return err
		}
		if err := productRepo.Update(product); err != nil {
			return err
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(updated)
	return &out, nil
}

// applyProductUpdate copia sobre product solo los campos editables presentes en in.
func applyProductUpdate(product *entity.Product, in dto.UpdateProductRequest) error {
	if in.SKU != nil {
		product.SKU = strings.TrimSpace(*in.SKU)
	}
	if in.EAN != nil {
		product.EAN = strings.TrimSpace(*in.EAN)
	}
	if product.SKU == "" || product.EAN == "" {
		return domain.ErrInvalidInput
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return domain.ErrInvalidInput
		}
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	if in.RotationType != nil {
		if product.RotationType = entity.NormalizeRotation(*in.RotationType); product.RotationType == "" {
			return domain.ErrInvalidInput
		}
	}
	if in.Volume != nil {
		if product.Volume = entity.NormalizeVolume(*in.Volume); product.Volume == "" {
			return domain.ErrInvalidInput
		}
	}
	if in.Location != nil {
		product.Location = strings.TrimSpace(*in.Location)
	}
	if in.NextArrival != nil {
		nextArrival, err := parseDate(in.NextArrival)
		if err != nil {
			return err
		}
		product.NextArrival = nextArrival
	}
	return nil
}

// Delete elimina un producto. Movimientos y órdenes que lo referencian se conservan.
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// List todos los productos en orden de alta.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	return uc.filter(func(*entity.Product) bool { return true })
}

// LowStock productos con stock <= mínimo.
func (uc *ProductUseCase) LowStock() (*dto.ProductListResponse, error) {
	return uc.filter(inventory.IsLowStock)
}

// OutOfStock productos con stock == 0.
func (uc *ProductUseCase) OutOfStock() (*dto.ProductListResponse, error) {
	return uc.filter(inventory.IsOutOfStock)
}

// Search búsqueda libre por nombre, SKU, EAN o categoría.
func (uc *ProductUseCase) Search(query string) (*dto.ProductListResponse, error) {
	return uc.filter(inventory.NewProductMatcher(query).Match)
}

func (uc *ProductUseCase) filter(keep func(*entity.Product) bool) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	selected := make([]*entity.Product, 0, len(list))
	for _, p := range list {
		if keep(p) {
			selected = append(selected, p)
		}
	}
	out := dto.FromProducts(selected)
	return &out, nil
}

// parseDate interpreta "YYYY-MM-DD"; nil o "" devuelven nil.
func parseDate(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dto.DateLayout, strings.TrimSpace(*s), time.Local)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &t, nil
}
