package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/wms-almacen/internal/application/dto"
	"github.com/jhoicas/wms-almacen/internal/domain"
	"github.com/jhoicas/wms-almacen/internal/domain/entity"
	"github.com/jhoicas/wms-almacen/internal/domain/inventory"
	"github.com/jhoicas/wms-almacen/internal/domain/repository"
)

// ReceptionUseCase flujo de recepción de mercadería por código escaneado.
type ReceptionUseCase struct {
	txRunner TxRunner
}

// NewReceptionUseCase construye el caso de uso.
func NewReceptionUseCase(txRunner TxRunner) *ReceptionUseCase {
	return &ReceptionUseCase{txRunner: txRunner}
}

// ReceptionInput entrada de una recepción. Location vacío usa la ubicación del producto
// o, si no tiene, la sugerida por su rotación.
type ReceptionInput struct {
	Code      string
	Quantity  int
	Location  string
	User      string
	Reference string
}

// Receive registra la entrada, fija la ubicación del producto si no tenía y marca la
// ubicación como ocupada, todo en una transacción.
func (uc *ReceptionUseCase) Receive(ctx context.Context, in ReceptionInput) (*dto.ReceptionResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	code := strings.TrimSpace(in.Code)
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	reference := strings.TrimSpace(in.Reference)
	if reference == "" {
		reference = DefaultReceptionReference
	}
	now := time.Now()
	var (
		product  *entity.Product
		location *entity.Location
		movement *entity.Movement
	)
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
	) error {
		var err error
		if product, err = productRepo.GetBySKUOrEAN(code); err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if location, err = resolveLocation(locationRepo, product, strings.TrimSpace(in.Location)); err != nil {
			return err
		}
		if err := inventory.ApplyMovement(product, entity.MovementInbound, in.Quantity, now, false); err != nil {
			return err
		}
		if !product.HasLocation() {
			product.Location = location.ID
		}
		if err := productRepo.Update(product); err != nil {
			return err
		}
		location.Occupied = true
		if err := locationRepo.Update(location); err != nil {
			return err
		}
		movement = &entity.Movement{
			TransactionID: uuid.NewString(),
			Type:          entity.MovementInbound,
			ProductID:     product.ID,
			ProductName:   product.Name,
			Quantity:      in.Quantity,
			Location:      location.ID,
			User:          in.User,
			Reference:     reference,
			Date:          now,
		}
		return movRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}
	return &dto.ReceptionResponse{
		Movement: dto.FromMovement(movement),
		Product:  dto.FromProduct(product),
		Location: dto.FromLocation(location),
	}, nil
}

func resolveLocation(repo repository.LocationRepository, product *entity.Product, requested string) (*entity.Location, error) {
	id := requested
	if id == "" {
		id = product.Location
	}
	if id == "" {
		all, err := repo.List()
		if err != nil {
			return nil, err
		}
		return inventory.SuggestLocation(all, product.RotationType, product.Volume)
	}
	loc, err := repo.GetByID(strings.ToUpper(id))
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	return loc, nil
}
