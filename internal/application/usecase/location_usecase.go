package usecase

import (
	"strings"

	"github.com/jhoicas/wms-almacen/internal/application/dto"
	"github.com/jhoicas/wms-almacen/internal/domain"
	"github.com/jhoicas/wms-almacen/internal/domain/entity"
	"github.com/jhoicas/wms-almacen/internal/domain/inventory"
	"github.com/jhoicas/wms-almacen/internal/domain/repository"
)

// LocationUseCase consultas de ubicaciones, sugerencia y asignación.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create da de alta una ubicación a partir de su código zona-rack-nivel. Nace libre.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if in.Capacity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	zone, rack, level, err := entity.ParseLocationCode(in.ID)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	loc := &entity.Location{
		ID:       strings.ToUpper(strings.TrimSpace(in.ID)),
		Zone:     zone,
		Rack:     rack,
		Level:    level,
		Capacity: in.Capacity,
	}
	if err := uc.repo.Create(loc); err != nil {
		return nil, err
	}
	out := dto.FromLocation(loc)
	return &out, nil
}

// List todas las ubicaciones.
func (uc *LocationUseCase) List() (*dto.LocationListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := dto.FromLocations(list)
	return &out, nil
}

// Available ubicaciones no ocupadas.
func (uc *LocationUseCase) Available() (*dto.LocationListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := dto.FromLocations(inventory.Available(list))
	return &out, nil
}

// Suggest ubicación sugerida según rotación (y volumen, hoy sin efecto). ErrNoCapacity si todo está ocupado.
func (uc *LocationUseCase) Suggest(rotationType, volume string) (*dto.LocationResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	loc, err := inventory.SuggestLocation(list, rotationType, volume)
	if err != nil {
		return nil, err
	}
	out := dto.FromLocation(loc)
	return &out, nil
}

// Assign marca la ubicación como ocupada (idempotente). No modifica Product.Location.
func (uc *LocationUseCase) Assign(locationID string, _ int64) (*dto.LocationResponse, error) {
	loc, err := uc.repo.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	loc.Occupied = true
	if err := uc.repo.Update(loc); err != nil {
		return nil, err
	}
	out := dto.FromLocation(loc)
	return &out, nil
}

// Summary ocupación total y ubicaciones agrupadas por zona (en orden de aparición).
func (uc *LocationUseCase) Summary() (*dto.LocationSummaryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.LocationSummaryResponse{Total: len(list), Zones: []dto.ZoneLocations{}}
	zoneIdx := map[string]int{}
	for _, l := range list {
		if l.Occupied {
			out.Occupied++
		}
		i, ok := zoneIdx[l.Zone]
		if !ok {
			i = len(out.Zones)
			zoneIdx[l.Zone] = i
			out.Zones = append(out.Zones, dto.ZoneLocations{Zone: l.Zone})
		}
		out.Zones[i].Locations = append(out.Zones[i].Locations, dto.FromLocation(l))
	}
	out.Available = out.Total - out.Occupied
	out.OccupancyRate = inventory.OccupancyRate(out.Occupied, out.Total)
	return out, nil
}
