package inventory

import (
	"github.com/jhoicas/wms-almacen/internal/domain"
	"github.com/jhoicas/wms-almacen/internal/domain/entity"
)

// PreferredZone zona de almacenamiento según rotación: alta en A, media en B, baja en C.
// Una rotación desconocida cae en la zona A.
func PreferredZone(rotationType string) string {
	switch entity.NormalizeRotation(rotationType) {
	case entity.RotationMedium:
		return "B"
	case entity.RotationLow:
		return "C"
	default:
		return "A"
	}
}

// SuggestLocation elige la primera ubicación libre de la zona preferida, en el orden de la tabla;
// si la zona no tiene libres, la primera libre de cualquier zona. Sin libres devuelve ErrNoCapacity.
// El volumen se recibe pero hoy no interviene en la elección.
func SuggestLocation(locations []*entity.Location, rotationType, _ string) (*entity.Location, error) {
	zone := PreferredZone(rotationType)
	var fallback *entity.Location
	for _, l := range locations {
		if l.Occupied {
			continue
		}
		if l.Zone == zone {
			return l, nil
		}
		if fallback == nil {
			fallback = l
		}
	}
	if fallback == nil {
		return nil, domain.ErrNoCapacity
	}
	return fallback, nil
}

// Available filtra las ubicaciones libres conservando el orden.
func Available(locations []*entity.Location) []*entity.Location {
	out := make([]*entity.Location, 0, len(locations))
	for _, l := range locations {
		if !l.Occupied {
			out = append(out, l)
		}
	}
	return out
}
