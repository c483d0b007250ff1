package entity

import (
	"fmt"
	"strings"
)

// Location representa una posición de rack identificada por el código zona-rack-nivel (ej. A-01-02).
// Occupied es una bandera simple: no lleva cuenta de qué ni cuánto hay almacenado.
type Location struct {
	ID       string
	Zone     string
	Rack     string
	Level    string
	Capacity int // informativa, no se valida contra lo almacenado
	Occupied bool
}

// Clone devuelve una copia independiente de la ubicación.
func (l *Location) Clone() *Location {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}

// ParseLocationCode separa un código "Z-RR-LL" en zona, rack y nivel.
func ParseLocationCode(code string) (zone, rack, level string, err error) {
	parts := strings.Split(strings.TrimSpace(code), "-")
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("código de ubicación %q: se espera zona-rack-nivel", code)
	}
	for _, p := range parts {
		if p == "" {
			return "", "", "", fmt.Errorf("código de ubicación %q: segmento vacío", code)
		}
	}
	if len(parts[0]) != 1 {
		return "", "", "", fmt.Errorf("código de ubicación %q: la zona es una sola letra", code)
	}
	return strings.ToUpper(parts[0]), parts[1], parts[2], nil
}
