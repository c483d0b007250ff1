package entity

import (
	"strings"
	"time"
)

// Clasificación de rotación: define la zona preferida de almacenamiento.
const (
	RotationHigh   = "high"
	RotationMedium = "medium"
	RotationLow    = "low"
)

// Volumen del producto (hoy no interviene en la sugerencia de ubicación).
const (
	VolumeSmall  = "small"
	VolumeMedium = "medium"
	VolumeLarge  = "large"
)

// Product representa un producto del almacén.
// Stock solo crece o decrece aplicando movimientos u órdenes de picking; nunca por edición directa.
type Product struct {
	ID           int64
	SKU          string // código único
	EAN          string // código de barras único
	Name         string
	Category     string
	Description  string
	Stock        int // puede quedar negativo en modo tolerante
	MinStock     int
	RotationType string
	Volume       string
	Location     string // id de Location, vacío si no tiene
	LastEntry    *time.Time
	NextArrival  *time.Time
}

// HasLocation indica si el producto tiene una ubicación asignada.
func (p *Product) HasLocation() bool {
	return p.Location != ""
}

// Clone devuelve una copia independiente del producto.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// NormalizeRotation traduce alias (alta/media/baja) al valor canónico.
// Devuelve "" si el valor no es reconocido.
func NormalizeRotation(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case RotationHigh, "alta":
		return RotationHigh
	case RotationMedium, "media":
		return RotationMedium
	case RotationLow, "baja":
		return RotationLow
	}
	return ""
}

// NormalizeVolume traduce alias (pequeño/mediano/grande) al valor canónico.
// Devuelve "" si el valor no es reconocido.
func NormalizeVolume(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case VolumeSmall, "pequeño", "pequeno":
		return VolumeSmall
	case VolumeMedium, "mediano":
		return VolumeMedium
	case VolumeLarge, "grande":
		return VolumeLarge
	}
	return ""
}
