package entity

import (
	"strings"
	"time"
)

// Tipos de movimiento de inventario.
const (
	MovementInbound  = "inbound"  // entrada
	MovementOutbound = "outbound" // salida
)

// Movement representa un movimiento de inventario. Es de solo inserción:
// nunca se actualiza ni se elimina una vez creado.
type Movement struct {
	ID            int64
	TransactionID string
	Type          string
	ProductID     int64
	ProductName   string // copia del nombre al momento del registro
	Quantity      int
	Location      string
	User          string // nombre visible, no referencia a User
	Reference     string
	Date          time.Time
}

// Clone devuelve una copia independiente del movimiento.
func (m *Movement) Clone() *Movement {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

// NormalizeMovementType traduce alias (entrada/salida) al valor canónico; "" si no es válido.
func NormalizeMovementType(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case MovementInbound, "entrada", "in":
		return MovementInbound
	case MovementOutbound, "salida", "out":
		return MovementOutbound
	}
	return ""
}
