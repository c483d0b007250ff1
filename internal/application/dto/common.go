package dto

import "time"

// DateLayout formato de fechas sin hora (last_entry, next_arrival).
const DateLayout = "2006-01-02"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FormatDate devuelve la fecha como "YYYY-MM-DD" o nil.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
