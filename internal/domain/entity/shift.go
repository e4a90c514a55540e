package entity

import "time"

// Tipos de entrada en el horario.
const (
	ShiftKindShift        = "shift"        // turno asignado
	ShiftKindAvailability = "availability" // disponibilidad declarada por el empleado
)

// Shift representa una entrada del horario de trabajo (tabla schedules):
// un turno asignado o una franja de disponibilidad de un empleado.
type Shift struct {
	ID        int64
	UserID    string
	Date      time.Time // solo se usa la parte de fecha
	StartTime string    // formato HH:MM
	EndTime   string    // formato HH:MM
	Kind      string
}
