package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/inventario-movil/internal/domain/entity"
)

// ScheduleRepository define el puerto sobre la tabla schedules (DIP).
type ScheduleRepository interface {
	// ListByUserAndRange devuelve turnos y disponibilidades del empleado
	// entre from y to (inclusive), ordenados por fecha y hora de inicio.
	ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*entity.Shift, error)
	Create(ctx context.Context, shift *entity.Shift) error
}
