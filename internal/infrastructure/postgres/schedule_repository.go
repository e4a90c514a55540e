package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/inventario-movil/internal/domain"
	"github.com/tu-usuario/inventario-movil/internal/domain/entity"
	"github.com/tu-usuario/inventario-movil/internal/domain/repository"
)

var _ repository.ScheduleRepository = (*ScheduleRepo)(nil)

// ScheduleRepo implementación de ScheduleRepository sobre PostgreSQL
// (tabla schedules). Usable con pool o tx (Querier).
type ScheduleRepo struct {
	q Querier
}

// NewScheduleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewScheduleRepository(q Querier) *ScheduleRepo {
	return &ScheduleRepo{q: q}
}

// ListByUserAndRange devuelve las entradas del empleado en el rango de fechas.
func (r *ScheduleRepo) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*entity.Shift, error) {
	query := `
		SELECT schedule_id, user_id, date, start_time, end_time, kind
		FROM schedules
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, start_time`
	rows, err := r.q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shift
	for rows.Next() {
		var s entity.Shift
		if err := rows.Scan(&s.ID, &s.UserID, &s.Date, &s.StartTime, &s.EndTime, &s.Kind); err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Create persiste una nueva entrada y deja el id asignado en shift.ID.
func (r *ScheduleRepo) Create(ctx context.Context, shift *entity.Shift) error {
	query := `
		INSERT INTO schedules (user_id, date, start_time, end_time, kind)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING schedule_id`
	err := r.q.QueryRow(ctx, query, shift.UserID, shift.Date, shift.StartTime, shift.EndTime, shift.Kind).Scan(&shift.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert schedule: %w", err)
	}
	return nil
}
