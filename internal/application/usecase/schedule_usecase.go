package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/inventario-movil/internal/domain"
	"github.com/tu-usuario/inventario-movil/internal/domain/entity"
	"github.com/tu-usuario/inventario-movil/internal/domain/repository"
)

// ScheduleUseCase horario de trabajo: turnos asignados y disponibilidades
// declaradas por el empleado (pestaña de calendario del front).
type ScheduleUseCase struct {
	repo repository.ScheduleRepository
}

// NewScheduleUseCase construye el caso de uso.
func NewScheduleUseCase(repo repository.ScheduleRepository) *ScheduleUseCase {
	return &ScheduleUseCase{repo: repo}
}

// ListRange devuelve las entradas del empleado entre from y to.
func (uc *ScheduleUseCase) ListRange(ctx context.Context, userID string, from, to time.Time) ([]*entity.Shift, error) {
	if userID == "" || to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	return uc.repo.ListByUserAndRange(ctx, userID, from, to)
}

// DeclareAvailability registra una franja de disponibilidad del empleado.
// startTime y endTime en formato HH:MM; la franja no puede estar invertida.
func (uc *ScheduleUseCase) DeclareAvailability(ctx context.Context, userID string, date time.Time, startTime, endTime string) (*entity.Shift, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !end.After(start) {
		return nil, domain.ErrInvalidInput
	}
	shift := &entity.Shift{
		UserID:    userID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Kind:      entity.ShiftKindAvailability,
	}
	if err := uc.repo.Create(ctx, shift); err != nil {
		return nil, err
	}
	return shift, nil
}
