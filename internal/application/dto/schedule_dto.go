package dto

import (
	"github.com/tu-usuario/inventario-movil/internal/domain/entity"
)

// ScheduleRangeRequest query para GET /api/schedules (fechas YYYY-MM-DD).
type ScheduleRangeRequest struct {
	From string `query:"from" validate:"required,datetime=2006-01-02"`
	To   string `query:"to" validate:"required,datetime=2006-01-02"`
}

// DeclareAvailabilityRequest body para POST /api/schedules/availability.
type DeclareAvailabilityRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
}

// ShiftResponse entrada del horario.
type ShiftResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Kind      string `json:"kind"`
}

// ToShiftResponse mapea la entidad al DTO.
func ToShiftResponse(s *entity.Shift) ShiftResponse {
	return ShiftResponse{
		ID:        s.ID,
		Date:      s.Date.Format("2006-01-02"),
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Kind:      s.Kind,
	}
}
