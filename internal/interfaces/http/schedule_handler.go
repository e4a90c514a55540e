package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-movil/internal/application/dto"
	"github.com/tu-usuario/inventario-movil/internal/application/usecase"
	"github.com/tu-usuario/inventario-movil/internal/domain"
	"github.com/tu-usuario/inventario-movil/internal/domain/entity"
)

// ScheduleHandler maneja las peticiones HTTP del horario (protegido).
// El empleado es el usuario autenticado; no se consultan horarios ajenos.
type ScheduleHandler struct {
	uc *usecase.ScheduleUseCase
}

// NewScheduleHandler construye el handler.
func NewScheduleHandler(uc *usecase.ScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{uc: uc}
}

// ListRange godoc
// @Summary      Turnos y disponibilidades del usuario en un rango de fechas
// @Tags         schedules
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  true  "YYYY-MM-DD"
// @Param        to    query  string  true  "YYYY-MM-DD"
// @Success      200  {array}   dto.ShiftResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/schedules [get]
func (h *ScheduleHandler) ListRange(c *fiber.Ctx) error {
	var in dto.ScheduleRangeRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "rango inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	from, _ := time.Parse("2006-01-02", in.From)
	to, _ := time.Parse("2006-01-02", in.To)

	shifts, err := h.uc.ListRange(c.Context(), GetUserID(c), from, to)
	if err != nil {
		return scheduleError(c, err)
	}
	return c.JSON(toShiftResponses(shifts))
}

// DeclareAvailability godoc
// @Summary      Declarar una franja de disponibilidad
// @Tags         schedules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeclareAvailabilityRequest  true  "fecha y franja HH:MM"
// @Success      201   {object}  dto.ShiftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/schedules/availability [post]
func (h *ScheduleHandler) DeclareAvailability(c *fiber.Ctx) error {
	var in dto.DeclareAvailabilityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := dto.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	date, _ := time.Parse("2006-01-02", in.Date)

	shift, err := h.uc.DeclareAvailability(c.Context(), GetUserID(c), date, in.StartTime, in.EndTime)
	if err != nil {
		return scheduleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToShiftResponse(shift))
}

func scheduleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la franja ya existe"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toShiftResponses(shifts []*entity.Shift) []dto.ShiftResponse {
	out := make([]dto.ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, dto.ToShiftResponse(s))
	}
	return out
}
