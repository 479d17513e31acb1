package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/navalhaapps/barbershop-api/internal/domain/booking"
	"github.com/navalhaapps/barbershop-api/internal/httperr"
	"github.com/navalhaapps/barbershop-api/internal/httpresp"
	"github.com/navalhaapps/barbershop-api/internal/middleware"
	uc "github.com/navalhaapps/barbershop-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC *uc.CreateBooking
	listUC   *uc.ListBookings
	cancelUC *uc.CancelBooking
}

func NewBookingHandler(
	createUC *uc.CreateBooking,
	listUC *uc.ListBookings,
	cancelUC *uc.CancelBooking,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		listUC:   listUC,
		cancelUC: cancelUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	BarberID  string `json:"barber_id" binding:"required,uuid"`
	ServiceID string `json:"service_id" binding:"required,uuid"`
	Date      string `json:"date" binding:"required"`
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeBookingError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "invalid_date":
		httperr.BadRequest(c, "invalid_date", "Não é possível agendar em uma data passada.")
	case "barber_not_found":
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado ou inativo.")
	case "service_not_found":
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado ou inativo.")
	case "booking_not_found":
		httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
	case "slot_taken":
		httperr.Conflict(c, "slot_taken", "Horário indisponível para o barbeiro.")
	case "cancel_forbidden":
		httperr.Forbidden(c, "cancel_forbidden", "Você não tem permissão para cancelar este agendamento.")
	case "already_cancelled":
		httperr.BadRequest(c, "already_cancelled", "Este agendamento já foi cancelado.")
	case "past_booking":
		httperr.BadRequest(c, "past_booking", "Não é possível cancelar um agendamento passado.")
	default:
		httperr.Internal(c, "internal_error", "Erro interno do servidor.")
	}
}

func requesterFromContext(c *gin.Context) (string, domain.Role, bool) {
	userID := c.MustGet(middleware.ContextUserID).(string)
	roleStr := c.MustGet(middleware.ContextUserRole).(string)

	role, ok := domain.ParseRole(roleStr)
	return userID, role, ok
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID, _, ok := requesterFromContext(c)
	if !ok {
		httperr.Forbidden(c, "unknown_role", "Perfil desconhecido.")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := parseInstant(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida ou formato incorreto.")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), uc.CreateBookingInput{
		ClientID:  userID,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Date:      date,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, created)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	userID, role, ok := requesterFromContext(c)
	if !ok {
		httperr.Forbidden(c, "unknown_role", "Perfil desconhecido.")
		return
	}

	var from, to *time.Time
	if s := c.Query("start"); s != "" {
		if t, err := parseRangeBound(s); err == nil {
			from = &t
		}
	}
	if s := c.Query("end"); s != "" {
		if t, err := parseRangeBound(s); err == nil {
			to = &t
		}
	}

	bookings, err := h.listUC.Execute(c.Request.Context(), userID, role, from, to)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, role, ok := requesterFromContext(c)
	if !ok {
		httperr.Forbidden(c, "unknown_role", "Perfil desconhecido.")
		return
	}

	id := c.Param("id")

	cancelled, err := h.cancelUC.Execute(c.Request.Context(), id, userID, role)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, cancelled)
}
