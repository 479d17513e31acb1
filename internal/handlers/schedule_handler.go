package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/navalhaapps/barbershop-api/internal/domain/booking"
	"github.com/navalhaapps/barbershop-api/internal/httperr"
	"github.com/navalhaapps/barbershop-api/internal/models"
)

// ScheduleHandler manages a barber's declared weekly working hours. The
// booking flow does not consult them yet; they exist for display and for
// front-end slot suggestions.
type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

type ScheduleDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Active    bool   `json:"active"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ScheduleUpdateRequest struct {
	Days []ScheduleDayConfig `json:"days" binding:"required"`
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	barberID := c.Param("id")

	var count int64
	h.db.Model(&models.User{}).
		Where("id = ? AND role = ?", barberID, domain.RoleBarbeiro.String()).
		Count(&count)
	if count == 0 {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var days []models.BarberSchedule
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&days).Error; err != nil {

		httperr.Internal(c, "failed_to_get_schedule", "Erro ao buscar horários.")
		return
	}

	c.JSON(http.StatusOK, days)
}

// Update replaces the whole weekly schedule in one shot.
func (h *ScheduleHandler) Update(c *gin.Context) {
	barberID := c.Param("id")

	var count int64
	h.db.Model(&models.User{}).
		Where("id = ? AND role = ?", barberID, domain.RoleBarbeiro.String()).
		Count(&count)
	if count == 0 {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.db.
		Where("barber_id = ?", barberID).
		Delete(&models.BarberSchedule{}).Error; err != nil {

		httperr.Internal(c, "failed_to_clear_schedule", "Erro ao salvar horários.")
		return
	}

	var toCreate []models.BarberSchedule
	for _, d := range req.Days {
		toCreate = append(toCreate, models.BarberSchedule{
			BarberID:  barberID,
			Weekday:   d.Weekday,
			Active:    d.Active,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		})
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			httperr.Internal(c, "failed_to_save_schedule", "Erro ao salvar horários.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
