package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domain "github.com/navalhaapps/barbershop-api/internal/domain/booking"
	"github.com/navalhaapps/barbershop-api/internal/httperr"
	"github.com/navalhaapps/barbershop-api/internal/httpresp"
	"github.com/navalhaapps/barbershop-api/internal/models"
	"github.com/navalhaapps/barbershop-api/internal/validators"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
}

type UpdateBarberRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	offset := (page - 1) * limit

	activeStr := strings.TrimSpace(c.Query("active"))
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))
	hasScheduleStr := strings.TrimSpace(c.Query("has_schedule"))

	q := h.db.Model(&models.User{}).
		Where("role = ?", domain.RoleBarbeiro.String())

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	if search != "" {
		like := "%" + search + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	if hasScheduleStr == "true" {
		q = q.Where("EXISTS (SELECT 1 FROM barber_schedules s WHERE s.barber_id = users.id)")
	} else if hasScheduleStr == "false" {
		q = q.Where("NOT EXISTS (SELECT 1 FROM barber_schedules s WHERE s.barber_id = users.id)")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_count_barbers", "Erro ao contar barbeiros.")
		return
	}

	var barbers []models.User
	if err := q.
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&barbers).Error; err != nil {

		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.Page(c, barbers, page, limit, total)
}

func (h *BarberHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	var barber models.User
	if err := h.db.
		Where("id = ? AND role = ?", id, domain.RoleBarbeiro.String()).
		First(&barber).Error; err != nil {

		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var totalBookings int64
	h.db.Model(&models.Booking{}).Where("barber_id = ?", barber.ID).Count(&totalBookings)

	c.JSON(http.StatusOK, gin.H{
		"barber":         barber,
		"total_bookings": totalBookings,
	})
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "Domínio de e-mail inválido.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_registered", "Email já cadastrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao criar barbeiro.")
		return
	}

	barber := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Avatar:       req.Avatar,
		Role:         domain.RoleBarbeiro.String(),
		Active:       true,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	c.JSON(http.StatusCreated, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var barber models.User
	if err := h.db.
		Where("id = ? AND role = ?", id, domain.RoleBarbeiro.String()).
		First(&barber).Error; err != nil {

		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != barber.Email {
			var count int64
			h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
			if count > 0 {
				httperr.BadRequest(c, "email_already_registered", "Email já cadastrado.")
				return
			}
			barber.Email = email
		}
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Phone != nil {
		barber.Phone = *req.Phone
	}
	if req.Avatar != nil {
		barber.Avatar = *req.Avatar
	}
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	c.JSON(http.StatusOK, barber)
}

// Delete deactivates the barber when bookings reference them, and only
// hard-deletes otherwise.
func (h *BarberHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var barber models.User
	if err := h.db.
		Where("id = ? AND role = ?", id, domain.RoleBarbeiro.String()).
		First(&barber).Error; err != nil {

		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var bookings int64
	h.db.Model(&models.Booking{}).Where("barber_id = ?", barber.ID).Count(&bookings)

	if bookings > 0 {
		if err := h.db.Model(&barber).Update("active", false).Error; err != nil {
			httperr.Internal(c, "failed_to_deactivate_barber", "Erro ao desativar barbeiro.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
		return
	}

	if err := h.db.Delete(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Erro ao deletar barbeiro.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
