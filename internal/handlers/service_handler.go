package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaapps/barbershop-api/internal/httperr"
	"github.com/navalhaapps/barbershop-api/internal/httpresp"
	"github.com/navalhaapps/barbershop-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	DurationMin int     `json:"duration_min" binding:"required,min=1"`
	ImageURL    string  `json:"image_url"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	DurationMin *int     `json:"duration_min,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

var serviceSortColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"duration":   "duration_min",
	"created_at": "created_at",
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
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

	sortBy, ok := serviceSortColumns[c.DefaultQuery("sort_by", "created_at")]
	if !ok {
		sortBy = "created_at"
	}
	sortOrder := "desc"
	if c.DefaultQuery("sort_order", "desc") == "asc" {
		sortOrder = "asc"
	}

	q := h.db.Model(&models.Service{})

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	if search != "" {
		like := "%" + search + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "failed_to_count_services", "Erro ao contar serviços.")
		return
	}

	var services []models.Service
	if err := q.
		Order(sortBy + " " + sortOrder).
		Limit(limit).
		Offset(offset).
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.Page(c, services, page, limit, total)
}

func (h *ServiceHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var bookings int64
	h.db.Model(&models.Booking{}).Where("service_id = ?", service.ID).Count(&bookings)

	c.JSON(http.StatusOK, gin.H{
		"service":        service,
		"total_bookings": bookings,
	})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var count int64
	h.db.Model(&models.Service{}).
		Where("LOWER(name) = ?", strings.ToLower(req.Name)).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "service_name_taken", "Já existe um serviço com este nome.")
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		ImageURL:    req.ImageURL,
		Active:      true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil && !strings.EqualFold(*req.Name, service.Name) {
		var count int64
		h.db.Model(&models.Service{}).
			Where("LOWER(name) = ? AND id <> ?", strings.ToLower(*req.Name), service.ID).
			Count(&count)
		if count > 0 {
			httperr.BadRequest(c, "service_name_taken", "Já existe um serviço com este nome.")
			return
		}
		service.Name = *req.Name
	}

	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.ImageURL != nil {
		service.ImageURL = *req.ImageURL
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	c.JSON(http.StatusOK, service)
}

// Delete soft-deactivates services still referenced by bookings.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var bookings int64
	h.db.Model(&models.Booking{}).Where("service_id = ?", service.ID).Count(&bookings)

	if bookings > 0 {
		if err := h.db.Model(&service).Update("active", false).Error; err != nil {
			httperr.Internal(c, "failed_to_deactivate_service", "Erro ao desativar serviço.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
		return
	}

	if err := h.db.Delete(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao deletar serviço.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *ServiceHandler) Toggle(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	service.Active = !service.Active
	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_toggle_service", "Erro ao alterar serviço.")
		return
	}

	c.JSON(http.StatusOK, service)
}
