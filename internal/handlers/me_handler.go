package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/navalhaapps/barbershop-api/internal/middleware"
	"github.com/navalhaapps/barbershop-api/internal/models"
	"github.com/navalhaapps/barbershop-api/internal/storage"
)

const maxAvatarUploadBytes = 5 << 20

type MeHandler struct {
	db      *gorm.DB
	storage *storage.S3Storage
}

func NewMeHandler(db *gorm.DB, st *storage.S3Storage) *MeHandler {
	return &MeHandler{db: db, storage: st}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"name":       user.Name,
			"email":      user.Email,
			"phone":      user.Phone,
			"role":       user.Role,
			"avatar":     user.Avatar,
			"active":     user.Active,
			"created_at": user.CreatedAt,
		},
	})
}

// UploadAvatar accepts a multipart "file" field with a jpeg/png image,
// normalizes it to webp and stores it under avatars/<user-id>.webp.
func (h *MeHandler) UploadAvatar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_file"})
		return
	}

	if fileHeader.Size > maxAvatarUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_too_large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_read_file"})
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_read_file"})
		return
	}

	normalized, err := storage.NormalizeAvatar(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported_image"})
		return
	}

	key := fmt.Sprintf("avatars/%s.webp", userID)
	url, err := h.storage.Put(c.Request.Context(), key, normalized, "image/webp")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_upload_avatar"})
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("avatar", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_avatar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatar": url})
}
