package admin

import (
	"net/http"

	"notices-app/database"
	"notices-app/internal/domain/catalog"
	"notices-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// GET /admin/dashboard
func AdminDashboard(c *gin.Context) {
	var userCount, artworkCount, publishedCount, artistCount, placeCount, noticeCount int64

	database.DB.Model(&users.User{}).Count(&userCount)
	database.DB.Model(&catalog.Artwork{}).Count(&artworkCount)
	database.DB.Model(&catalog.Artwork{}).
		Where("status = ? AND published_at IS NOT NULL", catalog.StatusPublished).
		Count(&publishedCount)
	database.DB.Model(&catalog.Artist{}).Count(&artistCount)
	database.DB.Model(&catalog.Place{}).Count(&placeCount)
	database.DB.Model(&catalog.Notice{}).Count(&noticeCount)

	c.JSON(http.StatusOK, gin.H{
		"users":              userCount,
		"artworks":           artworkCount,
		"published_artworks": publishedCount,
		"artists":            artistCount,
		"places":             placeCount,
		"notices":            noticeCount,
	})
}

// GET /admin/users
func ListAllUsers(c *gin.Context) {
	var all []users.User
	if err := database.DB.Order("created_at DESC").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	out := make([]gin.H, 0, len(all))
	for _, u := range all {
		out = append(out, gin.H{
			"id":       u.ID,
			"name":     u.Name,
			"lastname": u.Lastname,
			"email":    u.Email,
			"role":     u.Role,
			"provider": u.AuthProvider,
		})
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

// PUT /admin/users/:id/role
func SetUserRole(c *gin.Context) {
	var body struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch body.Role {
	case users.RoleAdmin, users.RoleEditor, users.RoleViewer:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	res := database.DB.Model(&users.User{}).Where("id = ?", c.Param("id")).Update("role", body.Role)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
