package artists

import (
	"net/http"

	"notices-app/database"
	"notices-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateArtistRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Bio       string `json:"bio"`
}

type UpdateArtistRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
}

// GET /artists
func ListArtists(c *gin.Context) {
	var rows []catalog.Artist
	if err := database.DB.Order("last_name ASC, first_name ASC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"artists": rows})
}

// GET /artists/:id
func GetArtistByID(c *gin.Context) {
	var a catalog.Artist
	if err := database.DB.First(&a, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// POST /artists
func CreateArtist(c *gin.Context) {
	var req CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a := catalog.Artist{FirstName: req.FirstName, LastName: req.LastName, Bio: req.Bio}
	if err := database.DB.Create(&a).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artist"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": a.ID})
}

// PUT /artists/:id
func UpdateArtist(c *gin.Context) {
	var req UpdateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}

	res := database.DB.Model(&catalog.Artist{}).Where("id = ?", c.Param("id")).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artist"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DELETE /artists/:id
func DeleteArtist(c *gin.Context) {
	res := database.DB.Delete(&catalog.Artist{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artist"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
