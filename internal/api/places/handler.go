package places

import (
	"net/http"

	"notices-app/database"
	"notices-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreatePlaceRequest struct {
	Name    string `json:"name" binding:"required"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type UpdatePlaceRequest struct {
	Name    *string `json:"name"`
	City    *string `json:"city"`
	Country *string `json:"country"`
}

// GET /places
func ListPlaces(c *gin.Context) {
	var rows []catalog.Place
	if err := database.DB.Order("name ASC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load places"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"places": rows})
}

// GET /places/:id
func GetPlaceByID(c *gin.Context) {
	var p catalog.Place
	if err := database.DB.First(&p, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load place"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /places
func CreatePlace(c *gin.Context) {
	var req CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := catalog.Place{Name: req.Name, City: req.City, Country: req.Country}
	if err := database.DB.Create(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create place"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": p.ID})
}

// PUT /places/:id
func UpdatePlace(c *gin.Context) {
	var req UpdatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}

	res := database.DB.Model(&catalog.Place{}).Where("id = ?", c.Param("id")).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update place"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DELETE /places/:id
func DeletePlace(c *gin.Context) {
	res := database.DB.Delete(&catalog.Place{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete place"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Place not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
