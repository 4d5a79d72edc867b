package notices

import (
	"net/http"

	"notices-app/database"
	"notices-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateNoticeRequest struct {
	Body string `json:"body" binding:"required"`

	// exactly one subject link is expected
	ArtworkID *string `json:"artwork_id"`
	ArtistID  *string `json:"artist_id"`
	PlaceID   *string `json:"place_id"`
}

type UpdateNoticeRequest struct {
	Body *string `json:"body"`
}

func subjectCount(req CreateNoticeRequest) int {
	n := 0
	for _, id := range []*string{req.ArtworkID, req.ArtistID, req.PlaceID} {
		if id != nil && *id != "" {
			n++
		}
	}
	return n
}

// GET /notices
func ListNotices(c *gin.Context) {
	q := database.DB.Model(&catalog.Notice{})

	if artworkID := c.Query("artwork_id"); artworkID != "" {
		q = q.Where("artwork_id = ?", artworkID)
	}
	if artistID := c.Query("artist_id"); artistID != "" {
		q = q.Where("artist_id = ?", artistID)
	}
	if placeID := c.Query("place_id"); placeID != "" {
		q = q.Where("place_id = ?", placeID)
	}

	var rows []catalog.Notice
	if err := q.Order("updated_at DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notices"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notices": rows})
}

// GET /notices/:id
func GetNoticeByID(c *gin.Context) {
	var n catalog.Notice
	if err := database.DB.First(&n, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notice"})
		return
	}
	c.JSON(http.StatusOK, n)
}

// POST /notices
func CreateNotice(c *gin.Context) {
	var req CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if subjectCount(req) != 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Notice needs exactly one subject (artwork, artist or place)"})
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	n := catalog.Notice{
		Body:      req.Body,
		ArtworkID: req.ArtworkID,
		ArtistID:  req.ArtistID,
		PlaceID:   req.PlaceID,
		AuthorID:  userID,
	}
	if err := database.DB.Create(&n).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create notice"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": n.ID})
}

// PUT /notices/:id
func UpdateNotice(c *gin.Context) {
	var req UpdateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Body == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	res := database.DB.Model(&catalog.Notice{}).Where("id = ?", c.Param("id")).Update("body", *req.Body)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notice"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notice not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DELETE /notices/:id
func DeleteNotice(c *gin.Context) {
	res := database.DB.Delete(&catalog.Notice{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notice"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notice not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
