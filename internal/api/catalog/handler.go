package catalog

import (
	"net/http"
	"strconv"

	"notices-app/database"
	"notices-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ------------------------------
// GET /catalog
// ------------------------------
func ListCatalog(c *gin.Context) {
	cr := CriteriaFromQuery(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	rows, total, err := Compose(database.DB, cr, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load catalog"})
		return
	}

	out := ListResponse{Total: total, Records: make([]RecordDTO, 0, len(rows))}
	for _, a := range rows {
		out.Records = append(out.Records, toRecordDTO(a))
	}
	c.JSON(http.StatusOK, out)
}

// ------------------------------
// GET /catalog/:id (published only)
// ------------------------------
func GetCatalogRecord(c *gin.Context) {
	id := c.Param("id")

	var a catalog.Artwork
	err := publishedQuery(database.DB).
		Preload("Place").
		Preload("Notice").
		Preload("Artists", func(db *gorm.DB) *gorm.DB {
			return db.Order("artwork_artists.position ASC")
		}).
		Preload("Artists.Artist").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("artwork_images.sort_order ASC")
		}).
		Preload("Images.Image").
		First(&a, "artworks.id = ?", id).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}

	c.JSON(http.StatusOK, toRecordDTO(a))
}
