package artworks

import (
	"errors"
	"net/http"
	"time"

	"notices-app/database"
	"notices-app/internal/domain/catalog"
	"notices-app/internal/domain/gallery"
	"notices-app/internal/domain/media"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var errUnknownImage = errors.New("unknown image")

// ------------------------------
// GET /artworks (authoring view: drafts included)
// ------------------------------
func ListArtworks(c *gin.Context) {
	q := artworkWithRelations(database.DB)

	if status := c.Query("status"); status != "" {
		q = q.Where("artworks.status = ?", status)
	}

	var rows []catalog.Artwork
	if err := q.Order("artworks.updated_at DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artworks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"artworks": rows})
}

// ------------------------------
// GET /artworks/:id (authoring view)
// ------------------------------
func GetArtworkByID(c *gin.Context) {
	id := c.Param("id")

	var a catalog.Artwork
	err := artworkWithRelations(database.DB).First(&a, "artworks.id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artwork"})
		return
	}

	c.JSON(http.StatusOK, a)
}

// ------------------------------
// POST /artworks
// ------------------------------
func CreateArtwork(c *gin.Context) {
	var req CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		a := catalog.Artwork{
			Title:        req.Title,
			Medium:       req.Medium,
			CreationYear: req.CreationYear,
			Status:       catalog.StatusDraft,
			PlaceID:      req.PlaceID,
		}
		if err := tx.Create(&a).Error; err != nil {
			return err
		}

		if len(req.ArtistIDs) > 0 {
			if err := replaceArtworkArtists(tx, a.ID, req.ArtistIDs); err != nil {
				return err
			}
		}

		c.JSON(http.StatusCreated, gin.H{"id": a.ID})
		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artwork", "details": err.Error()})
	}
}

// ------------------------------
// PUT /artworks/:id
// ------------------------------
func UpdateArtwork(c *gin.Context) {
	id := c.Param("id")

	var req UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var a catalog.Artwork
		if err := tx.First(&a, "id = ?", id).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Medium != nil {
			updates["medium"] = *req.Medium
		}
		if req.CreationYear != nil {
			updates["creation_year"] = *req.CreationYear
		}
		if req.PlaceID != nil {
			updates["place_id"] = *req.PlaceID
		}
		if len(updates) > 0 {
			if err := tx.Model(&catalog.Artwork{}).
				Where("id = ?", a.ID).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.ArtistIDs != nil {
			if err := replaceArtworkArtists(tx, a.ID, *req.ArtistIDs); err != nil {
				return err
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return nil
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artwork", "details": err.Error()})
	}
}

// ------------------------------
// DELETE /artworks/:id
// ------------------------------
func DeleteArtwork(c *gin.Context) {
	id := c.Param("id")

	res := database.DB.Delete(&catalog.Artwork{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artwork"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ------------------------------
// POST /artworks/:id/publish
// ------------------------------
func PublishArtwork(c *gin.Context) {
	id := c.Param("id")

	now := time.Now()
	res := database.DB.Model(&catalog.Artwork{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       catalog.StatusPublished,
			"published_at": now,
		})

	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish artwork"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "published"})
}

// ------------------------------
// POST /artworks/:id/unpublish
// ------------------------------
func UnpublishArtwork(c *gin.Context) {
	id := c.Param("id")

	res := database.DB.Model(&catalog.Artwork{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       catalog.StatusDraft,
			"published_at": nil,
		})

	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unpublish artwork"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "unpublished"})
}

// ------------------------------
// PUT /artworks/:id/images
//
// Replaces the artwork's whole image collection with the list the editing UI
// holds: existing association rows are deleted and the new ones inserted in
// one transaction. There is no version check, so two concurrent editors of
// the same artwork end up last-write-wins.
// ------------------------------
func ReplaceArtworkImages(c *gin.Context) {
	id := c.Param("id")

	var req ReplaceImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Images) > gallery.DefaultMaxImages {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Too many images", "max": gallery.DefaultMaxImages})
		return
	}

	list := gallery.Normalize(req.Images)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var a catalog.Artwork
		if err := tx.First(&a, "id = ?", id).Error; err != nil {
			return err
		}

		// every referenced image must already be stored; the same image may
		// appear more than once, so count distinct IDs only
		if len(list) > 0 {
			seen := make(map[string]struct{}, len(list))
			ids := make([]string, 0, len(list))
			for _, at := range list {
				if _, ok := seen[at.ImageID]; ok {
					continue
				}
				seen[at.ImageID] = struct{}{}
				ids = append(ids, at.ImageID)
			}
			var known int64
			if err := tx.Model(&media.Image{}).Where("id IN ?", ids).Count(&known).Error; err != nil {
				return err
			}
			if known != int64(len(ids)) {
				return errUnknownImage
			}
		}

		if err := tx.Where("artwork_id = ?", a.ID).
			Delete(&catalog.ArtworkImage{}).Error; err != nil {
			return err
		}

		for _, at := range list {
			row := catalog.ArtworkImage{
				ArtworkID:   a.ID,
				ImageID:     at.ImageID,
				SortOrder:   at.SortOrder,
				IsMain:      at.IsMain,
				Attribution: at.Attribution,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok", "images": list})
		return nil
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}
		if errors.Is(err, errUnknownImage) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unknown image reference"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save images", "details": err.Error()})
	}
}
