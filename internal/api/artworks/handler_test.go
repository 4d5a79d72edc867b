package artworks

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"notices-app/database"
	"notices-app/internal/domain/catalog"
	"notices-app/internal/domain/gallery"
	"notices-app/internal/domain/media"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps the in-memory database alive and shared
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func storedImage(t *testing.T, db *gorm.DB, name string) media.Image {
	t.Helper()
	img := media.Image{
		URL:         "/uploads/" + name,
		StoragePath: name,
		ByteSize:    64,
		MimeType:    "image/jpeg",
	}
	require.NoError(t, db.Create(&img).Error)
	return img
}

func putImages(t *testing.T, artworkID string, req ReplaceImagesRequest) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/artworks/:id/images", ReplaceArtworkImages)

	buf, err := json.Marshal(req)
	require.NoError(t, err)

	httpReq := httptest.NewRequest(http.MethodPut, "/artworks/"+artworkID+"/images", bytes.NewReader(buf))
	httpReq.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)
	return w
}

func TestReplaceImagesAcceptsRepeatedImageID(t *testing.T) {
	db := newTestDB(t)
	database.DB = db

	a := catalog.Artwork{Title: "Harbor", Status: catalog.StatusDraft}
	require.NoError(t, db.Create(&a).Error)
	img := storedImage(t, db, "harbor.jpg")

	w := putImages(t, a.ID, ReplaceImagesRequest{Images: []gallery.Attachment{
		{ImageID: img.ID},
		{ImageID: img.ID},
	}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var rows []catalog.ArtworkImage
	require.NoError(t, db.Where("artwork_id = ?", a.ID).Order("sort_order").Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.Equal(t, img.ID, rows[0].ImageID)
	assert.Equal(t, img.ID, rows[1].ImageID)
	assert.True(t, rows[0].IsMain)
	assert.False(t, rows[1].IsMain)
}

func TestReplaceImagesRejectsUnknownImageID(t *testing.T) {
	db := newTestDB(t)
	database.DB = db

	a := catalog.Artwork{Title: "Harbor", Status: catalog.StatusDraft}
	require.NoError(t, db.Create(&a).Error)
	img := storedImage(t, db, "harbor.jpg")

	w := putImages(t, a.ID, ReplaceImagesRequest{Images: []gallery.Attachment{
		{ImageID: img.ID},
		{ImageID: "4e9f4b2a-0000-0000-0000-000000000000"},
	}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var count int64
	require.NoError(t, db.Model(&catalog.ArtworkImage{}).Where("artwork_id = ?", a.ID).Count(&count).Error)
	assert.Zero(t, count, "a rejected replace must not touch the stored collection")
}
