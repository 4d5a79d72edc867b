package uploads

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"notices-app/config"
	"notices-app/database"
	"notices-app/internal/domain/media"
	"notices-app/internal/platform/logger"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ------------------------------
// POST /uploads/images
//
// Stores one image file and returns the reference the gallery editor appends
// to its list. Failures are typed: wrong kind of file, too large, or a
// storage problem. Uploads are independent requests; ordering of a multi-file
// selection is the client's job (it appends by selection index).
// ------------------------------
func UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}

	if fileHeader.Size > config.MAX_UPLOAD_BYTES {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large", "max_bytes": config.MAX_UPLOAD_BYTES})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Unsupported file type", "detected": mt.String()})
		return
	}

	if err := os.MkdirAll(config.UPLOAD_DIR, 0o755); err != nil {
		logger.L().Error("upload dir not writable", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	name := uuid.NewString() + mt.Extension()
	path := filepath.Join(config.UPLOAD_DIR, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.L().Error("failed to write upload", zap.String("path", path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	img := media.Image{
		URL:         strings.TrimRight(config.PUBLIC_UPLOAD_BASE, "/") + "/" + name,
		StoragePath: path,
		ByteSize:    int64(len(data)),
		MimeType:    mt.String(),
	}
	if err := database.DB.Create(&img).Error; err != nil {
		// don't leave the orphan file behind
		_ = os.Remove(path)
		logger.L().Error("failed to persist image row", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	logger.L().Info("image stored",
		zap.String("image_id", img.ID),
		zap.String("mime", img.MimeType),
		zap.Int64("bytes", img.ByteSize))

	c.JSON(http.StatusCreated, gin.H{
		"image_id":  img.ID,
		"url":       img.URL,
		"byte_size": img.ByteSize,
		"mime_type": img.MimeType,
	})
}
