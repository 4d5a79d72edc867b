package catalog

import (
	"time"

	"notices-app/internal/domain/media"
)

// ArtworkImage is one image attached to an artwork, with its display order,
// the primary/cover flag and an optional attribution line. Rows are replaced
// wholesale when an artwork's image collection is saved.
type ArtworkImage struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"-"`
	ArtworkID string `gorm:"type:uuid;not null;index:idx_artwork_images_sort,priority:1" json:"-"`

	ImageID string       `gorm:"type:uuid;not null" json:"image_id"`
	Image   *media.Image `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"image,omitempty"`

	SortOrder   int     `gorm:"not null;default:0;index:idx_artwork_images_sort,priority:2" json:"sort_order"`
	IsMain      bool    `gorm:"not null;default:false" json:"is_main"`
	Attribution *string `json:"attribution,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
