package artworks

import (
	"notices-app/internal/domain/catalog"

	"gorm.io/gorm"
)

func artworkWithRelations(db *gorm.DB) *gorm.DB {
	return db.Model(&catalog.Artwork{}).
		Preload("Place").
		Preload("Notice").
		Preload("Artists", func(db *gorm.DB) *gorm.DB {
			return db.Order("artwork_artists.position ASC")
		}).
		Preload("Artists.Artist").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("artwork_images.sort_order ASC")
		}).
		Preload("Images.Image")
}

func replaceArtworkArtists(tx *gorm.DB, artworkID string, artistIDs []string) error {
	if err := tx.Where("artwork_id = ?", artworkID).
		Delete(&catalog.ArtworkArtist{}).Error; err != nil {
		return err
	}
	for i, artistID := range artistIDs {
		row := catalog.ArtworkArtist{
			ArtworkID: artworkID,
			ArtistID:  artistID,
			Position:  i,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
