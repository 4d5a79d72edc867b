package catalog

import "time"

// Notice is a curatorial description. It is attached to exactly one subject:
// an artwork, an artist, or a place.
type Notice struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Body string `gorm:"type:text;not null" json:"body"`

	ArtworkID *string `gorm:"type:uuid;index" json:"artwork_id,omitempty"`
	ArtistID  *string `gorm:"type:uuid;index" json:"artist_id,omitempty"`
	PlaceID   *string `gorm:"type:uuid;index" json:"place_id,omitempty"`

	AuthorID uint `gorm:"not null;index" json:"author_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
