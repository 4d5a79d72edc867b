package catalog

import "time"

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

type Artwork struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Title        string `gorm:"not null" json:"title"`
	Medium       string `json:"medium,omitempty"`
	CreationYear string `gorm:"column:creation_year" json:"creation_year,omitempty"` // free text: "1875", "c. 1890", "1870-1875"

	Status      string     `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	PublishedAt *time.Time `gorm:"index" json:"published_at,omitempty"`

	PlaceID *string `gorm:"type:uuid;index" json:"-"`
	Place   *Place  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"place,omitempty"`

	Notice *Notice `gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE;" json:"notice,omitempty"`

	Artists []ArtworkArtist `gorm:"constraint:OnDelete:CASCADE;" json:"artists,omitempty"`
	Images  []ArtworkImage  `gorm:"constraint:OnDelete:CASCADE;" json:"images,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ArtworkArtist links an artwork to an artist at a stable position, so
// "the first listed artist" is well defined.
type ArtworkArtist struct {
	ArtworkID string `gorm:"type:uuid;primaryKey" json:"-"`
	ArtistID  string `gorm:"type:uuid;primaryKey" json:"-"`
	Position  int    `gorm:"not null;default:0;index:idx_artwork_artists_pos" json:"position"`

	Artist *Artist `gorm:"constraint:OnDelete:CASCADE;" json:"artist,omitempty"`
}
