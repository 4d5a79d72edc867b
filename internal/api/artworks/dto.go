package artworks

import "notices-app/internal/domain/gallery"

// ---------- requests

type CreateArtworkRequest struct {
	Title        string  `json:"title" binding:"required"`
	Medium       string  `json:"medium"`
	CreationYear string  `json:"creation_year"`
	PlaceID      *string `json:"place_id"`

	// ordered: the first ID is the artwork's first listed artist
	ArtistIDs []string `json:"artist_ids"`
}

type UpdateArtworkRequest struct {
	Title        *string `json:"title"`
	Medium       *string `json:"medium"`
	CreationYear *string `json:"creation_year"`
	PlaceID      *string `json:"place_id"`

	ArtistIDs *[]string `json:"artist_ids"` // nil = unchanged, [] = clear
}

// ReplaceImagesRequest carries the artwork's full attachment list as the
// editing UI holds it. The server replaces the stored collection wholesale.
type ReplaceImagesRequest struct {
	Images []gallery.Attachment `json:"images"`
}
