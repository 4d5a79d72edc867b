package catalog

import (
	"time"

	"notices-app/internal/domain/catalog"
)

// ---------- responses

type ArtistRefDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type PlaceRefDTO struct {
	Name string `json:"name"`
}

type RecordDTO struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Medium       string         `json:"medium,omitempty"`
	CreationYear string         `json:"creation_year,omitempty"`
	PublishedAt  *time.Time     `json:"published_at"`
	Artists      []ArtistRefDTO `json:"artists"`
	Place        *PlaceRefDTO   `json:"place,omitempty"`
	Notice       string         `json:"notice,omitempty"`
	CoverURL     string         `json:"cover_url,omitempty"`
}

type ListResponse struct {
	Total   int64       `json:"total"`
	Records []RecordDTO `json:"records"`
}

func toRecordDTO(a catalog.Artwork) RecordDTO {
	dto := RecordDTO{
		ID:           a.ID,
		Title:        a.Title,
		Medium:       a.Medium,
		CreationYear: a.CreationYear,
		PublishedAt:  a.PublishedAt,
		Artists:      make([]ArtistRefDTO, 0, len(a.Artists)),
	}
	for _, aa := range a.Artists {
		if aa.Artist == nil {
			continue
		}
		dto.Artists = append(dto.Artists, ArtistRefDTO{
			FirstName: aa.Artist.FirstName,
			LastName:  aa.Artist.LastName,
		})
	}
	if a.Place != nil {
		dto.Place = &PlaceRefDTO{Name: a.Place.Name}
	}
	if a.Notice != nil {
		dto.Notice = a.Notice.Body
	}
	for _, img := range a.Images {
		if img.IsMain && img.Image != nil {
			dto.CoverURL = img.Image.URL
			break
		}
	}
	return dto
}
