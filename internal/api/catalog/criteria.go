package catalog

import "github.com/gin-gonic/gin"

type SortKey string

const (
	SortKeyTitle         SortKey = "title"
	SortKeyArtistName    SortKey = "artistName"
	SortKeyYear          SortKey = "year"
	SortKeyPublishedDate SortKey = "publishedDate"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Criteria is one query's worth of filter and sort parameters. Every field is
// optional; the zero value means "all published artworks, title ascending".
type Criteria struct {
	Search     string
	ArtistName string
	PlaceName  string
	Medium     string
	Year       string

	SortKey       SortKey
	SortDirection SortDirection
}

// CriteriaFromQuery reads criteria from the request query string. Unknown
// values are handled by Normalized, never rejected.
func CriteriaFromQuery(c *gin.Context) Criteria {
	return Criteria{
		Search:        c.Query("search"),
		ArtistName:    c.Query("artist"),
		PlaceName:     c.Query("place"),
		Medium:        c.Query("medium"),
		Year:          c.Query("year"),
		SortKey:       SortKey(c.Query("sort")),
		SortDirection: SortDirection(c.Query("dir")),
	}
}

// Normalized substitutes defaults for missing or unrecognized sort
// parameters. Malformed criteria never surface as an error to the caller.
func (cr Criteria) Normalized() Criteria {
	switch cr.SortKey {
	case SortKeyTitle, SortKeyArtistName, SortKeyYear, SortKeyPublishedDate:
	default:
		cr.SortKey = SortKeyTitle
	}
	switch cr.SortDirection {
	case SortAsc, SortDesc:
	default:
		cr.SortDirection = SortAsc
	}
	return cr
}
