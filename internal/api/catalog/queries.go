package catalog

import (
	"strings"

	"notices-app/internal/domain/catalog"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// pattern builds the lowercased %…% operand for a LIKE clause. LIKE
// metacharacters in the input are escaped so they match literally; every
// clause using these operands carries ESCAPE '\'.
func pattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}

// publishedQuery is the base of every catalog query: only published artworks
// with a publication date are ever visible, regardless of criteria.
func publishedQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&catalog.Artwork{}).
		Where("artworks.status = ? AND artworks.published_at IS NOT NULL", catalog.StatusPublished)
}

const artistNameMatch = `EXISTS (
	SELECT 1 FROM artwork_artists aa
	JOIN artists ar ON ar.id = aa.artist_id
	WHERE aa.artwork_id = artworks.id
	AND (LOWER(ar.first_name) LIKE ? ESCAPE '\' OR LOWER(ar.last_name) LIKE ? ESCAPE '\'))`

const noticeBodyMatch = `EXISTS (
	SELECT 1 FROM notices n
	WHERE n.artwork_id = artworks.id AND LOWER(n.body) LIKE ? ESCAPE '\')`

const placeNameMatch = `EXISTS (
	SELECT 1 FROM places p
	WHERE p.id = artworks.place_id AND LOWER(p.name) LIKE ? ESCAPE '\')`

// filteredQuery builds the predicate tree for one Criteria value. All string
// matches are case-insensitive substring matches. Free-text search fans out
// across title, medium, notice body and artist names; every other field is a
// single-attribute filter AND-ed onto the query.
func filteredQuery(db *gorm.DB, cr Criteria) *gorm.DB {
	q := publishedQuery(db)

	if cr.Search != "" {
		p := pattern(cr.Search)
		q = q.Where(
			db.Session(&gorm.Session{NewDB: true}).
				Where(`LOWER(artworks.title) LIKE ? ESCAPE '\'`, p).
				Or(`LOWER(artworks.medium) LIKE ? ESCAPE '\'`, p).
				Or(noticeBodyMatch, p).
				Or(artistNameMatch, p, p),
		)
	}
	if cr.ArtistName != "" {
		p := pattern(cr.ArtistName)
		q = q.Where(artistNameMatch, p, p)
	}
	if cr.PlaceName != "" {
		q = q.Where(placeNameMatch, pattern(cr.PlaceName))
	}
	if cr.Medium != "" {
		q = q.Where(`LOWER(artworks.medium) LIKE ? ESCAPE '\'`, pattern(cr.Medium))
	}
	if cr.Year != "" {
		q = q.Where(`LOWER(artworks.creation_year) LIKE ? ESCAPE '\'`, pattern(cr.Year))
	}

	return q
}

// applyOrder pushes ordering into the store where it can express it. The
// artistName key gets only an approximate proxy here; the real ordering is a
// finishing pass in memory (see sortByFirstArtist).
func applyOrder(q *gorm.DB, cr Criteria) *gorm.DB {
	dir := "ASC"
	if cr.SortDirection == SortDesc {
		dir = "DESC"
	}

	switch cr.SortKey {
	case SortKeyYear:
		return q.Order("artworks.creation_year " + dir).Order("artworks.title ASC")
	case SortKeyPublishedDate:
		return q.Order("artworks.published_at " + dir).Order("artworks.title ASC")
	case SortKeyArtistName:
		// stable proxy so equal-artist groups come back in a fixed order
		return q.Order("artworks.title ASC")
	default:
		return q.Order("artworks.title " + dir)
	}
}
