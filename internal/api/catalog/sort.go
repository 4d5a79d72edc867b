package catalog

import (
	"sort"

	"notices-app/internal/domain/catalog"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// firstArtistName is the display key the artistName sort orders by: the
// first listed artist's "First Last". Empty when the artwork has no artists.
func firstArtistName(a catalog.Artwork) string {
	if len(a.Artists) == 0 || a.Artists[0].Artist == nil {
		return ""
	}
	return a.Artists[0].Artist.DisplayName()
}

// sortByFirstArtist orders rows by the first listed artist's name using a
// case- and diacritics-insensitive collation. The store cannot express this
// ordering (the key is derived from a one-to-many relation's first element),
// so the full result set is re-sorted here after retrieval. Artworks with no
// artists sort last in both directions. The underlying sort is stable, so
// ties keep the storage-level title order.
func sortByFirstArtist(rows []catalog.Artwork, dir SortDirection) {
	col := collate.New(language.Und, collate.Loose)

	sort.SliceStable(rows, func(i, j int) bool {
		ni, nj := firstArtistName(rows[i]), firstArtistName(rows[j])
		if ni == "" || nj == "" {
			// artist-less records always last
			return ni != "" && nj == ""
		}
		c := col.CompareString(ni, nj)
		if dir == SortDesc {
			return c > 0
		}
		return c < 0
	})
}
