package catalog

import (
	"testing"

	"notices-app/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
)

func artworkBy(title string, names ...[2]string) catalog.Artwork {
	a := catalog.Artwork{Title: title}
	for i, n := range names {
		a.Artists = append(a.Artists, catalog.ArtworkArtist{
			Position: i,
			Artist:   &catalog.Artist{FirstName: n[0], LastName: n[1]},
		})
	}
	return a
}

func titles(rows []catalog.Artwork) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Title
	}
	return out
}

func TestSortByFirstArtistAscending(t *testing.T) {
	rows := []catalog.Artwork{
		artworkBy("w1", [2]string{"Claude", "Monet"}),
		artworkBy("w2", [2]string{"Berthe", "Morisot"}),
		artworkBy("w3", [2]string{"Auguste", "Renoir"}),
	}
	sortByFirstArtist(rows, SortAsc)
	assert.Equal(t, []string{"w3", "w2", "w1"}, titles(rows))
}

func TestSortByFirstArtistDescendingReverses(t *testing.T) {
	rows := []catalog.Artwork{
		artworkBy("w1", [2]string{"Claude", "Monet"}),
		artworkBy("w2", [2]string{"Berthe", "Morisot"}),
		artworkBy("w3", [2]string{"Auguste", "Renoir"}),
	}
	sortByFirstArtist(rows, SortDesc)
	assert.Equal(t, []string{"w1", "w2", "w3"}, titles(rows))
}

func TestSortByFirstArtistIgnoresDiacriticsAndCase(t *testing.T) {
	rows := []catalog.Artwork{
		artworkBy("manet", [2]string{"Édouard", "Manet"}),
		artworkBy("degas", [2]string{"edgar", "Degas"}),
		artworkBy("cezanne", [2]string{"Paul", "Cézanne"}),
	}
	sortByFirstArtist(rows, SortAsc)
	// "Édouard" sorts with plain E, "edgar" with plain lowercase e
	assert.Equal(t, []string{"degas", "manet", "cezanne"}, titles(rows))
}

func TestSortByFirstArtistUsesFirstListedArtistOnly(t *testing.T) {
	rows := []catalog.Artwork{
		artworkBy("w1", [2]string{"Claude", "Monet"}, [2]string{"Auguste", "Renoir"}),
		artworkBy("w2", [2]string{"Berthe", "Morisot"}),
	}
	sortByFirstArtist(rows, SortAsc)
	assert.Equal(t, []string{"w2", "w1"}, titles(rows))
}

func TestSortByFirstArtistPutsArtistlessLast(t *testing.T) {
	rows := []catalog.Artwork{
		artworkBy("anon"),
		artworkBy("w1", [2]string{"Claude", "Monet"}),
		artworkBy("w2", [2]string{"Auguste", "Renoir"}),
	}
	sortByFirstArtist(rows, SortAsc)
	assert.Equal(t, "anon", rows[2].Title)

	sortByFirstArtist(rows, SortDesc)
	assert.Equal(t, "anon", rows[2].Title, "artist-less records stay last when descending")
}

func TestSortByFirstArtistStableOnTies(t *testing.T) {
	rows := []catalog.Artwork{
		artworkBy("a", [2]string{"Claude", "Monet"}),
		artworkBy("b", [2]string{"Claude", "Monet"}),
		artworkBy("c", [2]string{"Claude", "Monet"}),
	}
	sortByFirstArtist(rows, SortAsc)
	assert.Equal(t, []string{"a", "b", "c"}, titles(rows), "ties keep their incoming order")
}
