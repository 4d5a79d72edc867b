package catalog

import (
	"testing"
	"time"

	"notices-app/database"
	"notices-app/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps the in-memory database alive and shared
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

type fixture struct {
	title     string
	medium    string
	year      string
	published bool
	artists   []catalog.Artist
	place     *catalog.Place
	notice    string
}

func seed(t *testing.T, db *gorm.DB, fixtures []fixture) {
	t.Helper()
	for _, f := range fixtures {
		a := catalog.Artwork{
			Title:        f.title,
			Medium:       f.medium,
			CreationYear: f.year,
			Status:       catalog.StatusDraft,
		}
		if f.published {
			now := time.Now()
			a.Status = catalog.StatusPublished
			a.PublishedAt = &now
		}
		if f.place != nil {
			p := *f.place
			require.NoError(t, db.Create(&p).Error)
			a.PlaceID = &p.ID
		}
		require.NoError(t, db.Create(&a).Error)

		for i := range f.artists {
			ar := f.artists[i]
			require.NoError(t, db.Create(&ar).Error)
			require.NoError(t, db.Create(&catalog.ArtworkArtist{
				ArtworkID: a.ID,
				ArtistID:  ar.ID,
				Position:  i,
			}).Error)
		}
		if f.notice != "" {
			require.NoError(t, db.Create(&catalog.Notice{
				Body:      f.notice,
				ArtworkID: &a.ID,
				AuthorID:  1,
			}).Error)
		}
	}
}

func monet() catalog.Artist  { return catalog.Artist{FirstName: "Claude", LastName: "Monet"} }
func renoir() catalog.Artist { return catalog.Artist{FirstName: "Auguste", LastName: "Renoir"} }

func composedTitles(t *testing.T, db *gorm.DB, cr Criteria) []string {
	t.Helper()
	rows, _, err := Compose(db, cr, 0, 0)
	require.NoError(t, err)
	return titles(rows)
}

func TestComposeEmptyCriteriaReturnsPublishedByTitle(t *testing.T) {
	db := newTestDB(t)
	seed(t, db, []fixture{
		{title: "Water Lilies", published: true},
		{title: "Bal du moulin", published: true},
		{title: "Unfinished sketch", published: false},
		{title: "The Bridge", published: true},
	})

	rows, total, err := Compose(db, Criteria{}, 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Equal(t, []string{"Bal du moulin", "The Bridge", "Water Lilies"}, titles(rows))
}

func TestComposeSearchMonetScenario(t *testing.T) {
	db := newTestDB(t)
	seed(t, db, []fixture{
		{title: "Nymphéas", published: true, artists: []catalog.Artist{monet()}},
		{title: "Bal du moulin", published: true, artists: []catalog.Artist{renoir()}},
		{title: "Landscape", published: true},
		{title: "Still Life", published: true, medium: "oil on canvas"},
		{title: "Harbor Study", published: true},
		// title matches but unpublished: must stay invisible
		{title: "Monet at Giverny", published: false},
	})

	got := composedTitles(t, db, Criteria{Search: "Monet", SortKey: SortKeyTitle, SortDirection: SortAsc})
	assert.Equal(t, []string{"Nymphéas"}, got)
}

func TestComposeSearchFansOutAcrossFields(t *testing.T) {
	db := newTestDB(t)
	seed(t, db, []fixture{
		{title: "Sunrise Harbor", published: true},
		{title: "Untitled I", medium: "charcoal on paper", published: true},
		{title: "Untitled II", published: true, notice: "A late charcoal-period study."},
		{title: "Untitled III", published: true, artists: []catalog.Artist{{FirstName: "Charco", LastName: "Alvarez"}}},
		{title: "Unrelated", published: true},
	})

	got := composedTitles(t, db, Criteria{Search: "charco"})
	assert.Equal(t, []string{"Untitled I", "Untitled II", "Untitled III"}, got)
}

func TestComposeSearchMatchesLikeMetacharactersLiterally(t *testing.T) {
	db := newTestDB(t)
	seed(t, db, []fixture{
		{title: "abc", published: true, medium: "oil"},
		{title: "a_c literal", published: true},
		{title: "100% cotton", published: true},
	})

	assert.Equal(t, []string{"a_c literal"}, composedTitles(t, db, Criteria{Search: "a_c"}),
		"underscore must not act as a single-character wildcard")
	assert.Equal(t, []string{"100% cotton"}, composedTitles(t, db, Criteria{Search: "%"}),
		"percent must only match records actually containing one")
	assert.Empty(t, composedTitles(t, db, Criteria{Search: `\`}))
	assert.Empty(t, composedTitles(t, db, Criteria{Medium: "_"}),
		"field filters escape metacharacters too")
}

func TestComposeSearchIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	seed(t, db, []fixture{
		{title: "Harbor at Dusk", published: true},
	})

	assert.Len(t, composedTitles(t, db, Criteria{Search: "HARBOR"}), 1)
	assert.Len(t, composedTitles(t, db, Criteria{Search: "harbor"}), 1)
}

func TestComposeFieldFilters(t *testing.T) {
	db := newTestDB(t)
	louvre := catalog.Place{Name: "Musée du Louvre", City: "Paris"}
	seed(t, db, []fixture{
		{title: "A", published: true, medium: "oil on canvas", year: "1875", artists: []catalog.Artist{monet()}, place: &louvre},
		{title: "B", published: true, medium: "watercolor", year: "c. 1890", artists: []catalog.Artist{renoir()}},
		{title: "C", published: true, medium: "oil on panel", year: "1875-1880"},
	})

	assert.Equal(t, []string{"A", "C"}, composedTitles(t, db, Criteria{Medium: "oil"}))
	assert.Equal(t, []string{"A", "C"}, composedTitles(t, db, Criteria{Year: "1875"}))
	assert.Equal(t, []string{"A"}, composedTitles(t, db, Criteria{ArtistName: "monet"}))
	assert.Equal(t, []string{"B"}, composedTitles(t, db, Criteria{ArtistName: "auguste"}), "first name must match too")
	assert.Equal(t, []string{"A"}, composedTitles(t, db, Criteria{PlaceName: "louvre"}))
	assert.Equal(t, []string{"A"}, composedTitles(t, db, Criteria{Medium: "oil", Year: "1875", ArtistName: "Monet"}), "filters AND together")
}

func TestComposeArtistNameSort(t *testing.T) {
	db := newTestDB(t)
	seed(t, db, []fixture{
		{title: "w1", published: true, artists: []catalog.Artist{monet()}},
		{title: "w2", published: true, artists: []catalog.Artist{{FirstName: "Berthe", LastName: "Morisot"}}},
		{title: "w3", published: true, artists: []catalog.Artist{renoir()}},
		{title: "anon", published: true},
	})

	got := composedTitles(t, db, Criteria{SortKey: SortKeyArtistName, SortDirection: SortAsc})
	assert.Equal(t, []string{"w3", "w2", "w1", "anon"}, got)

	got = composedTitles(t, db, Criteria{SortKey: SortKeyArtistName, SortDirection: SortDesc})
	assert.Equal(t, []string{"w1", "w2", "w3", "anon"}, got, "artist-less records stay last when descending")
}

func TestComposeYearSortWithTitleTieBreak(t *testing.T) {
	db := newTestDB(t)
	seed(t, db, []fixture{
		{title: "Zebra", published: true, year: "1875"},
		{title: "Apple", published: true, year: "1875"},
		{title: "Middle", published: true, year: "1860"},
	})

	got := composedTitles(t, db, Criteria{SortKey: SortKeyYear, SortDirection: SortAsc})
	assert.Equal(t, []string{"Middle", "Apple", "Zebra"}, got)

	got = composedTitles(t, db, Criteria{SortKey: SortKeyYear, SortDirection: SortDesc})
	assert.Equal(t, []string{"Apple", "Zebra", "Middle"}, got, "tie-break stays title ascending")
}

func TestComposeMalformedSortFallsBackToDefault(t *testing.T) {
	db := newTestDB(t)
	seed(t, db, []fixture{
		{title: "B", published: true},
		{title: "A", published: true},
	})

	got := composedTitles(t, db, Criteria{SortKey: "no-such-key", SortDirection: "sideways"})
	assert.Equal(t, []string{"A", "B"}, got)
}

func TestComposeIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	seed(t, db, []fixture{
		{title: "w1", published: true, artists: []catalog.Artist{monet()}},
		{title: "w2", published: true, artists: []catalog.Artist{renoir()}},
		{title: "w3", published: true},
	})

	cr := Criteria{SortKey: SortKeyArtistName}
	first := composedTitles(t, db, cr)
	second := composedTitles(t, db, cr)
	assert.Equal(t, first, second)
}

func TestComposeWindowAfterArtistSort(t *testing.T) {
	db := newTestDB(t)
	seed(t, db, []fixture{
		{title: "w1", published: true, artists: []catalog.Artist{monet()}},
		{title: "w2", published: true, artists: []catalog.Artist{{FirstName: "Berthe", LastName: "Morisot"}}},
		{title: "w3", published: true, artists: []catalog.Artist{renoir()}},
	})

	rows, total, err := Compose(db, Criteria{SortKey: SortKeyArtistName}, 1, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total, "count reflects the full matching set")
	require.Len(t, rows, 1)
	assert.Equal(t, "w2", rows[0].Title, "window applies after the in-memory sort")
}

func TestComposePreloadsRelationsInOrder(t *testing.T) {
	db := newTestDB(t)
	seed(t, db, []fixture{
		{title: "duo", published: true, artists: []catalog.Artist{renoir(), monet()}},
	})

	rows, _, err := Compose(db, Criteria{}, 0, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0].Artists, 2)
	assert.Equal(t, "Renoir", rows[0].Artists[0].Artist.LastName, "artists come back in listed order")
	assert.Equal(t, "Monet", rows[0].Artists[1].Artist.LastName)
}
