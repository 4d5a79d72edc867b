package catalog

import (
	"fmt"

	"notices-app/internal/domain/catalog"
	"notices-app/internal/platform/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Compose runs one catalog query: it translates the criteria into a filtered,
// ordered fetch plus a matching count, executed concurrently against the
// store. Criteria are normalized first, so malformed input falls back to the
// default sort instead of failing. Storage errors are not retried; callers
// get a single generic failure and are expected to render an empty set.
//
// For every sort key except artistName the ordering and the limit/offset
// window are pushed to the store. The artistName ordering is derived from a
// relation, so the full matching set is materialized, re-sorted in memory,
// and the window sliced afterwards.
func Compose(db *gorm.DB, cr Criteria, limit, offset int) ([]catalog.Artwork, int64, error) {
	cr = cr.Normalized()

	var (
		total int64
		rows  []catalog.Artwork
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		return filteredQuery(db, cr).Count(&total).Error
	})
	g.Go(func() error {
		q := filteredQuery(db, cr).
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

		q = applyOrder(q, cr)

		if cr.SortKey != SortKeyArtistName {
			if limit > 0 {
				q = q.Limit(limit)
			}
			if offset > 0 {
				q = q.Offset(offset)
			}
		}
		return q.Find(&rows).Error
	})

	if err := g.Wait(); err != nil {
		logger.L().Error("catalog query failed",
			zap.String("sort", string(cr.SortKey)),
			zap.Error(err))
		return nil, 0, fmt.Errorf("catalog query failed: %w", err)
	}

	if cr.SortKey == SortKeyArtistName {
		sortByFirstArtist(rows, cr.SortDirection)
		rows = window(rows, limit, offset)
	}

	return rows, total, nil
}

func window(rows []catalog.Artwork, limit, offset int) []catalog.Artwork {
	if offset > 0 {
		if offset >= len(rows) {
			return nil
		}
		rows = rows[offset:]
	}
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}
