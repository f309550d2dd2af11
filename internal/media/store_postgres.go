// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
PostgreSQL implementation of the catalog [Repository].

  - Ordering: catalog.media.position preserves seed order for List.
  - Details: additional_info is stored as JSONB and decoded per media type.
  - ACID Transactions: a review insert and the item update commit together.
*/

package media

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/shelfmark/internal/platform/database/schema"
	"github.com/taibuivan/shelfmark/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed catalog store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var (
	mediaColumns = strings.Join(schema.CatalogMedia.Columns(), ", ")

	selectMediaSQL = fmt.Sprintf(`SELECT %s FROM %s`, mediaColumns, schema.CatalogMedia.Table)

	updateReviewedSQL = fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4
		WHERE %s = $1
		RETURNING %s`,
		schema.CatalogMedia.Table,
		schema.CatalogMedia.Rating,
		schema.CatalogMedia.ReviewText,
		schema.CatalogMedia.Tags,
		schema.CatalogMedia.ID,
		mediaColumns,
	)

	insertReviewSQL = fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		schema.CatalogReview.Table,
		schema.CatalogReview.ID,
		schema.CatalogReview.MediaID,
		schema.CatalogReview.MediaType,
		schema.CatalogReview.Rating,
		schema.CatalogReview.ReviewText,
		schema.CatalogReview.Tags,
		schema.CatalogReview.ReviewerID,
		schema.CatalogReview.DateReviewed,
	)

	insertMediaSQL = fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (%s) DO NOTHING`,
		schema.CatalogMedia.Table,
		mediaColumns,
		schema.CatalogMedia.ID,
	)
)

// scanMedia reads one row in [schema.CatalogMediaTable.Columns] order.
func scanMedia(row pgx.Row) (MediaItem, error) {
	var (
		item MediaItem
		info []byte
	)

	err := row.Scan(
		&item.ID, &item.Type, &item.Title, &item.Year, &item.CoverImage,
		&item.Rating, &item.Tags, &item.Description, &item.Creator,
		&item.ReviewText, &info, &item.DateAdded,
	)
	if err != nil {
		return MediaItem{}, err
	}

	if item.Tags == nil {
		item.Tags = []string{}
	}

	item.Details, err = DecodeDetails(item.Type, info)
	if err != nil {
		return MediaItem{}, err
	}
	return item, nil
}

func (repository *PostgresRepository) List(ctx context.Context) ([]MediaItem, error) {
	rows, err := repository.pool.Query(ctx, selectMediaSQL+` ORDER BY `+schema.CatalogMedia.Position)
	if err != nil {
		return nil, dberr.Wrap(err, "Media", "list media")
	}
	defer rows.Close()

	items := make([]MediaItem, 0)
	for rows.Next() {
		item, err := scanMedia(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "Media", "scan media")
		}
		items = append(items, item)
	}
	return items, dberr.Wrap(rows.Err(), "Media", "iterate media")
}

func (repository *PostgresRepository) Get(ctx context.Context, id string) (MediaItem, error) {
	row := repository.pool.QueryRow(ctx, selectMediaSQL+` WHERE `+schema.CatalogMedia.ID+` = $1`, id)

	item, err := scanMedia(row)
	if err != nil {
		return MediaItem{}, dberr.Wrap(err, "Media", "get media")
	}
	return item, nil
}

func (repository *PostgresRepository) ApplyReview(ctx context.Context, review Review) (MediaItem, error) {
	var updated MediaItem
	tags := nonNil(review.Tags)

	err := pgx.BeginFunc(ctx, repository.pool, func(tx pgx.Tx) error {
		item, err := scanMedia(tx.QueryRow(ctx, updateReviewedSQL,
			review.MediaID, review.Rating, review.ReviewText, tags,
		))
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, insertReviewSQL,
			review.ID, review.MediaID, string(review.MediaType), review.Rating,
			review.ReviewText, tags, review.ReviewerID, review.DateReviewed,
		)
		if err != nil {
			return err
		}

		updated = item
		return nil
	})
	if err != nil {
		return MediaItem{}, dberr.Wrap(err, "Media", "apply review")
	}
	return updated, nil
}

func (repository *PostgresRepository) Reviews(ctx context.Context, mediaID string) ([]Review, error) {
	if _, err := repository.Get(ctx, mediaID); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s::text, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC`,
		schema.CatalogReview.ID,
		schema.CatalogReview.MediaID,
		schema.CatalogReview.MediaType,
		schema.CatalogReview.Rating,
		schema.CatalogReview.ReviewText,
		schema.CatalogReview.Tags,
		schema.CatalogReview.ReviewerID,
		schema.CatalogReview.DateReviewed,
		schema.CatalogReview.Table,
		schema.CatalogReview.MediaID,
		schema.CatalogReview.DateReviewed,
	)

	rows, err := repository.pool.Query(ctx, query, mediaID)
	if err != nil {
		return nil, dberr.Wrap(err, "Review", "list reviews")
	}

	reviews, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Review, error) {
		var review Review
		err := row.Scan(
			&review.ID, &review.MediaID, &review.MediaType, &review.Rating,
			&review.ReviewText, &review.Tags, &review.ReviewerID, &review.DateReviewed,
		)
		return review, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "Review", "scan reviews")
	}
	return reviews, nil
}

/*
Seed inserts items when the catalog table is empty.

All inserts go through one batch inside a transaction, so a failed seed leaves
the table empty and the next start retries. It returns how many rows were
written (0 when the catalog already had data).
*/
func (repository *PostgresRepository) Seed(ctx context.Context, items []MediaItem) (int, error) {
	var existing int
	countSQL := `SELECT COUNT(*) FROM ` + schema.CatalogMedia.Table
	if err := repository.pool.QueryRow(ctx, countSQL).Scan(&existing); err != nil {
		return 0, dberr.Wrap(err, "Media", "count media")
	}
	if existing > 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, item := range items {
		var info []byte
		if item.Details != nil {
			raw, err := json.Marshal(item.Details)
			if err != nil {
				return 0, fmt.Errorf("media: encode details for %q: %w", item.ID, err)
			}
			info = raw
		}

		batch.Queue(insertMediaSQL,
			item.ID, string(item.Type), item.Title, item.Year, item.CoverImage,
			item.Rating, nonNil(item.Tags), item.Description, item.Creator,
			item.ReviewText, info, item.DateAdded,
		)
	}

	err := pgx.BeginFunc(ctx, repository.pool, func(tx pgx.Tx) error {
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return 0, dberr.Wrap(err, "Media", "seed media")
	}
	return len(items), nil
}

// nonNil keeps NOT NULL text[] columns from receiving SQL NULL.
func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
