// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package judgment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emsager/aicdiscovery/internal/core/artwork"
	"github.com/emsager/aicdiscovery/internal/platform/database/schema"
	"github.com/emsager/aicdiscovery/internal/platform/dberr"
)

// PostgresRepository implements Repository against judgment.entry.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create clears the opposite kind and inserts the new judgment in one
// transaction, so favorite and dislike can never coexist for the same
// (user, artwork). The insert is ON CONFLICT DO NOTHING, making a repeat
// of the same judgment idempotent.
func (repository *PostgresRepository) Create(ctx context.Context, j *Judgment) error {
	transaction, err := repository.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(ctx)

	deleteQuery := fmt.Sprintf(`
		DELETE FROM %s WHERE %s = $1 AND %s = $2 AND %s = $3
	`, schema.JudgmentEntry.Table, schema.JudgmentEntry.UserID, schema.JudgmentEntry.ArtworkID, schema.JudgmentEntry.Kind)

	if _, err := transaction.Exec(ctx, deleteQuery, j.UserID, j.ArtworkID, opposite(j.Kind)); err != nil {
		return dberr.Wrap(err, "clear_opposite_judgment")
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (%s, %s, %s) DO NOTHING
	`,
		schema.JudgmentEntry.Table,
		schema.JudgmentEntry.ID, schema.JudgmentEntry.UserID, schema.JudgmentEntry.ArtworkID,
		schema.JudgmentEntry.ArtistID, schema.JudgmentEntry.Kind, schema.JudgmentEntry.CreatedAt,
		schema.JudgmentEntry.UserID, schema.JudgmentEntry.ArtworkID, schema.JudgmentEntry.Kind,
	)

	if _, err := transaction.Exec(ctx, insertQuery, j.ID, j.UserID, j.ArtworkID, j.ArtistID, j.Kind); err != nil {
		return dberr.Wrap(err, "create_judgment")
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: failed to commit judgment: %w", err)
	}

	return nil
}

func (repository *PostgresRepository) Delete(ctx context.Context, userID string, artworkID int, kind string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s WHERE %s = $1 AND %s = $2 AND %s = $3
	`, schema.JudgmentEntry.Table, schema.JudgmentEntry.UserID, schema.JudgmentEntry.ArtworkID, schema.JudgmentEntry.Kind)

	_, err := repository.pool.Exec(ctx, query, userID, artworkID, kind)
	return dberr.Wrap(err, "delete_judgment")
}

// ExclusionSets loads every judgment row for the user in a single scan
// and splits the artwork ids by kind. Discovery calls this once per
// request, before any catalog fetch.
func (repository *PostgresRepository) ExclusionSets(ctx context.Context, userID string) (map[int]struct{}, map[int]struct{}, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s FROM %s WHERE %s = $1
	`, schema.JudgmentEntry.ArtworkID, schema.JudgmentEntry.Kind, schema.JudgmentEntry.Table, schema.JudgmentEntry.UserID)

	rows, err := repository.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, nil, dberr.Wrap(err, "load_exclusion_sets")
	}
	defer rows.Close()

	favorited := make(map[int]struct{})
	rejected := make(map[int]struct{})
	for rows.Next() {
		var artworkID int
		var kind string
		if err := rows.Scan(&artworkID, &kind); err != nil {
			return nil, nil, dberr.Wrap(err, "scan_exclusion_row")
		}
		if kind == KindFavorite {
			favorited[artworkID] = struct{}{}
		} else {
			rejected[artworkID] = struct{}{}
		}
	}

	return favorited, rejected, nil
}

func (repository *PostgresRepository) ListFavorites(ctx context.Context, userID string, limit, offset int) ([]*artwork.Artwork, int, error) {
	countQuery := fmt.Sprintf(`
		SELECT count(*) FROM %s WHERE %s = $1 AND %s = $2
	`, schema.JudgmentEntry.Table, schema.JudgmentEntry.UserID, schema.JudgmentEntry.Kind)

	var total int
	if err := repository.pool.QueryRow(ctx, countQuery, userID, KindFavorite).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_favorites")
	}

	query := fmt.Sprintf(`
		SELECT w.%s, w.%s, w.%s, a.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s
		FROM %s j
		JOIN %s w ON w.%s = j.%s
		JOIN %s a ON a.%s = w.%s
		WHERE j.%s = $1 AND j.%s = $2
		ORDER BY j.%s DESC
		LIMIT $3 OFFSET $4
	`,
		schema.Artwork.ID, schema.Artwork.Title, schema.Artwork.ArtistID, schema.Artist.Name,
		schema.Artwork.ArtistDisplay, schema.Artwork.DateStart, schema.Artwork.DateEnd,
		schema.Artwork.DateDisplay, schema.Artwork.MediumDisplay, schema.Artwork.Dimensions,
		schema.Artwork.ImageID, schema.Artwork.ImageURL, schema.Artwork.OnView, schema.Artwork.OnLoan,
		schema.Artwork.CreatedAt, schema.Artwork.UpdatedAt,
		schema.JudgmentEntry.Table,
		schema.Artwork.Table, schema.Artwork.ID, schema.JudgmentEntry.ArtworkID,
		schema.Artist.Table, schema.Artist.ID, schema.Artwork.ArtistID,
		schema.JudgmentEntry.UserID, schema.JudgmentEntry.Kind,
		schema.JudgmentEntry.CreatedAt,
	)

	rows, err := repository.pool.Query(ctx, query, userID, KindFavorite, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_favorites")
	}
	defer rows.Close()

	var favorites []*artwork.Artwork
	for rows.Next() {
		w := &artwork.Artwork{}
		if err := rows.Scan(
			&w.ID, &w.Title, &w.ArtistID, &w.ArtistName, &w.ArtistDisplay, &w.DateStart, &w.DateEnd,
			&w.DateDisplay, &w.MediumDisplay, &w.Dimensions, &w.ImageID, &w.ImageURL,
			&w.OnView, &w.OnLoan, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_favorite")
		}
		favorites = append(favorites, w)
	}

	return favorites, total, nil
}
