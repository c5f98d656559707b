// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package artwork

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emsager/aicdiscovery/internal/platform/database/schema"
	"github.com/emsager/aicdiscovery/internal/platform/dberr"
)

// PostgresRepository implements Repository against core.artwork.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// psql is the statement builder configured for PostgreSQL placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func (repository *PostgresRepository) GetArtwork(ctx context.Context, id int) (*Artwork, error) {
	query := fmt.Sprintf(`
		SELECT w.%s, w.%s, w.%s, a.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s, w.%s
		FROM %s w
		JOIN %s a ON a.%s = w.%s
		WHERE w.%s = $1
	`,
		schema.Artwork.ID, schema.Artwork.Title, schema.Artwork.ArtistID, schema.Artist.Name,
		schema.Artwork.ArtistDisplay, schema.Artwork.DateStart, schema.Artwork.DateEnd,
		schema.Artwork.DateDisplay, schema.Artwork.MediumDisplay, schema.Artwork.Dimensions,
		schema.Artwork.ImageID, schema.Artwork.ImageURL, schema.Artwork.OnView, schema.Artwork.OnLoan,
		schema.Artwork.CreatedAt, schema.Artwork.UpdatedAt,
		schema.Artwork.Table,
		schema.Artist.Table, schema.Artist.ID, schema.Artwork.ArtistID,
		schema.Artwork.ID,
	)

	w := &Artwork{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.Title, &w.ArtistID, &w.ArtistName, &w.ArtistDisplay, &w.DateStart, &w.DateEnd,
		&w.DateDisplay, &w.MediumDisplay, &w.Dimensions, &w.ImageID, &w.ImageURL,
		&w.OnView, &w.OnLoan, &w.CreatedAt, &w.UpdatedAt,
	)

	return w, dberr.Wrap(err, "get_artwork")
}

// ListArtworks returns a filtered page of saved artworks with the total
// row count. The filters are all optional, so the statement is built
// dynamically with squirrel rather than by concatenating fragments.
func (repository *PostgresRepository) ListArtworks(ctx context.Context, filter ListFilter, limit, offset int) ([]*Artwork, int, error) {
	base := psql.Select(
		"w."+schema.Artwork.ID, "w."+schema.Artwork.Title, "w."+schema.Artwork.ArtistID,
		"a."+schema.Artist.Name,
		"w."+schema.Artwork.ArtistDisplay, "w."+schema.Artwork.DateStart, "w."+schema.Artwork.DateEnd,
		"w."+schema.Artwork.DateDisplay, "w."+schema.Artwork.MediumDisplay, "w."+schema.Artwork.Dimensions,
		"w."+schema.Artwork.ImageID, "w."+schema.Artwork.ImageURL,
		"w."+schema.Artwork.OnView, "w."+schema.Artwork.OnLoan,
		"w."+schema.Artwork.CreatedAt, "w."+schema.Artwork.UpdatedAt,
	).
		From(schema.Artwork.Table + " w").
		Join(fmt.Sprintf("%s a ON a.%s = w.%s", schema.Artist.Table, schema.Artist.ID, schema.Artwork.ArtistID))

	count := psql.Select("count(*)").From(schema.Artwork.Table + " w")

	if filter.Query != "" {
		like := squirrel.ILike{"w." + schema.Artwork.Title: "%" + filter.Query + "%"}
		base = base.Where(like)
		count = count.Where(like)
	}

	if filter.ArtistID != 0 {
		eq := squirrel.Eq{"w." + schema.Artwork.ArtistID: filter.ArtistID}
		base = base.Where(eq)
		count = count.Where(eq)
	}

	if filter.YearStart != 0 && filter.YearEnd != 0 {
		// Same union-of-endpoints rule the discovery filter applies.
		inRange := squirrel.Or{
			squirrel.And{
				squirrel.GtOrEq{"w." + schema.Artwork.DateStart: filter.YearStart},
				squirrel.LtOrEq{"w." + schema.Artwork.DateStart: filter.YearEnd},
			},
			squirrel.And{
				squirrel.GtOrEq{"w." + schema.Artwork.DateEnd: filter.YearStart},
				squirrel.LtOrEq{"w." + schema.Artwork.DateEnd: filter.YearEnd},
			},
		}
		base = base.Where(inRange)
		count = count.Where(inRange)
	}

	countSQL, countArgs, err := count.ToSql()
	if err != nil {
		return nil, 0, dberr.Wrap(err, "build_count_artworks")
	}

	var total int
	if err := repository.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_artworks")
	}

	listSQL, listArgs, err := base.
		OrderBy("w." + schema.Artwork.Title + " ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, dberr.Wrap(err, "build_list_artworks")
	}

	rows, err := repository.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_artworks")
	}
	defer rows.Close()

	var artworks []*Artwork
	for rows.Next() {
		w := &Artwork{}
		if err := rows.Scan(
			&w.ID, &w.Title, &w.ArtistID, &w.ArtistName, &w.ArtistDisplay, &w.DateStart, &w.DateEnd,
			&w.DateDisplay, &w.MediumDisplay, &w.Dimensions, &w.ImageID, &w.ImageURL,
			&w.OnView, &w.OnLoan, &w.CreatedAt, &w.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_artwork")
		}
		artworks = append(artworks, w)
	}

	return artworks, total, nil
}

// Upsert inserts or fully replaces an artwork row keyed by the external
// catalog id. ON CONFLICT DO UPDATE keeps the operation a single statement,
// so two discovery runs upserting the same id cannot interleave partial
// field sets.
func (repository *PostgresRepository) Upsert(ctx context.Context, w *Artwork) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = NOW()
		RETURNING %s, %s
	`,
		schema.Artwork.Table,
		schema.Artwork.ID, schema.Artwork.Title, schema.Artwork.ArtistID, schema.Artwork.ArtistDisplay,
		schema.Artwork.DateStart, schema.Artwork.DateEnd, schema.Artwork.DateDisplay,
		schema.Artwork.MediumDisplay, schema.Artwork.Dimensions, schema.Artwork.ImageID,
		schema.Artwork.ImageURL, schema.Artwork.OnView, schema.Artwork.OnLoan,
		schema.Artwork.CreatedAt, schema.Artwork.UpdatedAt,
		schema.Artwork.ID,
		schema.Artwork.Title, schema.Artwork.Title,
		schema.Artwork.ArtistID, schema.Artwork.ArtistID,
		schema.Artwork.ArtistDisplay, schema.Artwork.ArtistDisplay,
		schema.Artwork.DateStart, schema.Artwork.DateStart,
		schema.Artwork.DateEnd, schema.Artwork.DateEnd,
		schema.Artwork.DateDisplay, schema.Artwork.DateDisplay,
		schema.Artwork.MediumDisplay, schema.Artwork.MediumDisplay,
		schema.Artwork.Dimensions, schema.Artwork.Dimensions,
		schema.Artwork.ImageID, schema.Artwork.ImageID,
		schema.Artwork.ImageURL, schema.Artwork.ImageURL,
		schema.Artwork.OnView, schema.Artwork.OnView,
		schema.Artwork.OnLoan, schema.Artwork.OnLoan,
		schema.Artwork.UpdatedAt,
		schema.Artwork.CreatedAt, schema.Artwork.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		w.ID, w.Title, w.ArtistID, w.ArtistDisplay, w.DateStart, w.DateEnd, w.DateDisplay,
		w.MediumDisplay, w.Dimensions, w.ImageID, w.ImageURL, w.OnView, w.OnLoan,
	).Scan(&w.CreatedAt, &w.UpdatedAt)

	return dberr.Wrap(err, "upsert_artwork")
}
