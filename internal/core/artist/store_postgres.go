// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package artist

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emsager/aicdiscovery/internal/platform/database/schema"
	"github.com/emsager/aicdiscovery/internal/platform/dberr"
)

// PostgresRepository implements Repository against core.artist.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) GetArtist(ctx context.Context, id int) (*Artist, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.Artist.ID, schema.Artist.Name, schema.Artist.CreatedAt, schema.Artist.UpdatedAt,
		schema.Artist.Table, schema.Artist.ID,
	)

	a := &Artist{}
	err := repository.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt)

	return a, dberr.Wrap(err, "get_artist")
}

func (repository *PostgresRepository) FindByName(ctx context.Context, name string) (*Artist, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.Artist.ID, schema.Artist.Name, schema.Artist.CreatedAt, schema.Artist.UpdatedAt,
		schema.Artist.Table, schema.Artist.Name,
	)

	a := &Artist{}
	err := repository.db.QueryRow(ctx, query, name).Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt)

	return a, dberr.Wrap(err, "find_artist_by_name")
}

// EnsureArtist looks up an artist by display name and creates the row when
// absent. Two requests racing to create the same name cannot both succeed:
// the unique index on name rejects the loser, and the loser recovers by
// re-reading the winner's row.
func (repository *PostgresRepository) EnsureArtist(ctx context.Context, name string) (*Artist, error) {
	existing, err := repository.FindByName(ctx, name)
	if err == nil {
		return existing, nil
	}

	insert := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.Artist.Table, schema.Artist.Name, schema.Artist.CreatedAt, schema.Artist.UpdatedAt,
		schema.Artist.ID, schema.Artist.CreatedAt, schema.Artist.UpdatedAt,
	)

	a := &Artist{Name: name}
	insertErr := repository.db.QueryRow(ctx, insert, name).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if insertErr == nil {
		return a, nil
	}

	// Lost a create race: the name now exists, so read it back.
	if dberr.IsUniqueViolation(insertErr) {
		return repository.FindByName(ctx, name)
	}

	return nil, dberr.Wrap(insertErr, "create_artist")
}
