// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package century

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emsager/aicdiscovery/internal/platform/database/schema"
	"github.com/emsager/aicdiscovery/internal/platform/dberr"
)

// PostgresRepository implements Repository against core.century.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListCenturies(ctx context.Context) ([]*Century, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.Century.ID, schema.Century.Name, schema.Century.StartYear, schema.Century.EndYear,
		schema.Century.Table, schema.Century.StartYear,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_centuries")
	}
	defer rows.Close()

	var centuries []*Century
	for rows.Next() {
		c := &Century{}
		if err := rows.Scan(&c.ID, &c.Name, &c.StartYear, &c.EndYear); err != nil {
			return nil, dberr.Wrap(err, "scan_century")
		}
		centuries = append(centuries, c)
	}

	return centuries, nil
}

func (repository *PostgresRepository) GetCentury(ctx context.Context, id int) (*Century, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.Century.ID, schema.Century.Name, schema.Century.StartYear, schema.Century.EndYear,
		schema.Century.Table, schema.Century.ID,
	)

	c := &Century{}
	err := repository.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.StartYear, &c.EndYear)

	return c, dberr.Wrap(err, "get_century")
}
