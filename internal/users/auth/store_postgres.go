// Copyright (c) 2026 AIC Discovery. All rights reserved.
// Author: emsager7@gmail.com

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emsager/aicdiscovery/internal/platform/database/schema"
	"github.com/emsager/aicdiscovery/internal/platform/dberr"
)

// PostgresUserRepository implements UserRepository against users.account.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// userSelect is the shared projection for account reads. The century
// name rides along from core.century so profile responses never need a
// second lookup.
func userSelect() string {
	return fmt.Sprintf(`
		SELECT u.%s, u.%s, u.%s, u.%s, u.%s, u.%s, u.%s, c.%s, u.%s, u.%s
		FROM %s u
		JOIN %s c ON c.%s = u.%s
	`,
		schema.UserAccount.ID, schema.UserAccount.Username, schema.UserAccount.Email,
		schema.UserAccount.Password, schema.UserAccount.FirstName, schema.UserAccount.LastName,
		schema.UserAccount.CenturyID, schema.Century.Name,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.Table,
		schema.Century.Table, schema.Century.ID, schema.UserAccount.CenturyID,
	)
}

func (repository *PostgresUserRepository) scanUser(ctx context.Context, query string, arg any) (*User, error) {
	user := &User{}
	err := repository.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.FirstName, &user.LastName, &user.CenturyID, &user.CenturyName,
		&user.CreatedAt, &user.UpdatedAt,
	)
	return user, err
}

func (repository *PostgresUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	query := userSelect() + fmt.Sprintf("WHERE u.%s = $1", schema.UserAccount.ID)
	user, err := repository.scanUser(ctx, query, id)
	return user, dberr.Wrap(err, "find_user_by_id")
}

func (repository *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := userSelect() + fmt.Sprintf("WHERE u.%s = $1", schema.UserAccount.Email)
	user, err := repository.scanUser(ctx, query, email)
	return user, dberr.Wrap(err, "find_user_by_email")
}

func (repository *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	query := userSelect() + fmt.Sprintf("WHERE u.%s = $1", schema.UserAccount.Username)
	user, err := repository.scanUser(ctx, query, username)
	return user, dberr.Wrap(err, "find_user_by_username")
}

func (repository *PostgresUserRepository) Create(ctx context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.UserAccount.Table,
		schema.UserAccount.ID, schema.UserAccount.Username, schema.UserAccount.Email,
		schema.UserAccount.Password, schema.UserAccount.FirstName, schema.UserAccount.LastName,
		schema.UserAccount.CenturyID, schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash,
		user.FirstName, user.LastName, user.CenturyID,
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	return dberr.Wrap(err, "create_user")
}

func (repository *PostgresUserRepository) Update(ctx context.Context, user *User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.UserAccount.Table,
		schema.UserAccount.FirstName, schema.UserAccount.LastName,
		schema.UserAccount.CenturyID, schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID,
		schema.UserAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		user.ID, user.FirstName, user.LastName, user.CenturyID,
	).Scan(&user.UpdatedAt)

	return dberr.Wrap(err, "update_user")
}

func (repository *PostgresUserRepository) UpdatePassword(ctx context.Context, userID, newHash string) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1
	`,
		schema.UserAccount.Table,
		schema.UserAccount.Password, schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID,
	)

	tag, err := repository.db.Exec(ctx, query, userID, newHash)
	if err != nil {
		return dberr.Wrap(err, "update_password")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresUserRepository) PreferredCentury(ctx context.Context, userID string) (string, error) {
	query := fmt.Sprintf(`
		SELECT c.%s
		FROM %s u
		JOIN %s c ON c.%s = u.%s
		WHERE u.%s = $1
	`,
		schema.Century.Name,
		schema.UserAccount.Table,
		schema.Century.Table, schema.Century.ID, schema.UserAccount.CenturyID,
		schema.UserAccount.ID,
	)

	var name string
	err := repository.db.QueryRow(ctx, query, userID).Scan(&name)
	return name, dberr.Wrap(err, "preferred_century")
}
