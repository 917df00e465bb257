package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Connect opens a pool and makes sure the server answers.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("БД не отвечает: %w", err)
	}
	return pool, nil
}

// IsConstraintViolation reports whether err came from an integrity
// constraint (SQLSTATE class 23: not null, unique, foreign key, check).
func IsConstraintViolation(err error) bool {
	_, ok := ConstraintName(err)
	return ok
}

// ConstraintName returns the violated constraint, or the column for NOT NULL
// violations which carry no constraint name.
func ConstraintName(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || len(pgErr.Code) < 2 || pgErr.Code[:2] != "23" {
		return "", false
	}
	if pgErr.ConstraintName != "" {
		return pgErr.ConstraintName, true
	}
	return pgErr.ColumnName, true
}
