package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaLockKey serializes concurrent EnsureSchema calls across processes.
const schemaLockKey = 7_301_202_401

var schema = []string{
	`CREATE TABLE IF NOT EXISTS category (
		id INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		type VARCHAR(10) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS transaction (
		id INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		date DATE NOT NULL,
		type VARCHAR(10) NOT NULL,
		category_id INTEGER REFERENCES category(id),
		amount NUMERIC(12,2) NOT NULL,
		detail TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS debt (
		id INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		amount NUMERIC(12,2) NOT NULL,
		monthly_payment NUMERIC(12,2),
		due_date DATE,
		note TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS fixed_expense (
		id INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		amount NUMERIC(12,2) NOT NULL,
		pay_date INTEGER,
		note TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		key VARCHAR(50) UNIQUE NOT NULL,
		value TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS workout_plan (
		id INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		type VARCHAR(20) NOT NULL,
		target VARCHAR(100),
		note TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS workout_log (
		id INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		date DATE NOT NULL,
		type VARCHAR(20) NOT NULL,
		exercise VARCHAR(100),
		duration INTEGER,
		distance NUMERIC(10,2),
		weight NUMERIC(10,2),
		sets INTEGER,
		reps INTEGER,
		calories INTEGER,
		note TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS stock_portfolio (
		id INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		symbol VARCHAR(20) NOT NULL,
		name VARCHAR(100) NOT NULL,
		quantity NUMERIC(12,4) NOT NULL,
		buy_price NUMERIC(12,2) NOT NULL,
		buy_date DATE NOT NULL,
		current_price NUMERIC(12,2),
		note TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS goals (
		id INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		title VARCHAR(200) NOT NULL,
		description TEXT,
		type VARCHAR(20) NOT NULL,
		due_date DATE,
		status VARCHAR(20) DEFAULT 'in-progress',
		priority VARCHAR(20),
		category VARCHAR(50),
		progress INTEGER DEFAULT 0 CHECK (progress BETWEEN 0 AND 100),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		completed_at TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transaction_date ON transaction (date DESC, id DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_workout_log_date ON workout_log (date DESC, id DESC)`,
}

// Tables lists every table EnsureSchema creates, parents first.
var Tables = []string{
	"category", "transaction", "debt", "fixed_expense", "settings",
	"workout_plan", "workout_log", "stock_portfolio", "goals",
}

// EnsureSchema creates missing tables. It never drops or alters anything,
// so it is safe to run on every start and from several processes at once.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции схемы: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(schemaLockKey)); err != nil {
		return fmt.Errorf("ошибка блокировки схемы: %w", err)
	}
	for _, stmt := range schema {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ошибка создания схемы: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("ошибка фиксации схемы: %w", err)
	}
	return nil
}
