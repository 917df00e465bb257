package database_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/valeriaulyamaeva/personal-tracker/internal/database"
)

// testPool connects to TEST_DATABASE_URL, creates the schema and empties
// every table. Tests are skipped when no database is configured.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load("../../.env")

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("ошибка подключения к БД: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.EnsureSchema(ctx, pool); err != nil {
		t.Fatalf("ошибка создания схемы: %v", err)
	}
	truncate := "TRUNCATE " + strings.Join(database.Tables, ", ") + " RESTART IDENTITY CASCADE"
	if _, err := pool.Exec(ctx, truncate); err != nil {
		t.Fatalf("ошибка очистки таблиц: %v", err)
	}
	return pool
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func ptr[T any](v T) *T {
	return &v
}
