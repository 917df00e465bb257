package database_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valeriaulyamaeva/personal-tracker/internal/database"
)

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	require.NoError(t, database.EnsureSchema(ctx, pool))
	require.NoError(t, database.EnsureSchema(ctx, pool))

	for _, table := range database.Tables {
		var exists bool
		err := pool.QueryRow(ctx, `SELECT to_regclass($1) IS NOT NULL`, "public."+table).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "table %s", table)
	}
}

func TestEnsureSchemaConcurrent(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = database.EnsureSchema(ctx, pool)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}
