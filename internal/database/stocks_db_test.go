package database_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valeriaulyamaeva/personal-tracker/internal/database"
	"github.com/valeriaulyamaeva/personal-tracker/models"
)

func TestStockHoldings(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	msft := &models.StockHolding{
		Symbol: "MSFT", Name: "Microsoft", Quantity: decimal.RequireFromString("1.5"),
		BuyPrice: decimal.NewFromInt(300), BuyDate: date("2023-06-01"),
	}
	aapl := &models.StockHolding{
		Symbol: "AAPL", Name: "Apple", Quantity: decimal.NewFromInt(5),
		BuyPrice: decimal.NewFromInt(10), BuyDate: date("2023-01-01"),
	}
	require.NoError(t, database.CreateStockHolding(ctx, pool, msft))
	require.NoError(t, database.CreateStockHolding(ctx, pool, aapl))

	holdings, err := database.GetAllStockHoldings(ctx, pool)
	require.NoError(t, err)
	require.Len(t, holdings, 2)
	assert.Equal(t, "AAPL", holdings[0].Symbol)
	assert.False(t, holdings[0].CurrentPrice.Valid)
	assert.Equal(t, "1.5", holdings[1].Quantity.String())

	p := models.ValuePortfolio(holdings[:1])
	assert.Equal(t, "50.00", p.Holdings[0].CurrentValue.StringFixed(2))
	assert.Equal(t, "0.00", p.Holdings[0].Profit.StringFixed(2))

	n, err := database.UpdateStockPrice(ctx, pool, aapl.ID, decimal.NewNullDecimal(decimal.NewFromInt(12)))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	holdings, err = database.GetAllStockHoldings(ctx, pool)
	require.NoError(t, err)
	assert.Equal(t, "12", holdings[0].CurrentPrice.Decimal.String())

	n, err = database.UpdateStockPrice(ctx, pool, aapl.ID, decimal.NullDecimal{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	holdings, err = database.GetAllStockHoldings(ctx, pool)
	require.NoError(t, err)
	assert.False(t, holdings[0].CurrentPrice.Valid)
}

func TestUpdateStockPriceUnknownID(t *testing.T) {
	pool := testPool(t)

	n, err := database.UpdateStockPrice(context.Background(), pool, 4242, decimal.NewNullDecimal(decimal.NewFromInt(1)))
	require.NoError(t, err)
	assert.Zero(t, n)
}
