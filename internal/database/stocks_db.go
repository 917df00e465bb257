package database

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/valeriaulyamaeva/personal-tracker/models"
)

func CreateStockHolding(ctx context.Context, db DBTX, stock *models.StockHolding) error {
	query := `
		INSERT INTO stock_portfolio (symbol, name, quantity, buy_price, buy_date, current_price, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := db.QueryRow(ctx, query,
		stock.Symbol,
		stock.Name,
		stock.Quantity,
		stock.BuyPrice,
		stock.BuyDate,
		stock.CurrentPrice,
		stock.Note).Scan(&stock.ID, &stock.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении акции: %w", err)
	}
	return nil
}

func GetAllStockHoldings(ctx context.Context, db DBTX) ([]models.StockHolding, error) {
	query := `
		SELECT id, symbol, name, quantity, buy_price, buy_date, current_price, note, created_at
		FROM stock_portfolio
		ORDER BY symbol`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении портфеля: %w", err)
	}
	defer rows.Close()

	holdings := []models.StockHolding{}
	for rows.Next() {
		var s models.StockHolding
		if err := rows.Scan(&s.ID, &s.Symbol, &s.Name, &s.Quantity, &s.BuyPrice, &s.BuyDate,
			&s.CurrentPrice, &s.Note, &s.CreatedAt); err != nil {
			return nil, err
		}
		holdings = append(holdings, s)
	}
	return holdings, rows.Err()
}

// UpdateStockPrice sets or clears the current price. It reports how many
// rows changed; an unknown id is not an error.
func UpdateStockPrice(ctx context.Context, db DBTX, id int, price decimal.NullDecimal) (int64, error) {
	query := `UPDATE stock_portfolio SET current_price = $1 WHERE id = $2`

	result, err := db.Exec(ctx, query, price, id)
	if err != nil {
		return 0, fmt.Errorf("ошибка обновления цены акции: %w", err)
	}
	return result.RowsAffected(), nil
}
