package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/valeriaulyamaeva/personal-tracker/models"
)

const transactionColumns = `
	t.id, t.date, t.type, t.category_id, COALESCE(c.name, ''), t.amount, t.detail, t.created_at`

func CreateTransaction(ctx context.Context, db DBTX, transaction *models.Transaction) error {
	query := `
		INSERT INTO transaction (date, type, category_id, amount, detail)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := db.QueryRow(ctx, query,
		transaction.Date,
		transaction.Type,
		transaction.CategoryID,
		transaction.Amount,
		transaction.Detail).Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении транзакции: %w", err)
	}
	return nil
}

func GetTransactionByID(ctx context.Context, db DBTX, transactionID int) (*models.Transaction, error) {
	query := `SELECT` + transactionColumns + `
		FROM transaction t
		LEFT JOIN category c ON t.category_id = c.id
		WHERE t.id = $1`

	transaction, err := scanTransaction(db.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("транзакция с ID %d не найдена: %w", transactionID, err)
		}
		return nil, fmt.Errorf("ошибка при получении транзакции: %w", err)
	}
	return transaction, nil
}

// GetAllTransactions returns every transaction with its category name,
// most recent first.
func GetAllTransactions(ctx context.Context, db DBTX) ([]models.Transaction, error) {
	query := `SELECT` + transactionColumns + `
		FROM transaction t
		LEFT JOIN category c ON t.category_id = c.id
		ORDER BY t.date DESC, t.id DESC`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения транзакций: %w", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, rows.Err()
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	t := &models.Transaction{}
	err := row.Scan(&t.ID, &t.Date, &t.Type, &t.CategoryID, &t.CategoryName, &t.Amount, &t.Detail, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}
