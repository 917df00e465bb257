package database

import (
	"context"
	"fmt"

	"github.com/valeriaulyamaeva/personal-tracker/models"
)

func CreateFixedExpense(ctx context.Context, db DBTX, expense *models.FixedExpense) error {
	query := `
		INSERT INTO fixed_expense (name, amount, pay_date, note)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := db.QueryRow(ctx, query,
		expense.Name,
		expense.Amount,
		expense.PayDate,
		expense.Note).Scan(&expense.ID, &expense.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении постоянного расхода: %w", err)
	}
	return nil
}

func GetAllFixedExpenses(ctx context.Context, db DBTX) ([]models.FixedExpense, error) {
	query := `
		SELECT id, name, amount, pay_date, note, created_at
		FROM fixed_expense
		ORDER BY pay_date`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постоянных расходов: %w", err)
	}
	defer rows.Close()

	expenses := []models.FixedExpense{}
	for rows.Next() {
		var e models.FixedExpense
		if err := rows.Scan(&e.ID, &e.Name, &e.Amount, &e.PayDate, &e.Note, &e.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}
