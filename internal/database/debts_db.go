package database

import (
	"context"
	"fmt"

	"github.com/valeriaulyamaeva/personal-tracker/models"
)

func CreateDebt(ctx context.Context, db DBTX, debt *models.Debt) error {
	query := `
		INSERT INTO debt (name, amount, monthly_payment, due_date, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := db.QueryRow(ctx, query,
		debt.Name,
		debt.Amount,
		debt.MonthlyPayment,
		debt.DueDate,
		debt.Note).Scan(&debt.ID, &debt.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении долга: %w", err)
	}
	return nil
}

// GetAllDebts orders by due date; ties and NULL dates keep the server's
// default ordering.
func GetAllDebts(ctx context.Context, db DBTX) ([]models.Debt, error) {
	query := `
		SELECT id, name, amount, monthly_payment, due_date, note, created_at
		FROM debt
		ORDER BY due_date`

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении долгов: %w", err)
	}
	defer rows.Close()

	debts := []models.Debt{}
	for rows.Next() {
		var d models.Debt
		if err := rows.Scan(&d.ID, &d.Name, &d.Amount, &d.MonthlyPayment, &d.DueDate, &d.Note, &d.CreatedAt); err != nil {
			return nil, err
		}
		debts = append(debts, d)
	}
	return debts, rows.Err()
}
