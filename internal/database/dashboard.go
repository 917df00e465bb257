package database

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/valeriaulyamaeva/personal-tracker/models"
)

// Overview is everything the summary page shows.
type Overview struct {
	models.Summary
	Transactions  []models.Transaction  `json:"transactions"`
	Debts         []models.Debt         `json:"debts"`
	FixedExpenses []models.FixedExpense `json:"fixed_expenses"`
}

// GetOverview loads the finance rows and reduces them into totals.
//
// A stored initial balance that is not a number counts as zero; in that case
// the returned overview is complete and the error wraps ErrBadSettingValue.
func GetOverview(ctx context.Context, db DBTX) (*Overview, error) {
	transactions, err := GetAllTransactions(ctx, db)
	if err != nil {
		return nil, err
	}
	debts, err := GetAllDebts(ctx, db)
	if err != nil {
		return nil, err
	}
	fixed, err := GetAllFixedExpenses(ctx, db)
	if err != nil {
		return nil, err
	}

	initial, balanceErr := GetInitialBalance(ctx, db)
	if balanceErr != nil && !errors.Is(balanceErr, ErrBadSettingValue) {
		return nil, balanceErr
	}
	if balanceErr != nil {
		initial = decimal.Zero
	}

	return &Overview{
		Summary:       models.Summarize(initial, transactions, debts),
		Transactions:  transactions,
		Debts:         debts,
		FixedExpenses: fixed,
	}, balanceErr
}
