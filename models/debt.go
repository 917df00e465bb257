package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Debt struct {
	ID             int                 `json:"id" db:"id"`
	Name           string              `json:"name" db:"name"`
	Amount         decimal.Decimal     `json:"amount" db:"amount"`
	MonthlyPayment decimal.NullDecimal `json:"monthly_payment" db:"monthly_payment"`
	DueDate        *time.Time          `json:"due_date,omitempty" db:"due_date"`
	Note           *string             `json:"note,omitempty" db:"note"`
	CreatedAt      time.Time           `json:"created_at" db:"created_at"`
}

type FixedExpense struct {
	ID        int             `json:"id" db:"id"`
	Name      string          `json:"name" db:"name"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	PayDate   *int            `json:"pay_date,omitempty" db:"pay_date"` // day of month, 1-31
	Note      *string         `json:"note,omitempty" db:"note"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}
