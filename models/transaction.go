package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID           int             `json:"id" db:"id"`
	Date         time.Time       `json:"date" db:"date"`
	Type         string          `json:"type" db:"type"` // "income" or "expense"
	CategoryID   *int            `json:"category_id,omitempty" db:"category_id"`
	CategoryName string          `json:"category_name" db:"category_name"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	Detail       *string         `json:"detail,omitempty" db:"detail"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}
