package models

import "time"

// InitialBalanceKey is the only settings key the application writes.
const InitialBalanceKey = "initial_balance"

type Setting struct {
	ID        int       `json:"id" db:"id"`
	Key       string    `json:"key" db:"key"`
	Value     string    `json:"value" db:"value"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
