package models

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

type Category struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Type string `json:"type" db:"type"`
}

// ValidEntryType reports whether t is one of the two ledger types.
func ValidEntryType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}
