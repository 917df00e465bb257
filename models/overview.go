package models

import "github.com/shopspring/decimal"

// Summary holds the balance figures shown on the overview page.
type Summary struct {
	InitialBalance decimal.Decimal `json:"initial_balance"`
	TotalIncome    decimal.Decimal `json:"total_income"`
	TotalExpense   decimal.Decimal `json:"total_expense"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	TotalDebt      decimal.Decimal `json:"total_debt"`
}

// Summarize reduces already loaded rows into the overview totals.
// Transactions of any other type count toward neither total.
func Summarize(initial decimal.Decimal, transactions []Transaction, debts []Debt) Summary {
	s := Summary{
		InitialBalance: initial,
		TotalIncome:    decimal.Zero,
		TotalExpense:   decimal.Zero,
		TotalDebt:      decimal.Zero,
	}
	for _, t := range transactions {
		switch t.Type {
		case TypeIncome:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case TypeExpense:
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
		}
	}
	for _, d := range debts {
		s.TotalDebt = s.TotalDebt.Add(d.Amount)
	}
	s.CurrentBalance = initial.Add(s.TotalIncome).Sub(s.TotalExpense)
	return s
}
