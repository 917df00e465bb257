package handlers

import (
	"github.com/shopspring/decimal"

	"github.com/valeriaulyamaeva/personal-tracker/internal/database"
	"github.com/valeriaulyamaeva/personal-tracker/models"
)

// View models. ActivePage selects the highlighted navigation entry.

type overviewPage struct {
	ActivePage string
	database.Overview
}

type transactionsPage struct {
	ActivePage   string
	Transactions []models.Transaction
	Categories   []models.Category
}

type debtsPage struct {
	ActivePage string
	Debts      []models.Debt
}

type fixedExpensesPage struct {
	ActivePage    string
	FixedExpenses []models.FixedExpense
}

type categoriesPage struct {
	ActivePage string
	Categories []models.Category
}

type settingsPage struct {
	ActivePage     string
	InitialBalance decimal.Decimal
}

type healthPage struct {
	ActivePage   string
	WorkoutPlans []models.WorkoutPlan
	WorkoutLogs  []models.WorkoutLog
}

type stocksPage struct {
	ActivePage string
	models.Portfolio
}

type goalSection struct {
	Title   string
	Cadence string
	Goals   []models.Goal
}

type goalsPage struct {
	ActivePage string
	Goals      []models.Goal
	Sections   []goalSection
}

type errorPage struct {
	ActivePage string
	Status     int
	Message    string
}

// goalSections lays the cadence groups out in display order.
func goalSections(groups models.GoalsByCadence) []goalSection {
	return []goalSection{
		{Title: "Daily", Cadence: models.CadenceDaily, Goals: groups.Daily},
		{Title: "Weekly", Cadence: models.CadenceWeekly, Goals: groups.Weekly},
		{Title: "Monthly", Cadence: models.CadenceMonthly, Goals: groups.Monthly},
		{Title: "Yearly", Cadence: models.CadenceYearly, Goals: groups.Yearly},
	}
}
