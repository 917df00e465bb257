package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"

	"github.com/valeriaulyamaeva/personal-tracker/internal/database"
	"github.com/valeriaulyamaeva/personal-tracker/models"
)

// GenerateTestData fills every table with n random rows through the same
// store functions the web handlers use.
func GenerateTestData(ctx context.Context, db database.DBTX, n int, now time.Time) error {
	steps := []struct {
		name string
		fn   func(context.Context, database.DBTX, int, time.Time) error
	}{
		{"categories", GenerateTestCategories},
		{"transactions", GenerateTestTransactions},
		{"debts", GenerateTestDebts},
		{"fixed expenses", GenerateTestFixedExpenses},
		{"workouts", GenerateTestWorkouts},
		{"stocks", GenerateTestStocks},
		{"goals", GenerateTestGoals},
	}
	for _, step := range steps {
		if err := step.fn(ctx, db, n, now); err != nil {
			return fmt.Errorf("ошибка генерации (%s): %w", step.name, err)
		}
	}
	return nil
}

func GenerateTestCategories(ctx context.Context, db database.DBTX, n int, _ time.Time) error {
	for i := 0; i < n; i++ {
		category := &models.Category{
			Name: gofakeit.Noun(),
			Type: randomEntryType(),
		}
		if err := database.CreateCategory(ctx, db, category); err != nil {
			return err
		}
	}
	return nil
}

func randomEntryType() string {
	return gofakeit.RandomString([]string{models.TypeIncome, models.TypeExpense})
}

// GenerateTestTransactions spreads transactions over the last 30 days; about
// a quarter of them have no category.
func GenerateTestTransactions(ctx context.Context, db database.DBTX, n int, now time.Time) error {
	categories, err := database.GetAllCategories(ctx, db)
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		transaction := &models.Transaction{
			Date:   day(now.AddDate(0, 0, -gofakeit.Number(0, 29))),
			Type:   randomEntryType(),
			Amount: money(gofakeit.Price(1, 1000)),
			Detail: optional(gofakeit.Sentence(4)),
		}
		if len(categories) > 0 && gofakeit.Number(0, 3) > 0 {
			category := categories[gofakeit.Number(0, len(categories)-1)]
			transaction.CategoryID = &category.ID
			transaction.Type = category.Type
		}
		if err := database.CreateTransaction(ctx, db, transaction); err != nil {
			return err
		}
	}
	return nil
}

func GenerateTestDebts(ctx context.Context, db database.DBTX, n int, now time.Time) error {
	for i := 0; i < n; i++ {
		debt := &models.Debt{
			Name:   gofakeit.Company(),
			Amount: money(gofakeit.Price(100, 20000)),
			Note:   optional(gofakeit.Sentence(3)),
		}
		if gofakeit.Bool() {
			debt.MonthlyPayment = decimal.NewNullDecimal(money(gofakeit.Price(10, 500)))
			due := day(now.AddDate(0, gofakeit.Number(1, 36), 0))
			debt.DueDate = &due
		}
		if err := database.CreateDebt(ctx, db, debt); err != nil {
			return err
		}
	}
	return nil
}

func GenerateTestFixedExpenses(ctx context.Context, db database.DBTX, n int, _ time.Time) error {
	for i := 0; i < n; i++ {
		payDate := gofakeit.Number(1, 28)
		expense := &models.FixedExpense{
			Name:    gofakeit.Noun(),
			Amount:  money(gofakeit.Price(5, 1500)),
			PayDate: &payDate,
		}
		if err := database.CreateFixedExpense(ctx, db, expense); err != nil {
			return err
		}
	}
	return nil
}

var workoutTypes = []string{"cardio", "strength", "stretching", "swimming"}

func GenerateTestWorkouts(ctx context.Context, db database.DBTX, n int, now time.Time) error {
	for i := 0; i < n; i++ {
		plan := &models.WorkoutPlan{
			Name:   gofakeit.HipsterWord() + " plan",
			Type:   gofakeit.RandomString(workoutTypes),
			Target: optional(fmt.Sprintf("%d sessions a week", gofakeit.Number(2, 5))),
		}
		if err := database.CreateWorkoutPlan(ctx, db, plan); err != nil {
			return err
		}

		duration := gofakeit.Number(15, 90)
		entry := &models.WorkoutLog{
			Date:     day(now.AddDate(0, 0, -gofakeit.Number(0, 29))),
			Type:     plan.Type,
			Exercise: optional(gofakeit.Verb()),
			Duration: &duration,
			Calories: intPtr(gofakeit.Number(100, 900)),
		}
		if plan.Type == "strength" {
			entry.Weight = decimal.NewNullDecimal(money(gofakeit.Float64Range(5, 120)))
			entry.Sets = intPtr(gofakeit.Number(3, 5))
			entry.Reps = intPtr(gofakeit.Number(5, 15))
		} else {
			entry.Distance = decimal.NewNullDecimal(money(gofakeit.Float64Range(1, 20)))
		}
		if err := database.CreateWorkoutLog(ctx, db, entry); err != nil {
			return err
		}
	}
	return nil
}

func GenerateTestStocks(ctx context.Context, db database.DBTX, n int, now time.Time) error {
	for i := 0; i < n; i++ {
		buyPrice := gofakeit.Price(5, 500)
		holding := &models.StockHolding{
			Symbol:   strings.ToUpper(gofakeit.LetterN(4)),
			Name:     gofakeit.Company(),
			Quantity: decimal.NewFromInt(int64(gofakeit.Number(1, 100))),
			BuyPrice: money(buyPrice),
			BuyDate:  day(now.AddDate(0, 0, -gofakeit.Number(1, 720))),
		}
		if gofakeit.Bool() {
			holding.CurrentPrice = decimal.NewNullDecimal(money(buyPrice * gofakeit.Float64Range(0.5, 1.8)))
		}
		if err := database.CreateStockHolding(ctx, db, holding); err != nil {
			return err
		}
	}
	return nil
}

var cadences = []string{models.CadenceDaily, models.CadenceWeekly, models.CadenceMonthly, models.CadenceYearly}

func GenerateTestGoals(ctx context.Context, db database.DBTX, n int, now time.Time) error {
	for i := 0; i < n; i++ {
		goal := &models.Goal{
			Title:       gofakeit.Sentence(3),
			Description: optional(gofakeit.Sentence(8)),
			Type:        gofakeit.RandomString(cadences),
			Priority:    optional(gofakeit.RandomString([]string{"low", "medium", "high"})),
			Category:    optional(gofakeit.RandomString([]string{"finance", "health", "learning"})),
			Progress:    gofakeit.Number(0, 10) * 10,
		}
		if gofakeit.Bool() {
			due := day(now.AddDate(0, 0, gofakeit.Number(1, 365)))
			goal.DueDate = &due
		}
		if err := database.CreateGoal(ctx, db, goal, now); err != nil {
			return err
		}
	}
	return nil
}

func money(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func intPtr(n int) *int {
	return &n
}
