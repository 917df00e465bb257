package web_test

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valeriaulyamaeva/personal-tracker/models"
	"github.com/valeriaulyamaeva/personal-tracker/web"
)

func render(t *testing.T, name string, data any) string {
	t.Helper()
	tmpl, err := web.Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, name, data))
	return buf.String()
}

func TestOverviewTemplate(t *testing.T) {
	detail := "salary"
	out := render(t, "index.tmpl", map[string]any{
		"ActivePage":     "overview",
		"InitialBalance": decimal.NewFromInt(1000),
		"TotalIncome":    decimal.NewFromInt(500),
		"TotalExpense":   decimal.NewFromInt(300),
		"CurrentBalance": decimal.NewFromInt(1200),
		"TotalDebt":      decimal.Zero,
		"Transactions": []models.Transaction{{
			ID: 1, Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Type: models.TypeIncome,
			CategoryName: "Work", Amount: decimal.NewFromInt(500), Detail: &detail,
		}},
		"Debts":         []models.Debt{},
		"FixedExpenses": []models.FixedExpense{},
	})

	assert.Contains(t, out, "1200.00")
	assert.Contains(t, out, "2024-05-01")
	assert.Contains(t, out, "salary")
	assert.Contains(t, out, `href="/" class="active"`)
	assert.Contains(t, out, "No debts.")
}

func TestStocksTemplate(t *testing.T) {
	portfolio := models.ValuePortfolio([]models.StockHolding{{
		ID: 7, Symbol: "ACME", Name: "Acme", Quantity: decimal.NewFromInt(10),
		BuyPrice: decimal.NewFromInt(5), BuyDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}})
	out := render(t, "stocks.tmpl", map[string]any{
		"ActivePage":         "stocks",
		"Holdings":           portfolio.Holdings,
		"TotalCost":          portfolio.TotalCost,
		"TotalValue":         portfolio.TotalValue,
		"TotalProfit":        portfolio.TotalProfit,
		"TotalProfitPercent": portfolio.TotalProfitPercent,
	})

	assert.Contains(t, out, "ACME")
	assert.Contains(t, out, "50.00")
	assert.Contains(t, out, `name="id" value="7"`)
	assert.Contains(t, out, `action="/update-stock-price"`)
}

func TestGoalsTemplate(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	done := models.Goal{ID: 3, Title: "Run 100km", Type: models.CadenceMonthly}
	done.SetProgress(100, now)

	out := render(t, "goals.tmpl", map[string]any{
		"ActivePage": "goals",
		"Sections": []map[string]any{
			{"Title": "Daily", "Goals": []models.Goal{}},
			{"Title": "Monthly", "Goals": []models.Goal{done}},
		},
	})

	assert.Contains(t, out, "Run 100km")
	assert.Contains(t, out, "completed (2024-06-01)")
	assert.Contains(t, out, "No goals.")
	assert.Contains(t, out, `action="/delete-goal"`)
}

func TestHealthTemplateShowsMissingNumbersAsDash(t *testing.T) {
	zero := 0
	out := render(t, "health.tmpl", map[string]any{
		"ActivePage":   "health",
		"WorkoutPlans": []models.WorkoutPlan{},
		"WorkoutLogs": []models.WorkoutLog{{
			ID: 1, Date: time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), Type: "cardio", Sets: &zero,
		}},
	})

	assert.Contains(t, out, `<td class="num">0</td>`)
	assert.Contains(t, out, `<td class="num">-</td>`)
}

func TestEveryPageRenders(t *testing.T) {
	pages := map[string]map[string]any{
		"transactions.tmpl":   {"Transactions": nil, "Categories": []models.Category{{ID: 1, Name: "Food", Type: models.TypeExpense}}},
		"debts.tmpl":          {"Debts": nil},
		"fixed-expenses.tmpl": {"FixedExpenses": nil},
		"categories.tmpl":     {"Categories": nil},
		"settings.tmpl":       {"InitialBalance": decimal.RequireFromString("12.5")},
		"error.tmpl":          {"Status": 400, "Message": "amount: must be a number"},
	}
	for name, data := range pages {
		data["ActivePage"] = ""
		t.Run(name, func(t *testing.T) {
			out := render(t, name, data)
			assert.Contains(t, out, "</html>")
		})
	}
}

func TestStaticServesStylesheet(t *testing.T) {
	f, err := web.Static().Open("style.css")
	require.NoError(t, err)
	defer f.Close()

	body, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.NotEmpty(t, body)
}
